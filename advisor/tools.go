package advisor

import (
	"context"
	"fmt"

	"github.com/etnz/loancalc"
	"github.com/etnz/loancalc/docs"
	"github.com/etnz/loancalc/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is comparing or planning consumer loans. Learn about the expert's skills
			from the Tools and ask them questions; they are at your service and keep context
			of your previous questions.

			Never do amortization arithmetic yourself: the Actuary has exact tools for that.
			Devise a plan of questions and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewActuary returns the expert that operates the amortization engine.
func NewActuary() *Expert {
	lib := []Function{solveLoan, amortizationTable}

	return &Expert{
		Name: "Actuary",
		Description: `This is the Actuary. He operates the exact amortization engine:
		he can solve a missing loan variable (principal, payment or number of periods)
		and produce full period-by-period amortization tables under the annuity and
		differentiated repayment models.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an actuary answering questions about consumer loans.
				Use the available tools for every computation, they are exact; never
				approximate a payment, duration or interest total yourself.
				Pardon the user's approximative language and figure out which loan
				variables they gave you and which one they want.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// loanSchema describes the loan arguments shared by both tools.
func loanSchema() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"model": {
			Type: genai.TypeString,
			Description: `The repayment model, "annuity" or "diff".

			` + must(docs.GetTopics("annuity", "diff")),
		},
		"principal": {
			Type:        genai.TypeNumber,
			Description: "The amount borrowed. Omit it to solve for it.",
		},
		"payment": {
			Type:        genai.TypeNumber,
			Description: "The periodic payment amount. Omit it to solve for it.",
		},
		"periods": {
			Type:        genai.TypeInteger,
			Description: "The number of monthly payments. Omit it to solve for it.",
		},
		"interest": {
			Type:        genai.TypeNumber,
			Description: "The annual interest rate in percent, e.g. 12 for a 12% nominal rate.",
		},
	}
}

var solveLoan = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "SolveLoan",
		Description: `SolveLoan computes the missing loan variable from the two known ones
		plus the interest rate, and returns a summary with the payment, duration,
		total paid and overpayment.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: loanSchema(),
			Required:   []string{"model", "interest"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown summary of the resolved loan.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		spec, err := parseSpec(args)
		if err != nil {
			return funcError(id, "SolveLoan", err)
		}
		unknown, err := spec.Unknown()
		if err != nil {
			return funcError(id, "SolveLoan", err)
		}
		s, err := loancalc.BuildSchedule(spec)
		if err != nil {
			return funcError(id, "SolveLoan", err)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "SolveLoan",
			Response: map[string]any{
				"output": renderer.SummaryMarkdown(s, unknown),
			},
		}
	},
}

var amortizationTable = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "AmortizationTable",
		Description: `AmortizationTable produces the full period-by-period amortization
		schedule: payment, principal and interest portions and the remaining balance,
		with totals.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: loanSchema(),
			Required:   []string{"model", "interest"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted amortization table.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		spec, err := parseSpec(args)
		if err != nil {
			return funcError(id, "AmortizationTable", err)
		}
		s, err := loancalc.BuildSchedule(spec)
		if err != nil {
			return funcError(id, "AmortizationTable", err)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "AmortizationTable",
			Response: map[string]any{
				"output": renderer.ScheduleMarkdown(s),
			},
		}
	},
}

func funcError(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// parseSpec builds a LoanSpec from the tool arguments.
func parseSpec(args map[string]any) (loancalc.LoanSpec, error) {
	var spec loancalc.LoanSpec

	smodel, ok := args["model"].(string)
	if !ok {
		return spec, fmt.Errorf("argument 'model' is not a string as expected but %T", args["model"])
	}
	m, err := loancalc.ParseModel(smodel)
	if err != nil {
		return spec, err
	}
	spec.Model = m

	number := func(key string) (decimal.Decimal, error) {
		v, has := args[key]
		if !has {
			return decimal.Zero, nil
		}
		f, ok := v.(float64)
		if !ok {
			return decimal.Zero, fmt.Errorf("argument %q is not a number as expected but %T", key, v)
		}
		return decimal.NewFromFloat(f), nil
	}

	principal, err := number("principal")
	if err != nil {
		return spec, err
	}
	spec.Principal = loancalc.M(principal, "")

	payment, err := number("payment")
	if err != nil {
		return spec, err
	}
	spec.Payment = loancalc.M(payment, "")

	periods, err := number("periods")
	if err != nil {
		return spec, err
	}
	spec.Periods = int(periods.IntPart())

	interest, err := number("interest")
	if err != nil {
		return spec, err
	}
	spec.AnnualRate = interest
	return spec, nil
}
