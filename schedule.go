package loancalc

import (
	"fmt"

	"github.com/etnz/loancalc/date"
	"github.com/shopspring/decimal"
)

// ScheduleRow is one period of an amortization schedule.
type ScheduleRow struct {
	PeriodIndex      int       // 1-based
	Due              date.Date // zero when the schedule is undated
	PaymentAmount    Money
	PrincipalPortion Money
	InterestPortion  Money
	RemainingBalance Money // balance after this period's principal portion is applied
}

// Schedule is the full amortization table of a resolved loan, with totals.
type Schedule struct {
	Spec          LoanSpec // spec with all three variables resolved
	Rows          []ScheduleRow
	TotalPaid     Money
	TotalInterest Money
}

// Overpayment is the amount paid on top of the principal, i.e. the total interest.
func (s *Schedule) Overpayment() Money { return s.TotalInterest }

// BuildSchedule produces the period-by-period amortization table for the
// given loan. An annuity spec with exactly one unknown variable is resolved
// with [SolveMissingVariable] first; a differentiated spec must supply
// principal and periods, its payment is derived per period.
//
// Amounts are rounded to 2 decimals per row. The running balance is carried
// exactly, and the cumulative rounding drift is absorbed into the final
// row's principal portion so the last balance is exactly zero.
func BuildSchedule(spec LoanSpec) (*Schedule, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	switch spec.Model {
	case Annuity:
		v, err := spec.Unknown()
		if err != nil {
			return nil, err
		}
		if v != Nothing {
			spec, err = SolveMissingVariable(spec)
			if err != nil {
				return nil, err
			}
		}
	case Differentiated:
		if !spec.Payment.IsZero() {
			return nil, fmt.Errorf("%w: the differentiated payment is derived per period and must not be supplied", ErrInvalidInput)
		}
		if spec.Principal.IsZero() || spec.Periods == 0 {
			return nil, fmt.Errorf("%w: the differentiated model requires both principal and periods", ErrInvalidInput)
		}
	}

	i := spec.Rate()
	cur := spec.Principal.Currency()
	balance := spec.Principal
	s := &Schedule{
		Spec:          spec,
		TotalPaid:     M(0, cur),
		TotalInterest: M(0, cur),
	}

	// Constant parts of each model: the fixed annuity payment, or the
	// fixed differentiated principal portion.
	var fixedPayment, basePrincipal Money
	if spec.Model == Annuity {
		fixedPayment = spec.Payment.Round(2)
	} else {
		basePrincipal = spec.Principal.Div(decimal.NewFromInt(int64(spec.Periods))).Round(2)
	}

	for k := 1; k <= spec.Periods; k++ {
		interest := balance.Mul(i).Round(2)

		var principal, payment Money
		if spec.Model == Annuity {
			principal = fixedPayment.Sub(interest)
			payment = fixedPayment
		} else {
			principal = basePrincipal
		}

		// The final period absorbs the cumulative rounding drift: its
		// principal portion is whatever balance is left. The same clamp
		// applies when a generous payment clears the balance early.
		last := k == spec.Periods || principal.GreaterThanOrEqual(balance)
		if last {
			principal = balance
		} else if !principal.IsPositive() {
			return nil, fmt.Errorf("period %d repays %s of principal (interest is %s), the balance never decreases: %w",
				k, principal, interest, ErrArithmeticDomain)
		}
		if spec.Model == Differentiated || last {
			payment = principal.Add(interest)
		}

		balance = balance.Sub(principal)
		row := ScheduleRow{
			PeriodIndex:      k,
			PaymentAmount:    payment,
			PrincipalPortion: principal,
			InterestPortion:  interest,
			RemainingBalance: balance,
		}
		if !spec.Start.IsZero() {
			row.Due = spec.Start.AddMonths(k - 1)
		}
		s.Rows = append(s.Rows, row)
		s.TotalPaid = s.TotalPaid.Add(payment)
		s.TotalInterest = s.TotalInterest.Add(interest)

		if last {
			break
		}
	}
	return s, nil
}
