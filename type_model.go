package loancalc

import (
	"encoding/json"
	"fmt"
)

// Model defines the repayment model of a loan.
type Model int

const (
	// Annuity repays with a fixed total payment per period; the interest
	// and principal portions shift over time.
	Annuity Model = iota
	// Differentiated repays a fixed principal portion per period; the
	// total payment declines as the interest shrinks.
	Differentiated
)

func (m Model) String() string {
	switch m {
	case Annuity:
		return "annuity"
	case Differentiated:
		return "diff"
	default:
		return "unknown"
	}
}

// ParseModel parses a string into a Model.
func ParseModel(s string) (Model, error) {
	switch s {
	case "annuity":
		return Annuity, nil
	case "diff", "differentiated":
		return Differentiated, nil
	default:
		return 0, fmt.Errorf("%w: unknown repayment model %q", ErrInvalidInput, s)
	}
}

func (m Model) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

func (m *Model) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseModel(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
