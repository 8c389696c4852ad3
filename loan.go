package loancalc

import (
	"fmt"

	"github.com/etnz/loancalc/date"
	"github.com/shopspring/decimal"
)

// MaxPeriods caps the number of payment periods at a few thousand: any
// realistic loan fits well below it, beyond it a schedule is a sign of bad
// input, not of a loan.
const MaxPeriods = 5000

// Variable names one of the three loan variables that can be left unknown.
type Variable int

const (
	// Nothing means all three variables are known.
	Nothing Variable = iota
	// Principal is the amount borrowed.
	Principal
	// Payment is the periodic payment amount.
	Payment
	// Periods is the number of payment periods.
	Periods
)

func (v Variable) String() string {
	switch v {
	case Nothing:
		return "nothing"
	case Principal:
		return "principal"
	case Payment:
		return "payment"
	case Periods:
		return "periods"
	default:
		return "unknown"
	}
}

// LoanSpec describes a loan as supplied by the caller.
//
// A zero-valued Principal, Payment or Periods marks that variable as
// unknown: the known values must be strictly positive, so the zero value
// is unambiguous. [SolveMissingVariable] requires exactly one unknown,
// [BuildSchedule] accepts a fully resolved spec too.
type LoanSpec struct {
	Model      Model
	Principal  Money
	Payment    Money
	Periods    int
	AnnualRate decimal.Decimal // percent per year, e.g. 12 for 12% nominal
	Start      date.Date       // optional first due date; the zero Date leaves the schedule undated
}

// Rate returns the per-period interest rate: AnnualRate / 100 / 12.
func (s LoanSpec) Rate() decimal.Decimal {
	return s.AnnualRate.Div(decimal.NewFromInt(1200))
}

// Unknown returns which of the three loan variables is unset.
// It returns an error wrapping [ErrInvalidInput] when two or more are unset.
func (s LoanSpec) Unknown() (Variable, error) {
	var unknowns []Variable
	if s.Principal.IsZero() {
		unknowns = append(unknowns, Principal)
	}
	if s.Payment.IsZero() {
		unknowns = append(unknowns, Payment)
	}
	if s.Periods == 0 {
		unknowns = append(unknowns, Periods)
	}
	switch len(unknowns) {
	case 0:
		return Nothing, nil
	case 1:
		return unknowns[0], nil
	default:
		return Nothing, fmt.Errorf("%w: %d variables are unset (%v), at most one may be unknown", ErrInvalidInput, len(unknowns), unknowns)
	}
}

// validate checks the known values. Unset variables are not reported here,
// the unknown count is the caller's concern.
func (s LoanSpec) validate() error {
	if s.Model != Annuity && s.Model != Differentiated {
		return fmt.Errorf("%w: unknown repayment model %d", ErrInvalidInput, int(s.Model))
	}
	if s.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: annual rate %s is negative", ErrInvalidInput, s.AnnualRate)
	}
	if s.Principal.IsNegative() {
		return fmt.Errorf("%w: principal %s is negative", ErrInvalidInput, s.Principal)
	}
	if s.Payment.IsNegative() {
		return fmt.Errorf("%w: payment %s is negative", ErrInvalidInput, s.Payment)
	}
	if s.Periods < 0 {
		return fmt.Errorf("%w: periods %d is negative", ErrInvalidInput, s.Periods)
	}
	if s.Periods > MaxPeriods {
		return fmt.Errorf("%w: %d periods exceed the maximum of %d", ErrInvalidInput, s.Periods, MaxPeriods)
	}
	return nil
}
