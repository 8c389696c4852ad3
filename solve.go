package loancalc

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// SolveMissingVariable computes the unset loan variable from the two known
// ones plus the interest rate, using annuity algebra, and returns the fully
// resolved spec. Exactly one of principal, payment and periods must be
// unset.
//
// The differentiated model has no single payment to solve for (it varies
// per period), so only annuity specs are accepted here.
func SolveMissingVariable(spec LoanSpec) (LoanSpec, error) {
	if err := spec.validate(); err != nil {
		return LoanSpec{}, err
	}
	if spec.Model == Differentiated {
		return LoanSpec{}, fmt.Errorf("%w: differentiated payments vary per period, there is no single variable to solve for", ErrInvalidInput)
	}
	v, err := spec.Unknown()
	if err != nil {
		return LoanSpec{}, err
	}

	i := spec.Rate()
	switch v {
	case Nothing:
		return LoanSpec{}, fmt.Errorf("%w: all of principal, payment and periods are set, nothing to solve for", ErrInvalidInput)

	case Payment:
		if i.IsZero() {
			spec.Payment = spec.Principal.Div(decimal.NewFromInt(int64(spec.Periods)))
			return spec, nil
		}
		// payment = principal * i * (1+i)^n / ((1+i)^n - 1)
		growth := one.Add(i).Pow(decimal.NewFromInt(int64(spec.Periods)))
		spec.Payment = spec.Principal.Mul(i.Mul(growth)).Div(growth.Sub(one))
		return spec, nil

	case Principal:
		if i.IsZero() {
			spec.Principal = spec.Payment.Mul(decimal.NewFromInt(int64(spec.Periods)))
			return spec, nil
		}
		// principal = payment * ((1+i)^n - 1) / (i * (1+i)^n)
		growth := one.Add(i).Pow(decimal.NewFromInt(int64(spec.Periods)))
		spec.Principal = spec.Payment.Mul(growth.Sub(one)).Div(i.Mul(growth))
		return spec, nil

	case Periods:
		n, err := solvePeriods(spec.Principal, spec.Payment, i)
		if err != nil {
			return LoanSpec{}, err
		}
		spec.Periods = n
		return spec, nil
	}
	return LoanSpec{}, fmt.Errorf("%w: unknown variable %v", ErrInvalidInput, v)
}

// solvePeriods computes the smallest whole number of periods that repays
// principal at the given per-period rate.
func solvePeriods(principal, payment Money, i decimal.Decimal) (int, error) {
	if i.IsZero() {
		n := principal.Decimal().Div(payment.Decimal()).Ceil().IntPart()
		return capPeriods(int(n))
	}
	// The logarithm argument payment/(payment - i*principal) must be
	// positive: a payment at or below the periodic interest never repays
	// anything.
	interest := principal.Mul(i)
	if payment.LessThanOrEqual(interest) {
		return 0, fmt.Errorf("payment %s does not exceed the first period interest %s, the loan never amortizes: %w",
			payment, interest.Round(2), errors.Join(ErrArithmeticDomain, ErrInvalidInput))
	}
	// n = ln(payment / (payment - i*principal)) / ln(1+i), rounded up.
	// decimal has no logarithm, the bridge through float64 is safe here:
	// the result is rounded to a whole period anyway.
	den := math.Log(one.Add(i).InexactFloat64())
	if den == 0 {
		// the rate is positive but below float64 resolution, so 1+i
		// collapsed to 1: amortize as if the rate were zero.
		n := principal.Decimal().Div(payment.Decimal()).Ceil().IntPart()
		return capPeriods(int(n))
	}
	num := math.Log(payment.AsFloat() / payment.Sub(interest).AsFloat())
	n := math.Ceil(num/den - 1e-9) // tolerate float noise just below a whole period
	return capPeriods(int(n))
}

func capPeriods(n int) (int, error) {
	if n < 1 {
		n = 1
	}
	// Classified like a supplied periods count beyond the cap: the loan
	// converges, the duration is just not a realistic one.
	if n > MaxPeriods {
		return 0, fmt.Errorf("%w: repayment takes %d periods, more than the maximum of %d", ErrInvalidInput, n, MaxPeriods)
	}
	return n, nil
}
