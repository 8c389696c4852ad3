// Package loancalc provides a small, exact amortization engine for
// consumer loans, together with the value types it computes over.
//
// The core functionalities include:
//   - Solving the missing loan variable: given any two of principal,
//     periodic payment and number of periods, plus an annual interest
//     rate, compute the third one under annuity algebra.
//   - Schedule generation: produce the full period-by-period
//     amortization table under the annuity (fixed payment) or the
//     differentiated (fixed principal portion) repayment model, with
//     per-period rounding and the cumulative rounding drift absorbed
//     into the final row so the balance lands on exactly zero.
//   - Data Export: serializing schedules to CSV or JSONL with a stable
//     column contract, suitable for spreadsheets and downstream tools.
//
// The engine is a pure function of its inputs: it holds no state
// between calls, performs no I/O, and is safe for concurrent use.
// All money arithmetic is done on exact decimals; binary floating
// point only appears in the logarithm needed to solve for the number
// of periods.
//
// This package serves as the foundational logic for the `lcc`
// command-line tool.
package loancalc
