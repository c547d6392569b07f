package cashflow

import "errors"

// The error taxonomy of the solvers. Callers match with errors.Is; every
// failure mode surfaces as a distinguishable value rather than a silent zero.
var (
	// ErrParameterCount reports an amortization call with the wrong number of
	// known parameters among rate, balance, payment and term: three of the
	// four are needed to solve the remaining one.
	ErrParameterCount = errors.New("need at least three of rate, balance, payment and term")

	// ErrInvalidSchedule reports a loan whose payment does not exceed the
	// interest accruing on the initial balance: such a schedule never
	// amortizes. It is fatal to the call, since it means the financial input
	// itself is malformed.
	ErrInvalidSchedule = errors.New("payment does not exceed interest on the initial balance")

	// ErrIndeterminate reports that a solver could not produce a meaningful
	// result: the cash flow is degenerate (all one sign, undefined values,
	// too short) or no sign-changing bracket exists within the search budget.
	// Solvers return it together with a NaN value so collection-wide sweeps
	// degrade to one indeterminate point instead of aborting.
	ErrIndeterminate = errors.New("indeterminate result")
)
