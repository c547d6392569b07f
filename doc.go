// Package cashflow provides a set of functions and types for analyzing
// irregular, calendar-indexed cash flow streams. It is designed as a pure
// computation library: every operation is a side-effect-free function of its
// inputs, so independent evaluations can run concurrently without
// synchronization.
//
// The core functionalities include:
//   - Series Alignment: merging sparse cash-flow series onto the union of
//     their timepoints with an explicit fill policy, and summing them into a
//     single total series.
//   - Calendar Aggregation: bucketing series by year, quarter or month and
//     reducing each bucket (sums for flows, last value for balances) into
//     display-ready tables.
//   - Amortization: solving loan schedules for whichever of rate, balance,
//     payment or term is unknown, and generating the full period-by-period
//     balance/interest/principal breakdown.
//   - Valuation: internal rate of return through adaptive bracket expansion
//     and bisection, and net present value with frequency- and APR-aware
//     discounting as of an arbitrary reference date.
//
// This package serves as the foundational logic for the `cfa` command-line
// tool, which layers file input, table rendering and reporting on top of it.
package cashflow
