// Package generator implements the constrained random generators behind the
// worksheets: Arithmetic solves operand patterns by capped rejection sampling,
// and Sequence lays out missing-number runs inside a character budget.
//
// Both generators draw from an injected *rand.Rand (WithRand/WithSeed) and
// never from global state, so a seeded generator reproduces its output.
// Calls are independent; a single generator must not be shared between
// goroutines because *rand.Rand is not safe for concurrent use.
package generator
