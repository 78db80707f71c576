// Package pattern parses the operand constraint mini-language used by the
// arithmetic generator.
//
// A pattern is either two comma separated operand patterns ("5*,*"), a fixed
// result ("=10"), or a single operand pattern applied to both sides ("3~7").
// Each operand pattern is one of:
//
//	*        any value inside the number bounds
//	k*       a multiple of k
//	c        the constant c
//	lo~hi    a constant drawn from [lo, hi] (lo-hi is accepted too)
package pattern
