// Package numeric holds the small integer helpers shared by the generators:
// printed widths, rounding onto multiples and blank placeholders.
package numeric

import "strings"

// DigitWidth returns the number of characters n occupies when printed in
// base 10, including the sign for negative values.
func DigitWidth(n int) int {
	width := 1
	if n < 0 {
		width++
		n = -n
	}
	for n >= 10 {
		width++
		n /= 10
	}
	return width
}

// RoundTo moves n to the nearest multiple of k (ties round up) and then steps
// one multiple back inside [lo, hi] when rounding overshot either bound. The
// boolean is false when no multiple of k could be placed in range.
func RoundTo(n, k, lo, hi int) (int, bool) {
	if k <= 0 {
		return n, n >= lo && n <= hi
	}
	times := FloorDiv(n, k)
	if rem := n - times*k; rem*2 >= k {
		times++
	}
	out := times * k
	if out >= hi+1 {
		out -= k
	}
	if out < lo {
		out += k
	}
	return out, out >= lo && out <= hi
}

// FloorDiv divides rounding towards negative infinity.
func FloorDiv(n, k int) int {
	q := n / k
	if (n%k != 0) && ((n < 0) != (k < 0)) {
		q--
	}
	return q
}

// Abs returns |n|.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Blank returns the underscore placeholder used to hide n.
func Blank(n int) string {
	return strings.Repeat("_", DigitWidth(n))
}
