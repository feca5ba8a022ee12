// close_elements.go
// Package closeelements reports whether any two numbers in a collection are
// closer together than a threshold.
//
// Two numbers are close when their absolute difference is strictly less than
// the threshold. The check sorts a private copy of the input and compares
// neighbours only, since the smallest difference in any collection is always
// found between two values that are adjacent in sorted order:
//
//	O(n log n) sort + O(n) scan instead of O(n²) pairwise comparison
//
// A threshold of zero or below never reports a pair. Inputs containing NaN
// produce undefined results.
package closeelements

import "github.com/baditaflorin/go_close_elements/internal/core/proximity"

// HasCloseElements reports whether two distinct positions of numbers hold
// values differing by strictly less than threshold. numbers is not modified.
func HasCloseElements(numbers []float64, threshold float64) bool {
	return proximity.HasCloseElements(numbers, threshold)
}

// ClosestGap returns the pair of numbers with the smallest difference, lower
// first. ok is false when numbers has fewer than two elements.
func ClosestGap(numbers []float64) (lower, upper, gap float64, ok bool) {
	return proximity.ClosestGap(numbers)
}
