package proximity

import (
	"context"
	"errors"
	"slices"

	"github.com/baditaflorin/go_close_elements/internal/core/domain"
	"github.com/baditaflorin/go_close_elements/internal/pool"
	"github.com/baditaflorin/go_close_elements/internal/ports"
)

// MetricName identifies results produced by this package.
const MetricName = "close_elements"

// HasCloseElements reports whether any two elements of numbers differ by
// strictly less than threshold. numbers is never modified.
//
// The smallest difference between any two elements is always realised by a
// pair that is adjacent once the elements are sorted, so only adjacent pairs
// of a sorted copy are compared. Results for inputs containing NaN are
// undefined.
func HasCloseElements(numbers []float64, threshold float64) bool {
	if len(numbers) < 2 {
		return false
	}

	sorted := pool.Default.Copy(numbers)
	defer pool.Default.Put(sorted)
	slices.Sort(*sorted)

	s := *sorted
	for i := 1; i < len(s); i++ {
		if s[i]-s[i-1] < threshold {
			return true
		}
	}
	return false
}

// ClosestGap returns the adjacent pair of the sorted input with the smallest
// difference. ok is false when fewer than two elements are given. Ties keep
// the lowest pair.
func ClosestGap(numbers []float64) (lower, upper, gap float64, ok bool) {
	if len(numbers) < 2 {
		return 0, 0, 0, false
	}

	sorted := pool.Default.Copy(numbers)
	defer pool.Default.Put(sorted)
	slices.Sort(*sorted)

	s := *sorted
	lower, upper = s[0], s[1]
	gap = upper - lower
	for i := 2; i < len(s); i++ {
		if d := s[i] - s[i-1]; d < gap {
			lower, upper, gap = s[i-1], s[i], d
		}
	}
	return lower, upper, gap, true
}

// Checker wraps the proximity check with logging and a diagnostic result.
type Checker struct {
	logger ports.Logger
}

// NewChecker creates a new proximity checker.
func NewChecker(logger ports.Logger) (*Checker, error) {
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	return &Checker{logger: logger}, nil
}

// Check reports whether numbers holds two elements closer than threshold,
// together with the closest pair it found.
func (c *Checker) Check(ctx context.Context, numbers []float64, threshold float64) domain.Result {
	c.logger.Debug("Starting proximity check",
		"count", len(numbers),
		"threshold", threshold,
	)

	details := make(map[string]interface{})
	result := domain.Result{
		Name:      MetricName,
		Threshold: threshold,
		Count:     len(numbers),
		Details:   details,
	}

	select {
	case <-ctx.Done():
		c.logger.Error("Check cancelled", "error", ctx.Err())
		details["error"] = "computation cancelled"
		return result
	default:
	}

	lower, upper, gap, ok := ClosestGap(numbers)
	if !ok {
		c.logger.Debug("Fewer than two elements, nothing to compare", "count", len(numbers))
		details["reason"] = "fewer than two elements"
		return result
	}

	result.Compared = true
	result.Lower = lower
	result.Upper = upper
	result.MinGap = gap
	result.Close = gap < threshold

	c.logger.Debug("Computed proximity",
		"close", result.Close,
		"min_gap", gap,
		"lower", lower,
		"upper", upper,
	)

	return result
}
