package proximity

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/baditaflorin/go_close_elements/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce compares every pair of positions.
func bruteForce(numbers []float64, threshold float64) bool {
	for i := range numbers {
		for j := range numbers {
			if i != j && math.Abs(numbers[i]-numbers[j]) < threshold {
				return true
			}
		}
	}
	return false
}

func randomNumbers(r *rand.Rand, n int) []float64 {
	numbers := make([]float64, n)
	for i := range numbers {
		// Coarse grid so duplicates and near misses both show up.
		numbers[i] = float64(r.IntN(200)-100) / 8
	}
	return numbers
}

func TestHasCloseElementsFewerThanTwo(t *testing.T) {
	t.Parallel()

	for _, threshold := range []float64{-1, 0, 0.5, 1e9, math.Inf(1)} {
		assert.False(t, HasCloseElements(nil, threshold))
		assert.False(t, HasCloseElements([]float64{}, threshold))
		assert.False(t, HasCloseElements([]float64{42}, threshold))
	}
}

func TestHasCloseElementsNonPositiveThreshold(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		numbers := randomNumbers(r, 2+r.IntN(30))
		for _, threshold := range []float64{0, -0.1, -100} {
			assert.False(t, HasCloseElements(numbers, threshold), "numbers=%v threshold=%v", numbers, threshold)
		}
	}
}

func TestHasCloseElementsMatchesBruteForce(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 500; i++ {
		numbers := randomNumbers(r, r.IntN(40))
		threshold := float64(r.IntN(40)) / 16
		assert.Equal(t, bruteForce(numbers, threshold), HasCloseElements(numbers, threshold),
			"numbers=%v threshold=%v", numbers, threshold)
	}
}

func TestHasCloseElementsMonotonic(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 200; i++ {
		numbers := randomNumbers(r, 2+r.IntN(20))
		thresholds := []float64{0.01, 0.1, 0.2, 0.5, 1, 2, 5, 50}
		seen := false
		for _, threshold := range thresholds {
			got := HasCloseElements(numbers, threshold)
			if seen {
				assert.True(t, got, "numbers=%v threshold=%v", numbers, threshold)
			}
			seen = seen || got
		}
	}
}

func TestHasCloseElementsOrderInvariant(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 200; i++ {
		numbers := randomNumbers(r, r.IntN(25))
		threshold := float64(r.IntN(16)) / 8
		want := HasCloseElements(numbers, threshold)

		shuffled := append([]float64(nil), numbers...)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, HasCloseElements(shuffled, threshold))
	}
}

func TestHasCloseElementsDuplicates(t *testing.T) {
	t.Parallel()

	numbers := []float64{10, -4, 7.5, 3, 7.5, 100}
	for _, threshold := range []float64{1e-12, 0.1, 1} {
		assert.True(t, HasCloseElements(numbers, threshold))
	}
}

func TestHasCloseElementsDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	numbers := []float64{5, 3, 9, 1, 3.05}
	original := append([]float64(nil), numbers...)

	assert.True(t, HasCloseElements(numbers, 0.1))
	assert.Equal(t, original, numbers)

	_, _, _, ok := ClosestGap(numbers)
	assert.True(t, ok)
	assert.Equal(t, original, numbers)
}

func TestHasCloseElementsConcurrent(t *testing.T) {
	t.Parallel()

	inputs := [][]float64{
		{1.0, 2.0, 3.9, 4.0, 5.0, 2.2},
		{1, 2, 3, 4, 5},
		{0.5, 0.5},
	}
	want := []bool{true, false, true}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				k := i % len(inputs)
				assert.Equal(t, want[k], HasCloseElements(inputs[k], 0.3))
			}
		}()
	}
	wg.Wait()
}

func TestClosestGap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []float64
		lower float64
		upper float64
		gap   float64
		ok    bool
	}{
		{name: "empty", input: nil},
		{name: "single", input: []float64{3}},
		{name: "pair", input: []float64{4, 1}, lower: 1, upper: 4, gap: 3, ok: true},
		{name: "tie keeps lowest pair", input: []float64{9, 1, 2, 8}, lower: 1, upper: 2, gap: 1, ok: true},
		{name: "duplicates", input: []float64{6, 2, 6}, lower: 6, upper: 6, gap: 0, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lower, upper, gap, ok := ClosestGap(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.lower, lower)
			assert.Equal(t, tt.upper, upper)
			assert.Equal(t, tt.gap, gap)
		})
	}
}

func TestNewCheckerRequiresLogger(t *testing.T) {
	t.Parallel()

	_, err := NewChecker(nil)
	require.Error(t, err)
}

func TestCheckerCheck(t *testing.T) {
	t.Parallel()

	lg, err := logger.NewDiscardLogger()
	require.NoError(t, err)
	c, err := NewChecker(lg)
	require.NoError(t, err)

	ctx := context.Background()

	result := c.Check(ctx, []float64{1.0, 2.0, 3.9, 4.0, 5.0, 2.2}, 0.3)
	assert.Equal(t, MetricName, result.Name)
	assert.True(t, result.Close)
	assert.True(t, result.Compared)
	assert.Equal(t, 6, result.Count)
	assert.Equal(t, 0.3, result.Threshold)
	assert.InDelta(t, 3.9, result.Lower, 1e-12)
	assert.InDelta(t, 4.0, result.Upper, 1e-12)
	assert.InDelta(t, 0.1, result.MinGap, 1e-12)

	result = c.Check(ctx, []float64{1.0, 2.0, 3.9, 4.0, 5.0, 2.2}, 0.05)
	assert.False(t, result.Close)
	assert.True(t, result.Compared)

	result = c.Check(ctx, []float64{5.0}, 1.0)
	assert.False(t, result.Close)
	assert.False(t, result.Compared)
	assert.Equal(t, "fewer than two elements", result.Details["reason"])

	result = c.Check(ctx, []float64{1.0, 1.0}, 0.0)
	assert.False(t, result.Close)
	result = c.Check(ctx, []float64{1.0, 1.0}, 0.1)
	assert.True(t, result.Close)
}

func TestCheckerAgreesWithHasCloseElements(t *testing.T) {
	t.Parallel()

	lg, err := logger.NewDiscardLogger()
	require.NoError(t, err)
	c, err := NewChecker(lg)
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(9, 10))
	for i := 0; i < 300; i++ {
		numbers := randomNumbers(r, r.IntN(30))
		threshold := float64(r.IntN(24)-4) / 8
		result := c.Check(context.Background(), numbers, threshold)
		assert.Equal(t, HasCloseElements(numbers, threshold), result.Close, "numbers=%v threshold=%v", numbers, threshold)
	}
}

func TestCheckerCancelled(t *testing.T) {
	t.Parallel()

	lg, err := logger.NewDiscardLogger()
	require.NoError(t, err)
	c, err := NewChecker(lg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := c.Check(ctx, []float64{1, 1}, 1)
	assert.False(t, result.Close)
	assert.False(t, result.Compared)
	assert.Equal(t, "computation cancelled", result.Details["error"])
}
