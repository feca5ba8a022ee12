package warmup

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_close_elements/internal/ports"
)

// Config defines configuration for warming up the system
type Config struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Number of values in each generated sample
	SampleSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		SampleSize:  1000,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Concurrency <= 0 {
		return errors.New("concurrency must be greater than 0")
	}
	if c.Iterations < 0 {
		return errors.New("iterations must not be negative")
	}
	if c.SampleSize < 0 {
		return errors.New("sample size must not be negative")
	}
	if c.Duration < 0 {
		return errors.New("duration must not be negative")
	}
	return nil
}

// Manager handles system warmup operations
type Manager struct {
	logger   ports.Logger
	checkers []ports.ProximityChecker
	config   Config
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config Config) (*Manager, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Manager{
		logger: logger,
		config: config,
	}, nil
}

// Register adds a checker to be warmed up
func (wm *Manager) Register(checker ports.ProximityChecker) {
	wm.checkers = append(wm.checkers, checker)
}

// WarmUp runs every registered checker over generated samples and returns
// the number of checks performed.
func (wm *Manager) WarmUp(ctx context.Context) int64 {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.checkers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	checks := wm.warmUpCheckers(ctx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"checks", checks,
		"duration", time.Since(startTime),
	)
	return checks
}

func (wm *Manager) warmUpCheckers(ctx context.Context) int64 {
	if len(wm.checkers) == 0 {
		return 0
	}

	spread := GenerateSpread(wm.config.SampleSize, 1.0)
	clustered := GenerateClustered(wm.config.SampleSize)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int64
	)
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var local int64
			defer func() {
				mu.Lock()
				total += local
				mu.Unlock()
			}()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, checker := range wm.checkers {
					// Alternate between inputs that pass and fail the check.
					switch j % 3 {
					case 0:
						_ = checker.Check(ctx, spread, 0.5)
					case 1:
						_ = checker.Check(ctx, spread, 1.5)
					default:
						_ = checker.Check(ctx, clustered, 0.01)
					}
					local++
				}
			}
		}()
	}

	wg.Wait()
	return total
}

// GenerateSpread returns size values spaced exactly step apart, interleaved so
// the slice is not already sorted.
func GenerateSpread(size int, step float64) []float64 {
	values := make([]float64, size)
	for i := range values {
		// Even positions count up from the bottom, odd ones down from the top.
		if i%2 == 0 {
			values[i] = float64(i/2) * step
		} else {
			values[i] = float64(size-1-i/2) * step
		}
	}
	return values
}

// GenerateClustered returns size values where every value appears twice,
// except a trailing singleton when size is odd.
func GenerateClustered(size int) []float64 {
	values := make([]float64, size)
	for i := range values {
		values[i] = float64((size-1)/2 - i/2)
	}
	return values
}
