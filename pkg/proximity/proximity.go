// Package proximity exposes a configurable checker that reports whether any
// two numbers in a collection are closer together than a threshold.
package proximity

import (
	"context"

	"github.com/baditaflorin/go_close_elements/internal/adapters/logger"
	"github.com/baditaflorin/go_close_elements/internal/core/domain"
	core "github.com/baditaflorin/go_close_elements/internal/core/proximity"
	"github.com/baditaflorin/go_close_elements/internal/ports"
	"github.com/baditaflorin/go_close_elements/internal/warmup"
	"github.com/baditaflorin/l"
)

// Result is the diagnostic outcome of Check.
type Result = domain.Result

// WarmUpConfig configures the warm-up run.
type WarmUpConfig = warmup.Config

// DefaultWarmUpConfig returns the default warm-up configuration.
func DefaultWarmUpConfig() WarmUpConfig {
	return warmup.DefaultConfig()
}

// Checker checks numeric collections for elements closer than a threshold.
type Checker struct {
	checker ports.ProximityChecker
	logger  ports.Logger
	warmed  bool
}

// Option defines a functional option for configuring a Checker.
type Option func(*config)

type config struct {
	Logger       ports.Logger
	WarmUp       bool
	WarmUpConfig warmup.Config
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(wc WarmUpConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a new Checker.
func New(opts ...Option) (*Checker, error) {
	cfg := &config{
		WarmUpConfig: warmup.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.WarmUpConfig.Validate(); err != nil {
		return nil, err
	}

	checker, err := core.NewChecker(cfg.Logger)
	if err != nil {
		return nil, err
	}

	c := &Checker{
		checker: checker,
		logger:  cfg.Logger,
	}

	if cfg.WarmUp {
		if err := c.WarmUp(context.Background(), cfg.WarmUpConfig); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Check reports whether numbers holds two elements closer than threshold,
// along with the closest pair.
func (c *Checker) Check(ctx context.Context, numbers []float64, threshold float64) Result {
	return c.checker.Check(ctx, numbers, threshold)
}

// HasCloseElements reports whether any two elements of numbers differ by less
// than threshold.
func (c *Checker) HasCloseElements(numbers []float64, threshold float64) bool {
	return core.HasCloseElements(numbers, threshold)
}

// ClosestGap returns the closest pair of numbers and their difference.
func (c *Checker) ClosestGap(numbers []float64) (lower, upper, gap float64, ok bool) {
	return core.ClosestGap(numbers)
}

// WarmUp exercises the checker so that later calls run on warm caches and pools.
// It must not run concurrently with itself.
func (c *Checker) WarmUp(ctx context.Context, wc WarmUpConfig) error {
	if c.warmed {
		c.logger.Debug("Checker already warmed up, skipping")
		return nil
	}

	manager, err := warmup.NewManager(c.logger, wc)
	if err != nil {
		return err
	}
	manager.Register(c.checker)
	manager.WarmUp(ctx)

	c.warmed = true
	return nil
}

// IsWarmedUp returns whether the checker has been warmed up.
func (c *Checker) IsWarmedUp() bool {
	return c.warmed
}

// Close releases the checker's logger.
func (c *Checker) Close() error {
	return c.logger.Close()
}
