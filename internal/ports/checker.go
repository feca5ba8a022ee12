package ports

import (
	"context"

	"github.com/baditaflorin/go_close_elements/internal/core/domain"
)

// ProximityChecker reports whether any two numbers sit closer than a threshold.
type ProximityChecker interface {
	Check(ctx context.Context, numbers []float64, threshold float64) domain.Result
}
