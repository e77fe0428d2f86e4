package recordstore

import (
	"time"

	"github.com/skillswap/skillswap-backend/pkg/logger"
	"github.com/skillswap/skillswap-backend/pkg/metrics"
)

// Deps carries the collaborators shared by every entity store.
type Deps struct {
	LatencyEnabled bool
	LatencyScale   float64
	Clock          Clock
	Metrics        *metrics.StoreMetrics
	Logger         *logger.Logger
}

// LatencyFor returns the policy for one store: NoLatency when disabled,
// otherwise the shared defaults with the store's overrides applied.
func (d Deps) LatencyFor(overrides map[Op]time.Duration) Latency {
	if !d.LatencyEnabled {
		return NoLatency{}
	}
	return NewFixedLatency(d.LatencyScale, overrides)
}
