package recordstore

import (
	"context"
	"time"
)

// Op names a record store operation; used for latency lookup, metrics and logs.
type Op string

const (
	OpGetAll  Op = "get_all"
	OpGetByID Op = "get_by_id"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
)

// Latency simulates backend delay before a store operation touches state.
type Latency interface {
	Wait(ctx context.Context, op Op) error
}

// NoLatency completes immediately; tests use it for deterministic runs.
type NoLatency struct{}

func (NoLatency) Wait(ctx context.Context, _ Op) error {
	return ctx.Err()
}

// FixedLatency sleeps a fixed duration per operation, multiplied by Scale.
type FixedLatency struct {
	Delays map[Op]time.Duration
	Scale  float64
}

// DefaultDelays returns the per-operation delays shared by every store;
// getAll and create are overridden per entity.
func DefaultDelays() map[Op]time.Duration {
	return map[Op]time.Duration{
		OpGetAll:  200 * time.Millisecond,
		OpGetByID: 200 * time.Millisecond,
		OpCreate:  300 * time.Millisecond,
		OpUpdate:  300 * time.Millisecond,
		OpDelete:  200 * time.Millisecond,
	}
}

// NewFixedLatency builds a latency policy from the defaults plus overrides.
func NewFixedLatency(scale float64, overrides map[Op]time.Duration) FixedLatency {
	delays := DefaultDelays()
	for op, d := range overrides {
		delays[op] = d
	}
	return FixedLatency{Delays: delays, Scale: scale}
}

func (l FixedLatency) delay(op Op) time.Duration {
	d := l.Delays[op]
	if l.Scale <= 0 || d <= 0 {
		return 0
	}
	return time.Duration(float64(d) * l.Scale)
}

func (l FixedLatency) Wait(ctx context.Context, op Op) error {
	d := l.delay(op)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Clock abstracts time retrieval so creation stamps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the current UTC time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns T.
type FixedClock struct{ T time.Time }

func (c FixedClock) Now() time.Time { return c.T }
