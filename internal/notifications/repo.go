package notifications

import (
	"context"
	"time"

	"github.com/skillswap/skillswap-backend/internal/recordstore"
)

const entityName = "notification"

// Repository is the record store surface the notifications service depends on.
type Repository interface {
	GetAll(ctx context.Context) ([]Notification, error)
	GetByID(ctx context.Context, id int) (Notification, bool, error)
	Create(ctx context.Context, notification Notification) (Notification, error)
	Update(ctx context.Context, id int, patch recordstore.Patch[Notification]) (Notification, error)
	Delete(ctx context.Context, id int) error
}

// NewRepository builds the in-memory notification store from its seed.
func NewRepository(deps recordstore.Deps, seed []Notification) (*recordstore.Store[Notification], error) {
	return recordstore.New(recordstore.Options[Notification]{
		Entity: entityName,
		Seed:   seed,
		Assign: func(n Notification, id int, now time.Time) Notification {
			n.ID = id
			n.Timestamp = now
			return n
		},
		Latency: deps.LatencyFor(nil),
		Clock:   deps.Clock,
		Metrics: deps.Metrics,
		Logger:  deps.Logger,
	})
}
