package messages

import (
	"context"
	"time"

	"github.com/skillswap/skillswap-backend/internal/recordstore"
)

const entityName = "message"

// Repository is the record store surface the messages service depends on.
type Repository interface {
	GetAll(ctx context.Context) ([]Message, error)
	GetByID(ctx context.Context, id int) (Message, bool, error)
	Create(ctx context.Context, message Message) (Message, error)
	Update(ctx context.Context, id int, patch recordstore.Patch[Message]) (Message, error)
	Delete(ctx context.Context, id int) error
}

// NewRepository builds the in-memory message store from its seed.
func NewRepository(deps recordstore.Deps, seed []Message) (*recordstore.Store[Message], error) {
	return recordstore.New(recordstore.Options[Message]{
		Entity: entityName,
		Seed:   seed,
		Assign: func(m Message, id int, now time.Time) Message {
			m.ID = id
			m.Timestamp = now
			return m
		},
		Latency: deps.LatencyFor(nil),
		Clock:   deps.Clock,
		Metrics: deps.Metrics,
		Logger:  deps.Logger,
	})
}
