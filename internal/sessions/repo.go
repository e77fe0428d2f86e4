package sessions

import (
	"context"
	"time"

	"github.com/skillswap/skillswap-backend/internal/recordstore"
)

const entityName = "session"

// Repository is the record store surface the sessions service depends on.
type Repository interface {
	GetAll(ctx context.Context) ([]Session, error)
	GetByID(ctx context.Context, id int) (Session, bool, error)
	Create(ctx context.Context, session Session) (Session, error)
	Update(ctx context.Context, id int, patch recordstore.Patch[Session]) (Session, error)
	Delete(ctx context.Context, id int) error
}

// NewRepository builds the in-memory session store from its seed.
func NewRepository(deps recordstore.Deps, seed []Session) (*recordstore.Store[Session], error) {
	return recordstore.New(recordstore.Options[Session]{
		Entity: entityName,
		Seed:   seed,
		Assign: func(s Session, id int, now time.Time) Session {
			s.ID = id
			s.CreatedAt = now
			return s
		},
		Latency: deps.LatencyFor(map[recordstore.Op]time.Duration{
			recordstore.OpGetAll: 250 * time.Millisecond,
			recordstore.OpCreate: 400 * time.Millisecond,
		}),
		Clock:   deps.Clock,
		Metrics: deps.Metrics,
		Logger:  deps.Logger,
	})
}
