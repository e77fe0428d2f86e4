package users

import (
	"context"
	"time"

	"github.com/skillswap/skillswap-backend/internal/recordstore"
)

const entityName = "user"

// Repository is the record store surface the users service depends on.
type Repository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int) (User, bool, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id int, patch recordstore.Patch[User]) (User, error)
	Delete(ctx context.Context, id int) error
}

// NewRepository builds the in-memory user store from its seed.
func NewRepository(deps recordstore.Deps, seed []User) (*recordstore.Store[User], error) {
	return recordstore.New(recordstore.Options[User]{
		Entity: entityName,
		Seed:   seed,
		Assign: func(u User, id int, now time.Time) User {
			u.ID = id
			u.JoinedDate = now
			return u
		},
		Latency: deps.LatencyFor(nil),
		Clock:   deps.Clock,
		Metrics: deps.Metrics,
		Logger:  deps.Logger,
	})
}
