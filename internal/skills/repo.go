package skills

import (
	"context"
	"time"

	"github.com/skillswap/skillswap-backend/internal/recordstore"
)

const entityName = "skill"

// Repository is the record store surface the skills service depends on.
type Repository interface {
	GetAll(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id int) (Skill, bool, error)
	Create(ctx context.Context, skill Skill) (Skill, error)
	Update(ctx context.Context, id int, patch recordstore.Patch[Skill]) (Skill, error)
	Delete(ctx context.Context, id int) error
}

// NewRepository builds the in-memory skill store from its seed.
func NewRepository(deps recordstore.Deps, seed []Skill) (*recordstore.Store[Skill], error) {
	return recordstore.New(recordstore.Options[Skill]{
		Entity: entityName,
		Seed:   seed,
		Assign: func(s Skill, id int, now time.Time) Skill {
			s.ID = id
			s.CreatedAt = now
			return s
		},
		Clone: cloneSkill,
		Latency: deps.LatencyFor(map[recordstore.Op]time.Duration{
			recordstore.OpGetAll: 300 * time.Millisecond,
			recordstore.OpCreate: 400 * time.Millisecond,
		}),
		Clock:   deps.Clock,
		Metrics: deps.Metrics,
		Logger:  deps.Logger,
	})
}
