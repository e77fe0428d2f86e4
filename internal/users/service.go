package users

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/skillswap/skillswap-backend/internal/skills"
	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
)

var maxRating = decimal.NewFromInt(5)

// SkillLister resolves a user's listings for the profile view.
type SkillLister interface {
	ListForUser(ctx context.Context, userID int) (skills.UserSkills, error)
}

// Service exposes user lookups and profile operations.
type Service interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int) (User, error)
	Current(ctx context.Context) (User, error)
	Create(ctx context.Context, input CreateInput) (User, error)
	Update(ctx context.Context, id int, patch Patch) (User, error)
	Delete(ctx context.Context, id int) error
	Profile(ctx context.Context, id int) (Profile, error)
}

type service struct {
	repo   Repository
	skills SkillLister
}

// NewService wires users dependencies.
func NewService(repo Repository, skills SkillLister) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "users repository required")
	}
	if skills == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "skills lister required")
	}
	return &service{repo: repo, skills: skills}, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Get(ctx context.Context, id int) (User, error) {
	user, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return user, nil
}

// Current returns the signed-in user, which is the first user in storage order.
func (s *service) Current(ctx context.Context) (User, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return User{}, err
	}
	if len(all) == 0 {
		return User{}, pkgerrors.New(pkgerrors.CodeNotFound, "no current user")
	}
	return all[0], nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return User{}, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return User{}, err
	}
	if input.Credits < 0 {
		return User{}, pkgerrors.New(pkgerrors.CodeValidation, "credits cannot be negative")
	}
	rating := decimal.Zero
	if input.Rating != nil {
		if err := validateRating(*input.Rating); err != nil {
			return User{}, err
		}
		rating = *input.Rating
	}

	return s.repo.Create(ctx, User{
		Name:     name,
		Email:    email,
		Avatar:   strings.TrimSpace(input.Avatar),
		Bio:      strings.TrimSpace(input.Bio),
		Location: strings.TrimSpace(input.Location),
		Credits:  input.Credits,
		Rating:   rating,
	})
}

func (s *service) Update(ctx context.Context, id int, patch Patch) (User, error) {
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		if trimmed == "" {
			return User{}, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be blank")
		}
		patch.Name = &trimmed
	}
	if patch.Email != nil {
		email, err := normalizeEmail(*patch.Email)
		if err != nil {
			return User{}, err
		}
		patch.Email = &email
	}
	if patch.Credits != nil && *patch.Credits < 0 {
		return User{}, pkgerrors.New(pkgerrors.CodeValidation, "credits cannot be negative")
	}
	if patch.Rating != nil {
		if err := validateRating(*patch.Rating); err != nil {
			return User{}, err
		}
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Profile(ctx context.Context, id int) (Profile, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	listings, err := s.skills.ListForUser(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return Profile{User: user, Skills: listings}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || !strings.Contains(email, "@") {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	return email, nil
}

func validateRating(r decimal.Decimal) error {
	if r.IsNegative() || r.GreaterThan(maxRating) {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 0 and 5")
	}
	return nil
}
