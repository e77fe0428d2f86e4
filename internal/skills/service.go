package skills

import (
	"context"
	"strings"

	"github.com/skillswap/skillswap-backend/pkg/enums"
	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
)

// Service exposes skill listing, browsing and profile operations.
type Service interface {
	List(ctx context.Context, criteria Criteria) ([]Skill, error)
	Get(ctx context.Context, id int) (Skill, error)
	Create(ctx context.Context, input CreateInput) (Skill, error)
	Update(ctx context.Context, id int, patch Patch) (Skill, error)
	Delete(ctx context.Context, id int) error
	ListForUser(ctx context.Context, userID int) (UserSkills, error)
}

type service struct {
	repo Repository
}

// NewService wires skill dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "skills repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, criteria Criteria) ([]Skill, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, criteria), nil
}

func (s *service) Get(ctx context.Context, id int) (Skill, error) {
	skill, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Skill{}, err
	}
	if !ok {
		return Skill{}, pkgerrors.New(pkgerrors.CodeNotFound, "skill not found")
	}
	return skill, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (Skill, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" {
		return Skill{}, pkgerrors.New(pkgerrors.CodeValidation, "title and description are required")
	}
	if err := validateEnums(&input.Category, &input.Type, &input.ExperienceLevel); err != nil {
		return Skill{}, err
	}
	if input.UserID <= 0 {
		return Skill{}, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if err := validateScore(input.MatchScore); err != nil {
		return Skill{}, err
	}

	return s.repo.Create(ctx, Skill{
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		Type:            input.Type,
		ExperienceLevel: input.ExperienceLevel,
		UserID:          input.UserID,
		MatchScore:      input.MatchScore,
	})
}

func (s *service) Update(ctx context.Context, id int, patch Patch) (Skill, error) {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			return Skill{}, pkgerrors.New(pkgerrors.CodeValidation, "title cannot be blank")
		}
		patch.Title = &trimmed
	}
	if patch.Description != nil {
		trimmed := strings.TrimSpace(*patch.Description)
		if trimmed == "" {
			return Skill{}, pkgerrors.New(pkgerrors.CodeValidation, "description cannot be blank")
		}
		patch.Description = &trimmed
	}
	if err := validateEnums(patch.Category, patch.Type, patch.ExperienceLevel); err != nil {
		return Skill{}, err
	}
	if patch.UserID != nil && *patch.UserID <= 0 {
		return Skill{}, pkgerrors.New(pkgerrors.CodeValidation, "user id must be positive")
	}
	if err := validateScore(patch.MatchScore); err != nil {
		return Skill{}, err
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListForUser(ctx context.Context, userID int) (UserSkills, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return UserSkills{}, err
	}
	return SplitByType(ByUser(all, userID)), nil
}

// ValidateCriteria rejects selectors outside the known enums.
func ValidateCriteria(c Criteria) error {
	if isSelective(c.Category) && !enums.SkillCategory(c.Category).IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown category").WithDetails(map[string]any{"category": c.Category})
	}
	if isSelective(c.Type) && !enums.SkillType(c.Type).IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown type").WithDetails(map[string]any{"type": c.Type})
	}
	if c.SortBy != "" && !c.SortBy.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown sort").WithDetails(map[string]any{"sortBy": c.SortBy})
	}
	return nil
}

func validateEnums(category *enums.SkillCategory, typ *enums.SkillType, level *enums.ExperienceLevel) error {
	details := map[string]any{}
	if category != nil && !category.IsValid() {
		details["category"] = "is invalid"
	}
	if typ != nil && !typ.IsValid() {
		details["type"] = "is invalid"
	}
	if level != nil && !level.IsValid() {
		details["experienceLevel"] = "is invalid"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return nil
}

func validateScore(score *int) error {
	if score != nil && (*score < 0 || *score > 100) {
		return pkgerrors.New(pkgerrors.CodeValidation, "match score must be between 0 and 100")
	}
	return nil
}
