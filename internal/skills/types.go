package skills

import (
	"time"

	"github.com/skillswap/skillswap-backend/pkg/enums"
)

// Skill is a listing offering or requesting a skill.
type Skill struct {
	ID              int                   `json:"Id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Category        enums.SkillCategory   `json:"category"`
	Type            enums.SkillType       `json:"type"`
	ExperienceLevel enums.ExperienceLevel `json:"experienceLevel"`
	UserID          int                   `json:"userId"`
	CreatedAt       time.Time             `json:"createdAt"`
	MatchScore      *int                  `json:"matchScore,omitempty"`
}

func (s Skill) RecordID() int { return s.ID }

func cloneSkill(s Skill) Skill {
	if s.MatchScore != nil {
		score := *s.MatchScore
		s.MatchScore = &score
	}
	return s
}

// CreateInput is the payload accepted when listing a new skill.
type CreateInput struct {
	Title           string                `json:"title" validate:"required,max=120"`
	Description     string                `json:"description" validate:"required,max=2000"`
	Category        enums.SkillCategory   `json:"category" validate:"required"`
	Type            enums.SkillType       `json:"type" validate:"required"`
	ExperienceLevel enums.ExperienceLevel `json:"experienceLevel" validate:"required"`
	UserID          int                   `json:"userId" validate:"required,min=1"`
	MatchScore      *int                  `json:"matchScore,omitempty" validate:"omitempty,min=0,max=100"`
}

// Patch lists the fields an update may overwrite; nil fields are retained.
type Patch struct {
	Title           *string                `json:"title,omitempty" validate:"omitempty,max=120"`
	Description     *string                `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category        *enums.SkillCategory   `json:"category,omitempty"`
	Type            *enums.SkillType       `json:"type,omitempty"`
	ExperienceLevel *enums.ExperienceLevel `json:"experienceLevel,omitempty"`
	UserID          *int                   `json:"userId,omitempty" validate:"omitempty,min=1"`
	MatchScore      *int                   `json:"matchScore,omitempty" validate:"omitempty,min=0,max=100"`
}

func (p Patch) Apply(s Skill) Skill {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.ExperienceLevel != nil {
		s.ExperienceLevel = *p.ExperienceLevel
	}
	if p.UserID != nil {
		s.UserID = *p.UserID
	}
	if p.MatchScore != nil {
		score := *p.MatchScore
		s.MatchScore = &score
	}
	return s
}

// UserSkills splits one user's listings by type for the profile page.
type UserSkills struct {
	Offered   []Skill `json:"offered"`
	Requested []Skill `json:"requested"`
}
