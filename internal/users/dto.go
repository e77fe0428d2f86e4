package users

import "github.com/shopspring/decimal"

// CreateInput holds the data accepted when registering a user.
type CreateInput struct {
	Name     string           `json:"name" validate:"required,max=120"`
	Email    string           `json:"email" validate:"required,email"`
	Avatar   string           `json:"avatar,omitempty" validate:"omitempty,url"`
	Bio      string           `json:"bio,omitempty" validate:"max=2000"`
	Location string           `json:"location,omitempty" validate:"max=200"`
	Credits  int              `json:"credits" validate:"min=0"`
	Rating   *decimal.Decimal `json:"rating,omitempty"`
}

// Patch lists the fields an update may overwrite; nil fields are retained.
type Patch struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,max=120"`
	Email    *string          `json:"email,omitempty" validate:"omitempty,email"`
	Avatar   *string          `json:"avatar,omitempty"`
	Bio      *string          `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Location *string          `json:"location,omitempty" validate:"omitempty,max=200"`
	Credits  *int             `json:"credits,omitempty" validate:"omitempty,min=0"`
	Rating   *decimal.Decimal `json:"rating,omitempty"`
}

func (p Patch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Credits != nil {
		u.Credits = *p.Credits
	}
	if p.Rating != nil {
		u.Rating = *p.Rating
	}
	return u
}
