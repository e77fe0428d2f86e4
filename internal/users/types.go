package users

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/skillswap/skillswap-backend/internal/skills"
)

// User is a member of the exchange.
type User struct {
	ID         int             `json:"Id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Avatar     string          `json:"avatar,omitempty"`
	Bio        string          `json:"bio,omitempty"`
	Location   string          `json:"location,omitempty"`
	Credits    int             `json:"credits"`
	Rating     decimal.Decimal `json:"rating"`
	JoinedDate time.Time       `json:"joinedDate"`
}

func (u User) RecordID() int { return u.ID }

// Profile is a user together with their offered and requested skills.
type Profile struct {
	User   User              `json:"user"`
	Skills skills.UserSkills `json:"skills"`
}
