package notifications

import (
	"time"

	"github.com/skillswap/skillswap-backend/pkg/enums"
)

// Notification is one inbox entry.
type Notification struct {
	ID        int                    `json:"Id"`
	Type      enums.NotificationType `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Read      bool                   `json:"read"`
	Timestamp time.Time              `json:"timestamp"`
}

func (n Notification) RecordID() int { return n.ID }

// CreateInput is the payload accepted when raising a notification.
type CreateInput struct {
	Type    enums.NotificationType `json:"type" validate:"required"`
	Title   string                 `json:"title" validate:"required,max=200"`
	Message string                 `json:"message" validate:"required,max=2000"`
}

// Patch lists the fields an update may overwrite; nil fields are retained.
type Patch struct {
	Title   *string `json:"title,omitempty"`
	Message *string `json:"message,omitempty"`
	Read    *bool   `json:"read,omitempty"`
}

func (p Patch) Apply(n Notification) Notification {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Message != nil {
		n.Message = *p.Message
	}
	if p.Read != nil {
		n.Read = *p.Read
	}
	return n
}

var markRead = Patch{Read: boolPtr(true)}

func boolPtr(v bool) *bool { return &v }
