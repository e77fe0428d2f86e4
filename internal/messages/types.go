package messages

import (
	"time"

	"github.com/skillswap/skillswap-backend/pkg/enums"
)

// Message is one chat entry inside a match conversation.
type Message struct {
	ID        int               `json:"Id"`
	MatchID   int               `json:"matchId"`
	SenderID  int               `json:"senderId"`
	Content   string            `json:"content"`
	Timestamp time.Time         `json:"timestamp"`
	Type      enums.MessageType `json:"type,omitempty"`
}

func (m Message) RecordID() int { return m.ID }

// SendInput is the payload accepted when posting a message.
type SendInput struct {
	MatchID  int               `json:"matchId" validate:"required,min=1"`
	SenderID int               `json:"senderId" validate:"required,min=1"`
	Content  string            `json:"content" validate:"required,max=4000"`
	Type     enums.MessageType `json:"type,omitempty"`
}

// Patch lists the fields an update may overwrite; nil fields are retained.
type Patch struct {
	Content *string            `json:"content,omitempty" validate:"omitempty,max=4000"`
	Type    *enums.MessageType `json:"type,omitempty"`
}

func (p Patch) Apply(m Message) Message {
	if p.Content != nil {
		m.Content = *p.Content
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	return m
}

// Conversation is every message sharing a match id, oldest first.
type Conversation struct {
	MatchID     int       `json:"matchId"`
	Messages    []Message `json:"messages"`
	LastMessage Message   `json:"lastMessage"`
}
