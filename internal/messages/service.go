package messages

import (
	"context"
	"strings"

	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
)

// Service exposes chat operations grouped by match.
type Service interface {
	List(ctx context.Context) ([]Message, error)
	Conversations(ctx context.Context) ([]Conversation, error)
	Thread(ctx context.Context, matchID int) (Conversation, error)
	Get(ctx context.Context, id int) (Message, error)
	Send(ctx context.Context, input SendInput) (Message, error)
	Update(ctx context.Context, id int, patch Patch) (Message, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

// NewService wires messages dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "messages repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]Message, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Conversations(ctx context.Context) ([]Conversation, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Group(all), nil
}

func (s *service) Thread(ctx context.Context, matchID int) (Conversation, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return Conversation{}, err
	}
	conv, ok := Thread(all, matchID)
	if !ok {
		return Conversation{}, pkgerrors.New(pkgerrors.CodeNotFound, "conversation not found")
	}
	return conv, nil
}

func (s *service) Get(ctx context.Context, id int) (Message, error) {
	msg, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Message{}, err
	}
	if !ok {
		return Message{}, pkgerrors.New(pkgerrors.CodeNotFound, "message not found")
	}
	return msg, nil
}

// Send stores a new message; the store stamps its timestamp.
func (s *service) Send(ctx context.Context, input SendInput) (Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return Message{}, pkgerrors.New(pkgerrors.CodeValidation, "content required")
	}
	if input.MatchID <= 0 || input.SenderID <= 0 {
		return Message{}, pkgerrors.New(pkgerrors.CodeValidation, "match and sender ids are required")
	}
	if !input.Type.IsValid() {
		return Message{}, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(map[string]any{"type": input.Type})
	}
	return s.repo.Create(ctx, Message{
		MatchID:  input.MatchID,
		SenderID: input.SenderID,
		Content:  content,
		Type:     input.Type,
	})
}

func (s *service) Update(ctx context.Context, id int, patch Patch) (Message, error) {
	if patch.Content != nil {
		trimmed := strings.TrimSpace(*patch.Content)
		if trimmed == "" {
			return Message{}, pkgerrors.New(pkgerrors.CodeValidation, "content cannot be blank")
		}
		patch.Content = &trimmed
	}
	if patch.Type != nil && !patch.Type.IsValid() {
		return Message{}, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(map[string]any{"type": *patch.Type})
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
