package notifications

import (
	"context"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
)

// maxConcurrentMarks bounds the mark-all-read fan-out.
const maxConcurrentMarks = 8

// Service defines notification inbox operations.
type Service interface {
	List(ctx context.Context, unreadOnly bool) ([]Notification, error)
	Get(ctx context.Context, id int) (Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int) (Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
	Create(ctx context.Context, input CreateInput) (Notification, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

// NewService wires notifications dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, unreadOnly bool) ([]Notification, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if !unreadOnly {
		return all, nil
	}
	return unread(all), nil
}

func (s *service) Get(ctx context.Context, id int) (Notification, error) {
	n, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Notification{}, err
	}
	if !ok {
		return Notification{}, pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
	}
	return n, nil
}

func (s *service) UnreadCount(ctx context.Context) (int, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(unread(all)), nil
}

func (s *service) MarkRead(ctx context.Context, id int) (Notification, error) {
	return s.repo.Update(ctx, id, markRead)
}

// MarkAllRead marks every unread notification concurrently and returns how
// many were updated. The first failure cancels the remaining updates.
func (s *service) MarkAllRead(ctx context.Context) (int, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	var updated atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentMarks)
	for _, n := range unread(all) {
		id := n.ID
		g.Go(func() error {
			if _, err := s.repo.Update(gctx, id, markRead); err != nil {
				return err
			}
			updated.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(updated.Load()), err
	}
	return int(updated.Load()), nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (Notification, error) {
	if !input.Type.IsValid() {
		return Notification{}, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(map[string]any{"type": input.Type})
	}
	title := strings.TrimSpace(input.Title)
	message := strings.TrimSpace(input.Message)
	if title == "" || message == "" {
		return Notification{}, pkgerrors.New(pkgerrors.CodeValidation, "title and message are required")
	}
	return s.repo.Create(ctx, Notification{
		Type:    input.Type,
		Title:   title,
		Message: message,
	})
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func unread(all []Notification) []Notification {
	out := make([]Notification, 0, len(all))
	for _, n := range all {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}
