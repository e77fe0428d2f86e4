package sessions

import (
	"context"
	"strings"
	"time"

	"github.com/skillswap/skillswap-backend/internal/recordstore"
	"github.com/skillswap/skillswap-backend/pkg/enums"
	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
)

// Service exposes session scheduling and calendar operations.
type Service interface {
	List(ctx context.Context, status string) ([]Session, error)
	Get(ctx context.Context, id int) (Session, error)
	Create(ctx context.Context, input CreateInput) (Session, error)
	Update(ctx context.Context, id int, patch Patch) (Session, error)
	UpdateStatus(ctx context.Context, id int, req StatusRequest) (Session, error)
	Delete(ctx context.Context, id int) error
	Calendar(ctx context.Context, month, selectedDay string) (Calendar, error)
	StatusCounts(ctx context.Context) (map[enums.SessionStatus]int, error)
}

type service struct {
	repo  Repository
	loc   *time.Location
	clock recordstore.Clock
}

// NewService wires session dependencies. loc is the calendar time zone.
func NewService(repo Repository, loc *time.Location, clock recordstore.Clock) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "sessions repository required")
	}
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = recordstore.RealClock{}
	}
	return &service{repo: repo, loc: loc, clock: clock}, nil
}

func (s *service) List(ctx context.Context, status string) ([]Session, error) {
	if err := validateStatusFilter(status); err != nil {
		return nil, err
	}
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByStatus(all, status), nil
}

func (s *service) Get(ctx context.Context, id int) (Session, error) {
	session, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
	}
	return session, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (Session, error) {
	if input.SkillID <= 0 || input.TeacherID <= 0 || input.LearnerID <= 0 {
		return Session{}, pkgerrors.New(pkgerrors.CodeValidation, "skill, teacher and learner ids are required")
	}
	if input.ScheduledDate.IsZero() {
		return Session{}, pkgerrors.New(pkgerrors.CodeValidation, "scheduled date required")
	}
	if input.Duration <= 0 {
		return Session{}, pkgerrors.New(pkgerrors.CodeValidation, "duration must be positive")
	}
	if input.Credits < 0 {
		return Session{}, pkgerrors.New(pkgerrors.CodeValidation, "credits cannot be negative")
	}
	if input.Status == "" {
		input.Status = enums.SessionStatusPending
	}
	if !input.Status.IsValid() {
		return Session{}, invalidStatus(input.Status)
	}

	return s.repo.Create(ctx, Session{
		SkillID:       input.SkillID,
		TeacherID:     input.TeacherID,
		LearnerID:     input.LearnerID,
		ScheduledDate: input.ScheduledDate,
		Duration:      input.Duration,
		Location:      strings.TrimSpace(input.Location),
		Credits:       input.Credits,
		Status:        input.Status,
		Notes:         strings.TrimSpace(input.Notes),
	})
}

func (s *service) Update(ctx context.Context, id int, patch Patch) (Session, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return Session{}, invalidStatus(*patch.Status)
	}
	if patch.Duration != nil && *patch.Duration <= 0 {
		return Session{}, pkgerrors.New(pkgerrors.CodeValidation, "duration must be positive")
	}
	if patch.Credits != nil && *patch.Credits < 0 {
		return Session{}, pkgerrors.New(pkgerrors.CodeValidation, "credits cannot be negative")
	}
	for _, ref := range []*int{patch.SkillID, patch.TeacherID, patch.LearnerID} {
		if ref != nil && *ref <= 0 {
			return Session{}, pkgerrors.New(pkgerrors.CodeValidation, "referenced ids must be positive")
		}
	}
	return s.repo.Update(ctx, id, patch)
}

// UpdateStatus applies a status change. Any valid status is accepted unless
// the request is strict, in which case the move must follow the state machine.
func (s *service) UpdateStatus(ctx context.Context, id int, req StatusRequest) (Session, error) {
	if !req.Status.IsValid() {
		return Session{}, invalidStatus(req.Status)
	}
	if req.Strict {
		current, err := s.Get(ctx, id)
		if err != nil {
			return Session{}, err
		}
		if !current.Status.CanTransition(req.Status) {
			return Session{}, pkgerrors.New(pkgerrors.CodeStateConflict, "session status transition not allowed").
				WithDetails(map[string]any{"from": current.Status, "to": req.Status})
		}
	}
	status := req.Status
	return s.repo.Update(ctx, id, Patch{Status: &status})
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Calendar builds the month view. month is YYYY-MM and selectedDay YYYY-MM-DD;
// an empty month falls back to the selected day's month, then to today.
func (s *service) Calendar(ctx context.Context, month, selectedDay string) (Calendar, error) {
	var (
		day    time.Time
		hasDay bool
		err    error
	)
	if selectedDay != "" {
		day, err = time.ParseInLocation(DayLayout, selectedDay, s.loc)
		if err != nil {
			return Calendar{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "day must be YYYY-MM-DD")
		}
		hasDay = true
	}

	var first time.Time
	switch {
	case month != "":
		first, err = time.ParseInLocation(MonthLayout, month, s.loc)
		if err != nil {
			return Calendar{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "month must be YYYY-MM")
		}
	case hasDay:
		first = day
	default:
		first = s.clock.Now().In(s.loc)
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return Calendar{}, err
	}

	days := MonthDays(first, s.loc)
	cal := Calendar{
		Month:       first.Format(MonthLayout),
		Days:        make([]string, len(days)),
		Sessions:    InMonth(all, first, s.loc),
		DaySessions: []Session{},
	}
	for i, d := range days {
		cal.Days[i] = d.Format(DayLayout)
	}
	if hasDay {
		cal.SelectedDay = day.Format(DayLayout)
		cal.DaySessions = OnDay(all, day, s.loc)
	}
	return cal, nil
}

func (s *service) StatusCounts(ctx context.Context) (map[enums.SessionStatus]int, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return CountByStatus(all), nil
}

func validateStatusFilter(status string) error {
	if status == "" || status == enums.FilterAll {
		return nil
	}
	if _, err := enums.ParseSessionStatus(status); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown status").WithDetails(map[string]any{"status": status})
	}
	return nil
}

func invalidStatus(status enums.SessionStatus) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(map[string]any{"status": status})
}
