package sessions

import (
	"time"

	"github.com/skillswap/skillswap-backend/pkg/enums"
)

// Session is a scheduled exchange between a teacher and a learner.
type Session struct {
	ID            int                 `json:"Id"`
	SkillID       int                 `json:"skillId"`
	TeacherID     int                 `json:"teacherId"`
	LearnerID     int                 `json:"learnerId"`
	ScheduledDate time.Time           `json:"scheduledDate"`
	Duration      int                 `json:"duration"`
	Location      string              `json:"location"`
	Credits       int                 `json:"credits"`
	Status        enums.SessionStatus `json:"status"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func (s Session) RecordID() int { return s.ID }

// CreateInput is the payload accepted when booking a session. Status defaults
// to pending when omitted.
type CreateInput struct {
	SkillID       int                 `json:"skillId" validate:"required,min=1"`
	TeacherID     int                 `json:"teacherId" validate:"required,min=1"`
	LearnerID     int                 `json:"learnerId" validate:"required,min=1"`
	ScheduledDate time.Time           `json:"scheduledDate" validate:"required"`
	Duration      int                 `json:"duration" validate:"required,min=1"`
	Location      string              `json:"location" validate:"max=200"`
	Credits       int                 `json:"credits" validate:"min=0"`
	Status        enums.SessionStatus `json:"status,omitempty"`
	Notes         string              `json:"notes,omitempty" validate:"max=2000"`
}

// Patch lists the fields an update may overwrite; nil fields are retained.
type Patch struct {
	SkillID       *int                 `json:"skillId,omitempty" validate:"omitempty,min=1"`
	TeacherID     *int                 `json:"teacherId,omitempty" validate:"omitempty,min=1"`
	LearnerID     *int                 `json:"learnerId,omitempty" validate:"omitempty,min=1"`
	ScheduledDate *time.Time           `json:"scheduledDate,omitempty"`
	Duration      *int                 `json:"duration,omitempty" validate:"omitempty,min=1"`
	Location      *string              `json:"location,omitempty" validate:"omitempty,max=200"`
	Credits       *int                 `json:"credits,omitempty" validate:"omitempty,min=0"`
	Status        *enums.SessionStatus `json:"status,omitempty"`
	Notes         *string              `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

func (p Patch) Apply(s Session) Session {
	if p.SkillID != nil {
		s.SkillID = *p.SkillID
	}
	if p.TeacherID != nil {
		s.TeacherID = *p.TeacherID
	}
	if p.LearnerID != nil {
		s.LearnerID = *p.LearnerID
	}
	if p.ScheduledDate != nil {
		s.ScheduledDate = *p.ScheduledDate
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Credits != nil {
		s.Credits = *p.Credits
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	return s
}

// StatusRequest moves a session to a new status.
type StatusRequest struct {
	Status enums.SessionStatus `json:"status" validate:"required"`
	// Strict rejects moves outside the session state machine.
	Strict bool `json:"strict,omitempty"`
}

// Calendar is the month view: every day of the month, the sessions falling in
// it and the sessions on the selected day.
type Calendar struct {
	Month       string    `json:"month"`
	Days        []string  `json:"days"`
	Sessions    []Session `json:"sessions"`
	SelectedDay string    `json:"selectedDay,omitempty"`
	DaySessions []Session `json:"daySessions"`
}
