package controllers

import (
	"net/http"

	"github.com/skillswap/skillswap-backend/api/responses"
	"github.com/skillswap/skillswap-backend/api/validators"
	"github.com/skillswap/skillswap-backend/internal/sessions"
	"github.com/skillswap/skillswap-backend/pkg/logger"
)

// ListSessions returns sessions, optionally narrowed by ?status=.
func ListSessions(svc sessions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "sessions")
			return
		}
		items, err := svc.List(r.Context(), validators.QueryString(r, "status"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, items)
	}
}

// SessionStatusCounts returns the number of sessions per status.
func SessionStatusCounts(svc sessions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "sessions")
			return
		}
		counts, err := svc.StatusCounts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, counts)
	}
}

// SessionCalendar returns the month grid for ?month=YYYY-MM with the sessions on ?day=YYYY-MM-DD.
func SessionCalendar(svc sessions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "sessions")
			return
		}
		cal, err := svc.Calendar(r.Context(), validators.QueryString(r, "month"), validators.QueryString(r, "day"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cal)
	}
}

func GetSession(svc sessions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "sessions")
			return
		}
		id, err := validators.ParsePathID(r, "sessionId", "session")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		session, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

func CreateSession(svc sessions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "sessions")
			return
		}
		var input sessions.CreateInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		session, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, session)
	}
}

func UpdateSession(svc sessions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "sessions")
			return
		}
		id, err := validators.ParsePathID(r, "sessionId", "session")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var patch sessions.Patch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		session, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

// UpdateSessionStatus moves a session to the status in the body.
func UpdateSessionStatus(svc sessions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "sessions")
			return
		}
		id, err := validators.ParsePathID(r, "sessionId", "session")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req sessions.StatusRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		session, err := svc.UpdateStatus(r.Context(), id, req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}

func DeleteSession(svc sessions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "sessions")
			return
		}
		id, err := validators.ParsePathID(r, "sessionId", "session")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
