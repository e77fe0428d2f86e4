package controllers

import (
	"net/http"

	"github.com/skillswap/skillswap-backend/api/responses"
	"github.com/skillswap/skillswap-backend/api/validators"
	"github.com/skillswap/skillswap-backend/internal/skills"
	"github.com/skillswap/skillswap-backend/pkg/enums"
	"github.com/skillswap/skillswap-backend/pkg/logger"
)

// ListSkills returns skills narrowed by search, category and type, then sorted.
func ListSkills(svc skills.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "skills")
			return
		}

		criteria := skills.Criteria{
			Search:   validators.QueryRaw(r, "search"),
			Category: validators.QueryString(r, "category"),
			Type:     validators.QueryString(r, "type"),
			SortBy:   enums.SkillSort(validators.QueryString(r, "sortBy")),
		}

		items, err := svc.List(r.Context(), criteria)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, items)
	}
}

func GetSkill(svc skills.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "skills")
			return
		}
		id, err := validators.ParsePathID(r, "skillId", "skill")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		skill, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, skill)
	}
}

func CreateSkill(svc skills.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "skills")
			return
		}
		var input skills.CreateInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		skill, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, skill)
	}
}

func UpdateSkill(svc skills.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "skills")
			return
		}
		id, err := validators.ParsePathID(r, "skillId", "skill")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var patch skills.Patch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		skill, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, skill)
	}
}

func DeleteSkill(svc skills.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeUnavailable(w, r, logg, "skills")
			return
		}
		id, err := validators.ParsePathID(r, "skillId", "skill")
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
