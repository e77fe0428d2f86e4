package controllers

import (
	"net/http"

	"github.com/skillswap/skillswap-backend/api/responses"
	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
	"github.com/skillswap/skillswap-backend/pkg/logger"
)

func writeUnavailable(w http.ResponseWriter, r *http.Request, logg *logger.Logger, name string) {
	responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, name+" service unavailable"))
}
