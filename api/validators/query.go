package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/skillswap/skillswap-backend/internal/recordstore"
	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
)

const maxQueryLen = 200

// QueryString returns the trimmed query parameter, capped at a sane length.
func QueryString(r *http.Request, key string) string {
	return SanitizeString(r.URL.Query().Get(key), maxQueryLen)
}

// QueryRaw returns the query parameter as sent, capped like QueryString.
// Free-text terms keep their surrounding whitespace.
func QueryRaw(r *http.Request, key string) string {
	return truncate(r.URL.Query().Get(key), maxQueryLen)
}

func ParseQueryBool(r *http.Request, key string, defaultVal bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "query parameter must be a boolean").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParsePathID coerces a route identifier. Values without a leading integer
// cannot match any record and are reported as not found.
func ParsePathID(r *http.Request, param, entity string) (int, error) {
	id, ok := recordstore.ParseID(chi.URLParam(r, param))
	if !ok {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, entity+" not found")
	}
	return id, nil
}
