package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
)

// maxBufferedBody caps how much of a write request the middleware buffers.
const maxBufferedBody = 1 << 20

// bufferBody reads the request body up to maxBufferedBody and restores it so
// the next handler can decode it again.
func bufferBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBufferedBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "request body too large").WithDetails(map[string]any{"limit_bytes": tooLarge.Limit})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read request")
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
