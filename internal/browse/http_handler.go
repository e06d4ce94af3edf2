package browse

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"bookshelf/internal/httpx"
	"bookshelf/internal/view"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Index handles GET /
//
// Repeated author values filter the grid. With X-Request: true only the
// inner content is returned.
func (h *HTTPHandler) Index(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, fmt.Errorf("%w: %w", ErrNotFound, err))
		return
	}
	sel := ParseSelection(r.Form[view.FilterParam])
	mode := ModeFromRequest(r)

	result, err := h.svc.Browse(r.Context(), sel)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	content := view.NewContent(result.Books, result.Facets, result.Selection)
	if err := view.Render(&buf, mode, content); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", PartialRequestHeader)
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = buf.WriteTo(w)
	}
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, message := http.StatusInternalServerError, "Internal server error"
	if errors.Is(err, ErrNotFound) {
		status, message = http.StatusNotFound, "Not found"
	}

	log.Error().
		Err(err).
		Str("request_id", httpx.RequestIDFrom(r)).
		Int("status", status).
		Msg("browse request failed")

	httpx.HTMLError(w, r, status, message)
}
