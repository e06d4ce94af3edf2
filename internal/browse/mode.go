package browse

import (
	"net/http"

	"bookshelf/internal/view"
)

// PartialRequestHeader marks a request sent by the in-page refresh script.
const PartialRequestHeader = "X-Request"

// ModeFromRequest picks Fragment when the partial-refresh marker is exactly
// "true" and Full otherwise.
func ModeFromRequest(r *http.Request) view.RenderMode {
	if r.Header.Get(PartialRequestHeader) == "true" {
		return view.Fragment
	}
	return view.Full
}
