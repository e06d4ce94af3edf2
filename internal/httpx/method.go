package httpx

import (
	"net/http"
	"strings"
)

// MethodMux chooses a handler based on the incoming HTTP method.
// Unknown methods get 405 with an Allow header.
func MethodMux(handlers map[string]http.Handler) http.Handler {
	allowed := make([]string, 0, len(handlers))
	for _, m := range []string{
		http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	} {
		if _, ok := handlers[m]; ok {
			allowed = append(allowed, m)
		}
	}
	allow := strings.Join(allowed, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.Method]; ok {
			h.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allow)
		HTMLError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})
}
