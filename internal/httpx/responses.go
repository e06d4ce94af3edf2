package httpx

import (
	"html/template"
	"net/http"
)

var errorPage = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Status}} {{.StatusText}}</title></head>
<body>
<h1>{{.StatusText}}</h1>
<p>{{.Message}}</p>
{{- if .RequestID}}
<p><small>Request ID: {{.RequestID}}</small></p>
{{- end}}
</body>
</html>
`))

type errorView struct {
	Status     int
	StatusText string
	Message    string
	RequestID  string
}

// HTMLError writes a small HTML error page. The request ID, if any, is
// shown so users can quote it.
func HTMLError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_ = errorPage.Execute(w, errorView{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
		RequestID:  RequestIDFrom(r),
	})
}
