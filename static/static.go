// Package static holds the browser assets served under /static/.
package static

import "embed"

//go:embed *.js
var FS embed.FS
