package server

import (
	"net/http"
	"strings"
)

// RouteDoc is one entry in the self-documenting route list served at
// /api/routes. ExampleBody is a ready-to-paste request body for the
// POST routes.
type RouteDoc struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Summary     string `json:"summary,omitempty"`
	ExampleBody string `json:"example_body,omitempty"`
}

// RouteRegistry collects docs as routes are attached, so the served
// list can never drift from the mux.
type RouteRegistry struct {
	routes []RouteDoc
}

// Register attaches a handler to the mux and records its doc entry.
// pattern uses the mux's "METHOD /path" form.
func (rr *RouteRegistry) Register(mux *http.ServeMux, pattern, summary, exampleBody string, h http.HandlerFunc) {
	method, path, _ := strings.Cut(pattern, " ")
	rr.routes = append(rr.routes, RouteDoc{
		Method:      method,
		Pattern:     path,
		Summary:     summary,
		ExampleBody: exampleBody,
	})
	mux.HandleFunc(pattern, h)
}

// List returns the registered docs in registration order.
func (rr *RouteRegistry) List() []RouteDoc {
	out := make([]RouteDoc, len(rr.routes))
	copy(out, rr.routes)
	return out
}
