package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// withSession attaches a session ID the way SessionMiddleware would.
func withSession(r *http.Request, sessionID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sessionIDKey, sessionID))
}

// withURLParam injects a chi route parameter for direct handler calls.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newJSONRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}
