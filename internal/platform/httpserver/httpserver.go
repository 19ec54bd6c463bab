// Package httpserver constructs the server the custodia API runs on.
package httpserver

import (
	"net/http"
	"time"
)

// New returns the API server. ReadHeaderTimeout bounds slow-header clients;
// per-request deadlines are enforced by the router's timeout middleware.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
