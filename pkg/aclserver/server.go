package aclserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/credvault/credvault-acl/pkg/acl"
	"github.com/credvault/credvault-acl/pkg/aclcache"
)

// Config holds HTTP server configuration
type Config struct {
	ListenAddr string
	Port       int
}

// StatsProvider exposes cache counters for the health endpoint
type StatsProvider interface {
	Stats() aclcache.Stats
}

// Server exposes the ACL query operation over HTTP. Controllers post an
// actor, an account context and an action name and receive the compiled
// result.
type Server struct {
	config  *Config
	service acl.Service
	stats   StatsProvider
	server  *http.Server
}

// New creates a new Server. stats may be nil when the service is uncached.
func New(config *Config, service acl.Service, stats StatsProvider) *Server {
	s := &Server{
		config:  config,
		service: service,
		stats:   stats,
	}

	router := mux.NewRouter()
	router.Use(requestIDMiddleware)
	router.Use(logMiddleware)

	router.HandleFunc("/api/v1/acl", s.handleEvaluate).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/actions", s.handleActions).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.ListenAddr, config.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the configured HTTP handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
