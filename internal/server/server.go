package server

import (
	"context"
	"database/sql"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Config carries the dependencies every handler needs. Everything is
// constructed once in main and passed in; handlers hold no globals.
type Config struct {
	Addr   string // e.g. ":5000"
	Store  ObjectStore
	DB     *sql.DB
	Logger *Logger
}

type Server struct {
	httpServer *http.Server
	store      ObjectStore
	db         *sql.DB
	log        *Logger
	metrics    *Metrics
}

// New builds the route table and returns a server ready to Start.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = NewLogger(io.Discard, LogLevelError, false)
	}

	s := &Server{
		store:   cfg.Store,
		db:      cfg.DB,
		log:     logger,
		metrics: NewMetrics(),
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/up", s.handleUp)
	r.Get("/upload", s.handleUploadPage)
	r.Post("/upload_success", s.handleUpload)
	r.Get("/file/{name}", s.handleDownload)
	r.Get("/db_test", s.handleDBTest)
	r.Get("/metrics", s.metrics.Handler())

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler exposes the full middleware-wrapped route table for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.httpServer.Serve(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
