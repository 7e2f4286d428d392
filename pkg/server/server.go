// pkg/server/server.go
package server

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/clapenergy/mailtrace-render-starter/pkg/engine"
)

// Options configures the HTTP application around the engine. The password
// gate and upload cap live here, entirely outside the matching core.
type Options struct {
	MaxUploadBytes int64
	// Optional password; empty disables the gate.
	Password   string
	SessionTTL time.Duration
	// Rows shown in the dashboard preview table.
	PreviewRows int
}

// DefaultOptions returns the default server options.
func DefaultOptions() Options {
	return Options{
		MaxUploadBytes: 200 * 1024 * 1024,
		SessionTTL:     30 * time.Minute,
		PreviewRows:    200,
	}
}

// Server is the thin web application over the matching engine: upload,
// column confirmation, dashboard rendering and CSV download.
type Server struct {
	engine  *engine.Engine
	store   *SessionStore
	options Options
	logger  *zap.Logger
	handler http.Handler
}

// NewServer creates the web application.
func NewServer(eng *engine.Engine, logger *zap.Logger, options Options) (*Server, error) {
	if eng == nil {
		return nil, errors.New("engine cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if options.MaxUploadBytes <= 0 {
		options.MaxUploadBytes = DefaultOptions().MaxUploadBytes
	}
	if options.SessionTTL <= 0 {
		options.SessionTTL = DefaultOptions().SessionTTL
	}
	if options.PreviewRows <= 0 {
		options.PreviewRows = DefaultOptions().PreviewRows
	}

	s := &Server{
		engine:  eng,
		store:   NewSessionStore(options.SessionTTL),
		options: options,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/run", s.handleRun)
	mux.HandleFunc("/map", s.handleMap)
	mux.HandleFunc("/download", s.handleDownload)

	s.handler = s.withAuth(mux)
	return s, nil
}

// Handler returns the root HTTP handler, auth gate included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// withAuth wraps the mux in a password gate when a password is configured.
// Any username is accepted; only the password matters.
func (s *Server) withAuth(next http.Handler) http.Handler {
	if s.options.Password == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, pass, ok := r.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(pass), []byte(s.options.Password)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="mailtrace"`)
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
