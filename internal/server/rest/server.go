// Package rest exposes the portfolio services as a JSON HTTP API.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/folio/internal/logging"
	"github.com/dmitrijs2005/folio/internal/server/config"
	"github.com/dmitrijs2005/folio/internal/server/services"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Services bundles the application services the handlers delegate to.
type Services struct {
	Users       *services.UserService
	About       *services.AboutService
	Contact     *services.ContactService
	Experiences *services.ExperienceService
	Skills      *services.SkillService
	Projects    *services.ProjectService
}

type HTTPServer struct {
	address        string
	svc            Services
	logger         logging.Logger
	production     bool
	allowedOrigins []string
	maxUploadBytes int64
	router         http.Handler
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, svc Services) *HTTPServer {
	s := &HTTPServer{
		address:        cfg.EndpointAddrHTTP,
		svc:            svc,
		logger:         l.With("module", "http_server"),
		production:     cfg.IsProduction(),
		allowedOrigins: cfg.CORSAllowedOrigins,
		maxUploadBytes: cfg.MaxUploadBytes,
	}
	s.router = s.routes()
	return s
}

// Handler returns the fully wired router.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
