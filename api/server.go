package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

const defaultShutdownTimeout = 10 * time.Second

// Server runs the HTTP API until its context is cancelled, then drains
// in-flight requests and runs the registered shutdown hooks.
type Server struct {
	http    *http.Server
	logg    *logger.Logger
	timeout time.Duration
	hooks   []func()
}

func NewServer(addr string, handler http.Handler, logg *logger.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logg:    logg,
		timeout: defaultShutdownTimeout,
	}
}

// OnShutdown registers fn to run after the listener has stopped.
func (s *Server) OnShutdown(fn func()) {
	s.hooks = append(s.hooks, fn)
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logg.Info(ctx, "api server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()
	err := s.http.Shutdown(shutdownCtx)
	for _, fn := range s.hooks {
		fn()
	}
	return err
}
