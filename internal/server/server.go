package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/geo-waqf/geowaqf/internal/config"
	"github.com/geo-waqf/geowaqf/internal/handler"
	"github.com/geo-waqf/geowaqf/internal/logger"
)

var errNoServersAreCreated = errors.New("no servers are created")

// Server runs the HTTP listener until a termination signal arrives, then
// drains it within the shutdown timeout and releases the registered closers.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	// closers run after the listener stopped, in registration order.
	closers []io.Closer

	logger *logger.Logger
}

// NewServer builds the HTTP server. closers are released on shutdown, e.g.
// the temporary credential file.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, closers ...io.Closer) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		closers:         closers,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("HTTP server did not shut down gracefully")
	}

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.logger.Err(err).Msg("error releasing resource on shutdown")
		}
	}
}

func (s *server) run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.serve(ctx)
}

// serve runs the listener until ctx is done or the listener fails, and
// shuts down in both cases.
func (s *server) serve(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("HTTP server ListenAndServe: %w", err)
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
