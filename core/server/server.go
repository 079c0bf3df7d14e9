package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"pantrypal/core/loader"
	"pantrypal/core/middleware/cors"
	"pantrypal/core/middleware/rayid"
	"pantrypal/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Options configures a Server.
type Options struct {
	Config      Config
	Info        Info
	Environment string
	Origins     []string
	Logger      *zap.Logger
}

// Server owns the Fiber application and the resources acquired for it.
type Server struct {
	app      *fiber.App
	cfg      Config
	info     Info
	env      string
	logger   *zap.Logger
	features *loader.Manager

	mu      sync.Mutex
	closers []closer

	ready     chan struct{}
	readyOnce sync.Once
}

type closer struct {
	name string
	fn   func() error
}

// New builds the application: middleware, docs routes, error handling and lifecycle hooks.
// Features are mounted afterwards with Load.
func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		cfg:      opts.Config,
		info:     opts.Info,
		env:      opts.Environment,
		logger:   log,
		features: loader.NewManager(log),
		ready:    make(chan struct{}),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               opts.Info.Name,
		DisableStartupMessage: true, // the OnListen hook logs our own
		ErrorHandler:          ErrorHandler(log),
		// Routes match exactly and on the decoded path: /HEALTH and /health/ are not /health.
		CaseSensitive: true,
		StrictRouting: true,
		UnescapePath:  true,
	})

	s.app.Use(rayid.New())
	s.app.Use(requestlog.New(log))
	s.app.Use(recover.New())
	s.app.Use(cors.New(opts.Origins))

	s.mountDocs()

	s.app.Hooks().OnListen(s.onListen)

	return s
}

// App exposes the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Ready is closed once the server accepts connections.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Load registers and mounts the given features.
func (s *Server) Load(features ...loader.Feature) error {
	for _, f := range features {
		s.features.Register(f)
	}
	return s.features.LoadAll(s.app)
}

// OnStop registers a resource release run by Stop. Releases run in reverse registration order.
func (s *Server) OnStop(name string, fn func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closers = append(s.closers, closer{name: name, fn: fn})
}

// Start listens on the configured address and blocks until the server stops.
func (s *Server) Start() error {
	return s.app.Listen(s.cfg.Addr())
}

// Serve accepts connections on ln and blocks until the server stops.
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Stop stops accepting connections, waits for in-flight requests within ctx
// and then releases every registered resource, even when an earlier step fails.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info(s.info.Name + " shutting down...")

	var errs []error
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shut down http server: %w", err))
	}

	s.mu.Lock()
	closers := s.closers
	s.closers = nil
	s.mu.Unlock()

	for i := len(closers) - 1; i >= 0; i-- {
		c := closers[i]
		if err := c.fn(); err != nil {
			s.logger.Error("Failed to release resource", zap.String("resource", c.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("failed to release %s: %w", c.name, err))
			continue
		}
		s.logger.Debug("Released resource", zap.String("resource", c.name))
	}

	return errors.Join(errs...)
}

func (s *Server) onListen(data fiber.ListenData) error {
	s.logger.Info(s.info.Name+" starting up...", zap.String("version", s.info.Version))
	s.logger.Info("API documentation available", zap.String("url", s.docsURL(data)))
	s.logger.Info("Environment: "+s.env, zap.String("environment", s.env))

	s.readyOnce.Do(func() { close(s.ready) })
	return nil
}

func (s *Server) docsURL(data fiber.ListenData) string {
	host := data.Host
	switch host {
	case "", "0.0.0.0", "::", "[::]":
		host = "localhost"
	}

	scheme := "http"
	if data.TLS {
		scheme = "https"
	}
	return scheme + "://" + net.JoinHostPort(host, data.Port) + s.info.DocsPath
}
