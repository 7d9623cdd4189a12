// Package server exposes the engine over HTTP using fiber.
//
// Routes:
//
//	POST   /strings                              create
//	GET    /strings                              structured filter
//	GET    /strings/filter-by-natural-language   natural-language filter
//	GET    /strings/{value}                      get by value
//	DELETE /strings/{value}                      delete by value
//	GET    /healthz                              liveness
//
// The natural-language route is registered before the {value} wildcard so a
// literal "filter-by-natural-language" segment never reaches Get.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"

	"github.com/roach88/textvault/internal/config"
	"github.com/roach88/textvault/internal/engine"
	"github.com/roach88/textvault/internal/ir"
)

// AppName is reported in the fiber app config.
const AppName = "textvault"

// Server is safe for concurrent use because Engine is.
type Server struct {
	app    *fiber.App
	engine *engine.Engine
	cfg    config.ServerConfig
	logger *zap.SugaredLogger
}

// New builds a server with all middleware and routes registered.
func New(eng *engine.Engine, cfg config.ServerConfig, logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	srv := &Server{
		app: fiber.New(fiber.Config{
			AppName:      AppName,
			ErrorHandler: errorHandler,
		}),
		engine: eng,
		cfg:    cfg,
		logger: logger,
	}

	srv.app.Use(
		requestID(),
		accessLog(logger),
		cors.New(),
	)
	if cfg.RateLimit > 0 {
		srv.app.Use(rateLimit(cfg.RateLimit, cfg.RateBurst))
	}

	srv.routes()
	return srv
}

func (srv *Server) routes() {
	srv.app.Get("/healthz", srv.handleHealth)

	srv.app.Post("/strings", srv.handleCreate)
	srv.app.Get("/strings", srv.handleList)
	srv.app.Get("/strings/filter-by-natural-language", srv.handleNaturalLanguage)
	srv.app.Get("/strings/*", srv.handleGet)
	srv.app.Delete("/strings/*", srv.handleDelete)
}

// App returns the underlying fiber app, mainly for app.Test in tests.
func (srv *Server) App() *fiber.App {
	return srv.app
}

// Listen serves on the configured address until Shutdown.
func (srv *Server) Listen() error {
	srv.logger.Infow("Listening", "address", srv.cfg.Address(), "version", ir.Version)
	return srv.app.Listen(srv.cfg.Address(), fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops accepting connections and waits for in-flight requests,
// bounded by ctx.
func (srv *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
	}
	return srv.app.ShutdownWithContext(ctx)
}
