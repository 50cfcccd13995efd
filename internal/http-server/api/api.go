package api

import (
	"MentorMarket/internal/config"
	"MentorMarket/internal/http-server/handlers/errors"
	"MentorMarket/internal/http-server/handlers/health"
	"MentorMarket/internal/http-server/handlers/mentor"
	"MentorMarket/internal/http-server/middleware/logging"
	"MentorMarket/internal/http-server/middleware/timeout"
	"MentorMarket/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	mentor.Core
	health.Core
}

// NewRouter builds the mentor directory routes.
func NewRouter(conf *config.Config, log *slog.Logger, handler Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(timeout.Timeout(conf.Listen.Timeout))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(logging.New(log))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Get("/health", health.Check(log, handler))
	router.Route("/mentors", func(r chi.Router) {
		r.Post("/", mentor.Register(log, handler))
		r.Get("/search", mentor.Search(log, handler))
		r.Get("/availability", mentor.Availability(log, handler))
	})

	return router
}

// New serves the API until ctx is cancelled, then shuts the server down.
func New(ctx context.Context, conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:           NewRouter(conf, log, handler),
		ErrorLog:          httpLog,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.httpServer.Shutdown(shutdownCtx); err != nil {
			server.log.Error("shutdown", sl.Err(err))
		}
	}()

	server.log.Info("starting api server", slog.String("address", serverAddress))

	err = server.httpServer.Serve(listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
