package health

import (
	"MentorMarket/internal/lib/api/response"
	"MentorMarket/internal/lib/sl"
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type Core interface {
	Ping(ctx context.Context) error
}

type Status struct {
	Status string `json:"status"`
}

// Check reports whether the mentor store answers.
func Check(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if handler == nil {
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("store not configured"))
			return
		}
		if err := handler.Ping(r.Context()); err != nil {
			log.With(sl.Module("http.handlers.health")).Warn("store ping failed", sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("store unavailable"))
			return
		}
		render.JSON(w, r, Status{Status: "ok"})
	}
}
