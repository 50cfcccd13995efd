package mentor

import (
	"MentorMarket/entity"
	"MentorMarket/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Availability handles GET /mentors/availability?id=...
func Availability(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.mentor")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			unavailable(w, r, logger)
			return
		}

		id := r.URL.Query().Get("id")
		logger = logger.With(slog.String("id", id))

		slots, err := handler.GetAvailability(r.Context(), id)
		if err != nil {
			renderError(w, r, logger, err, "failed to get availability")
			return
		}

		render.JSON(w, r, entity.Availability{Availability: slots})
	}
}
