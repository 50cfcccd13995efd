package mentor

import (
	"MentorMarket/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Search handles GET /mentors/search?location=...
func Search(log *slog.Logger, handler Core) http.HandlerFunc {
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

		location := r.URL.Query().Get("location")
		logger = logger.With(slog.String("location", location))

		mentors, err := handler.SearchMentors(r.Context(), location)
		if err != nil {
			renderError(w, r, logger, err, "failed to search mentors")
			return
		}

		logger.Debug("mentors found", slog.Int("count", len(mentors)))
		render.JSON(w, r, mentors)
	}
}
