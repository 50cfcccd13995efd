package mentor

import (
	"MentorMarket/entity"
	"MentorMarket/internal/lib/api/response"
	"MentorMarket/internal/lib/sl"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const registeredMessage = "Mentor registered successfully!"

// Register handles POST /mentors.
func Register(log *slog.Logger, handler Core) http.HandlerFunc {
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

		var req entity.RegisterRequest
		if err := render.Bind(r, &req); err != nil {
			if errors.Is(err, entity.ErrValidation) {
				renderError(w, r, logger, err, "")
				return
			}
			logger.Debug("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		mentor, err := handler.RegisterMentor(r.Context(), &req)
		if err != nil {
			renderError(w, r, logger, err, "failed to register mentor")
			return
		}

		logger.Debug("mentor registered", slog.String("id", mentor.ID.String()))
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, entity.MentorCreated{Message: registeredMessage, Mentor: mentor})
	}
}
