package mentor

import (
	"MentorMarket/entity"
	"MentorMarket/internal/lib/api/response"
	"MentorMarket/internal/lib/sl"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// renderError maps the error taxonomy to a status code. Caller mistakes are
// logged at debug, store failures at error.
func renderError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, failMsg string) {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		logger.Debug("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(ve.Error()))
	case errors.Is(err, entity.ErrValidation):
		logger.Debug("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
	case errors.Is(err, entity.ErrMalformedID):
		logger.Debug("malformed id", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid mentor id format"))
	case errors.Is(err, entity.ErrNotFound):
		logger.Debug("mentor not found")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Mentor not found"))
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error(failMsg, sl.Err(err))
		render.Status(r, http.StatusGatewayTimeout)
		render.JSON(w, r, response.Error("Request timed out"))
	default:
		logger.Error(failMsg, sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
	}
}

func unavailable(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	logger.Error("mentor service not available")
	render.Status(r, http.StatusServiceUnavailable)
	render.JSON(w, r, response.Error("Mentor service not available"))
}
