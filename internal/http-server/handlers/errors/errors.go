package errors

import (
	"MentorMarket/internal/lib/api/response"
	"MentorMarket/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

func NotFound(log *slog.Logger) http.HandlerFunc {
	logger := log.With(sl.Module("http.handlers.errors"))
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("route not found", slog.String("path", r.URL.Path))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Requested resource not found"))
	}
}

func NotAllowed(log *slog.Logger) http.HandlerFunc {
	logger := log.With(sl.Module("http.handlers.errors"))
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("method not allowed", slog.String("method", r.Method), slog.String("path", r.URL.Path))
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error("Method not allowed"))
	}
}
