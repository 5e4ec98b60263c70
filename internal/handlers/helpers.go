package handlers

import (
	"log/slog"
	"net/http"

	"studystack/internal/middleware"
	"studystack/internal/model"
	"studystack/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// requireOwner はコンテキストからオーナーIDを取り出します。失敗時はレスポンスを書き込み false を返す。
func requireOwner(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, *slog.Logger, bool) {
	ownerID, err := middleware.GetOwnerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, logger, false
	}
	return ownerID, logger.With(slog.String("owner_id", ownerID.String())), true
}

// uuidParam parses a UUID path parameter.
func uuidParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid ID format in URL", slog.String(name, raw), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", name+" is not a valid id.", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate reads the JSON body into dst and runs the validator on it.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
