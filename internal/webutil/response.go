// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"studystack/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else if errors.Is(err, model.ErrInvalidState) {
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{Code: "SESSION_STATE", Message: err.Error()},
		}
	} else if errors.Is(err, model.ErrNotFound) {
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{Code: "NOT_FOUND", Message: "The requested resource was not found."},
		}
	} else {
		// 予期せぬエラーはログにだけ詳細を残す
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    "INTERNAL_SERVER_ERROR",
				Message: "An internal server error occurred.",
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict), errors.Is(err, model.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"failed to build response"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationError turns validator errors into one AppError. The message of
// the first failing field is translated; every failing field is listed.
func NewValidationError(errs validator.ValidationErrors) *model.AppError {
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field())
	}
	message := fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", errs[0].Field(), errs[0].Tag())
	if Trans != nil {
		message = errs[0].Translate(Trans)
	}
	return model.NewAppError(
		"VALIDATION_ERROR",
		message,
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}

// ValidateStruct runs the shared validator and converts failures into an
// AppError wrapping model.ErrInvalidInput.
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return NewValidationError(validationErrors)
	}
	return fmt.Errorf("webutil.ValidateStruct: %w", err)
}
