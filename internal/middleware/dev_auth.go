// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"studystack/internal/model"
	"studystack/internal/webutil"

	"github.com/google/uuid"
)

// DevOwnerContextMiddleware は開発時用ミドルウェアです。
// X-Owner-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
func DevOwnerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		ownerIDStr := r.Header.Get("X-Owner-ID")
		if ownerIDStr == "" {
			logger.Warn("[DEV AUTH] X-Owner-ID header missing")
			appErr := model.NewAppError("UNAUTHORIZED", "X-Owner-ID header is required.", "", model.ErrUnauthorized)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ownerID, err := uuid.Parse(ownerIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-Owner-ID format", "owner_id", ownerIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "X-Owner-ID must be a UUID.", "", model.ErrUnauthorized)
			webutil.HandleError(w, logger, appErr)
			return
		}

		logger.Debug("[DEV AUTH] Owner ID set to context (no validation)", "owner_id", ownerID.String())
		next.ServeHTTP(w, r.WithContext(WithOwnerID(r.Context(), ownerID)))
	})
}
