package webutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"studystack/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("empty request body: %w", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %v: %w", err, model.ErrInvalidInput)
	}
	return nil
}
