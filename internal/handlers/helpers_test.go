// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studystack/internal/handlers"
	"studystack/internal/middleware"
	"studystack/internal/model"
	svc_mocks "studystack/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/stretchr/testify/require"
)

// testEnv はモックサービスを組み込んだルーター一式
type testEnv struct {
	router   http.Handler
	decks    *svc_mocks.MockDeckService
	sessions *svc_mocks.MockSessionService
	ownerID  uuid.UUID
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	decks := svc_mocks.NewMockDeckService(t)
	sessions := svc_mocks.NewMockSessionService(t)
	logger := discardLogger()

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:         logger,
		Decks:          handlers.NewDeckHandler(decks, logger),
		Sessions:       handlers.NewSessionHandler(sessions, logger),
		Auth:           middleware.DevOwnerContextMiddleware,
		CORS:           cors.Options{AllowedOrigins: []string{"*"}},
		RequestTimeout: 5 * time.Second,
	})
	return &testEnv{router: router, decks: decks, sessions: sessions, ownerID: uuid.New()}
}

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// do はオーナーヘッダー付きでリクエストを送り、レコーダーを返します。
func (e *testEnv) do(t *testing.T, details httpRequestDetails) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if details.Body != nil {
		if s, ok := details.Body.(string); ok {
			body = strings.NewReader(s)
		} else {
			b, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			body = bytes.NewBuffer(b)
		}
	}

	req := httptest.NewRequest(details.Method, details.Path, body)
	if details.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Owner-ID", e.ownerID.String())
	for k, v := range details.Headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
