// internal/handlers/deck_handler_test.go
package handlers_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studystack/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleDeck(ownerID uuid.UUID) *model.Deck {
	return &model.Deck{
		DeckID:    uuid.New(),
		OwnerID:   ownerID,
		Title:     "Spanish",
		Color:     "#0070F3",
		Cards:     []model.Flashcard{{ID: "c1", Question: "hola", Answer: "hello"}},
		CreatedAt: time.Now(),
	}
}

func TestDeckHandler_CreateDeck(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(env *testEnv)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 作成成功",
			body: model.CreateDeckRequest{Title: "Spanish"},
			setupMock: func(env *testEnv) {
				env.decks.On("CreateDeck", mock.Anything, env.ownerID, &model.CreateDeckRequest{Title: "Spanish"}).
					Return(sampleDeck(env.ownerID), nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: タイトルなし",
			body:           map[string]string{"title": ""},
			setupMock:      func(env *testEnv) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 51文字",
			body:           model.CreateDeckRequest{Title: strings.Repeat("x", 51)},
			setupMock:      func(env *testEnv) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 不正なJSON",
			body:           `{"title":`,
			setupMock:      func(env *testEnv) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: 未知のフィールド",
			body:           `{"title":"a","color":"#fff"}`,
			setupMock:      func(env *testEnv) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: サービスの検証エラー (空白のみ)",
			body: model.CreateDeckRequest{Title: "   "},
			setupMock: func(env *testEnv) {
				env.decks.On("CreateDeck", mock.Anything, env.ownerID, mock.AnythingOfType("*model.CreateDeckRequest")).
					Return(nil, model.NewAppError("VALIDATION_ERROR", "Title is required.", "title", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 内部エラー",
			body: model.CreateDeckRequest{Title: "Spanish"},
			setupMock: func(env *testEnv) {
				env.decks.On("CreateDeck", mock.Anything, env.ownerID, mock.AnythingOfType("*model.CreateDeckRequest")).
					Return(nil, model.ErrInternalServer).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.setupMock(env)

			rr := env.do(t, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/decks", Body: tt.body})

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rr).Code)
				return
			}
			deck := decodeBody[model.Deck](t, rr)
			assert.Equal(t, "Spanish", deck.Title)
		})
	}
}

func TestDeckHandler_RequiresOwner(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/decks", nil)
	rr := httptest.NewRecorder()

	env.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDeckHandler_ListDecks(t *testing.T) {
	env := newTestEnv(t)
	env.decks.On("ListDecks", mock.Anything, env.ownerID).Return(nil, nil).Once()

	rr := env.do(t, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestDeckHandler_GetDeck(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		env := newTestEnv(t)
		deck := sampleDeck(env.ownerID)
		env.decks.On("GetDeck", mock.Anything, env.ownerID, deck.DeckID).Return(deck, nil).Once()

		rr := env.do(t, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks/" + deck.DeckID.String()})

		require.Equal(t, http.StatusOK, rr.Code)
		got := decodeBody[model.Deck](t, rr)
		assert.Equal(t, deck.DeckID, got.DeckID)
		assert.Equal(t, deck.CardList(), got.CardList())
		assert.NotContains(t, rr.Body.String(), "owner", "owner id is not exposed")
	})

	t.Run("異常系: 不正なID", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.do(t, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks/not-a-uuid"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_URL_PARAM", decodeError(t, rr).Code)
	})

	t.Run("異常系: 見つからない", func(t *testing.T) {
		env := newTestEnv(t)
		id := uuid.New()
		env.decks.On("GetDeck", mock.Anything, env.ownerID, id).
			Return(nil, model.NewAppError("NOT_FOUND", "Deck not found.", "", model.ErrNotFound)).Once()

		rr := env.do(t, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks/" + id.String()})
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, rr).Code)
	})
}

func TestDeckHandler_RenameAndDelete(t *testing.T) {
	env := newTestEnv(t)
	deck := sampleDeck(env.ownerID)
	path := "/api/v1/decks/" + deck.DeckID.String()

	renamed := *deck
	renamed.Title = "Renamed"
	env.decks.On("RenameDeck", mock.Anything, env.ownerID, deck.DeckID, &model.RenameDeckRequest{Title: "Renamed"}).
		Return(&renamed, nil).Once()
	env.decks.On("DeleteDeck", mock.Anything, env.ownerID, deck.DeckID).Return(nil).Once()

	rr := env.do(t, httpRequestDetails{Method: http.MethodPatch, Path: path, Body: model.RenameDeckRequest{Title: "Renamed"}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Renamed", decodeBody[model.Deck](t, rr).Title)

	rr = env.do(t, httpRequestDetails{Method: http.MethodDelete, Path: path})
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestDeckHandler_CardRoutes(t *testing.T) {
	env := newTestEnv(t)
	deck := sampleDeck(env.ownerID)
	base := "/api/v1/decks/" + deck.DeckID.String() + "/cards"
	card := &model.CardRequest{Question: "adios", Answer: "bye"}

	env.decks.On("AddCard", mock.Anything, env.ownerID, deck.DeckID, card).Return(deck, nil).Once()
	env.decks.On("UpdateCard", mock.Anything, env.ownerID, deck.DeckID, "c1", card).Return(deck, nil).Once()
	env.decks.On("DeleteCard", mock.Anything, env.ownerID, deck.DeckID, "c1").Return(deck, nil).Once()
	env.decks.On("ReplaceCards", mock.Anything, env.ownerID, deck.DeckID, mock.MatchedBy(func(req *model.ReplaceCardsRequest) bool {
		return len(req.Cards) == 2 && req.Cards[0].ID == "c1" && req.Cards[1].ID == ""
	})).Return(deck, nil).Once()

	rr := env.do(t, httpRequestDetails{Method: http.MethodPost, Path: base, Body: card})
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = env.do(t, httpRequestDetails{Method: http.MethodPut, Path: base + "/c1", Body: card})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, httpRequestDetails{Method: http.MethodDelete, Path: base + "/c1"})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, httpRequestDetails{Method: http.MethodPut, Path: base, Body: model.ReplaceCardsRequest{Cards: []model.ReplaceCardItem{
		{ID: "c1", Question: "hola", Answer: "hello"},
		{Question: "gracias", Answer: "thanks"},
	}}})
	assert.Equal(t, http.StatusOK, rr.Code)

	// 回答が空のカードはサービスに届かない
	rr = env.do(t, httpRequestDetails{Method: http.MethodPut, Path: base, Body: model.ReplaceCardsRequest{Cards: []model.ReplaceCardItem{
		{Question: "no answer"},
	}}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rr).Code)
}

func TestDeckHandler_ImportCards(t *testing.T) {
	env := newTestEnv(t)
	deckID := uuid.New()
	csv := "question,answer\nhola,hello\n"

	env.decks.On("ImportCards", mock.Anything, env.ownerID, deckID, "words.csv", mock.Anything).
		Return(&model.ImportResult{Imported: 1, Skipped: []model.RowError{}}, nil).Once()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "words.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/decks/"+deckID.String()+"/cards/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Owner-ID", env.ownerID.String())
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, 1, decodeBody[model.ImportResult](t, rr).Imported)

	// ファイルなし
	rr = env.do(t, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/decks/" + deckID.String() + "/cards/import", Body: "{}"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeckHandler_StreamDecks(t *testing.T) {
	env := newTestEnv(t)
	updates := make(chan []model.DeckSummary, 1)
	cancelled := make(chan struct{})
	initial := []model.DeckSummary{{Title: "First"}}

	env.decks.On("SubscribeDecks", mock.Anything, env.ownerID).
		Return(initial, (<-chan []model.DeckSummary)(updates), func() { close(cancelled) }, nil).Once()

	server := httptest.NewServer(env.router)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/decks/stream", nil)
	require.NoError(t, err)
	req.Header.Set("X-Owner-ID", env.ownerID.String())
	req.Header.Set("Accept", "text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		var data string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			if line == "" && data != "" {
				return data
			}
			if strings.HasPrefix(line, "data: ") {
				data = strings.TrimPrefix(line, "data: ")
			}
		}
	}

	first := readEvent()
	assert.Contains(t, first, `"title":"First"`)
	assert.Contains(t, first, `"card_count":0`)

	updates <- []model.DeckSummary{{Title: "First"}, {Title: "Second"}}
	assert.Contains(t, readEvent(), `"title":"Second"`)

	// クライアント切断で購読解除される
	cancel()
	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not cancelled after client disconnect")
	}
}

func TestDeckHandler_StreamDecks_SubscribeError(t *testing.T) {
	env := newTestEnv(t)
	env.decks.On("SubscribeDecks", mock.Anything, env.ownerID).
		Return(nil, nil, nil, errors.New("db down")).Once()

	rr := env.do(t, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/decks/stream"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
