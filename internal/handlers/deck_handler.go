// internal/handlers/deck_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"studystack/internal/model"
	"studystack/internal/service"
	"studystack/internal/webutil"

	"github.com/go-chi/chi/v5"
)

const (
	// maxUploadBytes はインポートファイルの上限サイズ
	maxUploadBytes = 5 << 20
	// streamHeartbeat keeps idle SSE connections from being closed by proxies.
	streamHeartbeat = 25 * time.Second
)

type DeckHandler struct {
	service service.DeckService
	logger  *slog.Logger
}

func NewDeckHandler(s service.DeckService, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckHandler{
		service: s,
		logger:  logger,
	}
}

// CreateDeck は新しいデッキを作成するハンドラ
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateDeck"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateDeckRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	deck, err := h.service.CreateDeck(r.Context(), ownerID, &req)
	if err != nil {
		logger.Error("Error creating deck in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck created successfully", slog.String("deck_id", deck.DeckID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, deck, logger)
}

// ListDecks はデッキ一覧を新しい順に返すハンドラ
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListDecks"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	decks, err := h.service.ListDecks(r.Context(), ownerID)
	if err != nil {
		logger.Error("Error listing decks in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if decks == nil {
		decks = []model.DeckSummary{}
	}
	logger.Info("Decks listed successfully", slog.Int("count", len(decks)))
	webutil.RespondWithJSON(w, http.StatusOK, decks, logger)
}

// StreamDecks はデッキ一覧を Server-Sent Events で配信し続けます。
// The first event carries the current list; later events follow every change.
func (h *DeckHandler) StreamDecks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StreamDecks"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}

	ctx := r.Context()
	initial, updates, cancel, err := h.service.SubscribeDecks(ctx, ownerID)
	if err != nil {
		logger.Error("Error subscribing to decks", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	defer cancel()

	// ストリームはサーバーの WriteTimeout の対象外にする
	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		logger.Debug("Could not clear write deadline", slog.Any("error", err))
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := writeDeckEvent(w, rc, initial); err != nil {
		logger.Warn("Failed to write initial deck event", slog.Any("error", err))
		return
	}
	logger.Info("Deck stream opened")

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Deck stream closed by client")
			return
		case decks, open := <-updates:
			if !open {
				return
			}
			if err := writeDeckEvent(w, rc, decks); err != nil {
				logger.Warn("Failed to write deck event", slog.Any("error", err))
				return
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func writeDeckEvent(w http.ResponseWriter, rc *http.ResponseController, decks []model.DeckSummary) error {
	if decks == nil {
		decks = []model.DeckSummary{}
	}
	payload, err := json.Marshal(decks)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: decks\ndata: %s\n\n", payload); err != nil {
		return err
	}
	return rc.Flush()
}

// GetDeck は特定のデッキをカード込みで返すハンドラ
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDeck"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "deck_id")
	if !ok {
		return
	}

	deck, err := h.service.GetDeck(r.Context(), ownerID, deckID)
	if err != nil {
		logger.Warn("Error getting deck in service", slog.String("deck_id", deckID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

// RenameDeck はデッキのタイトルを変更するハンドラ
func (h *DeckHandler) RenameDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RenameDeck"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "deck_id")
	if !ok {
		return
	}

	var req model.RenameDeckRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	deck, err := h.service.RenameDeck(r.Context(), ownerID, deckID, &req)
	if err != nil {
		logger.Warn("Error renaming deck in service", slog.String("deck_id", deckID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck renamed successfully", slog.String("deck_id", deckID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

// DeleteDeck はデッキを削除するハンドラ
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteDeck"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "deck_id")
	if !ok {
		return
	}

	if err := h.service.DeleteDeck(r.Context(), ownerID, deckID); err != nil {
		logger.Warn("Error deleting deck in service", slog.String("deck_id", deckID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck deleted successfully", slog.String("deck_id", deckID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// ReplaceCards はカード配列をまるごと置き換えるハンドラ
func (h *DeckHandler) ReplaceCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ReplaceCards"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "deck_id")
	if !ok {
		return
	}

	var req model.ReplaceCardsRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	deck, err := h.service.ReplaceCards(r.Context(), ownerID, deckID, &req)
	if err != nil {
		logger.Warn("Error replacing cards in service", slog.String("deck_id", deckID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Cards replaced successfully", slog.String("deck_id", deckID.String()), slog.Int("count", len(deck.Cards)))
	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

func (h *DeckHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddCard"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "deck_id")
	if !ok {
		return
	}

	var req model.CardRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	deck, err := h.service.AddCard(r.Context(), ownerID, deckID, &req)
	if err != nil {
		logger.Warn("Error adding card in service", slog.String("deck_id", deckID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card added successfully", slog.String("deck_id", deckID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, deck, logger)
}

func (h *DeckHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateCard"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "deck_id")
	if !ok {
		return
	}
	cardID := chi.URLParam(r, "card_id")

	var req model.CardRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	deck, err := h.service.UpdateCard(r.Context(), ownerID, deckID, cardID, &req)
	if err != nil {
		logger.Warn("Error updating card in service", slog.String("deck_id", deckID.String()), slog.String("card_id", cardID), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

func (h *DeckHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCard"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "deck_id")
	if !ok {
		return
	}
	cardID := chi.URLParam(r, "card_id")

	deck, err := h.service.DeleteCard(r.Context(), ownerID, deckID, cardID)
	if err != nil {
		logger.Warn("Error deleting card in service", slog.String("deck_id", deckID.String()), slog.String("card_id", cardID), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

// ImportCards は multipart の "file" フィールドで受け取った CSV / XLSX からカードを追加します。
func (h *DeckHandler) ImportCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ImportCards"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "deck_id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("Failed to read uploaded file", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "A file must be uploaded in the 'file' field (max 5 MB).", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	result, err := h.service.ImportCards(r.Context(), ownerID, deckID, header.Filename, file)
	if err != nil {
		logger.Warn("Error importing cards in service", slog.String("deck_id", deckID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Cards imported successfully",
		slog.String("deck_id", deckID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", len(result.Skipped)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
