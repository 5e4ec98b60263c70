// internal/handlers/session_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"studystack/internal/model"
	"studystack/internal/service"
	"studystack/internal/webutil"

	"github.com/google/uuid"
)

// SessionHandler exposes the study and quiz state machines over HTTP. Every
// response carries the full session view, so the client never keeps its own
// copy of the state.
type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: s,
		logger:  logger,
	}
}

// --- Study ---

// StartStudy はデッキの学習セッションを開始するハンドラ
func (h *SessionHandler) StartStudy(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartStudy"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "deck_id")
	if !ok {
		return
	}

	view, err := h.service.StartStudy(r.Context(), ownerID, deckID)
	if err != nil {
		logger.Warn("Error starting study session", slog.String("deck_id", deckID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, view, logger)
}

func (h *SessionHandler) GetStudy(w http.ResponseWriter, r *http.Request) {
	h.studyAction(w, r, "GetStudy", h.service.GetStudy)
}

func (h *SessionHandler) FlipStudy(w http.ResponseWriter, r *http.Request) {
	h.studyAction(w, r, "FlipStudy", h.service.FlipStudy)
}

func (h *SessionHandler) NextStudy(w http.ResponseWriter, r *http.Request) {
	h.studyAction(w, r, "NextStudy", h.service.NextStudy)
}

func (h *SessionHandler) PreviousStudy(w http.ResponseWriter, r *http.Request) {
	h.studyAction(w, r, "PreviousStudy", h.service.PreviousStudy)
}

func (h *SessionHandler) EndStudy(w http.ResponseWriter, r *http.Request) {
	h.endSession(w, r, "EndStudy", h.service.EndStudy)
}

type studyFunc func(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.StudyView, error)

func (h *SessionHandler) studyAction(w http.ResponseWriter, r *http.Request, name string, fn studyFunc) {
	logger := h.logger.With(slog.String("handler", name))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	view, err := fn(r.Context(), ownerID, sessionID)
	if err != nil {
		logger.Warn("Study session operation failed", slog.String("session_id", sessionID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// --- Quiz ---

// StartQuiz はデッキのクイズセッションを開始するハンドラ (カード順はシャッフル)
func (h *SessionHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartQuiz"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	deckID, ok := uuidParam(w, r, logger, "deck_id")
	if !ok {
		return
	}

	view, err := h.service.StartQuiz(r.Context(), ownerID, deckID)
	if err != nil {
		logger.Warn("Error starting quiz session", slog.String("deck_id", deckID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, view, logger)
}

func (h *SessionHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	h.quizAction(w, r, "GetQuiz", h.service.GetQuiz)
}

func (h *SessionHandler) RevealQuiz(w http.ResponseWriter, r *http.Request) {
	h.quizAction(w, r, "RevealQuiz", h.service.RevealQuiz)
}

func (h *SessionHandler) RestartQuiz(w http.ResponseWriter, r *http.Request) {
	h.quizAction(w, r, "RestartQuiz", h.service.RestartQuiz)
}

// AnswerQuiz は {"is_correct": bool} を受け取り、表示中のカードの自己採点を記録します。
func (h *SessionHandler) AnswerQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AnswerQuiz"))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	var req model.SubmitAnswerRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	view, err := h.service.AnswerQuiz(r.Context(), ownerID, sessionID, *req.IsCorrect)
	if err != nil {
		logger.Warn("Error answering quiz card", slog.String("session_id", sessionID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

func (h *SessionHandler) EndQuiz(w http.ResponseWriter, r *http.Request) {
	h.endSession(w, r, "EndQuiz", h.service.EndQuiz)
}

type quizFunc func(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.QuizView, error)

func (h *SessionHandler) quizAction(w http.ResponseWriter, r *http.Request, name string, fn quizFunc) {
	logger := h.logger.With(slog.String("handler", name))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	view, err := fn(r.Context(), ownerID, sessionID)
	if err != nil {
		logger.Warn("Quiz session operation failed", slog.String("session_id", sessionID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

func (h *SessionHandler) endSession(w http.ResponseWriter, r *http.Request, name string, fn func(ctx context.Context, ownerID, sessionID uuid.UUID) error) {
	logger := h.logger.With(slog.String("handler", name))
	ownerID, logger, ok := requireOwner(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	if err := fn(r.Context(), ownerID, sessionID); err != nil {
		logger.Warn("Error ending session", slog.String("session_id", sessionID.String()), slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Session ended", slog.String("session_id", sessionID.String()))
	w.WriteHeader(http.StatusNoContent)
}
