//go:generate mockery --name SessionService --output ./mocks --outpkg mocks --case=underscore --structname MockSessionService --filename mock_session_service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"studystack/internal/middleware"
	"studystack/internal/model"
	"studystack/internal/session"

	"github.com/google/uuid"
)

type SessionService interface {
	StartStudy(ctx context.Context, ownerID, deckID uuid.UUID) (*model.StudyView, error)
	GetStudy(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.StudyView, error)
	FlipStudy(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.StudyView, error)
	NextStudy(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.StudyView, error)
	PreviousStudy(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.StudyView, error)
	EndStudy(ctx context.Context, ownerID, sessionID uuid.UUID) error

	StartQuiz(ctx context.Context, ownerID, deckID uuid.UUID) (*model.QuizView, error)
	GetQuiz(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.QuizView, error)
	RevealQuiz(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.QuizView, error)
	AnswerQuiz(ctx context.Context, ownerID, sessionID uuid.UUID, isCorrect bool) (*model.QuizView, error)
	RestartQuiz(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.QuizView, error)
	EndQuiz(ctx context.Context, ownerID, sessionID uuid.UUID) error
}

type sessionService struct {
	decks    DeckService
	registry *session.Registry
	shuffle  session.Shuffler
}

// NewSessionService の shuffle が nil の場合は math/rand/v2 を使います。
func NewSessionService(decks DeckService, registry *session.Registry, shuffle session.Shuffler) SessionService {
	return &sessionService{
		decks:    decks,
		registry: registry,
		shuffle:  shuffle,
	}
}

// loadDeck は新しいセッション用にデッキを一度だけ読みます。
// 読み込み中に中断されたリクエストにはセッションを作らない。
func (s *sessionService) loadDeck(ctx context.Context, ownerID, deckID uuid.UUID) (*model.Deck, error) {
	deck, err := s.decks.GetDeck(ctx, ownerID, deckID)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return deck, nil
}

// --- Study ---

func (s *sessionService) StartStudy(ctx context.Context, ownerID, deckID uuid.UUID) (*model.StudyView, error) {
	deck, err := s.loadDeck(ctx, ownerID, deckID)
	if err != nil {
		return nil, err
	}
	entry := session.NewStudyEntry(ownerID, deck)
	s.registry.Add(entry)

	middleware.GetLogger(ctx).Info("Study session started",
		slog.String("session_id", entry.ID.String()),
		slog.String("deck_id", deckID.String()),
		slog.Int("cards", len(deck.Cards)),
	)
	return s.studyView(entry, nil)
}

func (s *sessionService) GetStudy(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.StudyView, error) {
	return s.withStudy(ownerID, sessionID, nil)
}

func (s *sessionService) FlipStudy(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.StudyView, error) {
	return s.withStudy(ownerID, sessionID, (*session.Study).Flip)
}

func (s *sessionService) NextStudy(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.StudyView, error) {
	return s.withStudy(ownerID, sessionID, (*session.Study).Next)
}

func (s *sessionService) PreviousStudy(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.StudyView, error) {
	return s.withStudy(ownerID, sessionID, (*session.Study).Previous)
}

// EndStudy は学習セッションを終了し、デッキの最終学習日時を更新します。
func (s *sessionService) EndStudy(ctx context.Context, ownerID, sessionID uuid.UUID) error {
	entry, err := s.registry.Remove(ownerID, sessionID, session.KindStudy)
	if err != nil {
		return sessionNotFound()
	}
	// 空のデッキは学習したことにならない
	if entry.CardCount() > 0 {
		s.touch(ctx, entry)
	}
	return nil
}

func (s *sessionService) withStudy(ownerID, sessionID uuid.UUID, op func(*session.Study) error) (*model.StudyView, error) {
	entry, err := s.registry.Get(ownerID, sessionID, session.KindStudy)
	if err != nil {
		return nil, sessionNotFound()
	}
	return s.studyView(entry, op)
}

// studyView は op があれば実行し、同じロックの中でビューを組み立てます。
func (s *sessionService) studyView(entry *session.Entry, op func(*session.Study) error) (*model.StudyView, error) {
	var view *model.StudyView
	err := entry.WithStudy(func(st *session.Study) error {
		if op != nil {
			if err := op(st); err != nil {
				return err
			}
		}
		view = &model.StudyView{
			SessionID: entry.ID,
			DeckID:    entry.DeckID,
			DeckTitle: entry.DeckTitle,
			Color:     entry.Color,
			Empty:     st.Empty(),
			Index:     st.Index(),
			Total:     st.Len(),
			Face:      st.Face().String(),
		}
		if card, ok := st.Current(); ok {
			face := &model.CardFace{ID: card.ID, Question: card.Question}
			if st.Face() == session.Back {
				face.Answer = card.Answer
			}
			view.Card = face
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// --- Quiz ---

func (s *sessionService) StartQuiz(ctx context.Context, ownerID, deckID uuid.UUID) (*model.QuizView, error) {
	deck, err := s.loadDeck(ctx, ownerID, deckID)
	if err != nil {
		return nil, err
	}
	entry := session.NewQuizEntry(ownerID, deck, s.shuffle)
	s.registry.Add(entry)

	middleware.GetLogger(ctx).Info("Quiz session started",
		slog.String("session_id", entry.ID.String()),
		slog.String("deck_id", deckID.String()),
		slog.Int("cards", len(deck.Cards)),
	)
	return s.quizView(entry, nil)
}

func (s *sessionService) GetQuiz(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.QuizView, error) {
	view, _, err := s.withQuiz(ownerID, sessionID, nil)
	return view, err
}

func (s *sessionService) RevealQuiz(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.QuizView, error) {
	view, _, err := s.withQuiz(ownerID, sessionID, (*session.Quiz).Reveal)
	return view, err
}

// AnswerQuiz は回答を記録します。最後のカードで完了した場合はデッキの最終学習日時を更新します。
func (s *sessionService) AnswerQuiz(ctx context.Context, ownerID, sessionID uuid.UUID, isCorrect bool) (*model.QuizView, error) {
	view, entry, err := s.withQuiz(ownerID, sessionID, func(q *session.Quiz) error {
		return q.Answer(isCorrect)
	})
	if err != nil {
		return nil, err
	}
	if view.Finished {
		middleware.GetLogger(ctx).Info("Quiz finished",
			slog.String("session_id", sessionID.String()),
			slog.Int("correct", view.CorrectCount),
			slog.Int("total", view.Total),
		)
		s.touch(ctx, entry)
	}
	return view, nil
}

func (s *sessionService) RestartQuiz(ctx context.Context, ownerID, sessionID uuid.UUID) (*model.QuizView, error) {
	view, _, err := s.withQuiz(ownerID, sessionID, (*session.Quiz).Restart)
	return view, err
}

func (s *sessionService) EndQuiz(ctx context.Context, ownerID, sessionID uuid.UUID) error {
	if _, err := s.registry.Remove(ownerID, sessionID, session.KindQuiz); err != nil {
		return sessionNotFound()
	}
	return nil
}

func (s *sessionService) withQuiz(ownerID, sessionID uuid.UUID, op func(*session.Quiz) error) (*model.QuizView, *session.Entry, error) {
	entry, err := s.registry.Get(ownerID, sessionID, session.KindQuiz)
	if err != nil {
		return nil, nil, sessionNotFound()
	}
	view, err := s.quizView(entry, op)
	if err != nil {
		return nil, nil, err
	}
	return view, entry, nil
}

func (s *sessionService) quizView(entry *session.Entry, op func(*session.Quiz) error) (*model.QuizView, error) {
	var view *model.QuizView
	err := entry.WithQuiz(func(q *session.Quiz) error {
		if op != nil {
			if err := op(q); err != nil {
				return err
			}
		}
		correct, total := q.Result()
		view = &model.QuizView{
			SessionID:    entry.ID,
			DeckID:       entry.DeckID,
			DeckTitle:    entry.DeckTitle,
			Color:        entry.Color,
			Empty:        q.Empty(),
			Index:        q.Index(),
			Total:        total,
			Revealed:     q.Revealed(),
			CorrectCount: correct,
			Finished:     q.Finished(),
		}
		if card, ok := q.Current(); ok && !q.Finished() {
			face := &model.CardFace{ID: card.ID, Question: card.Question}
			if q.Revealed() {
				face.Answer = card.Answer
			}
			view.Card = face
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// touch は最終学習日時を更新します。失敗してもセッション操作自体は成功扱い。
func (s *sessionService) touch(ctx context.Context, entry *session.Entry) {
	if err := s.decks.TouchLastStudied(ctx, entry.OwnerID, entry.DeckID); err != nil {
		level := slog.LevelWarn
		if errors.Is(err, model.ErrNotFound) {
			level = slog.LevelInfo
		}
		middleware.GetLogger(ctx).Log(ctx, level, "Failed to record last studied time",
			slog.String("deck_id", entry.DeckID.String()),
			slog.Any("error", err),
		)
	}
}

func sessionNotFound() error {
	return model.NewAppError("NOT_FOUND", "Session not found.", "", model.ErrNotFound)
}
