// internal/service/session_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"studystack/internal/model"
	"studystack/internal/session"
	svcmocks "studystack/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityShuffle は並びを変えないシャッフル (テストで順序を固定するため)
func identityShuffle(int, func(i, j int)) {}

func arithmeticDeck(ownerID uuid.UUID) *model.Deck {
	return &model.Deck{
		DeckID:  uuid.New(),
		OwnerID: ownerID,
		Title:   "Arithmetic",
		Color:   "#0070F3",
		Cards: []model.Flashcard{
			{ID: "a", Question: "2+2", Answer: "4"},
			{ID: "b", Question: "3*3", Answer: "9"},
			{ID: "c", Question: "10-7", Answer: "3"},
		},
	}
}

func newTestSessionService(t *testing.T) (*svcmocks.MockDeckService, *session.Registry, SessionService) {
	t.Helper()
	decks := svcmocks.NewMockDeckService(t)
	registry := session.NewRegistry()
	return decks, registry, NewSessionService(decks, registry, identityShuffle)
}

func TestSessionService_StudyFlow(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	deck := arithmeticDeck(ownerID)
	decks, registry, svc := newTestSessionService(t)
	decks.On("GetDeck", ctx, ownerID, deck.DeckID).Return(deck, nil).Once()

	view, err := svc.StartStudy(ctx, ownerID, deck.DeckID)
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())
	assert.Equal(t, "front", view.Face)
	assert.Equal(t, 3, view.Total)
	require.NotNil(t, view.Card)
	assert.Equal(t, "2+2", view.Card.Question)
	assert.Empty(t, view.Card.Answer, "answer hidden on the front")

	view, err = svc.FlipStudy(ctx, ownerID, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "back", view.Face)
	assert.Equal(t, "4", view.Card.Answer)

	view, err = svc.NextStudy(ctx, ownerID, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Index)
	assert.Equal(t, "front", view.Face)

	view, err = svc.NextStudy(ctx, ownerID, view.SessionID)
	require.NoError(t, err)
	view, err = svc.NextStudy(ctx, ownerID, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Index, "next at the last card is a no-op")

	view, err = svc.PreviousStudy(ctx, ownerID, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Index)

	got, err := svc.GetStudy(ctx, ownerID, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, view, got)

	// 他の所有者・別種別のIDでは見つからない
	_, err = svc.GetStudy(ctx, uuid.New(), view.SessionID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = svc.GetQuiz(ctx, ownerID, view.SessionID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	decks.On("TouchLastStudied", ctx, ownerID, deck.DeckID).Return(nil).Once()
	require.NoError(t, svc.EndStudy(ctx, ownerID, view.SessionID))
	assert.Equal(t, 0, registry.Len())
	assert.ErrorIs(t, svc.EndStudy(ctx, ownerID, view.SessionID), model.ErrNotFound)
}

func TestSessionService_QuizFlow(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	deck := arithmeticDeck(ownerID)
	decks, _, svc := newTestSessionService(t)
	decks.On("GetDeck", ctx, ownerID, deck.DeckID).Return(deck, nil).Once()

	view, err := svc.StartQuiz(ctx, ownerID, deck.DeckID)
	require.NoError(t, err)
	id := view.SessionID
	assert.False(t, view.Revealed)
	assert.Empty(t, view.Card.Answer)

	_, err = svc.AnswerQuiz(ctx, ownerID, id, true)
	assert.ErrorIs(t, err, session.ErrNotRevealed)
	assert.ErrorIs(t, err, model.ErrInvalidState)

	answers := []bool{true, false, true}
	for i, correct := range answers {
		view, err = svc.RevealQuiz(ctx, ownerID, id)
		require.NoError(t, err)
		assert.Equal(t, deck.Cards[i].Answer, view.Card.Answer)

		_, err = svc.RevealQuiz(ctx, ownerID, id)
		assert.ErrorIs(t, err, session.ErrAlreadyRevealed)

		if i == len(answers)-1 {
			decks.On("TouchLastStudied", ctx, ownerID, deck.DeckID).Return(nil).Once()
		}
		view, err = svc.AnswerQuiz(ctx, ownerID, id, correct)
		require.NoError(t, err)
	}

	assert.True(t, view.Finished)
	assert.Equal(t, 2, view.CorrectCount)
	assert.Equal(t, 3, view.Total)
	assert.Nil(t, view.Card)

	_, err = svc.RevealQuiz(ctx, ownerID, id)
	assert.ErrorIs(t, err, session.ErrFinished)

	view, err = svc.RestartQuiz(ctx, ownerID, id)
	require.NoError(t, err)
	assert.False(t, view.Finished)
	assert.Equal(t, 0, view.CorrectCount)
	assert.Equal(t, 0, view.Index)

	require.NoError(t, svc.EndQuiz(ctx, ownerID, id))
	_, err = svc.GetQuiz(ctx, ownerID, id)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSessionService_QuizFinish_TouchFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	deck := arithmeticDeck(ownerID)
	deck.Cards = deck.Cards[:1]
	decks, _, svc := newTestSessionService(t)
	decks.On("GetDeck", ctx, ownerID, deck.DeckID).Return(deck, nil).Once()
	decks.On("TouchLastStudied", ctx, ownerID, deck.DeckID).Return(errors.New("db down")).Once()

	view, err := svc.StartQuiz(ctx, ownerID, deck.DeckID)
	require.NoError(t, err)
	_, err = svc.RevealQuiz(ctx, ownerID, view.SessionID)
	require.NoError(t, err)

	view, err = svc.AnswerQuiz(ctx, ownerID, view.SessionID, true)
	require.NoError(t, err)
	assert.True(t, view.Finished)
	assert.Equal(t, 1, view.CorrectCount)
}

func TestSessionService_EmptyDeck(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	deck := arithmeticDeck(ownerID)
	deck.Cards = nil
	decks, _, svc := newTestSessionService(t)
	decks.On("GetDeck", ctx, ownerID, deck.DeckID).Return(deck, nil).Twice()

	study, err := svc.StartStudy(ctx, ownerID, deck.DeckID)
	require.NoError(t, err)
	assert.True(t, study.Empty)
	assert.Nil(t, study.Card)
	_, err = svc.FlipStudy(ctx, ownerID, study.SessionID)
	assert.ErrorIs(t, err, session.ErrNoCards)
	_, err = svc.NextStudy(ctx, ownerID, study.SessionID)
	assert.ErrorIs(t, err, session.ErrNoCards)
	// 空のセッションを終了しても最終学習日時は更新しない
	require.NoError(t, svc.EndStudy(ctx, ownerID, study.SessionID))
	decks.AssertNotCalled(t, "TouchLastStudied", mock.Anything, mock.Anything, mock.Anything)

	quiz, err := svc.StartQuiz(ctx, ownerID, deck.DeckID)
	require.NoError(t, err)
	assert.True(t, quiz.Empty)
	for _, op := range []func() error{
		func() error { _, err := svc.RevealQuiz(ctx, ownerID, quiz.SessionID); return err },
		func() error { _, err := svc.AnswerQuiz(ctx, ownerID, quiz.SessionID, true); return err },
		func() error { _, err := svc.RestartQuiz(ctx, ownerID, quiz.SessionID); return err },
	} {
		assert.ErrorIs(t, op(), session.ErrNoCards)
	}
}

func TestSessionService_StartErrors(t *testing.T) {
	ownerID := uuid.New()
	deckID := uuid.New()

	t.Run("異常系: デッキが存在しない", func(t *testing.T) {
		ctx := context.Background()
		decks, registry, svc := newTestSessionService(t)
		notFound := model.NewAppError("NOT_FOUND", "Deck not found.", "", model.ErrNotFound)
		decks.On("GetDeck", ctx, ownerID, deckID).Return(nil, notFound).Once()

		_, err := svc.StartQuiz(ctx, ownerID, deckID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("異常系: 取得中にキャンセルされたら登録しない", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		decks, registry, svc := newTestSessionService(t)
		decks.On("GetDeck", mock.Anything, ownerID, deckID).
			Run(func(mock.Arguments) { cancel() }).
			Return(arithmeticDeck(ownerID), nil).Once()

		_, err := svc.StartStudy(ctx, ownerID, deckID)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, registry.Len())
	})
}
