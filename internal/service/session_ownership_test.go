package service_test

import (
	"context"
	"testing"

	"studystack/internal/model"
	"studystack/internal/service"
	servicemocks "studystack/internal/service/mocks"
	"studystack/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- テストスイートの定義 ---
// セッションの所有者チェックとライフサイクルをまとめて検証する
type SessionOwnershipTestSuite struct {
	suite.Suite

	mockDecks *servicemocks.MockDeckService
	registry  *session.Registry
	svc       service.SessionService
	ownerID   uuid.UUID
	deck      *model.Deck
}

func (s *SessionOwnershipTestSuite) SetupTest() {
	s.mockDecks = servicemocks.NewMockDeckService(s.T())
	s.registry = session.NewRegistry()
	s.svc = service.NewSessionService(s.mockDecks, s.registry, nil)
	s.ownerID = uuid.New()
	s.deck = &model.Deck{
		DeckID:  uuid.New(),
		OwnerID: s.ownerID,
		Title:   "Capitals",
		Cards: []model.Flashcard{
			{ID: "fr", Question: "France", Answer: "Paris"},
			{ID: "jp", Question: "Japan", Answer: "Tokyo"},
		},
	}
}

func TestSessionOwnership(t *testing.T) {
	suite.Run(t, new(SessionOwnershipTestSuite))
}

func (s *SessionOwnershipTestSuite) startQuiz() *model.QuizView {
	s.mockDecks.On("GetDeck", mock.Anything, s.ownerID, s.deck.DeckID).Return(s.deck, nil).Once()
	view, err := s.svc.StartQuiz(context.Background(), s.ownerID, s.deck.DeckID)
	s.Require().NoError(err)
	return view
}

func (s *SessionOwnershipTestSuite) TestOtherOwnerCannotReachSession() {
	ctx := context.Background()
	view := s.startQuiz()
	stranger := uuid.New()

	testCases := []struct {
		name string
		call func() error
	}{
		{name: "Get", call: func() error { _, err := s.svc.GetQuiz(ctx, stranger, view.SessionID); return err }},
		{name: "Reveal", call: func() error { _, err := s.svc.RevealQuiz(ctx, stranger, view.SessionID); return err }},
		{name: "Answer", call: func() error { _, err := s.svc.AnswerQuiz(ctx, stranger, view.SessionID, true); return err }},
		{name: "Restart", call: func() error { _, err := s.svc.RestartQuiz(ctx, stranger, view.SessionID); return err }},
		{name: "End", call: func() error { return s.svc.EndQuiz(ctx, stranger, view.SessionID) }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.ErrorIs(err, model.ErrNotFound)
			var appErr *model.AppError
			s.ErrorAs(err, &appErr)
			s.Equal("NOT_FOUND", appErr.Detail.Code)
		})
	}

	// 所有者のセッションはそのまま残っている
	s.Equal(1, s.registry.Len())
	got, err := s.svc.GetQuiz(ctx, s.ownerID, view.SessionID)
	s.NoError(err)
	s.False(got.Revealed)
}

func (s *SessionOwnershipTestSuite) TestQuizIDIsNotAStudyID() {
	view := s.startQuiz()

	_, err := s.svc.GetStudy(context.Background(), s.ownerID, view.SessionID)

	s.ErrorIs(err, model.ErrNotFound)
}

func (s *SessionOwnershipTestSuite) TestEndRemovesSession() {
	ctx := context.Background()
	view := s.startQuiz()

	s.NoError(s.svc.EndQuiz(ctx, s.ownerID, view.SessionID))
	s.Equal(0, s.registry.Len())

	_, err := s.svc.RevealQuiz(ctx, s.ownerID, view.SessionID)
	s.ErrorIs(err, model.ErrNotFound)
	s.ErrorIs(s.svc.EndQuiz(ctx, s.ownerID, view.SessionID), model.ErrNotFound)
}

func (s *SessionOwnershipTestSuite) TestRestartClearsProgress() {
	ctx := context.Background()
	view := s.startQuiz()

	_, err := s.svc.RevealQuiz(ctx, s.ownerID, view.SessionID)
	s.Require().NoError(err)
	view, err = s.svc.AnswerQuiz(ctx, s.ownerID, view.SessionID, true)
	s.Require().NoError(err)
	s.Equal(1, view.CorrectCount)
	s.Equal(1, view.Index)

	view, err = s.svc.RestartQuiz(ctx, s.ownerID, view.SessionID)
	s.Require().NoError(err)
	s.Equal(0, view.CorrectCount)
	s.Equal(0, view.Index)
	s.False(view.Revealed)
	s.False(view.Finished)
	s.Equal(2, view.Total)
	s.Require().NotNil(view.Card)
	s.Empty(view.Card.Answer)
}

func (s *SessionOwnershipTestSuite) TestAnswerBeforeRevealIsRejected() {
	view := s.startQuiz()

	_, err := s.svc.AnswerQuiz(context.Background(), s.ownerID, view.SessionID, true)

	s.ErrorIs(err, session.ErrNotRevealed)
	s.ErrorIs(err, model.ErrInvalidState)
}
