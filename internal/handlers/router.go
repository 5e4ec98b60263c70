package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"studystack/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

type RouterConfig struct {
	Logger   *slog.Logger
	Decks    *DeckHandler
	Sessions *SessionHandler
	// Auth はオーナーIDをコンテキストに設定するミドルウェア (JWT か開発用ヘッダー)
	Auth           func(http.Handler) http.Handler
	CORS           cors.Options
	RequestTimeout time.Duration
	Health         http.HandlerFunc
}

// NewRouter wires every route of the API. The deck stream is kept out of the
// request timeout so that it can stay open.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(cfg.Logger))
	r.Use(cors.New(cfg.CORS).Handler)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cfg.Auth)

		r.Get("/decks/stream", cfg.Decks.StreamDecks)

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

			// Deck routes
			r.Post("/decks", cfg.Decks.CreateDeck)
			r.Get("/decks", cfg.Decks.ListDecks)
			r.Get("/decks/{deck_id}", cfg.Decks.GetDeck)
			r.Patch("/decks/{deck_id}", cfg.Decks.RenameDeck)
			r.Delete("/decks/{deck_id}", cfg.Decks.DeleteDeck)

			// Card routes
			r.Put("/decks/{deck_id}/cards", cfg.Decks.ReplaceCards)
			r.Post("/decks/{deck_id}/cards", cfg.Decks.AddCard)
			r.Post("/decks/{deck_id}/cards/import", cfg.Decks.ImportCards)
			r.Put("/decks/{deck_id}/cards/{card_id}", cfg.Decks.UpdateCard)
			r.Delete("/decks/{deck_id}/cards/{card_id}", cfg.Decks.DeleteCard)

			// Study routes
			r.Post("/decks/{deck_id}/study", cfg.Sessions.StartStudy)
			r.Route("/study/{session_id}", func(r chi.Router) {
				r.Get("/", cfg.Sessions.GetStudy)
				r.Delete("/", cfg.Sessions.EndStudy)
				r.Post("/flip", cfg.Sessions.FlipStudy)
				r.Post("/next", cfg.Sessions.NextStudy)
				r.Post("/previous", cfg.Sessions.PreviousStudy)
			})

			// Quiz routes
			r.Post("/decks/{deck_id}/quiz", cfg.Sessions.StartQuiz)
			r.Route("/quiz/{session_id}", func(r chi.Router) {
				r.Get("/", cfg.Sessions.GetQuiz)
				r.Delete("/", cfg.Sessions.EndQuiz)
				r.Post("/reveal", cfg.Sessions.RevealQuiz)
				r.Post("/answer", cfg.Sessions.AnswerQuiz)
				r.Post("/restart", cfg.Sessions.RestartQuiz)
			})
		})
	})

	if cfg.Health != nil {
		r.Get("/health", cfg.Health)
	}
	return r
}
