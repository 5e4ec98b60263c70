//go:generate mockery --name DeckService --output ./mocks --outpkg mocks --case=underscore --structname MockDeckService --filename mock_deck_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"studystack/internal/importer"
	"studystack/internal/middleware"
	"studystack/internal/model"
	"studystack/internal/repository"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

type DeckService interface {
	CreateDeck(ctx context.Context, ownerID uuid.UUID, req *model.CreateDeckRequest) (*model.Deck, error)
	GetDeck(ctx context.Context, ownerID, deckID uuid.UUID) (*model.Deck, error)
	ListDecks(ctx context.Context, ownerID uuid.UUID) ([]model.DeckSummary, error)
	// SubscribeDecks は現在のデッキ一覧と、以降の更新を受け取るチャネルを返します。
	SubscribeDecks(ctx context.Context, ownerID uuid.UUID) ([]model.DeckSummary, <-chan []model.DeckSummary, func(), error)
	RenameDeck(ctx context.Context, ownerID, deckID uuid.UUID, req *model.RenameDeckRequest) (*model.Deck, error)
	DeleteDeck(ctx context.Context, ownerID, deckID uuid.UUID) error
	AddCard(ctx context.Context, ownerID, deckID uuid.UUID, req *model.CardRequest) (*model.Deck, error)
	UpdateCard(ctx context.Context, ownerID, deckID uuid.UUID, cardID string, req *model.CardRequest) (*model.Deck, error)
	DeleteCard(ctx context.Context, ownerID, deckID uuid.UUID, cardID string) (*model.Deck, error)
	ReplaceCards(ctx context.Context, ownerID, deckID uuid.UUID, req *model.ReplaceCardsRequest) (*model.Deck, error)
	ImportCards(ctx context.Context, ownerID, deckID uuid.UUID, filename string, r io.Reader) (*model.ImportResult, error)
	TouchLastStudied(ctx context.Context, ownerID, deckID uuid.UUID) error
}

type deckService struct {
	db            *gorm.DB
	deckRepo      repository.DeckRepository
	feed          *DeckFeed
	maxImportRows int
	now           func() time.Time
	newCardID     func() (string, error)
}

func NewDeckService(db *gorm.DB, deckRepo repository.DeckRepository, feed *DeckFeed, maxImportRows int) DeckService {
	return &deckService{
		db:            db,
		deckRepo:      deckRepo,
		feed:          feed,
		maxImportRows: maxImportRows,
		now:           time.Now,
		newCardID:     func() (string, error) { return gonanoid.New() },
	}
}

func (s *deckService) CreateDeck(ctx context.Context, ownerID uuid.UUID, req *model.CreateDeckRequest) (*model.Deck, error) {
	title, err := normalizeTitle(req.Title)
	if err != nil {
		return nil, err
	}

	deck := &model.Deck{
		DeckID:    uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		Cards:     []model.Flashcard{},
		Color:     model.RandomDeckColor(),
		CreatedAt: s.now(),
	}
	if err := s.deckRepo.Create(ctx, s.db, deck); err != nil {
		return nil, s.storeError(ctx, "CreateDeck", err)
	}

	s.publish(ctx, ownerID)
	return deck, nil
}

func (s *deckService) GetDeck(ctx context.Context, ownerID, deckID uuid.UUID) (*model.Deck, error) {
	deck, err := s.deckRepo.FindByID(ctx, s.db, ownerID, deckID)
	if err != nil {
		return nil, s.storeError(ctx, "GetDeck", err)
	}
	return deck, nil
}

func (s *deckService) ListDecks(ctx context.Context, ownerID uuid.UUID) ([]model.DeckSummary, error) {
	decks, err := s.deckRepo.FindByOwner(ctx, s.db, ownerID)
	if err != nil {
		return nil, s.storeError(ctx, "ListDecks", err)
	}
	return s.summarize(decks), nil
}

func (s *deckService) SubscribeDecks(ctx context.Context, ownerID uuid.UUID) ([]model.DeckSummary, <-chan []model.DeckSummary, func(), error) {
	// 先に購読してから一覧を読むことで、その間の更新を取りこぼさない。
	// 購読より前に番号を取った配信は、この一覧より古いので届かない
	updates, cancel := s.feed.Subscribe(ownerID)
	initial, err := s.ListDecks(ctx, ownerID)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return initial, updates, cancel, nil
}

func (s *deckService) RenameDeck(ctx context.Context, ownerID, deckID uuid.UUID, req *model.RenameDeckRequest) (*model.Deck, error) {
	title, err := normalizeTitle(req.Title)
	if err != nil {
		return nil, err
	}

	var renamed *model.Deck
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.deckRepo.UpdateTitle(ctx, tx, ownerID, deckID, title); err != nil {
			return err
		}
		deck, err := s.deckRepo.FindByID(ctx, tx, ownerID, deckID)
		if err != nil {
			return err
		}
		renamed = deck
		return nil
	})
	if err != nil {
		return nil, s.storeError(ctx, "RenameDeck", err)
	}

	s.publish(ctx, ownerID)
	return renamed, nil
}

func (s *deckService) DeleteDeck(ctx context.Context, ownerID, deckID uuid.UUID) error {
	if err := s.deckRepo.Delete(ctx, s.db, ownerID, deckID); err != nil {
		return s.storeError(ctx, "DeleteDeck", err)
	}
	s.publish(ctx, ownerID)
	return nil
}

func (s *deckService) AddCard(ctx context.Context, ownerID, deckID uuid.UUID, req *model.CardRequest) (*model.Deck, error) {
	question, answer, err := normalizeCard(req.Question, req.Answer)
	if err != nil {
		return nil, err
	}
	return s.mutateCards(ctx, ownerID, deckID, "AddCard", func(cards []model.Flashcard) ([]model.Flashcard, error) {
		id, err := s.uniqueCardID(cards)
		if err != nil {
			return nil, err
		}
		return append(cards, model.Flashcard{ID: id, Question: question, Answer: answer}), nil
	})
}

func (s *deckService) UpdateCard(ctx context.Context, ownerID, deckID uuid.UUID, cardID string, req *model.CardRequest) (*model.Deck, error) {
	question, answer, err := normalizeCard(req.Question, req.Answer)
	if err != nil {
		return nil, err
	}
	return s.mutateCards(ctx, ownerID, deckID, "UpdateCard", func(cards []model.Flashcard) ([]model.Flashcard, error) {
		for i := range cards {
			if cards[i].ID == cardID {
				cards[i].Question = question
				cards[i].Answer = answer
				return cards, nil
			}
		}
		return nil, cardNotFound()
	})
}

func (s *deckService) DeleteCard(ctx context.Context, ownerID, deckID uuid.UUID, cardID string) (*model.Deck, error) {
	return s.mutateCards(ctx, ownerID, deckID, "DeleteCard", func(cards []model.Flashcard) ([]model.Flashcard, error) {
		for i := range cards {
			if cards[i].ID == cardID {
				return append(cards[:i], cards[i+1:]...), nil
			}
		}
		return nil, cardNotFound()
	})
}

// ReplaceCards はカード配列を丸ごと置き換えます。
// id が指定されたカードはそれを引き継ぎ、それ以外は新しい id を振る。
func (s *deckService) ReplaceCards(ctx context.Context, ownerID, deckID uuid.UUID, req *model.ReplaceCardsRequest) (*model.Deck, error) {
	next := make([]model.Flashcard, 0, len(req.Cards))
	seen := make(map[string]struct{}, len(req.Cards))
	for i, item := range req.Cards {
		question, answer, err := normalizeCard(item.Question, item.Answer)
		if err != nil {
			return nil, err
		}
		id := strings.TrimSpace(item.ID)
		if id != "" {
			if _, dup := seen[id]; dup {
				return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("Duplicate card id %q at position %d.", id, i+1), "cards", model.ErrInvalidInput)
			}
			seen[id] = struct{}{}
		}
		next = append(next, model.Flashcard{ID: id, Question: question, Answer: answer})
	}

	return s.mutateCards(ctx, ownerID, deckID, "ReplaceCards", func([]model.Flashcard) ([]model.Flashcard, error) {
		for i := range next {
			if next[i].ID != "" {
				continue
			}
			id, err := s.uniqueCardID(next)
			if err != nil {
				return nil, err
			}
			next[i].ID = id
		}
		return next, nil
	})
}

func (s *deckService) ImportCards(ctx context.Context, ownerID, deckID uuid.UUID, filename string, r io.Reader) (*model.ImportResult, error) {
	logger := middleware.GetLogger(ctx)

	parsed, err := importer.Parse(filename, r, s.maxImportRows)
	if err != nil {
		logger.Warn("Card import rejected", slog.String("filename", filename), slog.Any("error", err))
		return nil, model.NewAppError("VALIDATION_ERROR", err.Error(), "file", err)
	}

	deck, err := s.mutateCards(ctx, ownerID, deckID, "ImportCards", func(cards []model.Flashcard) ([]model.Flashcard, error) {
		for _, row := range parsed.Rows {
			id, err := s.uniqueCardID(cards)
			if err != nil {
				return nil, err
			}
			cards = append(cards, model.Flashcard{ID: id, Question: row.Question, Answer: row.Answer})
		}
		return cards, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Cards imported",
		slog.String("deck_id", deckID.String()),
		slog.Int("imported", len(parsed.Rows)),
		slog.Int("skipped", len(parsed.Skipped)),
	)
	return &model.ImportResult{Deck: deck, Imported: len(parsed.Rows), Skipped: parsed.Skipped}, nil
}

func (s *deckService) TouchLastStudied(ctx context.Context, ownerID, deckID uuid.UUID) error {
	if err := s.deckRepo.TouchLastStudied(ctx, s.db, ownerID, deckID, s.now()); err != nil {
		return s.storeError(ctx, "TouchLastStudied", err)
	}
	s.publish(ctx, ownerID)
	return nil
}

// mutateCards はデッキを行ロック付きで読み、カード配列を丸ごと書き戻します。
func (s *deckService) mutateCards(ctx context.Context, ownerID, deckID uuid.UUID, op string, fn func([]model.Flashcard) ([]model.Flashcard, error)) (*model.Deck, error) {
	var updated *model.Deck
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deck, err := s.deckRepo.FindByIDForUpdate(ctx, tx, ownerID, deckID)
		if err != nil {
			return err
		}
		cards, err := fn(deck.CardList())
		if err != nil {
			return err
		}
		if err := checkUniqueIDs(cards); err != nil {
			return err
		}
		if err := s.deckRepo.UpdateCards(ctx, tx, ownerID, deckID, cards); err != nil {
			return err
		}
		deck.Cards = cards
		deck.UpdatedAt = s.now()
		updated = deck
		return nil
	})
	if err != nil {
		return nil, s.storeError(ctx, op, err)
	}

	s.publish(ctx, ownerID)
	return updated, nil
}

func (s *deckService) uniqueCardID(cards []model.Flashcard) (string, error) {
	for {
		id, err := s.newCardID()
		if err != nil {
			return "", fmt.Errorf("generate card id: %w", err)
		}
		if !containsID(cards, id) {
			return id, nil
		}
	}
}

// publish は購読者がいる場合だけ最新の一覧を配信します。
func (s *deckService) publish(ctx context.Context, ownerID uuid.UUID) {
	if s.feed == nil || !s.feed.HasSubscribers(ownerID) {
		return
	}
	ctx = context.WithoutCancel(ctx)
	// 番号は一覧を読む前に取る。後から読んだ一覧ほど大きい番号を持つので、
	// 並行した更新の配信順が入れ替わっても古い一覧は購読者側で捨てられる
	seq := s.feed.Stamp()
	decks, err := s.deckRepo.FindByOwner(ctx, s.db, ownerID)
	if err != nil {
		middleware.GetLogger(ctx).Warn("Failed to refresh deck feed", slog.Any("error", err))
		return
	}
	s.feed.Publish(ownerID, seq, s.summarize(decks))
}

func (s *deckService) summarize(decks []*model.Deck) []model.DeckSummary {
	now := s.now()
	summaries := make([]model.DeckSummary, 0, len(decks))
	for _, d := range decks {
		summary := model.DeckSummary{
			DeckID:         d.DeckID,
			Title:          d.Title,
			Color:          d.Color,
			CardCount:      len(d.Cards),
			CreatedAt:      d.CreatedAt,
			CreatedAgo:     humanize.RelTime(d.CreatedAt, now, "ago", "from now"),
			LastStudied:    d.LastStudied,
			LastStudiedAgo: "never",
		}
		if d.LastStudied != nil {
			summary.LastStudiedAgo = humanize.RelTime(*d.LastStudied, now, "ago", "from now")
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// storeError は呼び出し元に返すエラーへ変換します。
// 検証エラーと NotFound はそのまま返し、それ以外はログに残して内部エラーとして返す。
func (s *deckService) storeError(ctx context.Context, op string, err error) error {
	var appErr *model.AppError
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, model.ErrNotFound):
		return model.NewAppError("NOT_FOUND", "Deck not found.", "", model.ErrNotFound)
	case errors.Is(err, model.ErrInvalidInput):
		return err
	}
	middleware.GetLogger(ctx).Error("Deck store operation failed", slog.String("op", op), slog.Any("error", err))
	return model.ErrInternalServer
}

func normalizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", model.NewAppError("VALIDATION_ERROR", "Title is required.", "title", model.ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > model.MaxDeckTitleLength {
		return "", model.NewAppError("VALIDATION_ERROR",
			fmt.Sprintf("Title must be at most %d characters.", model.MaxDeckTitleLength), "title", model.ErrInvalidInput)
	}
	return title, nil
}

func normalizeCard(rawQuestion, rawAnswer string) (string, string, error) {
	question := strings.TrimSpace(rawQuestion)
	if question == "" {
		return "", "", model.NewAppError("VALIDATION_ERROR", "Question is required.", "question", model.ErrInvalidInput)
	}
	answer := strings.TrimSpace(rawAnswer)
	if answer == "" {
		return "", "", model.NewAppError("VALIDATION_ERROR", "Answer is required.", "answer", model.ErrInvalidInput)
	}
	return question, answer, nil
}

func checkUniqueIDs(cards []model.Flashcard) error {
	seen := make(map[string]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c.ID]; dup {
			return model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("Duplicate card id %q.", c.ID), "cards", model.ErrInvalidInput)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

func containsID(cards []model.Flashcard, id string) bool {
	for _, c := range cards {
		if c.ID == id {
			return true
		}
	}
	return false
}

func cardNotFound() error {
	return model.NewAppError("NOT_FOUND", "Card not found.", "", model.ErrNotFound)
}
