// internal/model/deck.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MaxDeckTitleLength is counted in characters after trimming.
const MaxDeckTitleLength = 50

// Flashcard is a single question/answer pair. It lives inside its deck's
// card array and has no table of its own.
type Flashcard struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Deck is a titled, ordered collection of flashcards.
type Deck struct {
	DeckID      uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"deck_id"`
	OwnerID     uuid.UUID                      `gorm:"type:uuid;not null;index" json:"-"`
	Title       string                         `gorm:"size:50;not null" json:"title"`
	Cards       datatypes.JSONSlice[Flashcard] `gorm:"not null" json:"cards"`
	Color       string                         `gorm:"size:7;not null" json:"color"`
	CreatedAt   time.Time                      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time                      `json:"updated_at"`
	LastStudied *time.Time                     `json:"last_studied"`
}

func (Deck) TableName() string {
	return "decks"
}

// CardList returns a copy of the deck's cards as a plain slice.
func (d *Deck) CardList() []Flashcard {
	cards := make([]Flashcard, len(d.Cards))
	copy(cards, d.Cards)
	return cards
}

// HasCard reports whether a card with the given id exists in the deck.
func (d *Deck) HasCard(cardID string) bool {
	for _, c := range d.Cards {
		if c.ID == cardID {
			return true
		}
	}
	return false
}

// DeckSummary is one row of the deck list screen.
type DeckSummary struct {
	DeckID         uuid.UUID  `json:"deck_id"`
	Title          string     `json:"title"`
	Color          string     `json:"color"`
	CardCount      int        `json:"card_count"`
	CreatedAt      time.Time  `json:"created_at"`
	CreatedAgo     string     `json:"created_ago"`
	LastStudied    *time.Time `json:"last_studied"`
	LastStudiedAgo string     `json:"last_studied_ago"`
}

// デッキ作成リクエストDTO
type CreateDeckRequest struct {
	Title string `json:"title" validate:"required,max=50"`
}

// デッキ名変更リクエストDTO
type RenameDeckRequest struct {
	Title string `json:"title" validate:"required,max=50"`
}

// カード追加・更新リクエストDTO
type CardRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// ReplaceCardsRequest replaces the whole card array. Cards without an id get
// one assigned.
type ReplaceCardsRequest struct {
	Cards []ReplaceCardItem `json:"cards" validate:"dive"`
}

type ReplaceCardItem struct {
	ID       string `json:"id,omitempty"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// ImportResult reports a bulk card import.
type ImportResult struct {
	Deck     *Deck      `json:"deck"`
	Imported int        `json:"imported"`
	Skipped  []RowError `json:"skipped"`
}

// RowError describes one rejected row of an import file (1-based row number).
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
