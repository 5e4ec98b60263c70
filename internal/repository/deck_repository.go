//go:generate mockery --name DeckRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studystack/internal/middleware"
	"studystack/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeckRepository はデッキの永続化を担当します。
// Cards are stored as one JSON array per deck, so every card mutation is a
// rewrite of that array.
type DeckRepository interface {
	Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error
	FindByID(ctx context.Context, db *gorm.DB, ownerID, deckID uuid.UUID) (*model.Deck, error)
	// FindByIDForUpdate は行ロックを取得して読み込みます (SQLite では通常の SELECT)。
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, ownerID, deckID uuid.UUID) (*model.Deck, error)
	FindByOwner(ctx context.Context, db *gorm.DB, ownerID uuid.UUID) ([]*model.Deck, error)
	UpdateCards(ctx context.Context, tx *gorm.DB, ownerID, deckID uuid.UUID, cards []model.Flashcard) error
	UpdateTitle(ctx context.Context, tx *gorm.DB, ownerID, deckID uuid.UUID, title string) error
	TouchLastStudied(ctx context.Context, db *gorm.DB, ownerID, deckID uuid.UUID, at time.Time) error
	Delete(ctx context.Context, tx *gorm.DB, ownerID, deckID uuid.UUID) error
}

type gormDeckRepository struct{}

func NewGormDeckRepository() DeckRepository {
	return &gormDeckRepository{}
}

func (r *gormDeckRepository) Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(deck)
	if result.Error != nil {
		logger.Error("Error creating deck in DB",
			"error", result.Error,
			"owner_id", deck.OwnerID.String(),
			"title", deck.Title,
		)
		return fmt.Errorf("gormDeckRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDeckRepository) FindByID(ctx context.Context, db *gorm.DB, ownerID, deckID uuid.UUID) (*model.Deck, error) {
	return r.findOne(ctx, db.WithContext(ctx), ownerID, deckID, "FindByID")
}

func (r *gormDeckRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, ownerID, deckID uuid.UUID) (*model.Deck, error) {
	return r.findOne(ctx, tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), ownerID, deckID, "FindByIDForUpdate")
}

func (r *gormDeckRepository) findOne(ctx context.Context, query *gorm.DB, ownerID, deckID uuid.UUID, op string) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var deck model.Deck
	result := query.Where("owner_id = ? AND deck_id = ?", ownerID, deckID).First(&deck)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding deck by ID in DB",
			"error", result.Error,
			"owner_id", ownerID.String(),
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.%s: %w", op, result.Error)
	}
	return &deck, nil
}

func (r *gormDeckRepository) FindByOwner(ctx context.Context, db *gorm.DB, ownerID uuid.UUID) ([]*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var decks []*model.Deck
	result := db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&decks)
	if result.Error != nil {
		logger.Error("Error finding decks by owner in DB",
			"error", result.Error,
			"owner_id", ownerID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.FindByOwner: %w", result.Error)
	}
	return decks, nil
}

func (r *gormDeckRepository) UpdateCards(ctx context.Context, tx *gorm.DB, ownerID, deckID uuid.UUID, cards []model.Flashcard) error {
	if cards == nil {
		cards = []model.Flashcard{}
	}
	return r.update(ctx, tx, ownerID, deckID, "UpdateCards", map[string]interface{}{
		"cards": datatypes.JSONSlice[model.Flashcard](cards),
	})
}

func (r *gormDeckRepository) UpdateTitle(ctx context.Context, tx *gorm.DB, ownerID, deckID uuid.UUID, title string) error {
	return r.update(ctx, tx, ownerID, deckID, "UpdateTitle", map[string]interface{}{
		"title": title,
	})
}

func (r *gormDeckRepository) update(ctx context.Context, tx *gorm.DB, ownerID, deckID uuid.UUID, op string, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Deck{}).Where("owner_id = ? AND deck_id = ?", ownerID, deckID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating deck in DB",
			"error", result.Error,
			"op", op,
			"owner_id", ownerID.String(),
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormDeckRepository.%s: %w", op, result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// TouchLastStudied は updated_at を変えずに last_studied だけ更新します。
func (r *gormDeckRepository) TouchLastStudied(ctx context.Context, db *gorm.DB, ownerID, deckID uuid.UUID, at time.Time) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.Deck{}).
		Where("owner_id = ? AND deck_id = ?", ownerID, deckID).
		UpdateColumn("last_studied", at)
	if result.Error != nil {
		logger.Error("Error touching last studied in DB",
			"error", result.Error,
			"owner_id", ownerID.String(),
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormDeckRepository.TouchLastStudied: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormDeckRepository) Delete(ctx context.Context, tx *gorm.DB, ownerID, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("owner_id = ? AND deck_id = ?", ownerID, deckID).Delete(&model.Deck{})
	if result.Error != nil {
		logger.Error("Error deleting deck in DB",
			"error", result.Error,
			"owner_id", ownerID.String(),
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormDeckRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
