package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *model.Card) error
	GetWithListAndBoard(ctx context.Context, id model.ID) (*model.Card, error)
	GetByListID(ctx context.Context, listID model.ID) ([]model.Card, error)
	CountInList(ctx context.Context, listID model.ID) (int64, error)
	UpdateFields(ctx context.Context, id model.ID, fields map[string]interface{}) error
	Delete(ctx context.Context, id model.ID) error
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// GetWithListAndBoard walks card -> list -> board in one joined read so the
// transitive owner comes from the same snapshot as the card itself.
func (r *CardRepository) GetWithListAndBoard(ctx context.Context, id model.ID) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).
		Joins("List").
		Joins("List.Board").
		Where("cards.id = ?", id).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) GetByListID(ctx context.Context, listID model.ID) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("order_index ASC, id ASC").
		Find(&cards).Error
	return cards, err
}

func (r *CardRepository) CountInList(ctx context.Context, listID model.ID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("list_id = ?", listID).
		Count(&count).Error
	return count, err
}

// UpdateFields applies a partial update in a single UPDATE statement; a move
// writes list_id and order_index together, so the card can never land in the
// destination list without its new position.
func (r *CardRepository) UpdateFields(ctx context.Context, id model.ID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (r *CardRepository) Delete(ctx context.Context, id model.ID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Card{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
