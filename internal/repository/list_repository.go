package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"gorm.io/gorm"
)

type ListRepository struct {
	db *gorm.DB
}

type ListRepositoryInterface interface {
	Create(ctx context.Context, list *model.List) error
	GetWithBoard(ctx context.Context, id model.ID) (*model.List, error)
	GetByBoardID(ctx context.Context, boardID model.ID) ([]model.List, error)
	MaxOrderIndex(ctx context.Context, boardID model.ID) (int, error)
	UpdateFields(ctx context.Context, id, boardID model.ID, fields map[string]interface{}) error
	Delete(ctx context.Context, id, boardID model.ID) error
}

var _ ListRepositoryInterface = (*ListRepository)(nil)

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Create(list).Error
}

// GetWithBoard fetches a list and its owning board in a single joined read,
// so the existence and ownership checks see the same snapshot.
func (r *ListRepository) GetWithBoard(ctx context.Context, id model.ID) (*model.List, error) {
	var list model.List
	err := r.db.WithContext(ctx).
		Joins("Board").
		Where("lists.id = ?", id).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// GetByBoardID returns the board's lists in display order. The id tiebreak
// keeps equal order_index values in insertion order.
func (r *ListRepository) GetByBoardID(ctx context.Context, boardID model.ID) ([]model.List, error) {
	var lists []model.List
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("order_index ASC, id ASC").
		Find(&lists).Error
	return lists, err
}

func (r *ListRepository) MaxOrderIndex(ctx context.Context, boardID model.ID) (int, error) {
	var maxIndex struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.List{}).
		Select("COALESCE(MAX(order_index), 0) as max").
		Where("board_id = ?", boardID).
		Scan(&maxIndex).Error
	return maxIndex.Max, err
}

func (r *ListRepository) UpdateFields(ctx context.Context, id, boardID model.ID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.List{}).
		Where("id = ? AND board_id = ?", id, boardID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListNotFound
	}
	return nil
}

// Delete removes the list; the database cascades to its cards.
func (r *ListRepository) Delete(ctx context.Context, id, boardID model.ID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND board_id = ?", id, boardID).
		Delete(&model.List{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListNotFound
	}
	return nil
}
