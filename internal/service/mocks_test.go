package service_test

import (
	"context"

	"taskboard/internal/model"

	"github.com/stretchr/testify/mock"
)

// Мок репозитория досок
type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) GetOwned(ctx context.Context, ownerID model.ID) ([]model.Board, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id model.ID) (*model.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) UpdateFields(ctx context.Context, id, ownerID model.ID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, ownerID, fields)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id, ownerID model.ID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

// Мок репозитория списков
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) GetWithBoard(ctx context.Context, id model.ID) (*model.List, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListRepository) GetByBoardID(ctx context.Context, boardID model.ID) ([]model.List, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.List), args.Error(1)
}

func (m *MockListRepository) MaxOrderIndex(ctx context.Context, boardID model.ID) (int, error) {
	args := m.Called(ctx, boardID)
	return args.Int(0), args.Error(1)
}

func (m *MockListRepository) UpdateFields(ctx context.Context, id, boardID model.ID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, boardID, fields)
	return args.Error(0)
}

func (m *MockListRepository) Delete(ctx context.Context, id, boardID model.ID) error {
	args := m.Called(ctx, id, boardID)
	return args.Error(0)
}

// Мок репозитория карточек
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) GetWithListAndBoard(ctx context.Context, id model.ID) (*model.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Card), args.Error(1)
}

func (m *MockCardRepository) GetByListID(ctx context.Context, listID model.ID) ([]model.Card, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockCardRepository) CountInList(ctx context.Context, listID model.ID) (int64, error) {
	args := m.Called(ctx, listID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCardRepository) UpdateFields(ctx context.Context, id model.ID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id model.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
