package service

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// OrderingEngine computes order_index values for siblings under a parent.
// Lists are 1-based (max existing index + 1), cards are 0-based (current
// sibling count). Explicit repositions are written verbatim and neighbors are
// not renormalized; duplicate indexes are tolerated and reads break ties by
// id. Append is read-then-write, so two concurrent appends to the same parent
// may compute the same index, which collapses into the same tie case.
type OrderingEngine struct {
	lists repository.ListRepositoryInterface
	cards repository.CardRepositoryInterface
}

func NewOrderingEngine(lists repository.ListRepositoryInterface, cards repository.CardRepositoryInterface) *OrderingEngine {
	return &OrderingEngine{lists: lists, cards: cards}
}

// NextListIndex returns the append position for a new list on the board.
// The first list gets 1.
func (e *OrderingEngine) NextListIndex(ctx context.Context, boardID model.ID) (int, error) {
	max, err := e.lists.MaxOrderIndex(ctx, boardID)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// NextCardIndex returns the append position for a new card in the list.
// The first card gets 0.
func (e *OrderingEngine) NextCardIndex(ctx context.Context, listID model.ID) (int, error) {
	count, err := e.cards.CountInList(ctx, listID)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
