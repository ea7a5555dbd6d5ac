package service

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// Resolution is the outcome of an ownership walk.
type Resolution int

const (
	ResolutionNotFound Resolution = iota
	ResolutionForbidden
	ResolutionAuthorized
)

// OwnershipResolver walks the card -> list -> board containment chain and
// decides whether the caller is the transitive board owner. Existence and
// ownership are read together in one query per target, so a caller racing a
// delete cannot observe "exists but is someone else's" transiently.
type OwnershipResolver struct {
	boards repository.BoardRepositoryInterface
	lists  repository.ListRepositoryInterface
	cards  repository.CardRepositoryInterface
}

func NewOwnershipResolver(
	boards repository.BoardRepositoryInterface,
	lists repository.ListRepositoryInterface,
	cards repository.CardRepositoryInterface,
) *OwnershipResolver {
	return &OwnershipResolver{boards: boards, lists: lists, cards: cards}
}

// ResolveBoard returns the board when the caller owns it. The board is nil
// unless the resolution is ResolutionAuthorized.
func (r *OwnershipResolver) ResolveBoard(ctx context.Context, callerID, boardID model.ID) (*model.Board, Resolution, error) {
	board, err := r.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, ResolutionNotFound, err
	}
	if board == nil {
		return nil, ResolutionNotFound, nil
	}
	if board.OwnerID != callerID {
		return nil, ResolutionForbidden, nil
	}
	return board, ResolutionAuthorized, nil
}

// ResolveList joins the list to its board and checks the board owner.
func (r *OwnershipResolver) ResolveList(ctx context.Context, callerID, listID model.ID) (*model.List, Resolution, error) {
	list, err := r.lists.GetWithBoard(ctx, listID)
	if err != nil {
		return nil, ResolutionNotFound, err
	}
	if list == nil {
		return nil, ResolutionNotFound, nil
	}
	if list.Board.OwnerID != callerID {
		return nil, ResolutionForbidden, nil
	}
	return list, ResolutionAuthorized, nil
}

// ResolveCard joins two hops, card -> list -> board, and checks the board owner.
func (r *OwnershipResolver) ResolveCard(ctx context.Context, callerID, cardID model.ID) (*model.Card, Resolution, error) {
	card, err := r.cards.GetWithListAndBoard(ctx, cardID)
	if err != nil {
		return nil, ResolutionNotFound, err
	}
	if card == nil {
		return nil, ResolutionNotFound, nil
	}
	if card.List.Board.OwnerID != callerID {
		return nil, ResolutionForbidden, nil
	}
	return card, ResolutionAuthorized, nil
}
