package handler

import (
	"errors"
	"net/http"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardRepo repository.CardRepositoryInterface
	resolver *service.OwnershipResolver
	ordering *service.OrderingEngine
}

func NewCardHandler(
	cardRepo repository.CardRepositoryInterface,
	resolver *service.OwnershipResolver,
	ordering *service.OrderingEngine,
) *CardHandler {
	return &CardHandler{
		cardRepo: cardRepo,
		resolver: resolver,
		ordering: ordering,
	}
}

type CreateCardRequest struct {
	ListID      string     `json:"list_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateCardRequest struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	DueDate     Optional[time.Time] `json:"due_date"`
	ListID      Optional[string]    `json:"list_id"`
	OrderIndex  Optional[int]       `json:"order_index"`
}

type CardResponse struct {
	ID          string  `json:"id"`
	ListID      string  `json:"list_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	OrderIndex  int     `json:"order_index"`
	CreatorID   string  `json:"creator_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func cardResponse(card *model.Card) CardResponse {
	resp := CardResponse{
		ID:          card.ID.String(),
		ListID:      card.ListID.String(),
		Title:       card.Title,
		Description: card.Description,
		OrderIndex:  card.OrderIndex,
		CreatorID:   card.CreatorID.String(),
		CreatedAt:   card.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   card.UpdatedAt.Format(time.RFC3339),
	}
	if card.DueDate != nil {
		dueDate := card.DueDate.Format(time.RFC3339)
		resp.DueDate = &dueDate
	}
	return resp
}

// Create appends a new card to the end of an owned list. Card ordering is
// 0-based: the first card in a list gets order_index 0.
func (h *CardHandler) Create(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list_id and title are required"})
		return
	}

	listID, err := model.ParseID(req.ListID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	_, res, err := h.resolver.ResolveList(c.Request.Context(), callerID, listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check list access"})
		return
	}
	if res == service.ResolutionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}
	if res == service.ResolutionForbidden {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to create cards in this list"})
		return
	}

	orderIndex, err := h.ordering.NextCardIndex(c.Request.Context(), listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine card position"})
		return
	}

	card := &model.Card{
		ListID:      listID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		OrderIndex:  orderIndex,
		CreatorID:   callerID,
	}

	if err := h.cardRepo.Create(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	c.JSON(http.StatusCreated, cardResponse(card))
}

// GetByListID returns a list's cards in display order.
func (h *CardHandler) GetByListID(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	listID, err := model.ParseID(c.Param("listId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	_, res, err := h.resolver.ResolveList(c.Request.Context(), callerID, listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check list access"})
		return
	}
	if res == service.ResolutionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}
	if res == service.ResolutionForbidden {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view cards in this list"})
		return
	}

	cards, err := h.cardRepo.GetByListID(c.Request.Context(), listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}

	response := make([]CardResponse, len(cards))
	for i := range cards {
		response[i] = cardResponse(&cards[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByID returns a single card after walking its ownership chain.
func (h *CardHandler) GetByID(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	cardID, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	card, res, err := h.resolver.ResolveCard(c.Request.Context(), callerID, cardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		return
	}
	if res == service.ResolutionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}
	if res == service.ResolutionForbidden {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this card"})
		return
	}

	c.JSON(http.StatusOK, cardResponse(card))
}

// Update applies a partial update, including moves. Supplying list_id moves
// the card; without an explicit order_index it is appended to the destination
// list. The ownership chain is resolved for the card's current list and,
// when moving, again for the destination.
func (h *CardHandler) Update(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	cardID, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !req.Title.Set && !req.Description.Set && !req.DueDate.Set && !req.ListID.Set && !req.OrderIndex.Set {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required to update"})
		return
	}
	if req.Title.Set && !req.Title.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be null"})
		return
	}
	if req.ListID.Set && !req.ListID.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list_id cannot be null"})
		return
	}
	if req.OrderIndex.Set && !req.OrderIndex.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_index cannot be null"})
		return
	}

	_, res, err := h.resolver.ResolveCard(c.Request.Context(), callerID, cardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check card access"})
		return
	}
	if res == service.ResolutionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}
	if res == service.ResolutionForbidden {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this card"})
		return
	}

	fields := map[string]interface{}{}
	if req.Title.Valid {
		fields["title"] = req.Title.Value
	}
	if req.Description.Set {
		if req.Description.Valid {
			fields["description"] = req.Description.Value
		} else {
			fields["description"] = nil
		}
	}
	if req.DueDate.Set {
		if req.DueDate.Valid {
			fields["due_date"] = req.DueDate.Value
		} else {
			fields["due_date"] = nil
		}
	}

	if req.ListID.Set {
		destListID, err := model.ParseID(req.ListID.Value)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Destination list not found"})
			return
		}

		// The destination resolves through its own chain; the caller must
		// own both boards, or the move is rejected.
		_, destRes, err := h.resolver.ResolveList(c.Request.Context(), callerID, destListID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check destination list access"})
			return
		}
		if destRes == service.ResolutionNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Destination list not found"})
			return
		}
		if destRes == service.ResolutionForbidden {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to move the card to that list"})
			return
		}

		fields["list_id"] = destListID

		if !req.OrderIndex.Set {
			orderIndex, err := h.ordering.NextCardIndex(c.Request.Context(), destListID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine card position"})
				return
			}
			fields["order_index"] = orderIndex
		}
	}

	if req.OrderIndex.Valid {
		fields["order_index"] = req.OrderIndex.Value
	}

	if err := h.cardRepo.UpdateFields(c.Request.Context(), cardID, fields); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			// Vanished between the check and the write.
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": cardID.String(), "message": "Card updated successfully"})
}

// Delete removes the card.
func (h *CardHandler) Delete(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	cardID, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	_, res, err := h.resolver.ResolveCard(c.Request.Context(), callerID, cardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check card access"})
		return
	}
	if res == service.ResolutionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}
	if res == service.ResolutionForbidden {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this card"})
		return
	}

	if err := h.cardRepo.Delete(c.Request.Context(), cardID); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}
