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

type ListHandler struct {
	listRepo repository.ListRepositoryInterface
	resolver *service.OwnershipResolver
	ordering *service.OrderingEngine
}

func NewListHandler(
	listRepo repository.ListRepositoryInterface,
	resolver *service.OwnershipResolver,
	ordering *service.OrderingEngine,
) *ListHandler {
	return &ListHandler{
		listRepo: listRepo,
		resolver: resolver,
		ordering: ordering,
	}
}

type CreateListRequest struct {
	BoardID string `json:"board_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
}

type UpdateListRequest struct {
	Title      Optional[string] `json:"title"`
	OrderIndex Optional[int]    `json:"order_index"`
}

type ListResponse struct {
	ID         string `json:"id"`
	BoardID    string `json:"board_id"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`
	CreatedAt  string `json:"created_at"`
}

func listResponse(list *model.List) ListResponse {
	return ListResponse{
		ID:         list.ID.String(),
		BoardID:    list.BoardID.String(),
		Title:      list.Title,
		OrderIndex: list.OrderIndex,
		CreatedAt:  list.CreatedAt.Format(time.RFC3339),
	}
}

// Create appends a new list to the end of an owned board. List ordering is
// 1-based: the first list on a board gets order_index 1.
func (h *ListHandler) Create(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board_id and title are required"})
		return
	}

	boardID, err := model.ParseID(req.BoardID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found or not authorized"})
		return
	}

	_, res, err := h.resolver.ResolveBoard(c.Request.Context(), callerID, boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check board access"})
		return
	}
	if res != service.ResolutionAuthorized {
		// Missing and foreign boards are reported identically.
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found or not authorized"})
		return
	}

	orderIndex, err := h.ordering.NextListIndex(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine list position"})
		return
	}

	list := &model.List{
		BoardID:    boardID,
		Title:      req.Title,
		OrderIndex: orderIndex,
	}

	if err := h.listRepo.Create(c.Request.Context(), list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create list"})
		return
	}

	c.JSON(http.StatusCreated, listResponse(list))
}

// GetByBoardID returns a board's lists in display order.
func (h *ListHandler) GetByBoardID(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	boardID, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found or not authorized"})
		return
	}

	_, res, err := h.resolver.ResolveBoard(c.Request.Context(), callerID, boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check board access"})
		return
	}
	if res != service.ResolutionAuthorized {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found or not authorized"})
		return
	}

	lists, err := h.listRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve lists"})
		return
	}

	response := make([]ListResponse, len(lists))
	for i := range lists {
		response[i] = listResponse(&lists[i])
	}

	c.JSON(http.StatusOK, response)
}

// Update changes the title and/or order_index of an owned list. An explicit
// order_index is written verbatim; neighbors are not renormalized.
func (h *ListHandler) Update(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	listID, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found or not authorized"})
		return
	}

	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	fields := map[string]interface{}{}
	if req.Title.Valid {
		fields["title"] = req.Title.Value
	}
	if req.OrderIndex.Valid {
		fields["order_index"] = req.OrderIndex.Value
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title or order_index is required to update"})
		return
	}

	list, res, err := h.resolver.ResolveList(c.Request.Context(), callerID, listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check list access"})
		return
	}
	if res != service.ResolutionAuthorized {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found or not authorized"})
		return
	}

	if err := h.listRepo.UpdateFields(c.Request.Context(), listID, list.BoardID, fields); err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": listID.String(), "message": "List updated successfully"})
}

// Delete removes the list and, through the cascade, its cards.
func (h *ListHandler) Delete(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	listID, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found or not authorized"})
		return
	}

	list, res, err := h.resolver.ResolveList(c.Request.Context(), callerID, listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check list access"})
		return
	}
	if res != service.ResolutionAuthorized {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found or not authorized"})
		return
	}

	if err := h.listRepo.Delete(c.Request.Context(), listID, list.BoardID); err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "List deleted successfully"})
}
