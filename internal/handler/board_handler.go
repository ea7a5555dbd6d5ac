package handler

import (
	"errors"
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boardRepo repository.BoardRepositoryInterface
	resolver  *service.OwnershipResolver
}

func NewBoardHandler(boardRepo repository.BoardRepositoryInterface, resolver *service.OwnershipResolver) *BoardHandler {
	return &BoardHandler{
		boardRepo: boardRepo,
		resolver:  resolver,
	}
}

type CreateBoardRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"is_public"`
}

type UpdateBoardRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	IsPublic    Optional[bool]   `json:"is_public"`
}

type BoardResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"is_public"`
	OwnerID     string  `json:"owner_id"`
	CreatedAt   string  `json:"created_at"`
}

func boardResponse(board *model.Board) BoardResponse {
	return BoardResponse{
		ID:          board.ID.String(),
		Title:       board.Title,
		Description: board.Description,
		IsPublic:    board.IsPublic,
		OwnerID:     board.OwnerID.String(),
		CreatedAt:   board.CreatedAt.Format(http.TimeFormat),
	}
}

// Create creates a new board for the authenticated user
func (h *BoardHandler) Create(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Board title is required"})
		return
	}

	board := &model.Board{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		OwnerID:     ownerID,
	}

	if err := h.boardRepo.Create(c.Request.Context(), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	c.JSON(http.StatusCreated, boardResponse(board))
}

// GetAll returns the boards owned by the authenticated user, newest first.
func (h *BoardHandler) GetAll(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	boards, err := h.boardRepo.GetOwned(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve boards"})
		return
	}

	response := make([]BoardResponse, len(boards))
	for i := range boards {
		response[i] = boardResponse(&boards[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByID returns a single owned board. A board that exists but belongs to
// someone else is indistinguishable from a missing one.
func (h *BoardHandler) GetByID(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	boardID, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	board, res, err := h.resolver.ResolveBoard(c.Request.Context(), callerID, boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return
	}
	if res != service.ResolutionAuthorized {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	c.JSON(http.StatusOK, boardResponse(board))
}

// Update applies a partial update. Only fields present in the payload change;
// an explicit null description clears it.
func (h *BoardHandler) Update(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	boardID, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
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
	if req.IsPublic.Valid {
		fields["is_public"] = req.IsPublic.Value
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required to update"})
		return
	}

	_, res, err := h.resolver.ResolveBoard(c.Request.Context(), callerID, boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return
	}
	if res != service.ResolutionAuthorized {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	if err := h.boardRepo.UpdateFields(c.Request.Context(), boardID, callerID, fields); err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			// Vanished between the check and the write.
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": boardID.String(), "message": "Board updated successfully"})
}

// Delete removes the board; lists and cards under it cascade away.
func (h *BoardHandler) Delete(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	boardID, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	if err := h.boardRepo.Delete(c.Request.Context(), boardID, callerID); err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete board"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}
