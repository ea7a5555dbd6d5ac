package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupListTest(callerID model.ID) (*gin.Engine, *MockBoardRepository, *MockListRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	boardRepo := new(MockBoardRepository)
	listRepo := new(MockListRepository)
	cardRepo := new(MockCardRepository)
	resolver := service.NewOwnershipResolver(boardRepo, listRepo, cardRepo)
	ordering := service.NewOrderingEngine(listRepo, cardRepo)
	listHandler := handler.NewListHandler(listRepo, resolver, ordering)

	authorized := r.Group("/api")
	authorized.Use(authAs(callerID))
	authorized.POST("/lists", listHandler.Create)
	authorized.GET("/boards/:id/lists", listHandler.GetByBoardID)
	authorized.PUT("/lists/:id", listHandler.Update)
	authorized.DELETE("/lists/:id", listHandler.Delete)

	return r, boardRepo, listRepo
}

func TestListCreate_FirstListGetsIndexOne(t *testing.T) {
	// Arrange: на пустой доске максимум равен нулю
	router, boardRepo, listRepo := setupListTest(10)

	boardRepo.On("GetByID", mock.Anything, model.ID(1)).
		Return(&model.Board{ID: 1, Title: "Work", OwnerID: 10}, nil)
	listRepo.On("MaxOrderIndex", mock.Anything, model.ID(1)).Return(0, nil)
	listRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.List")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.List).ID = 5
		}).Return(nil)

	jsonBody := []byte(`{"board_id":"1","title":"Todo"}`)
	req, _ := http.NewRequest("POST", "/api/lists", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert: нумерация списков начинается с единицы
	assert.Equal(t, http.StatusCreated, resp.Code)

	var response handler.ListResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "5", response.ID)
	assert.Equal(t, 1, response.OrderIndex)

	listRepo.AssertExpectations(t)
}

func TestListCreate_AppendsAfterExistingLists(t *testing.T) {
	// Arrange
	router, boardRepo, listRepo := setupListTest(10)

	boardRepo.On("GetByID", mock.Anything, model.ID(1)).
		Return(&model.Board{ID: 1, Title: "Work", OwnerID: 10}, nil)
	listRepo.On("MaxOrderIndex", mock.Anything, model.ID(1)).Return(3, nil)
	listRepo.On("Create", mock.Anything, mock.MatchedBy(func(list *model.List) bool {
		return list.OrderIndex == 4
	})).Return(nil)

	jsonBody := []byte(`{"board_id":"1","title":"Done"}`)
	req, _ := http.NewRequest("POST", "/api/lists", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	listRepo.AssertExpectations(t)
}

func TestListCreate_ForeignBoard(t *testing.T) {
	// Arrange: доска принадлежит другому пользователю
	router, boardRepo, listRepo := setupListTest(11)

	boardRepo.On("GetByID", mock.Anything, model.ID(1)).
		Return(&model.Board{ID: 1, Title: "Work", OwnerID: 10}, nil)

	jsonBody := []byte(`{"board_id":"1","title":"Todo"}`)
	req, _ := http.NewRequest("POST", "/api/lists", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert: тот же 404, что и для несуществующей доски
	assert.Equal(t, http.StatusNotFound, resp.Code)
	listRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListCreate_MissingTitle(t *testing.T) {
	// Arrange
	router, _, _ := setupListTest(10)

	jsonBody := []byte(`{"board_id":"1"}`)
	req, _ := http.NewRequest("POST", "/api/lists", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListGetByBoardID_Success(t *testing.T) {
	// Arrange
	router, boardRepo, listRepo := setupListTest(10)

	boardRepo.On("GetByID", mock.Anything, model.ID(1)).
		Return(&model.Board{ID: 1, Title: "Work", OwnerID: 10}, nil)
	listRepo.On("GetByBoardID", mock.Anything, model.ID(1)).Return([]model.List{
		{ID: 5, BoardID: 1, Title: "Todo", OrderIndex: 1},
		{ID: 6, BoardID: 1, Title: "Doing", OrderIndex: 2},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/boards/1/lists", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response []handler.ListResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 2)
	assert.Equal(t, "Todo", response[0].Title)
	assert.Equal(t, "Doing", response[1].Title)
}

func TestListUpdate_ExplicitOrderIndexWrittenVerbatim(t *testing.T) {
	// Arrange
	router, _, listRepo := setupListTest(10)

	listRepo.On("GetWithBoard", mock.Anything, model.ID(5)).
		Return(&model.List{ID: 5, BoardID: 1, Title: "Todo", OrderIndex: 1,
			Board: model.Board{ID: 1, OwnerID: 10}}, nil)
	listRepo.On("UpdateFields", mock.Anything, model.ID(5), model.ID(1),
		map[string]interface{}{"order_index": 7}).Return(nil)

	jsonBody := []byte(`{"order_index":7}`)
	req, _ := http.NewRequest("PUT", "/api/lists/5", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert: индекс записывается как есть, соседи не перенумеровываются
	assert.Equal(t, http.StatusOK, resp.Code)
	listRepo.AssertExpectations(t)
}

func TestListUpdate_ForeignList(t *testing.T) {
	// Arrange
	router, _, listRepo := setupListTest(11)

	listRepo.On("GetWithBoard", mock.Anything, model.ID(5)).
		Return(&model.List{ID: 5, BoardID: 1, Title: "Todo",
			Board: model.Board{ID: 1, OwnerID: 10}}, nil)

	jsonBody := []byte(`{"title":"Renamed"}`)
	req, _ := http.NewRequest("PUT", "/api/lists/5", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	listRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListUpdate_NoFields(t *testing.T) {
	// Arrange
	router, _, _ := setupListTest(10)

	jsonBody := []byte(`{}`)
	req, _ := http.NewRequest("PUT", "/api/lists/5", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListDelete_Success(t *testing.T) {
	// Arrange
	router, _, listRepo := setupListTest(10)

	listRepo.On("GetWithBoard", mock.Anything, model.ID(5)).
		Return(&model.List{ID: 5, BoardID: 1, Title: "Todo",
			Board: model.Board{ID: 1, OwnerID: 10}}, nil)
	listRepo.On("Delete", mock.Anything, model.ID(5), model.ID(1)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/lists/5", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	listRepo.AssertExpectations(t)
}

func TestListDelete_NotFound(t *testing.T) {
	// Arrange
	router, _, listRepo := setupListTest(10)

	listRepo.On("GetWithBoard", mock.Anything, model.ID(404)).Return(nil, nil)

	req, _ := http.NewRequest("DELETE", "/api/lists/404", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	listRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
