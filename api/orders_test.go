package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) CreateOrder(ctx context.Context, userID int64, requests []domain.TicketRequest) (*domain.Order, error) {
	args := m.Called(ctx, userID, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) GetOrder(ctx context.Context, userID int64, reference string) (*domain.Order, error) {
	args := m.Called(ctx, userID, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) ListOrders(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func TestOrderHandler_create(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	requests := []domain.TicketRequest{
		{FlightID: 1, Row: 1, Seat: 1},
		{FlightID: 1, Row: 1, Seat: 2},
	}
	body, _ := json.Marshal(createOrderRequest{Tickets: requests})
	c.Request = httptest.NewRequest("POST", "/orders", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Header.Set(userHeader, "7")

	created := &domain.Order{
		ID:        10,
		Reference: "ref-10",
		UserID:    7,
		Tickets: []domain.Ticket{
			{ID: 1, OrderID: 10, FlightID: 1, Row: 1, Seat: 1},
			{ID: 2, OrderID: 10, FlightID: 1, Row: 1, Seat: 2},
		},
	}
	mockService.On("CreateOrder", c.Request.Context(), int64(7), requests).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response orderResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ref-10", response.Reference)
	assert.Len(t, response.Tickets, 2)

	mockService.AssertExpectations(t)
}

func TestOrderHandler_create_missingUser(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createOrderRequest{Tickets: []domain.TicketRequest{{FlightID: 1, Row: 1, Seat: 1}}})
	c.Request = httptest.NewRequest("POST", "/orders", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "CreateOrder")
}

func TestOrderHandler_create_seatTaken(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	requests := []domain.TicketRequest{{FlightID: 1, Row: 1, Seat: 1}}
	body, _ := json.Marshal(createOrderRequest{Tickets: requests})
	c.Request = httptest.NewRequest("POST", "/orders", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Header.Set(userHeader, "7")

	mockService.On("CreateOrder", c.Request.Context(), int64(7), requests).
		Return(nil, &domain.SeatTakenError{FlightID: 1, Row: 1, Seat: 1})

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "seat_taken", response["kind"])
	assert.Equal(t, float64(1), response["row"])
	assert.Equal(t, float64(1), response["seat"])
}

func TestOrderHandler_create_outOfRange(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	requests := []domain.TicketRequest{{FlightID: 1, Row: 251, Seat: 1}}
	body, _ := json.Marshal(createOrderRequest{Tickets: requests})
	c.Request = httptest.NewRequest("POST", "/orders", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Header.Set(userHeader, "7")

	mockService.On("CreateOrder", c.Request.Context(), int64(7), requests).
		Return(nil, &domain.OutOfRangeError{Field: "row", Requested: 251, Min: 1, Max: 250})

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "out_of_range", response["kind"])
	assert.Equal(t, "row", response["field"])
	assert.Equal(t, []interface{}{float64(1), float64(250)}, response["valid_range"])
}

func TestOrderHandler_create_empty(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createOrderRequest{})
	c.Request = httptest.NewRequest("POST", "/orders", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.Header.Set(userHeader, "7")

	mockService.On("CreateOrder", c.Request.Context(), int64(7), mock.Anything).
		Return(nil, domain.ErrEmptyOrder)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "empty_order", response["kind"])
}

func TestOrderHandler_get_notFound(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "reference", Value: "missing"}}
	c.Request = httptest.NewRequest("GET", "/orders/missing", nil)
	c.Request.Header.Set(userHeader, "7")

	mockService.On("GetOrder", c.Request.Context(), int64(7), "missing").Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_get_missingUser(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "reference", Value: "ref-10"}}
	c.Request = httptest.NewRequest("GET", "/orders/ref-10", nil)

	handler.get(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "GetOrder")
}

func TestOrderHandler_list(t *testing.T) {
	mockService := &MockOrderUseCase{}
	handler := NewOrderHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/orders?limit=2&offset=4", nil)
	c.Request.Header.Set(userHeader, "7")

	orders := []domain.Order{{ID: 1, Reference: "ref-1", UserID: 7}}
	mockService.On("ListOrders", c.Request.Context(), int64(7), 2, 4).Return(orders, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []orderResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "ref-1", response[0].Reference)

	mockService.AssertExpectations(t)
}
