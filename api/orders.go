package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/avialab/flightorders/internal/service/order"
	"github.com/gin-gonic/gin"
)

// The authenticated identity is resolved by the surrounding gateway and
// passed in the X-User-ID header; the handlers hand it to the service
// explicitly instead of reading ambient state.
const userHeader = "X-User-ID"

type OrderHandler struct {
	service order.OrderUseCase
}

type createOrderRequest struct {
	Tickets []domain.TicketRequest `json:"tickets"`
}

type orderResponse struct {
	ID        int64           `json:"id"`
	Reference string          `json:"reference"`
	CreatedAt string          `json:"created_at"`
	Tickets   []domain.Ticket `json:"tickets"`
}

func NewOrderHandler(service order.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:reference", h.get)
}

func (h *OrderHandler) create(c *gin.Context) {
	userID, ok := userFromHeader(c)
	if !ok {
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateOrder(c.Request.Context(), userID, req.Tickets)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(created))
}

func (h *OrderHandler) list(c *gin.Context) {
	userID, ok := userFromHeader(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, err := h.service.ListOrders(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]orderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *OrderHandler) get(c *gin.Context) {
	userID, ok := userFromHeader(c)
	if !ok {
		return
	}

	found, err := h.service.GetOrder(c.Request.Context(), userID, c.Param("reference"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(found))
}

func userFromHeader(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.GetHeader(userHeader), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid " + userHeader + " header"})
		return 0, false
	}
	return userID, true
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:        o.ID,
		Reference: o.Reference,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		Tickets:   o.Tickets,
	}
}
