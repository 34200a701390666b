package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/avialab/flightorders/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type createFlightRequest struct {
	RouteID       int64     `json:"route_id"`
	AirplaneID    int64     `json:"airplane_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CrewIDs       []int64   `json:"crew_ids"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.GET("/:id/availability", h.availability)
}

func (h *FlightHandler) list(c *gin.Context) {
	filter, err := flightFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flights, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight := domain.Flight{
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}
	if err := h.service.Create(c.Request.Context(), &flight, req.CrewIDs); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) availability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	available, err := h.service.Availability(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": id, "tickets_available": available})
}

func flightFilterFromQuery(c *gin.Context) (domain.FlightFilter, error) {
	var filter domain.FlightFilter
	if departure := c.Query("departure"); departure != "" {
		d, err := time.Parse("2006-01-02", departure)
		if err != nil {
			return filter, err
		}
		filter.DepartureDate = d
	}
	if arrival := c.Query("arrival"); arrival != "" {
		a, err := time.Parse("2006-01-02", arrival)
		if err != nil {
			return filter, err
		}
		filter.ArrivalDate = a
	}
	filter.Source = c.Query("source")
	filter.Destination = c.Query("destination")
	return filter, nil
}
