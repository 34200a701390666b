package api

import (
	"net/http"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/avialab/flightorders/internal/service/reference"
	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	service reference.ReferenceUseCase
}

func NewReferenceHandler(service reference.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

func (h *ReferenceHandler) Register(router *gin.RouterGroup) {
	router.GET("/airports", h.listAirports)
	router.POST("/airports", h.createAirport)
	router.GET("/airplane_types", h.listAirplaneTypes)
	router.POST("/airplane_types", h.createAirplaneType)
	router.GET("/airplanes", h.listAirplanes)
	router.POST("/airplanes", h.createAirplane)
	router.GET("/routes", h.listRoutes)
	router.POST("/routes", h.createRoute)
	router.GET("/crews", h.listCrew)
	router.POST("/crews", h.createCrew)
}

func (h *ReferenceHandler) listAirports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *ReferenceHandler) createAirport(c *gin.Context) {
	var airport domain.Airport
	if err := c.ShouldBindJSON(&airport); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateAirport(c.Request.Context(), &airport); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airport)
}

func (h *ReferenceHandler) listAirplaneTypes(c *gin.Context) {
	types, err := h.service.ListAirplaneTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *ReferenceHandler) createAirplaneType(c *gin.Context) {
	var t domain.AirplaneType
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateAirplaneType(c.Request.Context(), &t); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *ReferenceHandler) listAirplanes(c *gin.Context) {
	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, airplanes)
}

func (h *ReferenceHandler) createAirplane(c *gin.Context) {
	var airplane domain.Airplane
	if err := c.ShouldBindJSON(&airplane); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateAirplane(c.Request.Context(), &airplane); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplane)
}

func (h *ReferenceHandler) listRoutes(c *gin.Context) {
	routes, err := h.service.ListRoutes(c.Request.Context(), c.Query("source"), c.Query("destination"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (h *ReferenceHandler) createRoute(c *gin.Context) {
	var route domain.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateRoute(c.Request.Context(), &route); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

func (h *ReferenceHandler) listCrew(c *gin.Context) {
	crew, err := h.service.ListCrew(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, crew)
}

func (h *ReferenceHandler) createCrew(c *gin.Context) {
	var crew domain.Crew
	if err := c.ShouldBindJSON(&crew); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CreateCrew(c.Request.Context(), &crew); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crew)
}
