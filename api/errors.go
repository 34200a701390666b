package api

import (
	"errors"
	"net/http"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps domain errors onto HTTP statuses and structured bodies.
// Validation failures name the offending field/seat/flight so callers can
// correct the request.
func writeError(c *gin.Context, err error) {
	var (
		unknownFlight *domain.UnknownFlightError
		outOfRange    *domain.OutOfRangeError
		seatTaken     *domain.SeatTakenError
		storage       *domain.StorageError
	)
	switch {
	case errors.Is(err, domain.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"kind": "empty_order", "error": err.Error()})
	case errors.As(err, &unknownFlight):
		c.JSON(http.StatusBadRequest, gin.H{
			"kind":      "unknown_flight",
			"error":     err.Error(),
			"flight_id": unknownFlight.FlightID,
		})
	case errors.As(err, &outOfRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"kind":        "out_of_range",
			"error":       err.Error(),
			"field":       outOfRange.Field,
			"requested":   outOfRange.Requested,
			"valid_range": []int{outOfRange.Min, outOfRange.Max},
		})
	case errors.As(err, &seatTaken):
		c.JSON(http.StatusBadRequest, gin.H{
			"kind":      "seat_taken",
			"error":     err.Error(),
			"flight_id": seatTaken.FlightID,
			"row":       seatTaken.Row,
			"seat":      seatTaken.Seat,
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &storage):
		c.JSON(http.StatusServiceUnavailable, gin.H{"kind": "storage_failure", "error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
