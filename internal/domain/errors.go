package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyOrder rejects an order with zero ticket requests.
var ErrEmptyOrder = errors.New("order must contain at least one ticket")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// UnknownFlightError means a ticket request referenced a flight that does
// not exist.
type UnknownFlightError struct {
	FlightID int64
}

func (e *UnknownFlightError) Error() string {
	return fmt.Sprintf("flight %d does not exist", e.FlightID)
}

// OutOfRangeError means a requested row or seat falls outside the airplane's
// seat grid. Field is "row" or "seat".
type OutOfRangeError struct {
	Field     string
	Requested int
	Min       int
	Max       int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d is out of range [%d, %d]", e.Field, e.Requested, e.Min, e.Max)
}

// SeatTakenError means the seat cell is already occupied on that flight,
// either by a committed ticket or by an earlier request in the same order.
type SeatTakenError struct {
	FlightID int64
	Row      int
	Seat     int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat %d in row %d is already taken on flight %d", e.Seat, e.Row, e.FlightID)
}

// StorageError wraps a transient storage failure. The caller may retry, but
// must check for the order's existence first: the failed attempt may have
// committed.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "storage failure: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
