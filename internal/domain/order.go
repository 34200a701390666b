package domain

import "time"

// SeatCell is a (row, seat) coordinate on a flight's seat grid.
type SeatCell struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// TicketRequest is one seat a caller wants to book as part of an order.
type TicketRequest struct {
	FlightID int64 `json:"flight_id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

func (r TicketRequest) Cell() SeatCell {
	return SeatCell{Row: r.Row, Seat: r.Seat}
}

type Ticket struct {
	ID       int64 `json:"id"`
	OrderID  int64 `json:"order_id"`
	FlightID int64 `json:"flight_id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

// Order owns its tickets: they are created with it and never detached.
type Order struct {
	ID        int64     `json:"id"`
	Reference string    `json:"reference"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}
