package domain

// SeatGrid is the physical seat layout of an airplane: rows numbered from 1
// to Rows, seats in each row numbered from 1 to SeatsInRow.
type SeatGrid struct {
	Rows       int `json:"rows"`
	SeatsInRow int `json:"seats_in_row"`
}

func (g SeatGrid) Capacity() int {
	return g.Rows * g.SeatsInRow
}

func (g SeatGrid) ValidRow(row int) bool {
	return row >= 1 && row <= g.Rows
}

func (g SeatGrid) ValidSeat(seat int) bool {
	return seat >= 1 && seat <= g.SeatsInRow
}

func (g SeatGrid) ValidCell(row, seat int) bool {
	return g.ValidRow(row) && g.ValidSeat(seat)
}

type AirplaneType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Airplane struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	TypeID   int64  `json:"airplane_type_id"`
	TypeName string `json:"airplane_type,omitempty"`
	SeatGrid
}
