package domain

// ValidateSeat checks one requested cell against a flight's seat grid and
// the set of occupied cells. Row is checked before seat so a request wrong
// in both dimensions always reports the row. It only reads; callers must
// re-run it under the same isolation as the ticket write.
func ValidateSeat(grid SeatGrid, occupied map[SeatCell]struct{}, flightID int64, cell SeatCell) error {
	if !grid.ValidRow(cell.Row) {
		return &OutOfRangeError{Field: "row", Requested: cell.Row, Min: 1, Max: grid.Rows}
	}
	if !grid.ValidSeat(cell.Seat) {
		return &OutOfRangeError{Field: "seat", Requested: cell.Seat, Min: 1, Max: grid.SeatsInRow}
	}
	if _, taken := occupied[cell]; taken {
		return &SeatTakenError{FlightID: flightID, Row: cell.Row, Seat: cell.Seat}
	}
	return nil
}
