package domain

import "time"

type Flight struct {
	ID               int64     `json:"id"`
	RouteID          int64     `json:"route_id"`
	Source           string    `json:"source,omitempty"`
	Destination      string    `json:"destination,omitempty"`
	AirplaneID       int64     `json:"airplane_id"`
	AirplaneName     string    `json:"airplane,omitempty"`
	Grid             SeatGrid  `json:"grid"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FlightDetail is a flight with its occupied seat cells and assigned crew.
type FlightDetail struct {
	Flight
	TakenPlaces []SeatCell `json:"taken_places"`
	Crew        []Crew     `json:"crew"`
}

// FlightFilter narrows flight listings. Zero values mean "no filter".
type FlightFilter struct {
	DepartureDate time.Time
	ArrivalDate   time.Time
	Source        string
	Destination   string
}

func (f FlightFilter) IsZero() bool {
	return f.DepartureDate.IsZero() && f.ArrivalDate.IsZero() && f.Source == "" && f.Destination == ""
}
