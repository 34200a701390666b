package domain

type Airport struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type Route struct {
	ID              int64  `json:"id"`
	SourceID        int64  `json:"source_id"`
	DestinationID   int64  `json:"destination_id"`
	SourceName      string `json:"source,omitempty"`
	DestinationName string `json:"destination,omitempty"`
	Distance        int    `json:"distance"`
}

type Crew struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}
