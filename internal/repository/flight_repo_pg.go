package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error)
	Create(ctx context.Context, flight *domain.Flight) error
	AvailableSeats(ctx context.Context, flightID int64) (int, error)
	BookedCells(ctx context.Context, flightID int64) ([]domain.SeatCell, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `f.id, f.route_id, s.name, d.name, f.airplane_id, a.name, a.rows, a.seats_in_row,
	f.departure_time, f.arrival_time,
	a.rows * a.seats_in_row - COUNT(t.id) AS tickets_available,
	f.created_at, f.updated_at`

const flightJoins = `FROM flights f
	JOIN routes r ON r.id = f.route_id
	JOIN airports s ON s.id = r.source_id
	JOIN airports d ON d.id = r.destination_id
	JOIN airplanes a ON a.id = f.airplane_id
	LEFT JOIN tickets t ON t.flight_id = f.id`

const flightGroupBy = `GROUP BY f.id, s.name, d.name, a.name, a.rows, a.seats_in_row`

func (r *PGFlightRepository) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	var (
		conds []string
		args  []interface{}
	)
	if !filter.DepartureDate.IsZero() {
		args = append(args, filter.DepartureDate)
		conds = append(conds, fmt.Sprintf("f.departure_time::date = $%d::date", len(args)))
	}
	if !filter.ArrivalDate.IsZero() {
		args = append(args, filter.ArrivalDate)
		conds = append(conds, fmt.Sprintf("f.arrival_time::date = $%d::date", len(args)))
	}
	if filter.Source != "" {
		args = append(args, "%"+filter.Source+"%")
		conds = append(conds, fmt.Sprintf("s.name ILIKE $%d", len(args)))
	}
	if filter.Destination != "" {
		args = append(args, "%"+filter.Destination+"%")
		conds = append(conds, fmt.Sprintf("d.name ILIKE $%d", len(args)))
	}

	query := "SELECT " + flightColumns + " " + flightJoins
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " " + flightGroupBy + " ORDER BY f.departure_time"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	query := "SELECT " + flightColumns + " " + flightJoins + " WHERE f.id=$1 " + flightGroupBy
	var detail domain.FlightDetail
	if err := scanFlight(r.db.QueryRow(ctx, query, id), &detail.Flight); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	cells, err := r.BookedCells(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.TakenPlaces = cells

	crew, err := r.flightCrew(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Crew = crew

	return &detail, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt)
}

// AvailableSeats is a query-time aggregate, never a stored counter, so it
// stays correct under concurrent booking.
func (r *PGFlightRepository) AvailableSeats(ctx context.Context, flightID int64) (int, error) {
	var available int
	err := r.db.QueryRow(ctx, `SELECT a.rows * a.seats_in_row - COUNT(t.id)
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		LEFT JOIN tickets t ON t.flight_id = f.id
		WHERE f.id=$1
		GROUP BY a.rows, a.seats_in_row`, flightID).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, &domain.UnknownFlightError{FlightID: flightID}
	}
	if err != nil {
		return 0, err
	}
	return available, nil
}

func (r *PGFlightRepository) BookedCells(ctx context.Context, flightID int64) ([]domain.SeatCell, error) {
	rows, err := r.db.Query(ctx, `SELECT row_no, seat_no FROM tickets WHERE flight_id=$1 ORDER BY row_no, seat_no`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cells := make([]domain.SeatCell, 0)
	for rows.Next() {
		var c domain.SeatCell
		if err := rows.Scan(&c.Row, &c.Seat); err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, rows.Err()
}

func (r *PGFlightRepository) flightCrew(ctx context.Context, flightID int64) ([]domain.Crew, error) {
	rows, err := r.db.Query(ctx, `SELECT c.id, c.first_name, c.last_name
		FROM crew c
		JOIN flight_crew fc ON fc.crew_id = c.id
		WHERE fc.flight_id=$1
		ORDER BY c.last_name, c.first_name`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crew := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		crew = append(crew, c)
	}
	return crew, rows.Err()
}

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.ID, &f.RouteID, &f.Source, &f.Destination, &f.AirplaneID, &f.AirplaneName,
		&f.Grid.Rows, &f.Grid.SeatsInRow, &f.DepartureTime, &f.ArrivalTime,
		&f.TicketsAvailable, &f.CreatedAt, &f.UpdatedAt)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
