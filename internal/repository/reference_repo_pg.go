package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReferenceRepository maintains the registries the booking core reads but
// never writes: airports, airplane types, airplanes, routes and crew.
type ReferenceRepository interface {
	CreateAirport(ctx context.Context, airport *domain.Airport) error
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	CreateAirplaneType(ctx context.Context, t *domain.AirplaneType) error
	ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error)
	CreateAirplane(ctx context.Context, airplane *domain.Airplane) error
	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	CreateRoute(ctx context.Context, route *domain.Route) error
	ListRoutes(ctx context.Context, source, destination string) ([]domain.Route, error)
	CreateCrew(ctx context.Context, crew *domain.Crew) error
	ListCrew(ctx context.Context) ([]domain.Crew, error)
	AssignCrew(ctx context.Context, flightID int64, crewIDs []int64) error
}

type PGReferenceRepository struct {
	db *pgxpool.Pool
}

func NewReferenceRepository(db *pgxpool.Pool) ReferenceRepository {
	return &PGReferenceRepository{db: db}
}

func (r *PGReferenceRepository) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	return r.db.QueryRow(ctx, `INSERT INTO airports (name, closest_big_city) VALUES ($1, $2) RETURNING id`,
		airport.Name, airport.ClosestBigCity).Scan(&airport.ID)
}

func (r *PGReferenceRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, closest_big_city FROM airports ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.ClosestBigCity); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGReferenceRepository) CreateAirplaneType(ctx context.Context, t *domain.AirplaneType) error {
	return r.db.QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID)
}

func (r *PGReferenceRepository) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM airplane_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PGReferenceRepository) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	return r.db.QueryRow(ctx, `INSERT INTO airplanes (name, airplane_type_id, rows, seats_in_row) VALUES ($1, $2, $3, $4) RETURNING id`,
		airplane.Name, airplane.TypeID, airplane.Rows, airplane.SeatsInRow).Scan(&airplane.ID)
}

func (r *PGReferenceRepository) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, `SELECT a.id, a.name, a.airplane_type_id, t.name, a.rows, a.seats_in_row
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.airplane_type_id
		ORDER BY a.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.Name, &a.TypeID, &a.TypeName, &a.Rows, &a.SeatsInRow); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGReferenceRepository) CreateRoute(ctx context.Context, route *domain.Route) error {
	return r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		route.SourceID, route.DestinationID, route.Distance).Scan(&route.ID)
}

func (r *PGReferenceRepository) ListRoutes(ctx context.Context, source, destination string) ([]domain.Route, error) {
	query := `SELECT r.id, r.source_id, r.destination_id, s.name, d.name, r.distance
		FROM routes r
		JOIN airports s ON s.id = r.source_id
		JOIN airports d ON d.id = r.destination_id`
	var (
		conds []string
		args  []interface{}
	)
	if source != "" {
		args = append(args, "%"+source+"%")
		conds = append(conds, fmt.Sprintf("s.name ILIKE $%d", len(args)))
	}
	if destination != "" {
		args = append(args, "%"+destination+"%")
		conds = append(conds, fmt.Sprintf("d.name ILIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY s.name, d.name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var rt domain.Route
		if err := rows.Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.SourceName, &rt.DestinationName, &rt.Distance); err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	return routes, rows.Err()
}

func (r *PGReferenceRepository) CreateCrew(ctx context.Context, crew *domain.Crew) error {
	return r.db.QueryRow(ctx, `INSERT INTO crew (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		crew.FirstName, crew.LastName).Scan(&crew.ID)
}

func (r *PGReferenceRepository) ListCrew(ctx context.Context) ([]domain.Crew, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name FROM crew ORDER BY last_name, first_name`)
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

func (r *PGReferenceRepository) AssignCrew(ctx context.Context, flightID int64, crewIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, crewID := range crewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, flightID, crewID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

var _ ReferenceRepository = (*PGReferenceRepository)(nil)
