package repository

import (
	"context"
	"errors"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type OrderRepository interface {
	Create(ctx context.Context, userID int64, reference string, requests []domain.TicketRequest) (*domain.Order, error)
	GetByReference(ctx context.Context, reference string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, error)
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

// Create books every requested seat or none of them. All validation runs
// inside the transaction so the checks and the inserts see the same
// snapshot; the unique index on tickets (flight_id, row_no, seat_no) is
// the authoritative guard against concurrent writers, the in-tx checks
// only produce a friendlier error first.
func (r *PGOrderRepository) Create(ctx context.Context, userID int64, reference string, requests []domain.TicketRequest) (*domain.Order, error) {
	if len(requests) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, &domain.StorageError{Err: err}
	}
	defer tx.Rollback(ctx)

	grids := make(map[int64]domain.SeatGrid)
	occupied := make(map[int64]map[domain.SeatCell]struct{})
	for _, req := range requests {
		grid, ok := grids[req.FlightID]
		if !ok {
			err := tx.QueryRow(ctx, `SELECT a.rows, a.seats_in_row
				FROM flights f
				JOIN airplanes a ON a.id = f.airplane_id
				WHERE f.id=$1`, req.FlightID).Scan(&grid.Rows, &grid.SeatsInRow)
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, &domain.UnknownFlightError{FlightID: req.FlightID}
			}
			if err != nil {
				return nil, &domain.StorageError{Err: err}
			}
			grids[req.FlightID] = grid

			cells, err := bookedCellsTx(ctx, tx, req.FlightID)
			if err != nil {
				return nil, &domain.StorageError{Err: err}
			}
			occupied[req.FlightID] = cells
		}

		if err := domain.ValidateSeat(grid, occupied[req.FlightID], req.FlightID, req.Cell()); err != nil {
			return nil, err
		}
		// Stage the cell so a duplicate later in the same batch is
		// caught before anything hits the unique index.
		occupied[req.FlightID][req.Cell()] = struct{}{}
	}

	order := &domain.Order{UserID: userID, Reference: reference}
	if err := tx.QueryRow(ctx, `INSERT INTO orders (user_id, reference) VALUES ($1, $2) RETURNING id, created_at`,
		userID, reference).Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, &domain.StorageError{Err: err}
	}

	for _, req := range requests {
		ticket := domain.Ticket{OrderID: order.ID, FlightID: req.FlightID, Row: req.Row, Seat: req.Seat}
		if err := tx.QueryRow(ctx, `INSERT INTO tickets (order_id, flight_id, row_no, seat_no) VALUES ($1, $2, $3, $4) RETURNING id`,
			order.ID, req.FlightID, req.Row, req.Seat).Scan(&ticket.ID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return nil, &domain.SeatTakenError{FlightID: req.FlightID, Row: req.Row, Seat: req.Seat}
			}
			return nil, &domain.StorageError{Err: err}
		}
		order.Tickets = append(order.Tickets, ticket)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &domain.StorageError{Err: err}
	}
	return order, nil
}

func bookedCellsTx(ctx context.Context, tx pgx.Tx, flightID int64) (map[domain.SeatCell]struct{}, error) {
	rows, err := tx.Query(ctx, `SELECT row_no, seat_no FROM tickets WHERE flight_id=$1`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cells := make(map[domain.SeatCell]struct{})
	for rows.Next() {
		var c domain.SeatCell
		if err := rows.Scan(&c.Row, &c.Seat); err != nil {
			return nil, err
		}
		cells[c] = struct{}{}
	}
	return cells, rows.Err()
}

func (r *PGOrderRepository) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `SELECT id, reference, user_id, created_at FROM orders WHERE reference=$1`, reference).
		Scan(&o.ID, &o.Reference, &o.UserID, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	tickets, err := r.orderTickets(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Tickets = tickets[o.ID]
	return &o, nil
}

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT id, reference, user_id, created_at
		FROM orders
		WHERE user_id=$1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Reference, &o.UserID, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	tickets, err := r.orderTickets(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Tickets = tickets[orders[i].ID]
	}
	return orders, nil
}

func (r *PGOrderRepository) orderTickets(ctx context.Context, orderIDs []int64) (map[int64][]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT id, order_id, flight_id, row_no, seat_no
		FROM tickets
		WHERE order_id = ANY($1)
		ORDER BY id`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := make(map[int64][]domain.Ticket)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.OrderID, &t.FlightID, &t.Row, &t.Seat); err != nil {
			return nil, err
		}
		byOrder[t.OrderID] = append(byOrder[t.OrderID], t)
	}
	return byOrder, rows.Err()
}

var _ OrderRepository = (*PGOrderRepository)(nil)
