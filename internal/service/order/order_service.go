package order

import (
	"context"
	"log"
	"time"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/avialab/flightorders/internal/kafka"
	"github.com/avialab/flightorders/internal/repository"
	"github.com/google/uuid"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, userID int64, requests []domain.TicketRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, userID int64, reference string) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, error)
}

type Cache interface {
	AcquireSeatLock(ctx context.Context, flightID int64, row, seat int, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID int64, row, seat int) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type OrderService struct {
	orders             repository.OrderRepository
	cache              Cache
	producer           Producer
	ordersTopic        string
	notificationsTopic string
	seatLockTTL        time.Duration
}

type OrderServiceOption func(*OrderService)

func WithNotificationsTopic(topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.notificationsTopic = topic
	}
}

func NewOrderService(
	orders repository.OrderRepository,
	cache Cache,
	producer Producer,
	ordersTopic string,
	seatLockTTL time.Duration,
	opts ...OrderServiceOption,
) *OrderService {
	service := &OrderService{
		orders:      orders,
		cache:       cache,
		producer:    producer,
		ordersTopic: ordersTopic,
		seatLockTTL: seatLockTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateOrder books every requested seat atomically. The redis pre-locks
// reject obviously racing requests before the transaction; the repository
// performs the authoritative validation and the all-or-nothing write.
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, requests []domain.TicketRequest) (*domain.Order, error) {
	if len(requests) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	if s.cache != nil {
		acquired := make([]domain.TicketRequest, 0, len(requests))
		release := func() {
			for _, req := range acquired {
				_ = s.cache.ReleaseSeatLock(ctx, req.FlightID, req.Row, req.Seat)
			}
		}
		for _, req := range requests {
			ok, err := s.cache.AcquireSeatLock(ctx, req.FlightID, req.Row, req.Seat, s.seatLockTTL)
			if err != nil {
				release()
				return nil, err
			}
			if !ok {
				release()
				return nil, &domain.SeatTakenError{FlightID: req.FlightID, Row: req.Row, Seat: req.Seat}
			}
			acquired = append(acquired, req)
		}
		defer release()
	}

	order, err := s.orders.Create(ctx, userID, uuid.NewString(), requests)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("WARNING: failed to invalidate flights cache after order %s: %v", order.Reference, err)
		}
	}
	if err := s.publish(ctx, "order_created", order); err != nil {
		log.Printf("WARNING: failed to publish order_created event for order %s: %v", order.Reference, err)
	}
	return order, nil
}

// GetOrder resolves a reference for its owner only; someone else's order
// is indistinguishable from a missing one.
func (s *OrderService) GetOrder(ctx context.Context, userID int64, reference string) (*domain.Order, error) {
	found, err := s.orders.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if found.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.orders.ListByUser(ctx, userID, limit, offset)
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) error {
	if s.producer == nil || s.ordersTopic == "" {
		return nil
	}
	tickets := make([]kafka.OrderTicket, 0, len(order.Tickets))
	for _, t := range order.Tickets {
		tickets = append(tickets, kafka.OrderTicket{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat})
	}
	event := kafka.OrderEvent{
		Type:      eventType,
		Reference: order.Reference,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Tickets:   tickets,
		CreatedAt: order.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.ordersTopic, order.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, order.Reference, event)
	}
	return nil
}

var _ OrderUseCase = (*OrderService)(nil)
