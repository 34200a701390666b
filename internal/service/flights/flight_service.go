package flights

import (
	"context"
	"errors"
	"time"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/avialab/flightorders/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error)
	Create(ctx context.Context, flight *domain.Flight, crewIDs []int64) error
	Availability(ctx context.Context, flightID int64) (int, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

// CrewAssigner attaches crew members to a flight; the reference repository
// implements it.
type CrewAssigner interface {
	AssignCrew(ctx context.Context, flightID int64, crewIDs []int64) error
}

type FlightService struct {
	repo     repository.FlightRepository
	crew     CrewAssigner
	cache    FlightCache
	cacheTTL time.Duration
}

func NewFlightService(repo repository.FlightRepository, crew CrewAssigner, cache FlightCache, cacheTTL time.Duration) *FlightService {
	return &FlightService{repo: repo, crew: crew, cache: cache, cacheTTL: cacheTTL}
}

// List serves the unfiltered listing cache-aside. Filtered listings bypass
// the cache: availability counts must come from committed state.
func (s *FlightService) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	if s.cache != nil && filter.IsZero() {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && filter.IsZero() {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, flight *domain.Flight, crewIDs []int64) error {
	if !flight.DepartureTime.Before(flight.ArrivalTime) {
		return errors.New("departure time must be before arrival time")
	}
	if len(crewIDs) > 0 && s.crew == nil {
		return errors.New("crew assignment is not available")
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return err
	}
	if len(crewIDs) > 0 {
		return s.crew.AssignCrew(ctx, flight.ID, crewIDs)
	}
	return nil
}

// Availability is recomputed from committed tickets on every call.
func (s *FlightService) Availability(ctx context.Context, flightID int64) (int, error) {
	return s.repo.AvailableSeats(ctx, flightID)
}

var _ FlightUseCase = (*FlightService)(nil)
