package reference

import (
	"context"
	"errors"
	"strings"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/avialab/flightorders/internal/repository"
)

type ReferenceUseCase interface {
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
}

type ReferenceService struct {
	repo repository.ReferenceRepository
}

func NewReferenceService(repo repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{repo: repo}
}

func (s *ReferenceService) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	airport.Name = strings.TrimSpace(airport.Name)
	if airport.Name == "" {
		return errors.New("airport name is required")
	}
	return s.repo.CreateAirport(ctx, airport)
}

func (s *ReferenceService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.repo.ListAirports(ctx)
}

func (s *ReferenceService) CreateAirplaneType(ctx context.Context, t *domain.AirplaneType) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return errors.New("airplane type name is required")
	}
	return s.repo.CreateAirplaneType(ctx, t)
}

func (s *ReferenceService) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.repo.ListAirplaneTypes(ctx)
}

func (s *ReferenceService) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	airplane.Name = strings.TrimSpace(airplane.Name)
	if airplane.Name == "" {
		return errors.New("airplane name is required")
	}
	if airplane.Rows < 1 || airplane.SeatsInRow < 1 {
		return errors.New("rows and seats_in_row must be positive")
	}
	return s.repo.CreateAirplane(ctx, airplane)
}

func (s *ReferenceService) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	return s.repo.ListAirplanes(ctx)
}

func (s *ReferenceService) CreateRoute(ctx context.Context, route *domain.Route) error {
	if route.SourceID == route.DestinationID {
		return errors.New("the city of departure and arrival cannot be the same")
	}
	if route.Distance < 0 {
		return errors.New("the distance cannot be negative")
	}
	return s.repo.CreateRoute(ctx, route)
}

func (s *ReferenceService) ListRoutes(ctx context.Context, source, destination string) ([]domain.Route, error) {
	return s.repo.ListRoutes(ctx, source, destination)
}

func (s *ReferenceService) CreateCrew(ctx context.Context, crew *domain.Crew) error {
	crew.FirstName = strings.TrimSpace(crew.FirstName)
	crew.LastName = strings.TrimSpace(crew.LastName)
	if crew.FirstName == "" || crew.LastName == "" {
		return errors.New("first and last name are required")
	}
	return s.repo.CreateCrew(ctx, crew)
}

func (s *ReferenceService) ListCrew(ctx context.Context) ([]domain.Crew, error) {
	return s.repo.ListCrew(ctx)
}

var _ ReferenceUseCase = (*ReferenceService)(nil)
