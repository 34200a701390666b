package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avialab/flightorders/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetail), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) AvailableSeats(ctx context.Context, flightID int64) (int, error) {
	args := m.Called(ctx, flightID)
	return args.Int(0), args.Error(1)
}

func (m *MockFlightRepository) BookedCells(ctx context.Context, flightID int64) ([]domain.SeatCell, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.SeatCell), args.Error(1)
}

type MockCrewAssigner struct {
	mock.Mock
}

func (m *MockCrewAssigner) AssignCrew(ctx context.Context, flightID int64, crewIDs []int64) error {
	args := m.Called(ctx, flightID, crewIDs)
	return args.Error(0)
}

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, nil, mockCache, time.Minute)

	ctx := context.Background()
	cached := []domain.Flight{{ID: 1, Source: "JFK"}}
	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	flights, err := service.List(ctx, domain.FlightFilter{})

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	mockRepo.AssertNotCalled(t, "List")
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, nil, mockCache, time.Minute)

	ctx := context.Background()
	fromDB := []domain.Flight{{ID: 1}, {ID: 2}}
	mockCache.On("GetFlights", ctx).Return(nil, nil).Once()
	mockRepo.On("List", ctx, domain.FlightFilter{}).Return(fromDB, nil).Once()
	mockCache.On("SetFlights", ctx, fromDB).Return(nil).Once()

	flights, err := service.List(ctx, domain.FlightFilter{})

	assert.NoError(t, err)
	assert.Equal(t, fromDB, flights)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

// Filtered listings carry availability counts and must come from committed
// state, never the cache.
func TestFlightService_List_FilteredBypassesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, nil, mockCache, time.Minute)

	ctx := context.Background()
	filter := domain.FlightFilter{Source: "JFK"}
	fromDB := []domain.Flight{{ID: 1}}
	mockRepo.On("List", ctx, filter).Return(fromDB, nil).Once()

	flights, err := service.List(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, fromDB, flights)
	mockCache.AssertNotCalled(t, "GetFlights")
	mockCache.AssertNotCalled(t, "SetFlights")
}

func TestFlightService_Create_DepartureAfterArrival(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, time.Minute)

	now := time.Now()
	flight := &domain.Flight{
		RouteID:       1,
		AirplaneID:    1,
		DepartureTime: now.Add(2 * time.Hour),
		ArrivalTime:   now,
	}

	err := service.Create(context.Background(), flight, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "departure time must be before arrival time")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestFlightService_Create_AssignsCrew(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCrew := &MockCrewAssigner{}
	service := NewFlightService(mockRepo, mockCrew, nil, time.Minute)

	ctx := context.Background()
	now := time.Now()
	flight := &domain.Flight{
		RouteID:       1,
		AirplaneID:    1,
		DepartureTime: now,
		ArrivalTime:   now.Add(2 * time.Hour),
	}

	mockRepo.On("Create", ctx, flight).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Flight).ID = 5
	}).Return(nil).Once()
	mockCrew.On("AssignCrew", ctx, int64(5), []int64{2, 3}).Return(nil).Once()

	err := service.Create(ctx, flight, []int64{2, 3})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCrew.AssertExpectations(t)
}

func TestFlightService_Create_NoCrew(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCrew := &MockCrewAssigner{}
	service := NewFlightService(mockRepo, mockCrew, nil, time.Minute)

	ctx := context.Background()
	now := time.Now()
	flight := &domain.Flight{RouteID: 1, AirplaneID: 1, DepartureTime: now, ArrivalTime: now.Add(time.Hour)}

	mockRepo.On("Create", ctx, flight).Return(nil).Once()

	err := service.Create(ctx, flight, nil)

	assert.NoError(t, err)
	mockCrew.AssertNotCalled(t, "AssignCrew")
}

func TestFlightService_Availability(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, time.Minute)

	ctx := context.Background()
	mockRepo.On("AvailableSeats", ctx, int64(3)).Return(2, nil).Once()

	available, err := service.Availability(ctx, 3)

	assert.NoError(t, err)
	assert.Equal(t, 2, available)
}

func TestFlightService_Availability_UnknownFlight(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, time.Minute)

	ctx := context.Background()
	mockRepo.On("AvailableSeats", ctx, int64(99)).Return(0, &domain.UnknownFlightError{FlightID: 99}).Once()

	_, err := service.Availability(ctx, 99)

	var unknown *domain.UnknownFlightError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, int64(99), unknown.FlightID)
}

func TestFlightService_GetByID_Error(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil, nil, time.Minute)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(5)).Return(nil, errors.New("boom")).Once()

	detail, err := service.GetByID(ctx, 5)

	assert.Error(t, err)
	assert.Nil(t, detail)
}
