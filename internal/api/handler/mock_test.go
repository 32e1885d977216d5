package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/soraneoumi/flight-booking/internal/application"
	"github.com/soraneoumi/flight-booking/internal/domain/flight"
	"github.com/soraneoumi/flight-booking/internal/domain/reservation"
)

// MockBookingService はBookingServiceInterfaceのモック
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) LoadFlight(ctx context.Context, input application.LoadFlightInput) (*flight.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flight.Flight), args.Error(1)
}

func (m *MockBookingService) Reserve(ctx context.Context, input application.ReserveInput) (*reservation.Reservation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.Reservation), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, input application.CancelInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockBookingService) SeatSearch(ctx context.Context, date string, flightID int) (*application.SeatMap, error) {
	args := m.Called(ctx, date, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.SeatMap), args.Error(1)
}

func (m *MockBookingService) GetReservations(ctx context.Context, userID string) ([]application.ReservationDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]application.ReservationDetail), args.Error(1)
}

func (m *MockBookingService) FlightSearch(ctx context.Context, date string, departureAirport, arrivalAirport int) ([]application.FlightAvailability, error) {
	args := m.Called(ctx, date, departureAirport, arrivalAirport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]application.FlightAvailability), args.Error(1)
}
