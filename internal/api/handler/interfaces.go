package handler

import (
	"context"

	"github.com/soraneoumi/flight-booking/internal/application"
	"github.com/soraneoumi/flight-booking/internal/domain/flight"
	"github.com/soraneoumi/flight-booking/internal/domain/reservation"
)

// BookingServiceInterface は予約エンジンのインターフェース
type BookingServiceInterface interface {
	LoadFlight(ctx context.Context, input application.LoadFlightInput) (*flight.Flight, error)
	Reserve(ctx context.Context, input application.ReserveInput) (*reservation.Reservation, error)
	Cancel(ctx context.Context, input application.CancelInput) error
	SeatSearch(ctx context.Context, date string, flightID int) (*application.SeatMap, error)
	GetReservations(ctx context.Context, userID string) ([]application.ReservationDetail, error)
	FlightSearch(ctx context.Context, date string, departureAirport, arrivalAirport int) ([]application.FlightAvailability, error)
}
