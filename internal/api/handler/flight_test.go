package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/soraneoumi/flight-booking/internal/application"
	"github.com/soraneoumi/flight-booking/internal/domain/flight"
)

func TestFlightHandler_Load(t *testing.T) {
	e := NewTestEcho()

	t.Run("フライトを登録する", func(t *testing.T) {
		mockService := new(MockBookingService)
		mockService.On("LoadFlight", mock.Anything, application.LoadFlightInput{
			ID: 1, DepartureAirport: 31, ArrivalAirport: 44,
			DepartureTime: "10:00:00", ArrivalTime: "14:30:00",
			SeatClasses: []flight.SeatClass{{UpperRow: 20, Price: 100}},
		}).Return(&flight.Flight{
			ID: 1, DepartureAirport: 31, ArrivalAirport: 44,
			DepartureTime: "10:00:00", ArrivalTime: "14:30:00",
			SeatClasses: []flight.SeatClass{{UpperRow: 20, Price: 100}},
		}, nil)
		h := NewFlightHandler(mockService)

		body := `{"id":1,"departure_airport":31,"arrival_airport":44,"departure_time":"10:00:00","arrival_time":"14:30:00","seat_classes":[{"upper_row":20,"price":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/flights", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.Load(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp FlightResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.ID)
		assert.Equal(t, []SeatClassRequest{{UpperRow: 20, Price: 100}}, resp.SeatClasses)
		mockService.AssertExpectations(t)
	})

	t.Run("座席クラスが空", func(t *testing.T) {
		h := NewFlightHandler(new(MockBookingService))

		body := `{"id":1,"departure_airport":31,"arrival_airport":44,"departure_time":"10:00:00","arrival_time":"14:30:00","seat_classes":[]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/flights", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Load(c)
		require.Error(t, err)
	})

	t.Run("行上限が非単調でカタログに拒否される", func(t *testing.T) {
		mockService := new(MockBookingService)
		mockService.On("LoadFlight", mock.Anything, mock.Anything).Return(nil, flight.ErrInvalidSeatClasses)
		h := NewFlightHandler(mockService)

		body := `{"id":1,"departure_airport":31,"arrival_airport":44,"departure_time":"10:00:00","arrival_time":"14:30:00","seat_classes":[{"upper_row":10,"price":100},{"upper_row":5,"price":50}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/flights", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Load(c)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestFlightHandler_SeatSearch(t *testing.T) {
	e := NewTestEcho()

	t.Run("座席表を取得する", func(t *testing.T) {
		m := &application.SeatMap{Date: "2024/03/15", FlightID: 1}
		for ti := 0; ti < flight.NumSeatTypes; ti++ {
			for row := 0; row < flight.NumRows; row++ {
				m.Cells[ti][row] = application.SeatCell{Class: 1}
			}
		}
		m.Cells[0][0].Held = true

		mockService := new(MockBookingService)
		mockService.On("SeatSearch", mock.Anything, "2024/03/15", 1).Return(m, nil)
		h := NewFlightHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/1/seats?date=2024/03/15", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, h.SeatSearch(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp SeatMapResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.FlightID)
		assert.Equal(t, "X1111111111111111111", resp.Seats["A"])
		assert.Equal(t, "11111111111111111111", resp.Seats["D"])
		mockService.AssertExpectations(t)
	})

	t.Run("dateパラメーターがない", func(t *testing.T) {
		h := NewFlightHandler(new(MockBookingService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/1/seats", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("1")

		err := h.SeatSearch(c)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("フライトが存在しない", func(t *testing.T) {
		mockService := new(MockBookingService)
		mockService.On("SeatSearch", mock.Anything, "2024/03/15", 99).Return(nil, flight.ErrFlightNotFound)
		h := NewFlightHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/99/seats?date=2024/03/15", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("99")

		err := h.SeatSearch(c)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestFlightHandler_Search(t *testing.T) {
	e := NewTestEcho()

	t.Run("フライトを検索する", func(t *testing.T) {
		mockService := new(MockBookingService)
		mockService.On("FlightSearch", mock.Anything, "2024/03/15", 31, 44).Return([]application.FlightAvailability{
			{
				Flight: &flight.Flight{ID: 1, DepartureTime: "06:00:00", ArrivalTime: "10:30:00"},
				Classes: []application.ClassAvailability{
					{Class: 1, Available: 80, Price: 100},
				},
			},
		}, nil)
		h := NewFlightHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/flights?date=2024/03/15&from=31&to=44", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.Search(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []FlightAvailabilityResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, 1, resp[0].ID)
		assert.Equal(t, []ClassAvailabilityResponse{{Class: 1, Available: 80, Price: 100}}, resp[0].Classes)
		mockService.AssertExpectations(t)
	})

	t.Run("fromパラメーターが不正", func(t *testing.T) {
		h := NewFlightHandler(new(MockBookingService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/flights?date=2024/03/15&from=abc&to=44", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.Search(c)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
