package e2e

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/soraneoumi/flight-booking/internal/api"
	"github.com/soraneoumi/flight-booking/internal/api/handler"
	"github.com/soraneoumi/flight-booking/internal/api/middleware"
	"github.com/soraneoumi/flight-booking/internal/application"
	"github.com/soraneoumi/flight-booking/internal/config"
	"github.com/soraneoumi/flight-booking/internal/infrastructure/memory"
)

// TestServer はE2Eテスト用のサーバー
// ストアはすべてインメモリなので、テストごとに独立したサーバーを
// 安価に作れる
type TestServer struct {
	Echo    *echo.Echo
	Service *application.BookingService
}

// NewTestServer はテスト用サーバーを作成
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	cfg := config.Load()

	service := application.NewBookingService(
		memory.NewCatalog(),
		memory.NewLedger(),
		memory.NewOccupancyTable(),
		nil,
	)

	reservationHandler := handler.NewReservationHandler(service)
	flightHandler := handler.NewFlightHandler(service)
	healthHandler := handler.NewHealthHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	middleware.SetupMiddleware(e, cfg)

	v1 := e.Group("/api/v1")
	v1.GET("/health", healthHandler.Check)
	v1.POST("/flights", flightHandler.Load)
	v1.GET("/flights", flightHandler.Search)
	v1.GET("/flights/:id/seats", flightHandler.SeatSearch)
	v1.POST("/reservations", reservationHandler.Reserve)
	v1.GET("/reservations", reservationHandler.List)
	v1.POST("/reservations/:id/cancel", reservationHandler.Cancel)

	return &TestServer{Echo: e, Service: service}
}

// Request はHTTPリクエストを実行
func (s *TestServer) Request(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}
