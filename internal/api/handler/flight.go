package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/soraneoumi/flight-booking/internal/api"
	"github.com/soraneoumi/flight-booking/internal/application"
	"github.com/soraneoumi/flight-booking/internal/domain/flight"
)

// FlightHandler はフライト系エンドポイントのハンドラー
type FlightHandler struct {
	service BookingServiceInterface
}

// NewFlightHandler はFlightHandlerを作成する
func NewFlightHandler(s BookingServiceInterface) *FlightHandler {
	return &FlightHandler{service: s}
}

// SeatClassRequest は座席クラス定義
type SeatClassRequest struct {
	UpperRow int `json:"upper_row" validate:"required,min=1" example:"10"`
	Price    int `json:"price" validate:"min=0" example:"100"`
}

// LoadFlightRequest はカタログ登録リクエスト
type LoadFlightRequest struct {
	ID               int                `json:"id" validate:"required,min=1" example:"1"`
	DepartureAirport int                `json:"departure_airport" validate:"required" example:"31"`
	ArrivalAirport   int                `json:"arrival_airport" validate:"required" example:"44"`
	DepartureTime    string             `json:"departure_time" validate:"required" example:"10:00:00"`
	ArrivalTime      string             `json:"arrival_time" validate:"required" example:"14:30:00"`
	SeatClasses      []SeatClassRequest `json:"seat_classes" validate:"required,min=1,dive"`
}

// FlightResponse はフライトのレスポンス
type FlightResponse struct {
	ID               int                `json:"id"`
	DepartureAirport int                `json:"departure_airport"`
	ArrivalAirport   int                `json:"arrival_airport"`
	DepartureTime    string             `json:"departure_time"`
	ArrivalTime      string             `json:"arrival_time"`
	SeatClasses      []SeatClassRequest `json:"seat_classes"`
}

// SeatMapResponse は座席表のレスポンス
// Seatsは座席タイプごとの記号列（行1から行20、"X"は予約不可）
type SeatMapResponse struct {
	FlightID int               `json:"flight_id"`
	Date     string            `json:"date"`
	Seats    map[string]string `json:"seats"`
}

// ClassAvailabilityResponse は座席クラスごとの空席情報
type ClassAvailabilityResponse struct {
	Class     int `json:"class"`
	Available int `json:"available"`
	Price     int `json:"price"`
}

// FlightAvailabilityResponse はフライト検索結果の1件
type FlightAvailabilityResponse struct {
	ID            int                         `json:"id"`
	DepartureTime string                      `json:"departure_time"`
	ArrivalTime   string                      `json:"arrival_time"`
	Classes       []ClassAvailabilityResponse `json:"classes"`
}

func toFlightResponse(f *flight.Flight) FlightResponse {
	classes := make([]SeatClassRequest, len(f.SeatClasses))
	for i, sc := range f.SeatClasses {
		classes[i] = SeatClassRequest{UpperRow: sc.UpperRow, Price: sc.Price}
	}
	return FlightResponse{
		ID:               f.ID,
		DepartureAirport: f.DepartureAirport,
		ArrivalAirport:   f.ArrivalAirport,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		SeatClasses:      classes,
	}
}

// Load godoc
// @Summary フライトをカタログに登録
// @Description 起動時のカタログ投入用エンドポイント
// @Tags flights
// @Accept json
// @Produce json
// @Param request body LoadFlightRequest true "フライト定義"
// @Success 201 {object} FlightResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /flights [post]
func (h *FlightHandler) Load(c echo.Context) error {
	var req LoadFlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	seatClasses := make([]flight.SeatClass, len(req.SeatClasses))
	for i, sc := range req.SeatClasses {
		seatClasses[i] = flight.SeatClass{UpperRow: sc.UpperRow, Price: sc.Price}
	}
	f, err := h.service.LoadFlight(c.Request().Context(), application.LoadFlightInput{
		ID:               req.ID,
		DepartureAirport: req.DepartureAirport,
		ArrivalAirport:   req.ArrivalAirport,
		DepartureTime:    req.DepartureTime,
		ArrivalTime:      req.ArrivalTime,
		SeatClasses:      seatClasses,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, toFlightResponse(f))
}

// SeatSearch godoc
// @Summary 座席表を取得
// @Description 指定の搭乗日・フライトの座席表を返します
// @Tags flights
// @Produce json
// @Param id path int true "フライトID"
// @Param date query string true "搭乗日（YYYY/MM/DD）"
// @Success 200 {object} SeatMapResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /flights/{id}/seats [get]
func (h *FlightHandler) SeatSearch(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "フライトIDが不正です")
	}
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "dateパラメーターが必要です")
	}
	m, err := h.service.SeatSearch(c.Request().Context(), date, id)
	if err != nil {
		return echo.NewHTTPError(api.DomainErrorStatus(err), err.Error())
	}
	seats := make(map[string]string, flight.NumSeatTypes)
	lines := m.Lines()
	for i, seatType := range flight.SeatTypes() {
		seats[seatType.String()] = lines[i]
	}
	return c.JSON(http.StatusOK, SeatMapResponse{FlightID: id, Date: date, Seats: seats})
}

// Search godoc
// @Summary フライトを検索
// @Description 指定区間のフライトを空席数つきで返します
// @Tags flights
// @Produce json
// @Param date query string true "搭乗日（YYYY/MM/DD）"
// @Param from query int true "出発空港"
// @Param to query int true "到着空港"
// @Success 200 {array} FlightAvailabilityResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /flights [get]
func (h *FlightHandler) Search(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "dateパラメーターが必要です")
	}
	from, err := strconv.Atoi(c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "fromパラメーターが不正です")
	}
	to, err := strconv.Atoi(c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "toパラメーターが不正です")
	}
	results, err := h.service.FlightSearch(c.Request().Context(), date, from, to)
	if err != nil {
		return echo.NewHTTPError(api.DomainErrorStatus(err), err.Error())
	}
	resp := make([]FlightAvailabilityResponse, len(results))
	for i, fa := range results {
		classes := make([]ClassAvailabilityResponse, len(fa.Classes))
		for j, ca := range fa.Classes {
			classes[j] = ClassAvailabilityResponse{Class: ca.Class, Available: ca.Available, Price: ca.Price}
		}
		resp[i] = FlightAvailabilityResponse{
			ID:            fa.Flight.ID,
			DepartureTime: fa.Flight.DepartureTime,
			ArrivalTime:   fa.Flight.ArrivalTime,
			Classes:       classes,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
