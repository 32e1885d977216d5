package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/soraneoumi/flight-booking/internal/api"
	"github.com/soraneoumi/flight-booking/internal/application"
	"github.com/soraneoumi/flight-booking/internal/domain/booking"
	"github.com/soraneoumi/flight-booking/internal/domain/reservation"
)

// ReservationHandler は予約系エンドポイントのハンドラー
type ReservationHandler struct {
	service BookingServiceInterface
}

// NewReservationHandler はReservationHandlerを作成する
func NewReservationHandler(s BookingServiceInterface) *ReservationHandler {
	return &ReservationHandler{service: s}
}

// ReserveRequest は予約リクエスト
// current_timeを省略した場合は現在時刻を使用する
type ReserveRequest struct {
	Date        string `json:"date" validate:"required" example:"2024/03/15"`
	FlightID    int    `json:"flight_id" validate:"required" example:"1"`
	SeatID      string `json:"seat_id" validate:"required" example:"12B"`
	CurrentTime string `json:"current_time,omitempty" example:"2024/03/15-07:00:00"`
}

// CancelRequest はキャンセルリクエスト
type CancelRequest struct {
	CurrentTime string `json:"current_time,omitempty" example:"2024/03/15-07:00:00"`
}

// ReservationResponse は予約のレスポンス
type ReservationResponse struct {
	ID        int    `json:"id" example:"1"`
	UserID    string `json:"user_id" example:"alice"`
	Date      string `json:"date" example:"2024/03/15"`
	FlightID  int    `json:"flight_id" example:"1"`
	SeatID    string `json:"seat_id" example:"12B"`
	Price     int    `json:"price" example:"100"`
	Cancelled bool   `json:"cancelled" example:"false"`
}

// ReservationDetailResponse は経路情報つきの予約レスポンス
type ReservationDetailResponse struct {
	ReservationResponse
	DepartureAirport int    `json:"departure_airport" example:"31"`
	DepartureTime    string `json:"departure_time" example:"10:00:00"`
	ArrivalAirport   int    `json:"arrival_airport" example:"44"`
	ArrivalTime      string `json:"arrival_time" example:"14:30:00"`
}

func toReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID: r.ID, UserID: r.UserID, Date: r.Date,
		FlightID: r.FlightID, SeatID: r.SeatID,
		Price: r.Price, Cancelled: r.Cancelled,
	}
}

// currentTime は指定された観測時刻、なければ現在時刻を返す
func currentTime(requested string) string {
	if requested != "" {
		return requested
	}
	return time.Now().Format(booking.TimestampLayout)
}

// Reserve godoc
// @Summary 座席を予約
// @Description 指定の搭乗日・フライト・座席を予約します
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ユーザーID"
// @Param request body ReserveRequest true "予約情報"
// @Success 201 {object} ReservationResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 401 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse "座席が既に予約済み"
// @Router /reservations [post]
func (h *ReservationHandler) Reserve(c echo.Context) error {
	userID := c.Request().Header.Get("X-User-ID")
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "ユーザーIDが必要です")
	}
	var req ReserveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	r, err := h.service.Reserve(c.Request().Context(), application.ReserveInput{
		Now:      currentTime(req.CurrentTime),
		UserID:   userID,
		Date:     req.Date,
		FlightID: req.FlightID,
		SeatID:   req.SeatID,
	})
	if err != nil {
		return echo.NewHTTPError(api.DomainErrorStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, toReservationResponse(r))
}

// Cancel godoc
// @Summary 予約をキャンセル
// @Description 予約をキャンセルし、座席を解放します
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ユーザーID"
// @Param id path int true "予約ID"
// @Success 204 "キャンセル完了"
// @Failure 400 {object} api.ErrorResponse
// @Failure 403 {object} api.ErrorResponse "所有者以外のキャンセル"
// @Failure 404 {object} api.ErrorResponse
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c echo.Context) error {
	userID := c.Request().Header.Get("X-User-ID")
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "ユーザーIDが必要です")
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "予約IDが不正です")
	}
	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := h.service.Cancel(c.Request().Context(), application.CancelInput{
		Now:           currentTime(req.CurrentTime),
		UserID:        userID,
		ReservationID: id,
	}); err != nil {
		return echo.NewHTTPError(api.DomainErrorStatus(err), err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// List godoc
// @Summary ユーザーの予約一覧を取得
// @Description 有効な予約を出発日時順に返します
// @Tags reservations
// @Produce json
// @Param X-User-ID header string true "ユーザーID"
// @Success 200 {array} ReservationDetailResponse
// @Failure 401 {object} api.ErrorResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	userID := c.Request().Header.Get("X-User-ID")
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "ユーザーIDが必要です")
	}
	details, err := h.service.GetReservations(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(api.DomainErrorStatus(err), err.Error())
	}
	resp := make([]ReservationDetailResponse, len(details))
	for i, d := range details {
		resp[i] = ReservationDetailResponse{
			ReservationResponse: toReservationResponse(d.Reservation),
			DepartureAirport:    d.Flight.DepartureAirport,
			DepartureTime:       d.Flight.DepartureTime,
			ArrivalAirport:      d.Flight.ArrivalAirport,
			ArrivalTime:         d.Flight.ArrivalTime,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
