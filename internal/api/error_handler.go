package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/soraneoumi/flight-booking/internal/domain/booking"
	"github.com/soraneoumi/flight-booking/internal/domain/flight"
	"github.com/soraneoumi/flight-booking/internal/domain/reservation"
	"github.com/soraneoumi/flight-booking/internal/pkg/logger"
)

// ErrorResponse はエラーレスポンスの統一フォーマット
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// DomainErrorStatus はドメインエラーをHTTPステータスへ変換する
// ドメイン外のエラーは500として扱う
func DomainErrorStatus(err error) int {
	switch {
	case errors.Is(err, flight.ErrFlightNotFound),
		errors.Is(err, reservation.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, reservation.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, reservation.ErrSeatAlreadyReserved):
		return http.StatusConflict
	case errors.Is(err, booking.ErrTooLate),
		errors.Is(err, booking.ErrInvalidDateTime),
		errors.Is(err, booking.ErrInvalidFlightDateTime),
		errors.Is(err, flight.ErrInvalidSeatID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// CustomHTTPErrorHandler はカスタムエラーハンドラー
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code    = http.StatusInternalServerError
		message = "内部サーバーエラー"
	)

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	// エラーログを出力（5xx エラーの場合）
	if code >= 500 {
		logger.Error("サーバーエラー",
			zap.Int("status", code),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	// JSONレスポンスを返す
	if err := c.JSON(code, ErrorResponse{
		Error: message,
		Code:  code,
	}); err != nil {
		logger.Error("エラーレスポンス送信失敗", zap.Error(err))
	}
}
