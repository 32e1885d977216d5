package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimit はトークンバケットによるレート制限ミドルウェア
// エンジンは全コマンドを単一ロックで直列化するため、流入量を
// ここで抑えて待ち行列が伸びないようにする
func RateLimit(rps float64, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "リクエストが多すぎます")
			}
			return next(c)
		}
	}
}
