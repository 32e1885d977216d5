package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/soraneoumi/flight-booking/internal/api"
	"github.com/soraneoumi/flight-booking/internal/api/handler"
	apimiddleware "github.com/soraneoumi/flight-booking/internal/api/middleware"
	"github.com/soraneoumi/flight-booking/internal/application"
	"github.com/soraneoumi/flight-booking/internal/config"
	"github.com/soraneoumi/flight-booking/internal/infrastructure/memory"
	"github.com/soraneoumi/flight-booking/internal/pkg/logger"
	"github.com/soraneoumi/flight-booking/internal/pkg/metrics"
	"github.com/soraneoumi/flight-booking/internal/textio"
)

func main() {
	// .env読み込み（存在しなければ無視）
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Set(logger.NewLogger(cfg.App.Env))
	defer logger.Sync()

	m := metrics.Init()

	// 予約エンジンの組み立て
	service := application.NewBookingService(
		memory.NewCatalog(),
		memory.NewLedger(),
		memory.NewOccupancyTable(),
		m,
	)

	// カタログファイルが指定されていれば起動時に読み込む
	if cfg.App.CatalogPath != "" {
		if err := loadCatalog(service, cfg.App.CatalogPath); err != nil {
			logger.Fatal("カタログの読み込みに失敗", zap.String("path", cfg.App.CatalogPath), zap.Error(err))
		}
	}

	// Echo インスタンス作成
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	apimiddleware.SetupMiddleware(e, cfg)
	e.Use(apimiddleware.PrometheusMiddleware(m))

	// ルーティング
	reservationHandler := handler.NewReservationHandler(service)
	flightHandler := handler.NewFlightHandler(service)
	healthHandler := handler.NewHealthHandler()

	v1 := e.Group("/api/v1")
	v1.GET("/health", healthHandler.Check)
	v1.POST("/flights", flightHandler.Load)
	v1.GET("/flights", flightHandler.Search)
	v1.GET("/flights/:id/seats", flightHandler.SeatSearch)
	v1.POST("/reservations", reservationHandler.Reserve)
	v1.GET("/reservations", reservationHandler.List)
	v1.POST("/reservations/:id/cancel", reservationHandler.Cancel)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), apimiddleware.MetricsBasicAuth())

	// サーバー起動
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}

// loadCatalog はテキストプロトコルのカタログ部と同じ形式のファイルを
// 読み込んでエンジンに登録する
func loadCatalog(service *application.BookingService, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := textio.NewParser(f).ReadCatalog()
	if err != nil {
		return err
	}
	ctx := context.Background()
	for _, entry := range entries {
		if _, err := service.LoadFlight(ctx, entry); err != nil {
			return err
		}
	}
	logger.Info("カタログを登録", zap.Int("flights", len(entries)))
	return nil
}
