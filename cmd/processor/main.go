// flight-bookingのバッチ処理系
// 標準入力からカタログとコマンド列を読み込み、結果を標準出力へ書き出す
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/soraneoumi/flight-booking/internal/application"
	"github.com/soraneoumi/flight-booking/internal/config"
	"github.com/soraneoumi/flight-booking/internal/infrastructure/memory"
	"github.com/soraneoumi/flight-booking/internal/pkg/logger"
	"github.com/soraneoumi/flight-booking/internal/textio"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Set(logger.NewLogger(cfg.App.Env))
	defer logger.Sync()

	// バッチ処理ではメトリクス収集は行わない
	service := application.NewBookingService(
		memory.NewCatalog(),
		memory.NewLedger(),
		memory.NewOccupancyTable(),
		nil,
	)

	runner := textio.NewRunner(service, os.Stdin, os.Stdout)
	if err := runner.Run(context.Background()); err != nil {
		logger.Fatal("処理に失敗", zap.Error(err))
	}
}
