package textio

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/soraneoumi/flight-booking/internal/application"
	"github.com/soraneoumi/flight-booking/internal/domain/flight"
	"github.com/soraneoumi/flight-booking/internal/domain/reservation"
	"github.com/soraneoumi/flight-booking/internal/pkg/logger"
)

// Engine はRunnerが呼び出す予約エンジンのインターフェース
type Engine interface {
	LoadFlight(ctx context.Context, input application.LoadFlightInput) (*flight.Flight, error)
	Reserve(ctx context.Context, input application.ReserveInput) (*reservation.Reservation, error)
	Cancel(ctx context.Context, input application.CancelInput) error
	SeatSearch(ctx context.Context, date string, flightID int) (*application.SeatMap, error)
	GetReservations(ctx context.Context, userID string) ([]application.ReservationDetail, error)
	FlightSearch(ctx context.Context, date string, departureAirport, arrivalAirport int) ([]application.FlightAvailability, error)
}

// Runner は入力ストリームのコマンドを1件ずつエンジンで実行し、
// 結果を出力ストリームへ書き出す
type Runner struct {
	engine Engine
	parser *Parser
	out    io.Writer
	log    *zap.Logger
}

// NewRunner はRunnerを作成する
func NewRunner(engine Engine, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		engine: engine,
		parser: NewParser(in),
		out:    out,
		log:    logger.Named("textio"),
	}
}

// Run はカタログ部を読み込んでエンジンに登録し、続くコマンド部を
// 順に実行する。コマンド単位の失敗は結果行として出力し、入力構造
// そのものが壊れている場合のみエラーを返す
func (r *Runner) Run(ctx context.Context) error {
	entries, err := r.parser.ReadCatalog()
	if err != nil {
		return fmt.Errorf("カタログの読み込みに失敗: %w", err)
	}
	for _, entry := range entries {
		if _, err := r.engine.LoadFlight(ctx, entry); err != nil {
			return fmt.Errorf("カタログの登録に失敗: %w", err)
		}
	}
	r.log.Debug("カタログを登録", zap.Int("flights", len(entries)))

	count, err := r.parser.ReadCommandCount()
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		cmd, err := r.parser.NextCommand()
		if err != nil {
			return fmt.Errorf("コマンド%d件目の読み取りに失敗: %w", i+1, err)
		}
		if cmd == nil {
			// 未知のコマンド語は出力せずスキップする
			continue
		}
		if _, err := fmt.Fprintln(r.out, r.execute(ctx, cmd)); err != nil {
			return err
		}
	}
	return nil
}

// execute は1コマンドを実行して出力行を返す
func (r *Runner) execute(ctx context.Context, cmd Command) string {
	switch c := cmd.(type) {
	case Reserve:
		res, err := r.engine.Reserve(ctx, application.ReserveInput{
			Now: c.Now, UserID: c.UserID, Date: c.Date, FlightID: c.FlightID, SeatID: c.SeatID,
		})
		return RenderReserve(res, err)
	case Cancel:
		err := r.engine.Cancel(ctx, application.CancelInput{
			Now: c.Now, UserID: c.UserID, ReservationID: c.ReservationID,
		})
		return RenderCancel(err)
	case SeatSearch:
		m, err := r.engine.SeatSearch(ctx, c.Date, c.FlightID)
		return RenderSeatSearch(m, err)
	case GetReservations:
		details, err := r.engine.GetReservations(ctx, c.UserID)
		return RenderGetReservations(details, err)
	case FlightSearch:
		results, err := r.engine.FlightSearch(ctx, c.Date, c.DepartureAirport, c.ArrivalAirport)
		return RenderFlightSearch(results, err)
	case Invalid:
		return RenderInvalid(c.Command)
	default:
		return RenderInvalid(cmd.Name())
	}
}
