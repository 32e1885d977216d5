package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/soraneoumi/flight-booking/internal/domain/booking"
	"github.com/soraneoumi/flight-booking/internal/domain/flight"
	"github.com/soraneoumi/flight-booking/internal/domain/reservation"
	"github.com/soraneoumi/flight-booking/internal/pkg/logger"
	"github.com/soraneoumi/flight-booking/internal/pkg/metrics"
)

// BookingService は予約エンジン本体
// カタログ・占有テーブル・台帳を排他的に所有し、全コマンドを
// 単一のミューテックスで直列化する。同じ座席キーに対する
// reserve/cancelの相互排他はこのロックが保証する
type BookingService struct {
	mu        sync.Mutex
	catalog   flight.Catalog
	ledger    reservation.Ledger
	occupancy reservation.OccupancyTable
	metrics   *metrics.Metrics // nil可
	log       *zap.Logger
}

// NewBookingService は予約エンジンを作成する
func NewBookingService(catalog flight.Catalog, ledger reservation.Ledger, occupancy reservation.OccupancyTable, m *metrics.Metrics) *BookingService {
	return &BookingService{
		catalog:   catalog,
		ledger:    ledger,
		occupancy: occupancy,
		metrics:   m,
		log:       logger.Named("booking"),
	}
}

// LoadFlightInput はカタログ登録の入力
type LoadFlightInput struct {
	ID               int
	DepartureAirport int
	ArrivalAirport   int
	DepartureTime    string
	ArrivalTime      string
	SeatClasses      []flight.SeatClass
}

// LoadFlight はフライトをカタログに登録する
// 座席クラスの行上限が狭義単調増加でないカタログは拒否する
func (s *BookingService) LoadFlight(ctx context.Context, input LoadFlightInput) (*flight.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := flight.NewFlight(input.ID, input.DepartureAirport, input.ArrivalAirport, input.DepartureTime, input.ArrivalTime, input.SeatClasses)
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("フライト%dの検証に失敗: %w", input.ID, err)
	}
	if err := s.catalog.Add(ctx, f); err != nil {
		return nil, err
	}
	s.log.Debug("フライトを登録",
		zap.Int("flight_id", f.ID),
		zap.Int("departure_airport", f.DepartureAirport),
		zap.Int("arrival_airport", f.ArrivalAirport),
	)
	return f, nil
}

// ReserveInput は予約コマンドの入力
type ReserveInput struct {
	Now      string // 観測時刻（YYYY/MM/DD-HH:MM:SS）
	UserID   string
	Date     string // 搭乗日（YYYY/MM/DD）
	FlightID int
	SeatID   string
}

// Reserve は座席を予約する
// 前提条件は次の順で検査し、最初に失敗したものを返す:
// フライト存在 → 観測時刻 → 出発日時 → 締め切り → 座席空き → 座席ID
// 失敗時は状態を一切変更しない
func (s *BookingService) Reserve(ctx context.Context, input ReserveInput) (res *reservation.Reservation, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.record("reserve", time.Now(), &err)

	f, err := s.catalog.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	now, err := booking.ParseTimestamp(input.Now)
	if err != nil {
		return nil, err
	}
	departure, err := booking.DepartureAt(input.Date, f.DepartureTime)
	if err != nil {
		return nil, err
	}
	if booking.IsTooLate(now, departure) {
		return nil, booking.ErrTooLate
	}
	key := reservation.SeatKey{Date: input.Date, FlightID: input.FlightID, SeatID: input.SeatID}
	held, err := s.occupancy.IsHeld(ctx, key)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, reservation.ErrSeatAlreadyReserved
	}
	_, price, err := f.Classify(input.SeatID)
	if err != nil {
		return nil, err
	}

	r := reservation.NewReservation(input.UserID, input.Date, input.FlightID, input.SeatID, price)
	if err := s.ledger.Append(ctx, r); err != nil {
		return nil, err
	}
	if err := s.occupancy.Hold(ctx, key); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ActiveReservations.Inc()
	}
	s.log.Info("予約を作成",
		zap.Int("reservation_id", r.ID),
		zap.String("user_id", r.UserID),
		zap.Int("flight_id", r.FlightID),
		zap.String("seat_id", r.SeatID),
		zap.Int("price", r.Price),
	)
	return r, nil
}

// CancelInput はキャンセルコマンドの入力
type CancelInput struct {
	Now           string
	UserID        string
	ReservationID int
}

// Cancel は予約をキャンセルし、座席の占有を解除する
// 存在確認と所有者確認を時刻検査より先に行う（契約上の順序）
// キャンセル済みの予約は存在しない予約と同じ扱いになる
func (s *BookingService) Cancel(ctx context.Context, input CancelInput) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.record("cancel", time.Now(), &err)

	r, err := s.ledger.GetByID(ctx, input.ReservationID)
	if err != nil {
		return err
	}
	if !r.IsActive() {
		return reservation.ErrReservationNotFound
	}
	if !r.IsOwnedBy(input.UserID) {
		return reservation.ErrUnauthorized
	}
	f, err := s.catalog.GetByID(ctx, r.FlightID)
	if err != nil {
		return err
	}
	now, err := booking.ParseTimestamp(input.Now)
	if err != nil {
		return err
	}
	departure, err := booking.DepartureAt(r.Date, f.DepartureTime)
	if err != nil {
		return err
	}
	if booking.IsTooLate(now, departure) {
		return booking.ErrTooLate
	}

	if err := r.Cancel(); err != nil {
		return err
	}
	if err := s.ledger.Update(ctx, r); err != nil {
		return err
	}
	if err := s.occupancy.Release(ctx, r.SeatKey()); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.ActiveReservations.Dec()
	}
	s.log.Info("予約をキャンセル",
		zap.Int("reservation_id", r.ID),
		zap.String("user_id", r.UserID),
	)
	return nil
}

// SeatSearch は指定の搭乗日・フライトの座席表を返す
func (s *BookingService) SeatSearch(ctx context.Context, date string, flightID int) (m *SeatMap, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.record("seat-search", time.Now(), &err)

	f, err := s.catalog.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	m = &SeatMap{Date: date, FlightID: flightID}
	for ti, seatType := range flight.SeatTypes() {
		for row := 1; row <= flight.NumRows; row++ {
			seatID := flight.FormatSeatID(row, seatType)
			key := reservation.SeatKey{Date: date, FlightID: flightID, SeatID: seatID}
			held, err := s.occupancy.IsHeld(ctx, key)
			if err != nil {
				return nil, err
			}
			cell := SeatCell{Held: held}
			if !held {
				if class, _, err := f.Classify(seatID); err == nil {
					cell.Class = class
				}
			}
			m.Cells[ti][row-1] = cell
		}
	}
	return m, nil
}

// GetReservations はユーザーの有効な予約一覧を返す
// 並び順は (出発日時, 予約ID) の昇順
func (s *BookingService) GetReservations(ctx context.Context, userID string) (details []ReservationDetail, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.record("get-reservations", time.Now(), &err)

	active, err := s.ledger.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	type entry struct {
		departure time.Time
		detail    ReservationDetail
	}
	entries := make([]entry, 0, len(active))
	for _, r := range active {
		f, err := s.catalog.GetByID(ctx, r.FlightID)
		if err != nil {
			return nil, fmt.Errorf("予約%dのフライト%dが見つからない: %w", r.ID, r.FlightID, err)
		}
		departure, err := booking.DepartureAt(r.Date, f.DepartureTime)
		if err != nil {
			return nil, fmt.Errorf("予約%dの出発日時が不正: %w", r.ID, err)
		}
		entries = append(entries, entry{departure: departure, detail: ReservationDetail{Reservation: r, Flight: f}})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].departure.Equal(entries[j].departure) {
			return entries[i].departure.Before(entries[j].departure)
		}
		return entries[i].detail.Reservation.ID < entries[j].detail.Reservation.ID
	})
	details = make([]ReservationDetail, len(entries))
	for i, e := range entries {
		details[i] = e.detail
	}
	return details, nil
}

// FlightSearch は指定区間のフライトを空席数つきで返す
// 並び順は (出発時刻文字列, フライトID) の昇順。出発時刻はゼロ埋め
// 固定幅なので文字列比較で正しく並ぶ
func (s *BookingService) FlightSearch(ctx context.Context, date string, departureAirport, arrivalAirport int) (results []FlightAvailability, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.record("flight-search", time.Now(), &err)

	flights, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	var matched []*flight.Flight
	for _, f := range flights {
		if f.DepartureAirport == departureAirport && f.ArrivalAirport == arrivalAirport {
			matched = append(matched, f)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].DepartureTime != matched[j].DepartureTime {
			return matched[i].DepartureTime < matched[j].DepartureTime
		}
		return matched[i].ID < matched[j].ID
	})

	results = make([]FlightAvailability, 0, len(matched))
	for _, f := range matched {
		classes := make([]ClassAvailability, 0, len(f.SeatClasses))
		for i, sc := range f.SeatClasses {
			start, end := f.ClassRowRange(i + 1)
			available := 0
			for row := start; row <= end; row++ {
				for _, seatType := range flight.SeatTypes() {
					key := reservation.SeatKey{Date: date, FlightID: f.ID, SeatID: flight.FormatSeatID(row, seatType)}
					held, err := s.occupancy.IsHeld(ctx, key)
					if err != nil {
						return nil, err
					}
					if !held {
						available++
					}
				}
			}
			classes = append(classes, ClassAvailability{Class: i + 1, Available: available, Price: sc.Price})
		}
		results = append(results, FlightAvailability{Flight: f, Classes: classes})
	}
	return results, nil
}

// record はコマンドの実行結果と所要時間をメトリクスに記録する
func (s *BookingService) record(command string, start time.Time, err *error) {
	if s.metrics == nil {
		return
	}
	s.metrics.CommandsTotal.WithLabelValues(command, outcomeLabel(*err)).Inc()
	s.metrics.CommandDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
}

// outcomeLabel はエラーをメトリクスのoutcomeラベルへ変換する
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, flight.ErrFlightNotFound):
		return "flight_not_found"
	case errors.Is(err, flight.ErrInvalidSeatID):
		return "invalid_seat_id"
	case errors.Is(err, booking.ErrInvalidDateTime):
		return "invalid_datetime"
	case errors.Is(err, booking.ErrInvalidFlightDateTime):
		return "invalid_flight_datetime"
	case errors.Is(err, booking.ErrTooLate):
		return "too_late"
	case errors.Is(err, reservation.ErrSeatAlreadyReserved):
		return "already_reserved"
	case errors.Is(err, reservation.ErrReservationNotFound):
		return "reservation_not_found"
	case errors.Is(err, reservation.ErrUnauthorized):
		return "unauthorized"
	default:
		return "error"
	}
}
