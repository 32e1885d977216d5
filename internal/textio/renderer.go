package textio

import (
	"fmt"
	"strings"

	"github.com/soraneoumi/flight-booking/internal/application"
	"github.com/soraneoumi/flight-booking/internal/domain/reservation"
)

// 結果レンダラー
// 出力文字列は従来処理系とバイト単位で一致させる必要があるため、
// 書式を変更しないこと

// RenderReserve は予約コマンドの結果を整形する
func RenderReserve(r *reservation.Reservation, err error) string {
	if err != nil {
		return "reserve: " + err.Error()
	}
	return fmt.Sprintf("reserve: %d %d", r.ID, r.Price)
}

// RenderCancel はキャンセルコマンドの結果を整形する
func RenderCancel(err error) string {
	if err != nil {
		return "cancel: " + err.Error()
	}
	return "cancel: success"
}

// RenderSeatSearch は座席表を整形する
// 1行目は見出し、続いて座席タイプA〜Dの4行。各行は行1から行20の
// 記号（占有は "X"、空席はクラス番号）の連結
func RenderSeatSearch(m *application.SeatMap, err error) string {
	if err != nil {
		return "seat-search: " + err.Error()
	}
	lines := append([]string{"seat-search:"}, m.Lines()...)
	return strings.Join(lines, "\n")
}

// RenderGetReservations は予約一覧を整形する
func RenderGetReservations(details []application.ReservationDetail, err error) string {
	if err != nil {
		return "get-reservations: " + err.Error()
	}
	lines := []string{fmt.Sprintf("get-reservations: %d", len(details))}
	for _, d := range details {
		r, f := d.Reservation, d.Flight
		lines = append(lines, fmt.Sprintf(
			"reservation id: %d, price: %d, seat: %s %d %s, route: %d (%s) -> %d (%s)",
			r.ID, r.Price, r.Date, r.FlightID, r.SeatID,
			f.DepartureAirport, f.DepartureTime, f.ArrivalAirport, f.ArrivalTime,
		))
	}
	return strings.Join(lines, "\n")
}

// RenderFlightSearch はフライト検索結果を整形する
func RenderFlightSearch(results []application.FlightAvailability, err error) string {
	if err != nil {
		return "flight-search: " + err.Error()
	}
	lines := []string{fmt.Sprintf("flight-search: %d", len(results))}
	for _, fa := range results {
		f := fa.Flight
		lines = append(lines, fmt.Sprintf("%d %s %s", f.ID, f.DepartureTime, f.ArrivalTime))
		for _, ca := range fa.Classes {
			lines = append(lines, fmt.Sprintf("class %d: %d seats available. price = %d", ca.Class, ca.Available, ca.Price))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderInvalid は不正なコマンドへの応答を整形する
func RenderInvalid(command string) string {
	return command + ": invalid query"
}
