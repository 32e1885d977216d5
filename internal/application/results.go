package application

import (
	"strconv"

	"github.com/soraneoumi/flight-booking/internal/domain/flight"
	"github.com/soraneoumi/flight-booking/internal/domain/reservation"
)

// SeatCell は座席表の1マスを表す
// Classは1始まりの座席クラスで、どのクラスにも属さない行は0
type SeatCell struct {
	Held  bool
	Class int
}

// Symbol は座席マスの表示記号を返す
// 占有中およびクラス未定義の座席は "X"、それ以外はクラス番号
func (c SeatCell) Symbol() string {
	if c.Held || c.Class == 0 {
		return "X"
	}
	return strconv.Itoa(c.Class)
}

// SeatMap は特定の搭乗日・フライトの座席表を表す
// Cellsは [座席タイプ][行-1] の順で並ぶ
type SeatMap struct {
	Date     string
	FlightID int
	Cells    [flight.NumSeatTypes][flight.NumRows]SeatCell
}

// Lines は座席タイプごとの表示行（A, B, C, Dの順）を返す
// 各行は行1から行20までの記号を連結したもの
func (m *SeatMap) Lines() []string {
	lines := make([]string, 0, len(m.Cells))
	for _, cells := range m.Cells {
		line := ""
		for _, cell := range cells {
			line += cell.Symbol()
		}
		lines = append(lines, line)
	}
	return lines
}

// ReservationDetail は予約とそのフライト情報の組
type ReservationDetail struct {
	Reservation *reservation.Reservation
	Flight      *flight.Flight
}

// ClassAvailability は座席クラスごとの空席数
type ClassAvailability struct {
	Class     int
	Available int
	Price     int
}

// FlightAvailability はフライト検索結果の1件
type FlightAvailability struct {
	Flight  *flight.Flight
	Classes []ClassAvailability
}
