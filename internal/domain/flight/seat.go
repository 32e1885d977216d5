package flight

import "strconv"

// NumRows は1フライトあたりの座席行数（固定の機材構成）
const NumRows = 20

// NumSeatTypes は1行あたりの座席数（座席タイプの数）
const NumSeatTypes = 4

// SeatType は座席タイプ（横位置）を表す
type SeatType byte

const (
	SeatTypeA SeatType = 'A'
	SeatTypeB SeatType = 'B'
	SeatTypeC SeatType = 'C'
	SeatTypeD SeatType = 'D'
)

// SeatTypes は座席タイプの一覧を表示順で返す
func SeatTypes() [NumSeatTypes]SeatType {
	return [NumSeatTypes]SeatType{SeatTypeA, SeatTypeB, SeatTypeC, SeatTypeD}
}

// String は座席タイプを1文字の文字列として返す
func (s SeatType) String() string {
	return string(byte(s))
}

// ParseSeatType は文字から座席タイプを解析する
func ParseSeatType(c byte) (SeatType, error) {
	switch SeatType(c) {
	case SeatTypeA, SeatTypeB, SeatTypeC, SeatTypeD:
		return SeatType(c), nil
	default:
		return 0, ErrInvalidSeatID
	}
}

// ParseSeatID は座席ID（例: "12B"）を行番号と座席タイプに分解する
// 行番号が正の整数でない場合や座席タイプが不正な場合はErrInvalidSeatIDを返す
func ParseSeatID(seatID string) (int, SeatType, error) {
	if len(seatID) < 2 {
		return 0, 0, ErrInvalidSeatID
	}
	seatType, err := ParseSeatType(seatID[len(seatID)-1])
	if err != nil {
		return 0, 0, err
	}
	row, err := strconv.Atoi(seatID[:len(seatID)-1])
	if err != nil || row <= 0 {
		return 0, 0, ErrInvalidSeatID
	}
	return row, seatType, nil
}

// FormatSeatID は行番号と座席タイプから座席IDを組み立てる
func FormatSeatID(row int, seatType SeatType) string {
	return strconv.Itoa(row) + seatType.String()
}
