package booking

import "time"

// TimestampLayout はシステム全体で使う日時形式（例: 2024/03/15-08:30:00）
// タイムゾーンを持たないローカル時刻として扱う
const TimestampLayout = "2006/01/02-15:04:05"

// Deadline は予約・キャンセルの締め切り（出発時刻からさかのぼった時間）
const Deadline = 2 * time.Hour

// ParseTimestamp は日時文字列を解析する
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return t, nil
}

// DepartureAt は搭乗日とフライトの出発時刻から出発日時を求める
func DepartureAt(date, departureTime string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, date+"-"+departureTime)
	if err != nil {
		return time.Time{}, ErrInvalidFlightDateTime
	}
	return t, nil
}

// IsTooLate は締め切りを過ぎているかを返す
// 出発の2時間前ちょうども「締め切り後」と判定する
func IsTooLate(now, departure time.Time) bool {
	return !now.Before(departure.Add(-Deadline))
}
