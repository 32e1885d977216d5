package reservation

// Reservation は予約エンティティを表す
// 成功した予約のみ台帳に記録され、キャンセルされても削除はされない
type Reservation struct {
	ID        int
	UserID    string
	Date      string // YYYY/MM/DD
	FlightID  int
	SeatID    string
	Price     int
	Cancelled bool
}

// NewReservation は新しい予約を作成する
// IDは台帳への追加時に採番される
func NewReservation(userID, date string, flightID int, seatID string, price int) *Reservation {
	return &Reservation{
		UserID:    userID,
		Date:      date,
		FlightID:  flightID,
		SeatID:    seatID,
		Price:     price,
		Cancelled: false,
	}
}

// IsActive はキャンセルされていないかを返す
func (r *Reservation) IsActive() bool {
	return !r.Cancelled
}

// IsOwnedBy は指定ユーザーが予約の所有者かを返す
func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.UserID == userID
}

// Cancel は予約をキャンセル状態にする
// キャンセル済みの予約は存在しない予約と区別されない（契約上の仕様）
func (r *Reservation) Cancel() error {
	if r.Cancelled {
		return ErrReservationNotFound
	}
	r.Cancelled = true
	return nil
}

// SeatKey は予約が占有する座席キーを返す
func (r *Reservation) SeatKey() SeatKey {
	return SeatKey{Date: r.Date, FlightID: r.FlightID, SeatID: r.SeatID}
}
