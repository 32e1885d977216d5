package reservation

import "errors"

// Reservation ドメインのエラー定義
// メッセージはテキストプロトコルがそのまま出力するため変更しないこと
var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUnauthorized        = errors.New("unauthorized operation")
	ErrSeatAlreadyReserved = errors.New("already reserved")
)
