package reservation

import "context"

// SeatKey は (搭乗日, フライト, 座席) を一意に識別する複合キー
type SeatKey struct {
	Date     string
	FlightID int
	SeatID   string
}

// Ledger は予約台帳のインターフェース
// IDは1から始まる単調増加の整数として採番される
type Ledger interface {
	// Append は予約を台帳に追加し、IDを採番する
	Append(ctx context.Context, r *Reservation) error

	// GetByID はIDから予約を取得する
	GetByID(ctx context.Context, id int) (*Reservation, error)

	// GetActiveByUserID はユーザーのキャンセルされていない予約一覧を取得する
	GetActiveByUserID(ctx context.Context, userID string) ([]*Reservation, error)

	// Update は予約を更新する
	Update(ctx context.Context, r *Reservation) error
}

// OccupancyTable は座席の占有状態のインターフェース
// あるキーの占有フラグが立っていない間だけその座席は予約できる
type OccupancyTable interface {
	// IsHeld は座席が占有されているかを返す
	IsHeld(ctx context.Context, key SeatKey) (bool, error)

	// Hold は座席を占有状態にする
	Hold(ctx context.Context, key SeatKey) error

	// Release は座席の占有を解除する
	Release(ctx context.Context, key SeatKey) error
}
