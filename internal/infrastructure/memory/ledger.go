package memory

import (
	"context"
	"sync"

	"github.com/soraneoumi/flight-booking/internal/domain/reservation"
)

// Ledger は予約台帳のインメモリ実装
// IDは1から始まり追加順に単調増加する
type Ledger struct {
	mu           sync.RWMutex
	reservations map[int]*reservation.Reservation
	nextID       int
}

// NewLedger は空の台帳を作成する
func NewLedger() *Ledger {
	return &Ledger{
		reservations: make(map[int]*reservation.Reservation),
		nextID:       1,
	}
}

// Append は予約にIDを採番して台帳に追加する
func (l *Ledger) Append(_ context.Context, r *reservation.Reservation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	r.ID = l.nextID
	l.nextID++
	l.reservations[r.ID] = r
	return nil
}

// GetByID はIDから予約を取得する
func (l *Ledger) GetByID(_ context.Context, id int) (*reservation.Reservation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.reservations[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	return r, nil
}

// GetActiveByUserID はユーザーのキャンセルされていない予約一覧を返す
// 順序は保証しない（呼び出し側でソートする）
func (l *Ledger) GetActiveByUserID(_ context.Context, userID string) ([]*reservation.Reservation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var result []*reservation.Reservation
	for _, r := range l.reservations {
		if r.IsOwnedBy(userID) && r.IsActive() {
			result = append(result, r)
		}
	}
	return result, nil
}

// Update は予約を更新する
func (l *Ledger) Update(_ context.Context, r *reservation.Reservation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.reservations[r.ID]; !ok {
		return reservation.ErrReservationNotFound
	}
	l.reservations[r.ID] = r
	return nil
}
