package memory

import (
	"context"
	"sync"

	"github.com/soraneoumi/flight-booking/internal/domain/reservation"
)

// OccupancyTable は座席占有状態のインメモリ実装
// (搭乗日, フライト, 座席) の複合キーからフラグへの単一マップで保持する
type OccupancyTable struct {
	mu   sync.RWMutex
	held map[reservation.SeatKey]bool
}

// NewOccupancyTable は空の占有テーブルを作成する
func NewOccupancyTable() *OccupancyTable {
	return &OccupancyTable{held: make(map[reservation.SeatKey]bool)}
}

// IsHeld は座席が占有されているかを返す
// エントリが存在しないキーは非占有として扱う
func (t *OccupancyTable) IsHeld(_ context.Context, key reservation.SeatKey) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.held[key], nil
}

// Hold は座席を占有状態にする
func (t *OccupancyTable) Hold(_ context.Context, key reservation.SeatKey) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.held[key] = true
	return nil
}

// Release は座席の占有を解除する
// エントリは削除せずフラグのみ下ろす（効果は同じ）
func (t *OccupancyTable) Release(_ context.Context, key reservation.SeatKey) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.held[key] = false
	return nil
}
