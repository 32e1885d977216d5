package memory

import (
	"context"
	"sync"

	"github.com/soraneoumi/flight-booking/internal/domain/flight"
)

// Catalog はフライトカタログのインメモリ実装
type Catalog struct {
	mu      sync.RWMutex
	flights map[int]*flight.Flight
}

// NewCatalog は空のカタログを作成する
func NewCatalog() *Catalog {
	return &Catalog{flights: make(map[int]*flight.Flight)}
}

// Add はフライトを登録する
// 同じIDで再登録された場合は上書きする
func (c *Catalog) Add(_ context.Context, f *flight.Flight) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flights[f.ID] = f
	return nil
}

// GetByID はフライトIDからフライトを取得する
func (c *Catalog) GetByID(_ context.Context, id int) (*flight.Flight, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.flights[id]
	if !ok {
		return nil, flight.ErrFlightNotFound
	}
	return f, nil
}

// List は登録済みの全フライトを返す
// 順序は保証しない（呼び出し側でソートする）
func (c *Catalog) List(_ context.Context) ([]*flight.Flight, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	flights := make([]*flight.Flight, 0, len(c.flights))
	for _, f := range c.flights {
		flights = append(flights, f)
	}
	return flights, nil
}
