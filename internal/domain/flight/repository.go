package flight

import "context"

// Catalog はフライトカタログのインターフェース
// 起動時にフライトを登録した後は読み取り専用として扱う
type Catalog interface {
	// Add はフライトをカタログに登録する
	Add(ctx context.Context, f *Flight) error

	// GetByID はフライトIDからフライトを取得する
	GetByID(ctx context.Context, id int) (*Flight, error)

	// List は登録済みの全フライトを返す
	List(ctx context.Context) ([]*Flight, error)
}
