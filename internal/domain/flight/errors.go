package flight

import "errors"

// Flight ドメインのエラー定義
// ErrFlightNotFoundとErrInvalidSeatIDのメッセージはテキストプロトコルが
// そのまま出力するため変更しないこと
var (
	ErrFlightNotFound      = errors.New("flight not found")
	ErrInvalidSeatID       = errors.New("invalid seat_id")
	ErrInvalidFlightID     = errors.New("flight id must be positive")
	ErrSeatClassesRequired = errors.New("at least one seat class is required")
	ErrInvalidSeatClasses  = errors.New("seat class row bounds must be strictly increasing")
	ErrInvalidPrice        = errors.New("price must not be negative")
)
