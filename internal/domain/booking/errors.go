package booking

import "errors"

// 時刻規則に関するエラー定義
// メッセージはテキストプロトコルがそのまま出力するため変更しないこと
var (
	ErrInvalidDateTime       = errors.New("invalid datetime")
	ErrInvalidFlightDateTime = errors.New("invalid flight datetime")
	ErrTooLate               = errors.New("too late")
)
