package textio

// Command はテキストプロトコルの1コマンドを表す
type Command interface {
	// Name はコマンド語（コロンなし）を返す
	Name() string
}

// Reserve は座席予約コマンド
type Reserve struct {
	Now      string
	UserID   string
	Date     string
	FlightID int
	SeatID   string
}

func (Reserve) Name() string { return "reserve" }

// Cancel は予約キャンセルコマンド
type Cancel struct {
	Now           string
	UserID        string
	ReservationID int
}

func (Cancel) Name() string { return "cancel" }

// SeatSearch は座席表検索コマンド
// Nowはプロトコル上受け取るが規則では使用しない
type SeatSearch struct {
	Now      string
	Date     string
	FlightID int
}

func (SeatSearch) Name() string { return "seat-search" }

// GetReservations はユーザー予約一覧コマンド
type GetReservations struct {
	Now    string
	UserID string
}

func (GetReservations) Name() string { return "get-reservations" }

// FlightSearch はフライト検索コマンド
type FlightSearch struct {
	Now              string
	Date             string
	DepartureAirport int
	ArrivalAirport   int
}

func (FlightSearch) Name() string { return "flight-search" }

// Invalid は引数の個数または型が不正なコマンド
type Invalid struct {
	Command string
}

func (i Invalid) Name() string { return i.Command }
