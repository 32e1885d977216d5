package flight

// SeatClass は座席クラスを表す
// UpperRowはこのクラスが占める最終行（1始まり）で、クラスは前クラスの
// UpperRowの次の行からこのUpperRowまでの行を占める
type SeatClass struct {
	UpperRow int
	Price    int
}

// Flight はフライトエンティティを表す
// カタログ読み込み後は不変
type Flight struct {
	ID               int
	DepartureAirport int
	ArrivalAirport   int
	DepartureTime    string // HH:MM:SS
	ArrivalTime      string // HH:MM:SS
	SeatClasses      []SeatClass
}

// NewFlight は新しいフライトを作成する
func NewFlight(id, departureAirport, arrivalAirport int, departureTime, arrivalTime string, seatClasses []SeatClass) *Flight {
	return &Flight{
		ID:               id,
		DepartureAirport: departureAirport,
		ArrivalAirport:   arrivalAirport,
		DepartureTime:    departureTime,
		ArrivalTime:      arrivalTime,
		SeatClasses:      seatClasses,
	}
}

// Validate はフライトの検証を行う
// UpperRowは狭義単調増加でなければならない（クラスの行範囲が連続かつ
// 重複しないための条件）。最終クラスがNumRows行すべてを覆うことまでは
// 要求せず、覆われない行は予約不可として扱う
func (f *Flight) Validate() error {
	if f.ID <= 0 {
		return ErrInvalidFlightID
	}
	if len(f.SeatClasses) == 0 {
		return ErrSeatClassesRequired
	}
	prev := 0
	for _, sc := range f.SeatClasses {
		if sc.UpperRow <= prev {
			return ErrInvalidSeatClasses
		}
		if sc.Price < 0 {
			return ErrInvalidPrice
		}
		prev = sc.UpperRow
	}
	return nil
}

// Classify は座席IDから座席クラス（1始まり）と価格を求める
// 座席IDが解析できない場合やどのクラスにも属さない行の場合は
// ErrInvalidSeatIDを返す
func (f *Flight) Classify(seatID string) (int, int, error) {
	row, _, err := ParseSeatID(seatID)
	if err != nil {
		return 0, 0, err
	}
	for i, sc := range f.SeatClasses {
		if row <= sc.UpperRow {
			return i + 1, sc.Price, nil
		}
	}
	return 0, 0, ErrInvalidSeatID
}

// ClassRowRange はクラスi（1始まり）が占める行範囲 [start, end] を返す
func (f *Flight) ClassRowRange(i int) (int, int) {
	start := 1
	if i > 1 {
		start = f.SeatClasses[i-2].UpperRow + 1
	}
	return start, f.SeatClasses[i-1].UpperRow
}
