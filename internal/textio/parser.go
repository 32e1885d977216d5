package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soraneoumi/flight-booking/internal/application"
	"github.com/soraneoumi/flight-booking/internal/domain/flight"
)

// Parser は行指向の入力ストリームを解析する
// カタログ部とコマンド部の構造が壊れている場合はエラーを返す
// （コマンド単位の失敗と異なり、これは回復不能な入力とみなす）
type Parser struct {
	sc *bufio.Scanner
}

// NewParser は入力ストリームのパーサーを作成する
func NewParser(r io.Reader) *Parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Parser{sc: sc}
}

// readLine は次の1行を返す
func (p *Parser) readLine() (string, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return p.sc.Text(), nil
}

// readInt は次の1行を整数として読み取る
func (p *Parser) readInt() (int, error) {
	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("数値行の解析に失敗: %w", err)
	}
	return n, nil
}

// ReadCatalog はカタログ部（先頭のフライト件数に続くフライト定義群）を読み取る
// フライトの5フィールドは複数行にまたがってもよく、トークンが
// 5個そろうまで行を読み足す
func (p *Parser) ReadCatalog() ([]application.LoadFlightInput, error) {
	n, err := p.readInt()
	if err != nil {
		return nil, fmt.Errorf("フライト件数の読み取りに失敗: %w", err)
	}
	entries := make([]application.LoadFlightInput, 0, n)
	for i := 0; i < n; i++ {
		entry, err := p.readFlight()
		if err != nil {
			return nil, fmt.Errorf("フライト定義%d件目の読み取りに失敗: %w", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (p *Parser) readFlight() (application.LoadFlightInput, error) {
	var parts []string
	for len(parts) < 5 {
		line, err := p.readLine()
		if err != nil {
			return application.LoadFlightInput{}, err
		}
		parts = append(parts, strings.Fields(line)...)
	}
	// 6個目以降のトークンは無視する（行分割の自由度を許容するため）

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return application.LoadFlightInput{}, fmt.Errorf("フライトIDの解析に失敗: %w", err)
	}
	departureAirport, err := strconv.Atoi(parts[1])
	if err != nil {
		return application.LoadFlightInput{}, fmt.Errorf("出発空港の解析に失敗: %w", err)
	}
	arrivalAirport, err := strconv.Atoi(parts[2])
	if err != nil {
		return application.LoadFlightInput{}, fmt.Errorf("到着空港の解析に失敗: %w", err)
	}

	classCount, err := p.readInt()
	if err != nil {
		return application.LoadFlightInput{}, err
	}
	seatClasses := make([]flight.SeatClass, 0, classCount)
	for i := 0; i < classCount; i++ {
		line, err := p.readLine()
		if err != nil {
			return application.LoadFlightInput{}, err
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return application.LoadFlightInput{}, fmt.Errorf("座席クラス行のトークン数が不正: %d", len(fields))
		}
		upperRow, err := strconv.Atoi(fields[0])
		if err != nil {
			return application.LoadFlightInput{}, fmt.Errorf("行上限の解析に失敗: %w", err)
		}
		price, err := strconv.Atoi(fields[1])
		if err != nil {
			return application.LoadFlightInput{}, fmt.Errorf("価格の解析に失敗: %w", err)
		}
		seatClasses = append(seatClasses, flight.SeatClass{UpperRow: upperRow, Price: price})
	}

	return application.LoadFlightInput{
		ID:               id,
		DepartureAirport: departureAirport,
		ArrivalAirport:   arrivalAirport,
		DepartureTime:    parts[3],
		ArrivalTime:      parts[4],
		SeatClasses:      seatClasses,
	}, nil
}

// ReadCommandCount はコマンド部の先頭にあるコマンド件数を読み取る
func (p *Parser) ReadCommandCount() (int, error) {
	n, err := p.readInt()
	if err != nil {
		return 0, fmt.Errorf("コマンド件数の読み取りに失敗: %w", err)
	}
	return n, nil
}

// NextCommand は次のコマンド行を読み取って解析する
// 未知のコマンド語の行は (nil, nil) としてスキップ対象になる
func (p *Parser) NextCommand() (Command, error) {
	line, err := p.readLine()
	if err != nil {
		return nil, err
	}
	return ParseCommand(line), nil
}

// ParseCommand は1行のコマンドを解析する
// 引数の個数または型が不正な場合はInvalidを、未知のコマンド語の
// 場合はnilを返す
func ParseCommand(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "reserve:":
		if len(fields) != 6 {
			return Invalid{Command: "reserve"}
		}
		flightID, err := strconv.Atoi(fields[4])
		if err != nil {
			return Invalid{Command: "reserve"}
		}
		return Reserve{Now: fields[1], UserID: fields[2], Date: fields[3], FlightID: flightID, SeatID: fields[5]}
	case "cancel:":
		if len(fields) != 4 {
			return Invalid{Command: "cancel"}
		}
		reservationID, err := strconv.Atoi(fields[3])
		if err != nil {
			return Invalid{Command: "cancel"}
		}
		return Cancel{Now: fields[1], UserID: fields[2], ReservationID: reservationID}
	case "seat-search:":
		if len(fields) != 4 {
			return Invalid{Command: "seat-search"}
		}
		flightID, err := strconv.Atoi(fields[3])
		if err != nil {
			return Invalid{Command: "seat-search"}
		}
		return SeatSearch{Now: fields[1], Date: fields[2], FlightID: flightID}
	case "get-reservations:":
		if len(fields) != 3 {
			return Invalid{Command: "get-reservations"}
		}
		return GetReservations{Now: fields[1], UserID: fields[2]}
	case "flight-search:":
		if len(fields) != 5 {
			return Invalid{Command: "flight-search"}
		}
		departureAirport, err := strconv.Atoi(fields[3])
		if err != nil {
			return Invalid{Command: "flight-search"}
		}
		arrivalAirport, err := strconv.Atoi(fields[4])
		if err != nil {
			return Invalid{Command: "flight-search"}
		}
		return FlightSearch{Now: fields[1], Date: fields[2], DepartureAirport: departureAirport, ArrivalAirport: arrivalAirport}
	default:
		return nil
	}
}
