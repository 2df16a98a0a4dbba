package engine

import (
	"fmt"
	"strconv"
	"strings"
)

var symbolToPiece = map[rune]Piece{
	'P': {White, Pawn}, 'N': {White, Knight}, 'B': {White, Bishop},
	'R': {White, Rook}, 'Q': {White, Queen}, 'K': {White, King},
	'p': {Black, Pawn}, 'n': {Black, Knight}, 'b': {Black, Bishop},
	'r': {Black, Rook}, 'q': {Black, Queen}, 'k': {Black, King},
}

var castleSymbols = []struct {
	rune   rune
	right  CastleRights
}{
	{'K', WhiteOO}, {'Q', WhiteOOO}, {'k', BlackOO}, {'q', BlackOOO},
}

// PositionFromFEN parses fen (Forsyth-Edwards Notation,
// http://en.wikipedia.org/wiki/Forsyth%E2%80%93Edwards_Notation) and
// returns the described position.
func PositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %d", len(fields))
	}

	pos := &Position{EnPassant: NoSquare}
	if err := parsePiecePlacement(fields[0], pos); err != nil {
		return nil, err
	}
	if err := parseSideToMove(fields[1], pos); err != nil {
		return nil, err
	}
	if err := parseCastling(fields[2], pos); err != nil {
		return nil, err
	}
	if err := parseEnPassant(fields[3], pos); err != nil {
		return nil, err
	}
	var err error
	if pos.HalfMoveClock, err = strconv.Atoi(fields[4]); err != nil {
		return nil, fmt.Errorf("fen: bad halfmove clock: %v", err)
	}
	if pos.FullMoveNumber, err = strconv.Atoi(fields[5]); err != nil {
		return nil, fmt.Errorf("fen: bad fullmove number: %v", err)
	}

	for _, col := range [2]Color{White, Black} {
		if n := pos.byPiece(col, King).Popcnt(); n != 1 {
			return nil, fmt.Errorf("fen: %v has %d kings, want exactly 1", col, n)
		}
	}
	if pos.InCheck(pos.SideToMove.Opposite()) {
		return nil, fmt.Errorf("fen: side not to move is in check")
	}
	return pos, nil
}

func parsePiecePlacement(str string, pos *Position) error {
	rows := strings.Split(str, "/")
	if len(rows) != 8 {
		return fmt.Errorf("fen: expected 8 rows, got %d", len(rows))
	}
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			pi, ok := symbolToPiece[ch]
			if !ok {
				return fmt.Errorf("fen: invalid piece symbol %q", ch)
			}
			if c >= 8 {
				return fmt.Errorf("fen: row %d too long", r+1)
			}
			pos.SetPiece(RowCol(r, c), pi)
			c++
		}
		if c != 8 {
			return fmt.Errorf("fen: row %d has %d cells, want 8", r+1, c)
		}
	}
	return nil
}

func formatPiecePlacement(pos *Position) string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for c := 0; c < 8; c++ {
			pi := pos.PieceAt(RowCol(r, c))
			if pi.IsEmpty() {
				empty++
				continue
			}
			if empty != 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pi.String())
		}
		if empty != 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func parseSideToMove(str string, pos *Position) error {
	switch str {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return fmt.Errorf("fen: invalid side to move %q", str)
	}
	return nil
}

func parseCastling(str string, pos *Position) error {
	if str == "-" {
		pos.Castling = NoCastle
		return nil
	}
	var rights CastleRights
	prevIndex := -1
	for _, ch := range str {
		idx := -1
		for i, s := range castleSymbols {
			if s.rune == ch {
				idx = i
				break
			}
		}
		if idx == -1 {
			return fmt.Errorf("fen: invalid castling ability %q", str)
		}
		if idx <= prevIndex {
			return fmt.Errorf("fen: castling ability %q is not in KQkq order", str)
		}
		prevIndex = idx
		rights |= castleSymbols[idx].right
	}
	pos.Castling = rights
	return nil
}

func parseEnPassant(str string, pos *Position) error {
	if str == "-" {
		pos.EnPassant = NoSquare
		return nil
	}
	sq, err := SquareFromString(str)
	if err != nil {
		return fmt.Errorf("fen: bad en-passant square: %v", err)
	}
	pos.EnPassant = sq
	return nil
}

// String renders pos in FEN.
func (pos *Position) String() string {
	ep := "-"
	if pos.EnPassant != NoSquare {
		ep = pos.EnPassant.String()
	}
	return fmt.Sprintf("%s %s %s %s %d %d",
		formatPiecePlacement(pos),
		pos.SideToMove.String(),
		pos.Castling.String(),
		ep,
		pos.HalfMoveClock,
		pos.FullMoveNumber)
}

// MoveFromUCI parses a move in the 4- or 5-character notation used by
// UCI-style tools: <from><to> or <from><to><promotion>.
func MoveFromUCI(pos *Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NullMove, fmt.Errorf("move: invalid move text %q", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NullMove, err
	}

	p := pos.PieceAt(from)
	kind := Normal
	promo := NoKind
	if len(s) == 5 {
		kind = Promotion
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NullMove, fmt.Errorf("move: invalid promotion piece %q", s[4])
		}
	} else if p.Kind == Pawn && to == pos.EnPassant {
		kind = Enpassant
	} else if p.Kind == King && absInt(to.Col()-from.Col()) == 2 {
		kind = Castling
	}
	return Move{From: from, To: to, Kind: kind, Promotion: promo}, nil
}
