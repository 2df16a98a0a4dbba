// eval.go scores a position from White's perspective using the classic
// "Simplified Evaluation Function" piece values and piece-square tables
// from chessprogramming.org: flat material counts plus a static
// per-square bonus table, no phased midgame/endgame blending.

package engine

// Infinity is the sentinel used for a decisive (checkmate) score;
// drawn terminal positions score 0. It sits well above any plausible sum of piece values and
// piece-square bonuses, so heuristic scores never collide with it.
const Infinity = 100000

var pieceValue = [KindArraySize]int{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

// pst is indexed [kind][square] and holds the midgame piece-square
// bonus for a White piece; Black's bonus is read at square 63-sq, which
// flips both rank and file.
var pst = [KindArraySize][64]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	// King uses the midgame table; this evaluator does not phase
	// between midgame and endgame king tables.
	King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

// Evaluate returns a static score for pos from White's point of view:
// positive favors White. Terminal positions return ±Infinity for a win
// or loss, 0 for a draw.
func Evaluate(pos *Position) int {
	if pos.IsTerminal() {
		switch pos.GameResult() {
		case White:
			return Infinity
		case Black:
			return -Infinity
		default:
			return 0
		}
	}

	score := 0
	for sq := Square(0); sq < 64; sq++ {
		pi := pos.PieceAt(sq)
		if pi.IsEmpty() {
			continue
		}
		if pi.Color == White {
			score += pieceValue[pi.Kind] + pst[pi.Kind][sq]
		} else {
			score -= pieceValue[pi.Kind] + pst[pi.Kind][63-int(sq)]
		}
	}
	return score
}
