// zobrist.go mixes random 64-bit words into a position hash. The word
// set also covers remaining search depth: the transposition table is
// keyed by (position, depth), so two probes of the same position at
// different depths must hash differently.

package engine

import "math/rand"

const maxZobristDepth = 64

var (
	zobristPiece     [ColorArraySize][KindArraySize][64]uint64
	zobristSide      [ColorArraySize]uint64
	zobristCastle    [4]uint64 // one per bit of CastleRights
	zobristEnPassant [8]uint64 // indexed by file
	zobristDepth     [maxZobristDepth]uint64
)

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	r := rand.New(rand.NewSource(1))
	for col := White; col <= Black; col++ {
		for kind := KindMinValue; kind <= KindMaxValue; kind++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[col][kind][sq] = rand64(r)
			}
		}
	}
	zobristSide[White] = rand64(r)
	zobristSide[Black] = rand64(r)
	for i := range zobristCastle {
		zobristCastle[i] = rand64(r)
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rand64(r)
	}
	for i := range zobristDepth {
		zobristDepth[i] = rand64(r)
	}
}

// zobristHash combines the words selected by pos's occupied squares,
// side to move, active castling rights, en-passant file (if any), and
// the remaining search depth at which the position is being probed.
func zobristHash(pos *Position, depth int) uint64 {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		pi := pos.PieceAt(sq)
		if !pi.IsEmpty() {
			h ^= zobristPiece[pi.Color][pi.Kind][sq]
		}
	}
	h ^= zobristSide[pos.SideToMove]
	for i := 0; i < 4; i++ {
		if pos.Castling&(1<<uint(i)) != 0 {
			h ^= zobristCastle[i]
		}
	}
	if pos.EnPassant != NoSquare {
		h ^= zobristEnPassant[pos.EnPassant.Col()]
	}
	if depth >= 0 && depth < maxZobristDepth {
		h ^= zobristDepth[depth]
	}
	return h
}
