// Package perft counts leaf nodes of the legal move tree to a fixed
// depth, the classic move-generator correctness oracle. LegalMoves
// already discards illegal lines, so there is no separate
// make/unmake-then-check-then-undo dance; this package only needs to
// be correct, not fast enough for depth 7.
package perft

import "github.com/abra-engine/abra/engine"

// Counters tallies leaf nodes and the four move categories perft
// traditionally reports, split out from depth-1 nodes only.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

func (c *Counters) add(o Counters) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
}

// Count walks the legal move tree rooted at pos to the given depth and
// returns the leaf-node tally.
func Count(pos *engine.Position, depth int) Counters {
	if depth == 0 {
		return Counters{Nodes: 1}
	}

	var r Counters
	for _, m := range pos.LegalMoves() {
		if depth == 1 {
			if !pos.PieceAt(m.To).IsEmpty() {
				r.Captures++
			}
			switch m.Kind {
			case engine.Enpassant:
				r.EnPassant++
				r.Captures++
			case engine.Castling:
				r.Castles++
			case engine.Promotion:
				r.Promotions++
			}
		}

		child := pos.Clone()
		child.MakeMove(m)
		r.add(Count(child, depth-1))
	}
	return r
}
