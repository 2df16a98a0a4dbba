package engine

// Board is eight parallel bitboards: one per color and one per piece
// kind. Move generation works with set operations across these masks
// rather than per-square dispatch.
type Board struct {
	White, Black                          Bitboard
	Pawn, Knight, Bishop, Rook, Queen, King Bitboard
}

// byColor returns the occupancy mask for col.
func (b *Board) byColor(col Color) Bitboard {
	if col == White {
		return b.White
	}
	return b.Black
}

// byKind returns the occupancy mask for kind.
func (b *Board) byKind(kind PieceKind) Bitboard {
	switch kind {
	case Pawn:
		return b.Pawn
	case Knight:
		return b.Knight
	case Bishop:
		return b.Bishop
	case Rook:
		return b.Rook
	case Queen:
		return b.Queen
	case King:
		return b.King
	default:
		return 0
	}
}

// byKindPtr returns a pointer to the mask for kind, for in-place update.
func (b *Board) byKindPtr(kind PieceKind) *Bitboard {
	switch kind {
	case Pawn:
		return &b.Pawn
	case Knight:
		return &b.Knight
	case Bishop:
		return &b.Bishop
	case Rook:
		return &b.Rook
	case Queen:
		return &b.Queen
	case King:
		return &b.King
	default:
		panic("byKindPtr: NoKind has no mask")
	}
}

// byColorPtr returns a pointer to the mask for col, for in-place update.
func (b *Board) byColorPtr(col Color) *Bitboard {
	if col == White {
		return &b.White
	}
	return &b.Black
}

// occupied returns the union of all occupied squares.
func (b *Board) occupied() Bitboard {
	return b.White | b.Black
}

// byPiece is a shortcut for byColor(col) & byKind(kind).
func (b *Board) byPiece(col Color, kind PieceKind) Bitboard {
	return b.byColor(col) & b.byKind(kind)
}

// GetPiece reads the piece occupying sq by checking each mask.
func (b *Board) GetPiece(sq Square) Piece {
	var col Color
	switch {
	case b.White.Has(sq):
		col = White
	case b.Black.Has(sq):
		col = Black
	default:
		return NoPiece
	}
	for kind := KindMinValue; kind <= KindMaxValue; kind++ {
		if b.byKind(kind).Has(sq) {
			return Piece{Color: col, Kind: kind}
		}
	}
	panic("GetPiece: square marked occupied but present in no kind mask")
}

// SetPiece clears any existing occupant of sq, then sets the color and
// kind bits for p. Panics if p is empty: set_piece's invariant violation
// per the empty-piece case is a programmer error, not a runtime one.
func (b *Board) SetPiece(sq Square, p Piece) {
	if p.IsEmpty() {
		panic("SetPiece: piece must not be empty")
	}
	b.ClearPiece(sq)
	bb := sq.Bitboard()
	*b.byColorPtr(p.Color) |= bb
	*b.byKindPtr(p.Kind) |= bb
}

// ClearPiece resets the bit at sq in every mask.
func (b *Board) ClearPiece(sq Square) {
	bb := ^sq.Bitboard()
	b.White &= bb
	b.Black &= bb
	b.Pawn &= bb
	b.Knight &= bb
	b.Bishop &= bb
	b.Rook &= bb
	b.Queen &= bb
	b.King &= bb
}

// MovePiece stamps to with from's bit in every mask: whenever the source
// bit differs from the destination bit, the destination bit is flipped
// so that to mirrors from. It does not clear from — callers must call
// ClearPiece(from) afterwards; make-move relies on exactly this sequence.
func (b *Board) MovePiece(from, to Square) {
	movePieceMask(&b.White, from, to)
	movePieceMask(&b.Black, from, to)
	movePieceMask(&b.Pawn, from, to)
	movePieceMask(&b.Knight, from, to)
	movePieceMask(&b.Bishop, from, to)
	movePieceMask(&b.Rook, from, to)
	movePieceMask(&b.Queen, from, to)
	movePieceMask(&b.King, from, to)
}

func movePieceMask(bb *Bitboard, from, to Square) {
	fromBit := (*bb >> uint(from)) & 1
	toBit := (*bb >> uint(to)) & 1
	if fromBit != toBit {
		*bb ^= to.Bitboard()
	}
}

// Rotate reverses all 64 bits in every mask. Used only by external
// display code that renders the board from Black's point of view.
func (b *Board) Rotate() {
	b.White = reverseBits(b.White)
	b.Black = reverseBits(b.Black)
	b.Pawn = reverseBits(b.Pawn)
	b.Knight = reverseBits(b.Knight)
	b.Bishop = reverseBits(b.Bishop)
	b.Rook = reverseBits(b.Rook)
	b.Queen = reverseBits(b.Queen)
	b.King = reverseBits(b.King)
}

func reverseBits(bb Bitboard) Bitboard {
	var r Bitboard
	x := uint64(bb)
	for i := 0; i < 64; i++ {
		r <<= 1
		r |= Bitboard(x & 1)
		x >>= 1
	}
	return r
}
