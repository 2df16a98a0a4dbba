package engine

import "testing"

func TestStartingPositionHasTwentyLegalMoves(t *testing.T) {
	pos := NewPosition()
	moves := pos.LegalMoves()
	if len(moves) != 20 {
		t.Errorf("got %d legal moves from the starting position, want 20", len(moves))
	}
}

func TestLegalMovesNeverLeaveMoverInCheck(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("PositionFromFEN(%q): %v", fen, err)
		}
		us := pos.SideToMove
		for _, m := range pos.LegalMoves() {
			child := pos.Clone()
			child.MakeMove(m)
			if child.InCheck(us) {
				t.Errorf("fen %q: move %v leaves %v in check", fen, m, us)
			}
		}
	}
}

func TestMakeMoveConservesMaterialExceptOnCapture(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("PositionFromFEN(%q): %v", fen, err)
		}
		before := pos.occupied().Popcnt()
		for _, m := range pos.LegalMoves() {
			child := pos.Clone()
			isCapture := !pos.PieceAt(m.To).IsEmpty() || m.Kind == Enpassant
			child.MakeMove(m)
			after := child.occupied().Popcnt()
			want := before
			if isCapture {
				want--
			}
			if after != want {
				t.Errorf("fen %q move %v: %d pieces after, want %d", fen, m, after, want)
			}
		}
	}
}

func TestFoolsMate(t *testing.T) {
	pos := NewPosition()
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}
	for _, s := range moves {
		m, err := MoveFromUCI(pos, s)
		if err != nil {
			t.Fatalf("MoveFromUCI(%q): %v", s, err)
		}
		pos.MakeMove(m)
	}
	if !pos.IsTerminal() {
		t.Fatalf("position after fool's mate is not terminal")
	}
	if got := pos.GameResult(); got != Black {
		t.Errorf("game result = %v, want Black (checkmate)", got)
	}
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: Black to move, king on h8 has no legal move and
	// is not in check.
	pos, err := PositionFromFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	if !pos.IsTerminal() {
		t.Fatalf("stalemate position is not detected as terminal")
	}
	if got := pos.GameResult(); got != NoColor {
		t.Errorf("game result = %v, want NoColor (draw)", got)
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos, err := PositionFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	m, err := MoveFromUCI(pos, "e5d6")
	if err != nil {
		t.Fatalf("MoveFromUCI: %v", err)
	}
	if m.Kind != Enpassant {
		t.Fatalf("expected an en-passant move, got %+v", m)
	}
	pos.MakeMove(m)
	if !pos.PieceAt(RowCol(3, 3)).IsEmpty() {
		t.Errorf("captured pawn still present on d5")
	}
	if pos.PieceAt(RowCol(2, 3)) != (Piece{White, Pawn}) {
		t.Errorf("capturing pawn not on d6")
	}
}

func TestCastlingMovesRookAndRevokesRights(t *testing.T) {
	pos, err := PositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	m, err := MoveFromUCI(pos, "e1g1")
	if err != nil {
		t.Fatalf("MoveFromUCI: %v", err)
	}
	if m.Kind != Castling {
		t.Fatalf("expected a castling move, got %+v", m)
	}
	pos.MakeMove(m)
	if pos.PieceAt(RowCol(7, 5)) != (Piece{White, Rook}) {
		t.Errorf("rook did not land on f1")
	}
	if pos.PieceAt(RowCol(7, 7)).Kind != NoKind {
		t.Errorf("rook still on h1")
	}
	if pos.Castling&(WhiteOO|WhiteOOO) != 0 {
		t.Errorf("white castling rights not revoked: %v", pos.Castling)
	}
	if pos.Castling&(BlackOO|BlackOOO) != BlackOO|BlackOOO {
		t.Errorf("black castling rights unexpectedly revoked: %v", pos.Castling)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	pos, err := PositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	if !pos.InsufficientMaterial() {
		t.Errorf("bare kings should be insufficient material")
	}

	pos, err = PositionFromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("PositionFromFEN: %v", err)
	}
	if pos.InsufficientMaterial() {
		t.Errorf("a lone pawn is sufficient material")
	}
}
