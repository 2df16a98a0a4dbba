package perft

import (
	"testing"

	"github.com/abra-engine/abra/engine"
)

const (
	startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	duplain  = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

var startposData = []Counters{
	{Nodes: 1},
	{Nodes: 20},
	{Nodes: 400},
	{Nodes: 8902, Captures: 34},
}

var kiwipeteData = []Counters{
	{Nodes: 1},
	{Nodes: 48, Captures: 8, Castles: 2},
	{Nodes: 2039, Captures: 351, EnPassant: 1, Castles: 91},
}

var duplainData = []Counters{
	{Nodes: 1},
	{Nodes: 14, Captures: 1},
	{Nodes: 191, Captures: 14},
	{Nodes: 2812, Captures: 209, EnPassant: 2},
}

func testHelper(t *testing.T, fen string, data []Counters) {
	t.Helper()
	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid FEN %q: %v", fen, err)
	}
	for depth, expected := range data {
		got := Count(pos, depth)
		if got != expected {
			t.Errorf("depth %d: got %+v, want %+v", depth, got, expected)
		}
	}
}

func TestPerftInitial(t *testing.T) {
	testHelper(t, startpos, startposData)
}

func TestPerftKiwipete(t *testing.T) {
	testHelper(t, kiwipete, kiwipeteData)
}

func TestPerftDuplain(t *testing.T) {
	testHelper(t, duplain, duplainData)
}
