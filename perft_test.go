package vachess

import "testing"

func TestPerftStartingPosition(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	gen := newStandardGenerator()
	for _, tc := range cases {
		pos := StartingPosition()
		if got := Perft(gen, pos, tc.depth); got != tc.nodes {
			t.Errorf("Perft(depth=%d) = %d, want %d", tc.depth, got, tc.nodes)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	gen := newStandardGenerator()
	pos := StartingPosition()
	results := PerftDivide(gen, pos, 3)
	var sum uint64
	for _, r := range results {
		sum += r.Nodes
	}
	want := Perft(gen, pos, 3)
	if sum != want {
		t.Errorf("sum of PerftDivide(3) = %d, want %d (Perft(3))", sum, want)
	}
}

func TestPerftDivideRootMoveCountMatchesLegalMoves(t *testing.T) {
	gen := newStandardGenerator()
	pos := StartingPosition()
	results := PerftDivide(gen, pos, 1)
	if len(results) != 20 {
		t.Errorf("PerftDivide(1) produced %d root moves, want 20", len(results))
	}
	for _, r := range results {
		if r.Nodes != 1 {
			t.Errorf("PerftDivide(1) leaf count for %s = %d, want 1", r.Move, r.Nodes)
		}
	}
}

func TestPerftDoesNotMutateRootPosition(t *testing.T) {
	gen := newStandardGenerator()
	pos := StartingPosition()
	before := pos.FEN()
	Perft(gen, pos, 3)
	if after := pos.FEN(); after != before {
		t.Errorf("Perft mutated the root position: got %q, want %q", after, before)
	}
}

func TestPerftKiwipeteStyleCastlingPosition(t *testing.T) {
	dims := StandardDimensions()
	pos, err := ParseFEN(dims, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	gen := newStandardGenerator()
	got := Perft(gen, pos, 1)
	if got != 26 {
		t.Errorf("Perft(1) on the open-board castling position = %d, want 26", got)
	}
}
