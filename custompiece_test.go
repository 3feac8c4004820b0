package vachess

import "testing"

// ferzPattern is a one-step diagonal leaper, the classic variant "ferz"
// piece, used here to exercise the CustomPieceBehavior extensibility point.
var ferzPattern = JumpingPattern{Offsets: []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}}

func newGeneratorWithFerz() (*MoveGenerator, PieceKind) {
	ferz := CustomKind(0)
	gen := NewMoveGenerator(
		NewAttackTable(StandardDimensions()),
		WithCustomPiece(ferz, CustomPieceBehavior{Pattern: ferzPattern, CanPromote: true}),
	)
	return gen, ferz
}

func TestCustomPieceGeneratesMoves(t *testing.T) {
	dims := StandardDimensions()
	gen, ferz := newGeneratorWithFerz()
	pos := NewEmptyPosition(dims)
	sq := NewSquare(dims, 3, 3)
	pos.SetPiece(sq, Piece{Color: White, Kind: ferz})

	moves := gen.GeneratePseudoLegal(pos)
	if len(moves) != 4 {
		t.Fatalf("ferz on an empty board has %d moves, want 4", len(moves))
	}
	want := map[Square]bool{
		NewSquare(dims, 2, 2): true,
		NewSquare(dims, 2, 4): true,
		NewSquare(dims, 4, 2): true,
		NewSquare(dims, 4, 4): true,
	}
	for _, m := range moves {
		if m.Src() != sq || !want[m.Dst()] {
			t.Errorf("unexpected ferz move %s -> %s", m.Src(), m.Dst())
		}
	}
}

func TestCustomPieceCannotJumpOntoFriendlyPiece(t *testing.T) {
	dims := StandardDimensions()
	gen, ferz := newGeneratorWithFerz()
	pos := NewEmptyPosition(dims)
	sq := NewSquare(dims, 3, 3)
	pos.SetPiece(sq, Piece{Color: White, Kind: ferz})
	pos.SetPiece(NewSquare(dims, 2, 2), Piece{Color: White, Kind: Pawn})

	moves := gen.GeneratePseudoLegal(pos)
	n := countMoves(moves, func(m Move) bool { return m.Src() == sq })
	if n != 3 {
		t.Errorf("ferz blocked by a friendly piece on one diagonal square has %d moves, want 3", n)
	}
}

func TestCustomPieceCapturesEnemyPiece(t *testing.T) {
	dims := StandardDimensions()
	gen, ferz := newGeneratorWithFerz()
	pos := NewEmptyPosition(dims)
	sq := NewSquare(dims, 3, 3)
	capSq := NewSquare(dims, 2, 2)
	pos.SetPiece(sq, Piece{Color: White, Kind: ferz})
	pos.SetPiece(capSq, Piece{Color: Black, Kind: Pawn})

	moves := gen.GeneratePseudoLegal(pos)
	found := false
	for _, m := range moves {
		if m.Src() == sq && m.Dst() == capSq {
			if m.Kind() != Capture {
				t.Errorf("ferz taking an enemy pawn should be a Capture move, got %v", m.Kind())
			}
			found = true
		}
	}
	if !found {
		t.Errorf("expected the ferz to generate a capture of the enemy pawn on %s", capSq)
	}
}

func TestIsSquareAttackedByCustomPiece(t *testing.T) {
	dims := StandardDimensions()
	gen, ferz := newGeneratorWithFerz()
	pos := NewEmptyPosition(dims)
	pos.SetPiece(NewSquare(dims, 3, 3), Piece{Color: Black, Kind: ferz})

	if !gen.IsSquareAttacked(pos, NewSquare(dims, 2, 2), Black) {
		t.Errorf("black ferz on d4 should attack c3")
	}
	if gen.IsSquareAttacked(pos, NewSquare(dims, 3, 4), Black) {
		t.Errorf("black ferz on d4 should not attack d5 (orthogonal, not diagonal)")
	}
}

func TestCustomPiecePromotionChoiceOffered(t *testing.T) {
	dims := StandardDimensions()
	gen, ferz := newGeneratorWithFerz()
	pos, err := ParseFEN(dims, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := gen.GeneratePseudoLegal(pos)
	found := false
	n := 0
	for _, m := range moves {
		if m.Kind() != PromotionKind {
			continue
		}
		n++
		if m.PromotionKindFor() == ferz {
			found = true
		}
	}
	if n != 5 {
		t.Errorf("promotion should offer 4 standard choices plus the custom ferz, got %d choices", n)
	}
	if !found {
		t.Errorf("expected a promotion choice to the registered custom ferz kind")
	}
}
