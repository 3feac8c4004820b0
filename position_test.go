package vachess

import "testing"

func TestSetPieceRemovePieceUpdatesOccupancy(t *testing.T) {
	dims := StandardDimensions()
	pos := NewEmptyPosition(dims)
	sq := NewSquare(dims, 4, 4)
	pos.SetPiece(sq, Piece{Color: White, Kind: Knight})

	if !pos.IsOccupied(sq) {
		t.Fatalf("square should be occupied after SetPiece")
	}
	if !pos.PieceBB(Knight).Contains(sq) {
		t.Errorf("PieceBB(Knight) should contain sq")
	}
	if !pos.ColorBB(White).Contains(sq) {
		t.Errorf("ColorBB(White) should contain sq")
	}
	if !pos.Occupied().Contains(sq) {
		t.Errorf("Occupied() should contain sq")
	}

	pc := pos.RemovePiece(sq)
	if pc.Kind != Knight || pc.Color != White {
		t.Errorf("RemovePiece returned %v, want white knight", pc)
	}
	if pos.IsOccupied(sq) {
		t.Errorf("square should be empty after RemovePiece")
	}
}

func TestSetPieceOnOccupiedSquarePanics(t *testing.T) {
	dims := StandardDimensions()
	pos := NewEmptyPosition(dims)
	sq := NewSquare(dims, 0, 0)
	pos.SetPiece(sq, Piece{Color: White, Kind: Pawn})
	defer func() {
		if recover() == nil {
			t.Errorf("SetPiece on an occupied square should panic")
		}
	}()
	pos.SetPiece(sq, Piece{Color: Black, Kind: Pawn})
}

func TestMakeMoveQuietAndUnmake(t *testing.T) {
	pos := StartingPosition()
	before := pos.FEN()
	m := NewMove(NewSquare(pos.Dimensions(), 4, 1), NewSquare(pos.Dimensions(), 4, 3), Quiet, 0)
	pos.MakeMove(m)
	if pos.IsOccupied(NewSquare(pos.Dimensions(), 4, 1)) {
		t.Errorf("source square should be empty after a quiet move")
	}
	if !pos.IsOccupied(NewSquare(pos.Dimensions(), 4, 3)) {
		t.Errorf("destination square should be occupied after a quiet move")
	}
	if pos.SideToMove() != Black {
		t.Errorf("side to move should flip after a move")
	}
	pos.UnmakeMove(m)
	if after := pos.FEN(); after != before {
		t.Errorf("UnmakeMove did not restore position: got %q, want %q", after, before)
	}
}

func TestMakeMoveDoublePushSetsEnPassant(t *testing.T) {
	pos := StartingPosition()
	dims := pos.Dimensions()
	m := NewMove(NewSquare(dims, 4, 1), NewSquare(dims, 4, 3), Quiet, 0)
	pos.MakeMove(m)
	want := NewSquare(dims, 4, 2)
	if pos.EnPassantSquare() != want {
		t.Errorf("EnPassantSquare() = %v, want %v", pos.EnPassantSquare(), want)
	}
}

func TestMakeMoveCaptureAndUnmake(t *testing.T) {
	dims := StandardDimensions()
	pos := NewEmptyPosition(dims)
	src := NewSquare(dims, 3, 3)
	dst := NewSquare(dims, 3, 5)
	pos.SetPiece(src, Piece{Color: White, Kind: Rook})
	pos.SetPiece(dst, Piece{Color: Black, Kind: Pawn})
	before := pos.FEN()

	m := NewMove(src, dst, Capture, 0)
	pos.MakeMove(m)
	pc, ok := pos.PieceAt(dst)
	if !ok || pc.Kind != Rook || pc.Color != White {
		t.Fatalf("capture destination should hold the moved rook, got %v, %v", pc, ok)
	}
	if pos.IsOccupied(src) {
		t.Errorf("source square should be empty after capture")
	}

	pos.UnmakeMove(m)
	if after := pos.FEN(); after != before {
		t.Errorf("UnmakeMove did not restore a capture: got %q, want %q", after, before)
	}
}

func TestMakeMoveEnPassantAndUnmake(t *testing.T) {
	dims := StandardDimensions()
	pos, err := ParseFEN(dims, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := pos.FEN()
	src := NewSquare(dims, 4, 4) // e5
	dst := NewSquare(dims, 3, 5) // d6
	m := NewMove(src, dst, EnPassant, 0)
	pos.MakeMove(m)

	capturedSq := NewSquare(dims, 3, 4) // d5
	if pos.IsOccupied(capturedSq) {
		t.Errorf("captured pawn square should be empty after en passant")
	}
	if !pos.IsOccupied(dst) {
		t.Errorf("destination should be occupied after en passant")
	}

	pos.UnmakeMove(m)
	if after := pos.FEN(); after != before {
		t.Errorf("UnmakeMove did not restore en passant: got %q, want %q", after, before)
	}
}

func TestMakeMovePromotionChoiceAndUnmake(t *testing.T) {
	dims := StandardDimensions()
	pos, err := ParseFEN(dims, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := pos.FEN()
	src := NewSquare(dims, 0, 6)
	dst := NewSquare(dims, 0, 7)
	m := NewPromotion(src, dst, Knight)
	pos.MakeMove(m)
	pc, ok := pos.PieceAt(dst)
	if !ok || pc.Kind != Knight || pc.Color != White {
		t.Fatalf("promotion should place a white knight, got %v, %v", pc, ok)
	}
	pos.UnmakeMove(m)
	if after := pos.FEN(); after != before {
		t.Errorf("UnmakeMove did not restore promotion: got %q, want %q", after, before)
	}
}

func TestMakeMoveCastlingMovesRookAndClearsRights(t *testing.T) {
	dims := StandardDimensions()
	pos, err := ParseFEN(dims, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before := pos.FEN()
	src := NewSquare(dims, 4, 0)
	dst := NewSquare(dims, 6, 0)
	m := NewMove(src, dst, Castling, 0)
	pos.MakeMove(m)

	rookDst := NewSquare(dims, 5, 0)
	if !pos.IsOccupied(rookDst) {
		t.Fatalf("rook should have moved to f1")
	}
	if pos.IsOccupied(NewSquare(dims, 7, 0)) {
		t.Errorf("rook's home square should be empty after castling")
	}
	if pos.CastlingRights() != 0 {
		t.Errorf("castling should clear both of the mover's rights, got %v", pos.CastlingRights())
	}

	pos.UnmakeMove(m)
	if after := pos.FEN(); after != before {
		t.Errorf("UnmakeMove did not restore castling: got %q, want %q", after, before)
	}
}

func TestRookMoveRevokesSingleCastlingRight(t *testing.T) {
	dims := StandardDimensions()
	pos, err := ParseFEN(dims, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	src := NewSquare(dims, 0, 0)
	dst := NewSquare(dims, 0, 1)
	pos.MakeMove(NewMove(src, dst, Quiet, 0))
	if pos.CastlingRights().Has(WhiteQueenside) {
		t.Errorf("moving the a1 rook should revoke white queenside rights")
	}
	if !pos.CastlingRights().Has(WhiteKingside) {
		t.Errorf("moving the a1 rook should not revoke white kingside rights")
	}
}
