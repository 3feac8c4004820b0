package vachess

// standardKindCount sizes the per-kind bitboard slice for the six standard
// piece kinds; it grows lazily past this for variant pieces declared
// through FEN.
const standardKindCount = 6

// stateSnapshot captures everything MakeMove must be able to restore that
// isn't recoverable from the move itself: castling rights, en passant
// target, halfmove clock, and whatever piece MakeMove's capture step
// removed. Pushed onto Position.history by MakeMove, popped by UnmakeMove:
// an explicit LIFO undo stack, since a wide board is too large to cheaply
// clone on every move.
type stateSnapshot struct {
	castling      CastlingRights
	epSquare      Square
	halfmoveClock int
	captured      Piece
	hadCapture    bool
	movedRookSrc  Square // castling only: the rook's origin square
	movedRookDst  Square // castling only: the rook's destination square
}

// Position is the mutable board state: piece placement, side to move,
// castling rights, en passant target, and move counters. It exposes
// MakeMove/UnmakeMove for in-place traversal, since a 256-square position
// is too large to clone on every pseudo-legal move during search.
type Position struct {
	dims Dimensions

	sideToMove Color

	// pieceBB[kind] is the occupancy of that kind across both colors.
	// Indexed by PieceKind; grows past standardKindCount for Custom kinds.
	pieceBB []BitBoard
	// colorBB[c] is the occupancy of every piece of color c.
	colorBB [2]BitBoard
	all     BitBoard

	// board is a dense square->Piece lookup, mirroring the bitboards.
	// present[sq] is false for an empty square.
	board   []Piece
	present []bool

	castling      CastlingRights
	epSquare      Square
	halfmoveClock int
	fullmoveNum   int

	history []stateSnapshot
}

// NewEmptyPosition returns a Position with no pieces placed, White to move,
// no castling rights, no en passant target, and counters at their initial
// values.
func NewEmptyPosition(dims Dimensions) *Position {
	n := dims.NumSquares()
	p := &Position{
		dims:          dims,
		sideToMove:    White,
		pieceBB:       make([]BitBoard, standardKindCount),
		board:         make([]Piece, n),
		present:       make([]bool, n),
		castling:      0,
		epSquare:      NoSquare,
		halfmoveClock: 0,
		fullmoveNum:   1,
	}
	p.colorBB[White] = EmptyBitBoard(dims)
	p.colorBB[Black] = EmptyBitBoard(dims)
	p.all = EmptyBitBoard(dims)
	for i := range p.pieceBB {
		p.pieceBB[i] = EmptyBitBoard(dims)
	}
	return p
}

// Dimensions returns the board geometry.
func (p *Position) Dimensions() Dimensions { return p.dims }

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the currently granted castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EnPassantSquare returns the square a pawn skipped over on its last
// double push, or NoSquare if none.
func (p *Position) EnPassantSquare() Square { return p.epSquare }

// HalfmoveClock returns the number of halfmoves since the last capture or
// pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the current fullmove number, starting at 1 and
// incrementing after Black's move.
func (p *Position) FullmoveNumber() int { return p.fullmoveNum }

func (p *Position) ensureKind(kind PieceKind) {
	for int(kind) >= len(p.pieceBB) {
		p.pieceBB = append(p.pieceBB, EmptyBitBoard(p.dims))
	}
}

// PieceAt returns the piece on sq and whether one is present.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !p.present[sq] {
		return Piece{}, false
	}
	return p.board[sq], true
}

// IsOccupied reports whether any piece sits on sq.
func (p *Position) IsOccupied(sq Square) bool { return p.present[sq] }

// IsOccupiedBy reports whether sq holds a piece of color c.
func (p *Position) IsOccupiedBy(sq Square, c Color) bool {
	return p.present[sq] && p.board[sq].Color == c
}

// PieceBB returns the occupancy bitboard for kind across both colors.
func (p *Position) PieceBB(kind PieceKind) BitBoard {
	if int(kind) >= len(p.pieceBB) {
		return EmptyBitBoard(p.dims)
	}
	return p.pieceBB[kind]
}

// ColorBB returns the occupancy bitboard for every piece of color c.
func (p *Position) ColorBB(c Color) BitBoard { return p.colorBB[c] }

// KindBB returns the occupancy bitboard for pieces of kind and color c.
func (p *Position) KindBB(kind PieceKind, c Color) BitBoard {
	return p.PieceBB(kind).Intersect(p.colorBB[c])
}

// Occupied returns the union occupancy bitboard across both colors.
func (p *Position) Occupied() BitBoard { return p.all }

// SetPiece places pc on sq. sq must be empty; placing onto an occupied
// square is a programmer error (use RemovePiece first) and panics.
func (p *Position) SetPiece(sq Square, pc Piece) {
	if p.present[sq] {
		panic("vachess: SetPiece on occupied square")
	}
	p.ensureKind(pc.Kind)
	p.board[sq] = pc
	p.present[sq] = true
	p.pieceBB[pc.Kind] = p.pieceBB[pc.Kind].Set(sq)
	p.colorBB[pc.Color] = p.colorBB[pc.Color].Set(sq)
	p.all = p.all.Set(sq)
}

// RemovePiece removes and returns the piece on sq. sq must be occupied;
// removing from an empty square is a programmer error and panics.
func (p *Position) RemovePiece(sq Square) Piece {
	if !p.present[sq] {
		panic("vachess: RemovePiece on empty square")
	}
	pc := p.board[sq]
	p.present[sq] = false
	p.pieceBB[pc.Kind] = p.pieceBB[pc.Kind].Clear(sq)
	p.colorBB[pc.Color] = p.colorBB[pc.Color].Clear(sq)
	p.all = p.all.Clear(sq)
	return pc
}

func (p *Position) movePieceOnly(src, dst Square) {
	pc := p.RemovePiece(src)
	p.SetPiece(dst, pc)
}

// homeKingFile returns the file a color's king starts on: the e-file (4)
// on boards width>=8, proportionally closer to center on narrower boards.
func homeKingFile(dims Dimensions) int {
	if dims.Width() >= 8 {
		return 4
	}
	return dims.Width() / 2
}

// castlingKingFile returns the file the king lands on when castling
// kingside (ks=true) or queenside (ks=false): two files toward the
// relevant rook from its home file.
func castlingKingFile(dims Dimensions, ks bool) int {
	if ks {
		return homeKingFile(dims) + 2
	}
	return homeKingFile(dims) - 2
}

// castlingRookFile returns the rook's landing file for the same side: the
// file immediately next to the king's destination, on the side it came
// from (the classic castling shape — original_source never records a rook
// destination of its own, since its Castling application was left
// unimplemented).
func castlingRookFile(dims Dimensions, ks bool) int {
	if ks {
		return castlingKingFile(dims, ks) - 1
	}
	return castlingKingFile(dims, ks) + 1
}

// backRank returns the color's home rank: 0 for White, height-1 for Black.
func backRank(dims Dimensions, c Color) int {
	if c == White {
		return 0
	}
	return dims.Height() - 1
}

// homeRookFile returns the file a color's rook starts on for side ks, used
// to locate the rook MakeMove must move during castling and to know which
// rook move revokes which castling right.
func homeRookFile(dims Dimensions, ks bool) int {
	if ks {
		return dims.Width() - 1
	}
	return 0
}

// MakeMove applies m to the position: it updates piece placement, side to
// move, castling rights, en passant target, and move counters, and pushes
// a stateSnapshot so UnmakeMove can restore everything MakeMove cannot
// recompute from m alone. MakeMove does not check legality; the caller is
// responsible for only applying moves GeneratePseudoLegal produced.
func (p *Position) MakeMove(m Move) {
	src, dst := m.Src(), m.Dst()
	mover, ok := p.PieceAt(src)
	if !ok {
		panic("vachess: MakeMove from empty square")
	}

	snap := stateSnapshot{
		castling:      p.castling,
		epSquare:      p.epSquare,
		halfmoveClock: p.halfmoveClock,
	}

	nextEP := NoSquare
	resetHalfmove := mover.Kind == Pawn

	switch m.Kind() {
	case Quiet:
		p.movePieceOnly(src, dst)
		if mover.Kind == Pawn {
			_, srcRank := src.FileRank(p.dims)
			_, dstRank := dst.FileRank(p.dims)
			if abs(dstRank-srcRank) == 2 {
				file, _ := src.FileRank(p.dims)
				skipped := rankBetween(srcRank, dstRank)
				nextEP = NewSquare(p.dims, file, skipped)
			}
		}

	case Capture:
		snap.captured = p.RemovePiece(dst)
		snap.hadCapture = true
		p.movePieceOnly(src, dst)
		resetHalfmove = true

	case EnPassant:
		_, srcRank := src.FileRank(p.dims)
		dstFile, _ := dst.FileRank(p.dims)
		capturedSq := NewSquare(p.dims, dstFile, srcRank)
		snap.captured = p.RemovePiece(capturedSq)
		snap.hadCapture = true
		p.movePieceOnly(src, dst)
		resetHalfmove = true

	case PromotionKind:
		if p.IsOccupied(dst) {
			snap.captured = p.RemovePiece(dst)
			snap.hadCapture = true
		}
		p.RemovePiece(src)
		p.SetPiece(dst, Piece{Color: mover.Color, Kind: m.PromotionKindFor()})
		resetHalfmove = true

	case Castling:
		ks := dst.File(p.dims) > src.File(p.dims)
		rookFile := homeRookFile(p.dims, ks)
		rank := backRank(p.dims, mover.Color)
		rookSrc := NewSquare(p.dims, rookFile, rank)
		rookDst := NewSquare(p.dims, castlingRookFile(p.dims, ks), rank)
		p.movePieceOnly(src, dst)
		p.movePieceOnly(rookSrc, rookDst)
		snap.movedRookSrc, snap.movedRookDst = rookSrc, rookDst

	default:
		panic("vachess: MakeMove with unknown move kind")
	}

	p.castling = p.nextCastlingRights(mover, src, dst, m.Kind())
	p.epSquare = nextEP
	if resetHalfmove {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if p.sideToMove == Black {
		p.fullmoveNum++
	}
	p.sideToMove = p.sideToMove.Opposite()
	p.history = append(p.history, snap)
}

// nextCastlingRights computes the castling rights remaining after a move by
// mover from src to dst: moving a king revokes both of its color's rights;
// moving or capturing on a rook's home square revokes that single right.
func (p *Position) nextCastlingRights(mover Piece, src, dst Square, kind MoveKind) CastlingRights {
	cr := p.castling
	if mover.Kind == King {
		cr = cr.Without(kingsideRight(mover.Color)).Without(queensideRight(mover.Color))
	}
	revokeForRookSquare := func(sq Square) {
		file, rank := sq.FileRank(p.dims)
		for _, c := range [2]Color{White, Black} {
			if rank != backRank(p.dims, c) {
				continue
			}
			if file == homeRookFile(p.dims, true) {
				cr = cr.Without(kingsideRight(c))
			}
			if file == homeRookFile(p.dims, false) {
				cr = cr.Without(queensideRight(c))
			}
		}
	}
	revokeForRookSquare(src)
	if kind == Capture || kind == PromotionKind {
		revokeForRookSquare(dst)
	}
	return cr
}

// UnmakeMove reverses the most recent MakeMove call. Calling UnmakeMove
// when no move is outstanding, or with an m that doesn't match the move
// MakeMove last applied, is a programmer error; the core does not detect
// mismatches beyond what panics naturally.
func (p *Position) UnmakeMove(m Move) {
	if len(p.history) == 0 {
		panic("vachess: UnmakeMove with empty history")
	}
	snap := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	if p.sideToMove == White {
		p.fullmoveNum--
	}
	p.sideToMove = p.sideToMove.Opposite()
	src, dst := m.Src(), m.Dst()

	switch m.Kind() {
	case Quiet:
		p.movePieceOnly(dst, src)

	case Capture:
		p.movePieceOnly(dst, src)
		p.SetPiece(dst, snap.captured)

	case EnPassant:
		p.movePieceOnly(dst, src)
		_, srcRank := src.FileRank(p.dims)
		dstFile, _ := dst.FileRank(p.dims)
		capturedSq := NewSquare(p.dims, dstFile, srcRank)
		p.SetPiece(capturedSq, snap.captured)

	case PromotionKind:
		promoted := p.RemovePiece(dst)
		p.SetPiece(src, Piece{Color: promoted.Color, Kind: Pawn})
		if snap.hadCapture {
			p.SetPiece(dst, snap.captured)
		}

	case Castling:
		p.movePieceOnly(dst, src)
		p.movePieceOnly(snap.movedRookDst, snap.movedRookSrc)

	default:
		panic("vachess: UnmakeMove with unknown move kind")
	}

	p.castling = snap.castling
	p.epSquare = snap.epSquare
	p.halfmoveClock = snap.halfmoveClock
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// rankBetween returns the rank strictly between a double pawn push's start
// and end rank (their average, since the push spans exactly two ranks).
func rankBetween(a, b int) int {
	if a < b {
		return a + 1
	}
	return a - 1
}

// Clone returns a deep copy of p's board and state, independent of further
// mutation to either copy. The undo history is not copied, so UnmakeMove on
// the clone can only reverse moves made on the clone itself. Used by Perft,
// which recurses by cloning rather than by MakeMove/UnmakeMove.
func (p *Position) Clone() *Position {
	c := &Position{
		dims:          p.dims,
		sideToMove:    p.sideToMove,
		pieceBB:       append([]BitBoard(nil), p.pieceBB...),
		colorBB:       p.colorBB,
		all:           p.all,
		board:         append([]Piece(nil), p.board...),
		present:       append([]bool(nil), p.present...),
		castling:      p.castling,
		epSquare:      p.epSquare,
		halfmoveClock: p.halfmoveClock,
		fullmoveNum:   p.fullmoveNum,
	}
	return c
}
