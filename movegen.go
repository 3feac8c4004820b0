package vachess

// CustomPieceBehavior describes how a variant PieceKind moves and whether
// it can promote, registered with a MoveGenerator through
// WithCustomPiece.
type CustomPieceBehavior struct {
	// Pattern computes the piece's reachable squares. Required.
	Pattern MovePattern
	// CanPromote marks the kind as a valid pawn promotion target.
	CanPromote bool
}

// Config carries the rule parameters a MoveGenerator needs beyond the raw
// AttackTable: the default (unspecified) promotion target. The zero value
// uses the standard chess default (Queen). The castling king-file rule is
// not part of Config: it's a structural property of a Position's
// Dimensions shared by Position.MakeMove itself, not something a
// generator can independently override without the two disagreeing about
// where the rook lands.
type Config struct {
	// DefaultPromotion is the piece a pawn promotes to when the generator
	// must pick one without direction from the caller. GeneratePseudoLegal
	// still enumerates every legal promotion choice, but orders this one
	// first, so a caller that takes "the first promotion move generated"
	// gets this kind. Zero value (Pawn, i.e. unset) is treated as Queen.
	DefaultPromotion PieceKind
}

func (c Config) defaultPromotion() PieceKind {
	if c.DefaultPromotion == Pawn || c.DefaultPromotion == 0 {
		return Queen
	}
	return c.DefaultPromotion
}

// GeneratorOption configures a MoveGenerator at construction time.
type GeneratorOption func(*MoveGenerator)

// WithConfig overrides the generator's rule Config.
func WithConfig(cfg Config) GeneratorOption {
	return func(g *MoveGenerator) { g.cfg = cfg }
}

// WithCustomPiece registers behavior for a variant piece kind.
func WithCustomPiece(kind PieceKind, behavior CustomPieceBehavior) GeneratorOption {
	return func(g *MoveGenerator) { g.custom[kind] = behavior }
}

// MoveGenerator produces pseudo-legal moves for a Position: every move
// following the piece movement rules, without checking whether it leaves
// the moving side's own king in check. The exception is castling, which is
// emitted only when the king's current, transit and destination squares
// are not attacked. Checking king safety for every other move is the
// caller's job, via IsSquareAttacked.
type MoveGenerator struct {
	table  *AttackTable
	cfg    Config
	custom map[PieceKind]CustomPieceBehavior
}

// NewMoveGenerator builds a generator over table, applying any options.
func NewMoveGenerator(table *AttackTable, opts ...GeneratorOption) *MoveGenerator {
	g := &MoveGenerator{
		table:  table,
		custom: make(map[PieceKind]CustomPieceBehavior),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GeneratePseudoLegal returns every pseudo-legal move available to the side
// to move in pos.
func (g *MoveGenerator) GeneratePseudoLegal(pos *Position) []Move {
	var moves []Move
	dims := pos.Dimensions()
	side := pos.SideToMove()
	friendly := pos.ColorBB(side)
	occupied := pos.Occupied()

	for file := 0; file < dims.Width(); file++ {
		for rank := 0; rank < dims.Height(); rank++ {
			sq := NewSquare(dims, file, rank)
			pc, ok := pos.PieceAt(sq)
			if !ok || pc.Color != side {
				continue
			}
			switch pc.Kind {
			case Pawn:
				moves = g.appendPawnMoves(moves, pos, sq, side)
			case King:
				moves = g.appendStandardMoves(moves, pos, sq, pc, friendly, occupied)
				moves = g.appendCastlingMoves(moves, pos, sq, side)
			default:
				moves = g.appendStandardMoves(moves, pos, sq, pc, friendly, occupied)
			}
		}
	}
	return moves
}

// attacksFor returns the raw reachability bitboard for a piece of kind at
// sq, given occupied (for sliders) — dispatching to the AttackTable's
// precomputed knight/king tables, its ray-based slider queries, or a
// registered custom pattern.
func (g *MoveGenerator) attacksFor(kind PieceKind, sq Square, occupied BitBoard) BitBoard {
	switch kind {
	case Knight:
		return g.table.KnightAttacks(sq)
	case King:
		return g.table.KingAttacks(sq)
	case Bishop:
		return g.table.BishopAttacks(sq, occupied)
	case Rook:
		return g.table.RookAttacks(sq, occupied)
	case Queen:
		return g.table.QueenAttacks(sq, occupied)
	}
	if behavior, ok := g.custom[kind]; ok {
		return behavior.Pattern.AttacksFrom(sq, g.table.Dimensions(), occupied, EmptyBitBoard(g.table.Dimensions()))
	}
	return EmptyBitBoard(g.table.Dimensions())
}

// appendStandardMoves appends every Quiet/Capture move for a non-pawn,
// non-castling piece at sq.
func (g *MoveGenerator) appendStandardMoves(moves []Move, pos *Position, sq Square, pc Piece, friendly, occupied BitBoard) []Move {
	reach := g.attacksFor(pc.Kind, sq, occupied).Difference(friendly)
	for _, dst := range reach.Squares() {
		if pos.IsOccupied(dst) {
			moves = append(moves, NewMove(sq, dst, Capture, 0))
		} else {
			moves = append(moves, NewMove(sq, dst, Quiet, 0))
		}
	}
	return moves
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by
// in pos. This is the legality filter external to move generation: callers
// combine it with GeneratePseudoLegal to discard moves that leave the
// mover's king in check. appendCastlingMoves also uses it to keep castling
// out of and through check.
func (g *MoveGenerator) IsSquareAttacked(pos *Position, sq Square, by Color) bool {
	occupied := pos.Occupied()
	if !g.table.KnightAttacks(sq).Intersect(pos.KindBB(Knight, by)).IsEmpty() {
		return true
	}
	if !g.table.KingAttacks(sq).Intersect(pos.KindBB(King, by)).IsEmpty() {
		return true
	}
	if !g.table.BishopAttacks(sq, occupied).Intersect(pos.KindBB(Bishop, by).Union(pos.KindBB(Queen, by))).IsEmpty() {
		return true
	}
	if !g.table.RookAttacks(sq, occupied).Intersect(pos.KindBB(Rook, by).Union(pos.KindBB(Queen, by))).IsEmpty() {
		return true
	}
	dims := pos.Dimensions()
	file, rank := sq.FileRank(dims)
	pawnRank := rank - 1
	if by == Black {
		pawnRank = rank + 1
	}
	for _, df := range [2]int{-1, 1} {
		pf := file + df
		if !dims.InBounds(pf, pawnRank) {
			continue
		}
		src := NewSquare(dims, pf, pawnRank)
		if pc, ok := pos.PieceAt(src); ok && pc.Color == by && pc.Kind == Pawn {
			return true
		}
	}
	for kind, behavior := range g.custom {
		bb := pos.KindBB(kind, by)
		for _, from := range bb.Squares() {
			if behavior.Pattern.AttacksFrom(from, dims, occupied, EmptyBitBoard(dims)).Contains(sq) {
				return true
			}
		}
	}
	return false
}

// appendCastlingMoves appends the Castling moves available to side's king
// at sq: both sides are offered whenever the castling right is held, the
// squares between king and rook are empty, and the king's current, transit,
// and destination squares are not attacked. The king must be on its home
// square (home rank, home file) for castling to apply at all, mirroring
// original_source's early return when the piece at king_sq isn't the king.
func (g *MoveGenerator) appendCastlingMoves(moves []Move, pos *Position, sq Square, side Color) []Move {
	dims := pos.Dimensions()
	rank := backRank(dims, side)
	if sq.Rank(dims) != rank || sq.File(dims) != homeKingFile(dims) {
		return moves
	}
	srcFile := sq.File(dims)
	for _, ks := range [2]bool{true, false} {
		right := kingsideRight(side)
		if !ks {
			right = queensideRight(side)
		}
		if !pos.CastlingRights().Has(right) {
			continue
		}
		kingDstFile := castlingKingFile(dims, ks)
		rookFile := homeRookFile(dims, ks)
		if !g.castlingPathClear(pos, dims, rank, srcFile, kingDstFile, rookFile) {
			continue
		}
		if g.castlingPathSafe(pos, dims, rank, srcFile, kingDstFile, side) {
			dst := NewSquare(dims, kingDstFile, rank)
			moves = append(moves, NewMove(sq, dst, Castling, 0))
		}
	}
	return moves
}

// castlingPathClear reports whether every square between the king's
// current file and its destination (inclusive of the destination, the
// rook's destination, and every square strictly between king and rook) is
// empty, except for the king and rook themselves.
func (g *MoveGenerator) castlingPathClear(pos *Position, dims Dimensions, rank, kingSrc, kingDst, rookFile int) bool {
	lo, hi := kingSrc, rookFile
	if lo > hi {
		lo, hi = hi, lo
	}
	for f := lo; f <= hi; f++ {
		if f == kingSrc || f == rookFile {
			continue
		}
		if pos.IsOccupied(NewSquare(dims, f, rank)) {
			return false
		}
	}
	rookDst := castlingRookFile(dims, kingDst > kingSrc)
	lo2, hi2 := kingDst, rookDst
	if lo2 > hi2 {
		lo2, hi2 = hi2, lo2
	}
	for f := lo2; f <= hi2; f++ {
		if f == kingSrc || f == rookFile {
			continue
		}
		if pos.IsOccupied(NewSquare(dims, f, rank)) {
			return false
		}
	}
	return true
}

// castlingPathSafe reports whether the king's current square and every
// square it passes through (up to and including its destination) are free
// of attack by the opposing side.
func (g *MoveGenerator) castlingPathSafe(pos *Position, dims Dimensions, rank, kingSrc, kingDst int, side Color) bool {
	opp := side.Opposite()
	lo, hi := kingSrc, kingDst
	if lo > hi {
		lo, hi = hi, lo
	}
	for f := lo; f <= hi; f++ {
		if g.IsSquareAttacked(pos, NewSquare(dims, f, rank), opp) {
			return false
		}
	}
	return true
}

// appendPawnMoves appends every pawn move from sq: single/double push,
// diagonal captures, en passant, and promotion (one move per legal
// promotion target).
func (g *MoveGenerator) appendPawnMoves(moves []Move, pos *Position, sq Square, side Color) []Move {
	dims := pos.Dimensions()
	file, rank := sq.FileRank(dims)
	forward := 1
	startRank := 1
	promoRank := dims.Height() - 1
	if side == Black {
		forward = -1
		startRank = dims.Height() - 2
		promoRank = 0
	}

	pushRank := rank + forward
	if dims.InBounds(file, pushRank) {
		dst := NewSquare(dims, file, pushRank)
		if !pos.IsOccupied(dst) {
			moves = g.appendPawnDestination(moves, sq, dst, Quiet, pushRank == promoRank)
			if rank == startRank {
				dblRank := rank + 2*forward
				dblDst := NewSquare(dims, file, dblRank)
				if dims.InBounds(file, dblRank) && !pos.IsOccupied(dblDst) {
					moves = append(moves, NewMove(sq, dblDst, Quiet, 0))
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		cf := file + df
		if !dims.InBounds(cf, pushRank) {
			continue
		}
		dst := NewSquare(dims, cf, pushRank)
		if target, ok := pos.PieceAt(dst); ok {
			if target.Color != side {
				moves = g.appendPawnDestination(moves, sq, dst, Capture, pushRank == promoRank)
			}
			continue
		}
		if pos.EnPassantSquare() != NoSquare && dst == pos.EnPassantSquare() {
			moves = append(moves, NewMove(sq, dst, EnPassant, 0))
		}
	}
	return moves
}

// appendPawnDestination appends a Quiet/Capture move to dst, or one
// PromotionKind move per legal promotion target (Queen, Rook, Bishop,
// Knight, plus any custom kind registered with CanPromote) when
// atPromoRank is set.
func (g *MoveGenerator) appendPawnDestination(moves []Move, src, dst Square, kind MoveKind, atPromoRank bool) []Move {
	if !atPromoRank {
		return append(moves, NewMove(src, dst, kind, 0))
	}
	def := g.cfg.defaultPromotion()
	moves = append(moves, NewMove(src, dst, PromotionKind, promotionFlagFor(def)))
	for _, target := range [4]PieceKind{Queen, Rook, Bishop, Knight} {
		if target == def {
			continue
		}
		moves = append(moves, NewMove(src, dst, PromotionKind, promotionFlagFor(target)))
	}
	for kind, behavior := range g.custom {
		if behavior.CanPromote {
			moves = append(moves, NewMove(src, dst, PromotionKind, customPromotionFlag(kind)))
		}
	}
	return moves
}
