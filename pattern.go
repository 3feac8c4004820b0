package vachess

// MovePattern computes the bitboard of target squares a piece on sq can
// reach, given board Dimensions, the full occupancy bitboard, and the
// moving side's own occupancy (friendly). It does not filter by
// king-safety; that is the legality filter's job.
type MovePattern interface {
	AttacksFrom(sq Square, dims Dimensions, occupied, friendly BitBoard) BitBoard
}

// offset is a (deltaFile, deltaRank) step used by jumping patterns
// (knight, king) and by sliding-direction tables (rook, bishop, queen).
type offset struct {
	df, dr int
}

var knightOffsets = [8]offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8]offset{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

var rookDirections = [4]offset{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
}

var bishopDirections = [4]offset{
	{1, 1}, {1, -1}, {-1, -1}, {-1, 1},
}

// JumpingPattern is a fixed-offset pattern, e.g. a knight or king. It is
// also the vehicle for a CustomJump piece: any offset list works.
type JumpingPattern struct {
	Offsets []offset
}

// AttacksFrom implements MovePattern: every offset that lands in bounds,
// masked by friendly occupancy.
func (p JumpingPattern) AttacksFrom(sq Square, dims Dimensions, occupied, friendly BitBoard) BitBoard {
	file, rank := sq.FileRank(dims)
	bb := EmptyBitBoard(dims)
	for _, o := range p.Offsets {
		tf, tr := file+o.df, rank+o.dr
		if !dims.InBounds(tf, tr) {
			continue
		}
		target := NewSquare(dims, tf, tr)
		if friendly.Contains(target) {
			continue
		}
		bb = bb.Set(target)
	}
	return bb
}

// SlidingPattern walks a fixed set of directions until it leaves the board
// or is blocked, optionally capped at MaxDistance steps (for limited-range
// sliders). MaxDistance == 0 means unlimited.
type SlidingPattern struct {
	Directions  []offset
	MaxDistance int
}

// AttacksFrom implements MovePattern using a direction-wise ray scan: for
// each direction, step outward one square at a time, stopping at (and
// including, if not friendly) the first occupied square.
func (p SlidingPattern) AttacksFrom(sq Square, dims Dimensions, occupied, friendly BitBoard) BitBoard {
	file, rank := sq.FileRank(dims)
	bb := EmptyBitBoard(dims)
	for _, d := range p.Directions {
		cf, cr := file, rank
		steps := 0
		for {
			cf += d.df
			cr += d.dr
			steps++
			if !dims.InBounds(cf, cr) {
				break
			}
			if p.MaxDistance > 0 && steps > p.MaxDistance {
				break
			}
			target := NewSquare(dims, cf, cr)
			if friendly.Contains(target) {
				break
			}
			bb = bb.Set(target)
			if occupied.Contains(target) {
				break
			}
		}
	}
	return bb
}

// standardPattern returns the registered MovePattern for a standard kind,
// or nil for Pawn (hard-coded in the move generator) and for Custom kinds
// (consulted through the generator's custom-pattern registry instead).
func standardPattern(kind PieceKind) MovePattern {
	switch kind {
	case Knight:
		return JumpingPattern{Offsets: knightOffsets[:]}
	case King:
		return JumpingPattern{Offsets: kingOffsets[:]}
	case Bishop:
		return SlidingPattern{Directions: bishopDirections[:]}
	case Rook:
		return SlidingPattern{Directions: rookDirections[:]}
	case Queen:
		return SlidingPattern{Directions: append(append([]offset{}, rookDirections[:]...), bishopDirections[:]...)}
	}
	return nil
}
