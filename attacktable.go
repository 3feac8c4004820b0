package vachess

import "github.com/barakmich/vachess/internal/bitops"

// rayDirection names the eight compass directions a rook or bishop slides
// along. Index order matches the iteration order used when building ray
// masks.
type rayDirection int

const (
	dirNorth rayDirection = iota
	dirEast
	dirNortheast
	dirNorthwest
	dirSouth
	dirWest
	dirSoutheast
	dirSouthwest
)

// increasing reports whether a ray direction walks toward higher square
// indices. On an increasing ray the nearest blocker is the lowest set bit of
// the blockers found along that ray; on a decreasing ray it's the highest
// set bit. Getting this backwards silently returns the farthest blocker
// instead of the nearest one on half the directions.
func (d rayDirection) increasing() bool {
	switch d {
	case dirNorth, dirEast, dirNortheast, dirNorthwest:
		return true
	default:
		return false
	}
}

func (d rayDirection) offset() offset {
	switch d {
	case dirNorth:
		return offset{0, 1}
	case dirSouth:
		return offset{0, -1}
	case dirEast:
		return offset{1, 0}
	case dirWest:
		return offset{-1, 0}
	case dirNortheast:
		return offset{1, 1}
	case dirNorthwest:
		return offset{-1, 1}
	case dirSoutheast:
		return offset{1, -1}
	case dirSouthwest:
		return offset{-1, -1}
	}
	panic("vachess: unreachable ray direction")
}

var rookRayDirections = [4]rayDirection{dirNorth, dirSouth, dirEast, dirWest}
var bishopRayDirections = [4]rayDirection{dirNortheast, dirNorthwest, dirSoutheast, dirSouthwest}

// rayTable holds, for every square and every direction, the full ray mask
// (every square reachable along that direction, ignoring occupancy) and the
// ordered list of squares along it from nearest to farthest.
type rayTable struct {
	mask [8]BitBoard     // by rayDirection, full-board mask
	line [8][]Square     // by rayDirection, nearest-first
}

// AttackTable precomputes, for every square of a fixed Dimensions, the
// jump-pattern attacks (knight, king) and the ray masks a slider (rook,
// bishop) needs at query time. It holds no mutable state after construction
// and is safe for concurrent read-only use.
type AttackTable struct {
	dims Dimensions

	knight []BitBoard
	king   []BitBoard
	rays   []rayTable
}

// NewAttackTable precomputes every table for dims. Construction cost is
// O(squares * directions); callers should build one AttackTable per distinct
// Dimensions and reuse it across positions and generators.
func NewAttackTable(dims Dimensions) *AttackTable {
	n := dims.NumSquares()
	at := &AttackTable{
		dims:   dims,
		knight: make([]BitBoard, n),
		king:   make([]BitBoard, n),
		rays:   make([]rayTable, n),
	}
	knightPattern := JumpingPattern{Offsets: knightOffsets[:]}
	kingPattern := JumpingPattern{Offsets: kingOffsets[:]}
	full := FullBitBoard(dims)
	empty := EmptyBitBoard(dims)
	for i := 0; i < n; i++ {
		sq := Square(i)
		// friendly=empty here: these are raw reachability tables, unfiltered
		// by any particular side's occupancy. The move generator applies
		// friendly-occupancy masking itself.
		at.knight[i] = knightPattern.AttacksFrom(sq, dims, empty, empty)
		at.king[i] = kingPattern.AttacksFrom(sq, dims, empty, empty)
		at.rays[i] = buildRayTable(sq, dims, full)
	}
	return at
}

func buildRayTable(sq Square, dims Dimensions, full BitBoard) rayTable {
	var rt rayTable
	file, rank := sq.FileRank(dims)
	for d := dirNorth; d <= dirSouthwest; d++ {
		o := d.offset()
		mask := EmptyBitBoard(dims)
		var line []Square
		cf, cr := file+o.df, rank+o.dr
		for dims.InBounds(cf, cr) {
			target := NewSquare(dims, cf, cr)
			mask = mask.Set(target)
			line = append(line, target)
			cf += o.df
			cr += o.dr
		}
		rt.mask[d] = mask
		rt.line[d] = line
	}
	return rt
}

// Dimensions returns the board geometry this table was built for.
func (at *AttackTable) Dimensions() Dimensions { return at.dims }

// KnightAttacks returns the knight attack set from sq, unfiltered by
// occupancy (knights jump, so occupancy never matters to reachability).
func (at *AttackTable) KnightAttacks(sq Square) BitBoard {
	return at.knight[sq]
}

// KingAttacks returns the king's one-step attack set from sq, unfiltered by
// occupancy or check safety.
func (at *AttackTable) KingAttacks(sq Square) BitBoard {
	return at.king[sq]
}

// nearestBlocker returns the nearest occupied square along line (ordered
// nearest-to-farthest from the slider) and whether one was found. This is
// the direction-agnostic core of the tie-break rule: because line is always
// built nearest-first regardless of whether the direction increases or
// decreases square indices, a simple linear scan here is correct where a
// raw first-set-bit/last-set-bit test on the mask is not.
func nearestBlocker(line []Square, occupied BitBoard) (Square, bool) {
	for _, sq := range line {
		if occupied.Contains(sq) {
			return sq, true
		}
	}
	return NoSquare, false
}

// rayAttacks returns the attack set along direction d from sq: every empty
// square up to and including the nearest blocker.
func (at *AttackTable) rayAttacks(sq Square, d rayDirection, occupied BitBoard) BitBoard {
	rt := at.rays[sq]
	line := rt.line[d]
	blockerIdx := len(line)
	for i, s := range line {
		if occupied.Contains(s) {
			blockerIdx = i
			break
		}
	}
	bb := EmptyBitBoard(at.dims)
	for i := 0; i <= blockerIdx && i < len(line); i++ {
		bb = bb.Set(line[i])
	}
	return bb
}

// slidingAttacksSlow computes a slider's attack set by scanning every
// direction in dirs via rayAttacks. This is the generalized path used for
// any board size and for the >64-square backing.
func (at *AttackTable) slidingAttacksSlow(sq Square, dirs []rayDirection, occupied BitBoard) BitBoard {
	bb := EmptyBitBoard(at.dims)
	for _, d := range dirs {
		bb = bb.Union(at.rayAttacks(sq, d, occupied))
	}
	return bb
}

// RookAttacks returns the rook attack set from sq given occupied. On a
// board with <= 64 squares it uses the bitops hyperbola-quintessence fast
// path, cross-checked in tests against the generalized ray scan; on larger
// boards it falls back to the ray scan directly.
func (at *AttackTable) RookAttacks(sq Square, occupied BitBoard) BitBoard {
	if small, ok := occupied.(bitBoard64); ok {
		singleton := uint64(SingletonBitBoard(at.dims, sq).(bitBoard64))
		fileMask := uint64(at.rays[sq].mask[dirNorth].(bitBoard64)) | uint64(at.rays[sq].mask[dirSouth].(bitBoard64)) | singleton
		rankMask := uint64(at.rays[sq].mask[dirEast].(bitBoard64)) | uint64(at.rays[sq].mask[dirWest].(bitBoard64)) | singleton
		pos := uint64(1) << uint(sq)
		return bitBoard64(bitops.BishopRookAttacks(uint64(small), pos, rankMask, fileMask))
	}
	return at.slidingAttacksSlow(sq, rookRayDirections[:], occupied)
}

// BishopAttacks returns the bishop attack set from sq given occupied,
// mirroring RookAttacks' fast-path/fallback split.
func (at *AttackTable) BishopAttacks(sq Square, occupied BitBoard) BitBoard {
	if small, ok := occupied.(bitBoard64); ok {
		singleton := uint64(SingletonBitBoard(at.dims, sq).(bitBoard64))
		diagMask := uint64(at.rays[sq].mask[dirNortheast].(bitBoard64)) | uint64(at.rays[sq].mask[dirSouthwest].(bitBoard64)) | singleton
		antiMask := uint64(at.rays[sq].mask[dirNorthwest].(bitBoard64)) | uint64(at.rays[sq].mask[dirSoutheast].(bitBoard64)) | singleton
		pos := uint64(1) << uint(sq)
		return bitBoard64(bitops.BishopRookAttacks(uint64(small), pos, diagMask, antiMask))
	}
	return at.slidingAttacksSlow(sq, bishopRayDirections[:], occupied)
}

// QueenAttacks returns the union of RookAttacks and BishopAttacks from sq.
func (at *AttackTable) QueenAttacks(sq Square, occupied BitBoard) BitBoard {
	return at.RookAttacks(sq, occupied).Union(at.BishopAttacks(sq, occupied))
}
