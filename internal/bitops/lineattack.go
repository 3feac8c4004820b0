// Package bitops provides a hyperbola-quintessence line-attack primitive
// used by the parent package's 64-bit BitBoard backing as a cross-checked
// fast path for rook/bishop ray queries (see AttackTable).
//
// The algorithm: for a slider at a singleton bitboard pos along a line
// masked by mask, the squares attacked in both directions along that line
// can be computed without a loop via
//
//	attacks = ((occ&mask - 2*pos) ^ reverse(reverse(occ&mask) - 2*reverse(pos))) & mask
//
// This is a pure-Go implementation; it is what's actually wired into the
// attack table.
package bitops

import "math/bits"

// LineAttack returns the bitboard of squares attacked along mask (a full
// line through pos, both directions) given occupied. pos must be a
// singleton bitboard (the slider's own square).
func LineAttack(occupied, pos, mask uint64) uint64 {
	oInMask := occupied & mask
	shiftedPos := pos << 1
	forward := oInMask - shiftedPos
	revPosShifted := bits.Reverse64(pos) << 1
	revOInMask := bits.Reverse64(oInMask)
	reverseSub := bits.Reverse64(revOInMask - revPosShifted)
	return (forward ^ reverseSub) & mask
}

// Reverse64 reverses the bit order of x.
func Reverse64(x uint64) uint64 {
	return bits.Reverse64(x)
}
