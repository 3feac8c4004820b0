package bitops

// QueenAttacks returns the union of rank/file/diag/antidiag line attacks
// for a queen at location, given occupied.
func QueenAttacks(occupied, location, rank, file, diag, antidiag uint64) uint64 {
	return LineAttack(occupied, location, rank) |
		LineAttack(occupied, location, file) |
		LineAttack(occupied, location, diag) |
		LineAttack(occupied, location, antidiag)
}

// BishopRookAttacks returns the union of the two line attacks for a slider
// restricted to one axis (rank+file for a rook, diag+antidiag for a
// bishop) at location, given occupied.
func BishopRookAttacks(occupied, location, rankOrDiag, fileOrAntiDiag uint64) uint64 {
	return LineAttack(occupied, location, rankOrDiag) | LineAttack(occupied, location, fileOrAntiDiag)
}
