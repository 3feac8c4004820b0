package vachess

import "github.com/barakmich/vachess/internal/logx"

var perftLog = logx.New("vachess.perft")

// Perft counts the leaf nodes of the pseudo-legal move tree rooted at pos,
// to depth, filtering at each ply for legality (the moving side's king must
// not be left in check). It recurses by cloning the position rather than by
// MakeMove/UnmakeMove: perft's branching factor makes the clone cost cheap
// relative to avoiding the risk of an unmake bug compounding silently deep
// in the tree.
func Perft(gen *MoveGenerator, pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	side := pos.SideToMove()
	for _, m := range gen.GeneratePseudoLegal(pos) {
		child := pos.Clone()
		child.MakeMove(m)
		if gen.IsSquareAttacked(child, kingSquare(child, side), side.Opposite()) {
			continue
		}
		nodes += Perft(gen, child, depth-1)
	}
	return nodes
}

// kingSquare returns the square of c's king in pos. A position missing a
// king of that color is malformed input the caller constructed
// incorrectly; kingSquare panics rather than silently reporting NoSquare.
func kingSquare(pos *Position, c Color) Square {
	sq, _ := pos.KindBB(King, c).PopLSB()
	if sq == NoSquare {
		panic("vachess: position has no king of the given color")
	}
	return sq
}

// PerftResult pairs a root move with the leaf-node count rooted below it,
// as produced by PerftDivide.
type PerftResult struct {
	Move  string
	Nodes uint64
}

// PerftDivide behaves like Perft but returns the per-root-move breakdown,
// in UCI-like notation, useful for diffing against a reference engine's
// divide output down a mismatching branch.
func PerftDivide(gen *MoveGenerator, pos *Position, depth int) []PerftResult {
	if depth < 1 {
		return nil
	}
	dims := pos.Dimensions()
	side := pos.SideToMove()
	var results []PerftResult
	for _, m := range gen.GeneratePseudoLegal(pos) {
		child := pos.Clone()
		child.MakeMove(m)
		if gen.IsSquareAttacked(child, kingSquare(child, side), side.Opposite()) {
			continue
		}
		var nodes uint64
		if depth == 1 {
			nodes = 1
		} else {
			nodes = Perft(gen, child, depth-1)
		}
		results = append(results, PerftResult{Move: EncodeUCI(m, dims), Nodes: nodes})
	}
	perftLog.Debugf("perft divide depth=%d root=%s moves=%d", depth, pos.FEN(), len(results))
	return results
}
