package vachess

import "fmt"

// EncodeUCI renders m in UCI-like coordinate notation,
// <src-file><src-rank><dst-file><dst-rank>, with a trailing lowercase
// promotion letter when m is a promotion.
func EncodeUCI(m Move, dims Dimensions) string {
	s := m.Src().Algebraic(dims) + m.Dst().Algebraic(dims)
	if m.Kind() == PromotionKind {
		s += m.PromotionKindFor().String()
	}
	return s
}

// DecodeUCI parses UCI-like coordinate notation against pos, looking up the
// matching pseudo-legal move from gen so the returned Move carries the
// correct MoveKind and flags (the text alone can't distinguish a capture
// from a quiet move or confirm castling/en passant).
func DecodeUCI(gen *MoveGenerator, pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return 0, fmt.Errorf("vachess: malformed UCI move %q", s)
	}
	dims := pos.Dimensions()
	src, ok := ParseSquare(dims, s[0:2])
	if !ok {
		return 0, fmt.Errorf("vachess: malformed UCI source square in %q", s)
	}
	dst, ok := ParseSquare(dims, s[2:4])
	if !ok {
		return 0, fmt.Errorf("vachess: malformed UCI destination square in %q", s)
	}
	var wantPromo PieceKind
	hasPromo := len(s) == 5
	if hasPromo {
		switch s[4] {
		case 'q':
			wantPromo = Queen
		case 'r':
			wantPromo = Rook
		case 'b':
			wantPromo = Bishop
		case 'n':
			wantPromo = Knight
		default:
			return 0, fmt.Errorf("vachess: unknown promotion letter in %q", s)
		}
	}
	for _, m := range gen.GeneratePseudoLegal(pos) {
		if m.Src() != src || m.Dst() != dst {
			continue
		}
		if m.Kind() == PromotionKind {
			if !hasPromo || m.PromotionKindFor() != wantPromo {
				continue
			}
		} else if hasPromo {
			continue
		}
		return m, nil
	}
	return 0, fmt.Errorf("vachess: %q is not a pseudo-legal move in this position", s)
}
