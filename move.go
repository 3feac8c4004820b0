package vachess

// MoveKind distinguishes the five move shapes the core can emit and apply.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	PromotionKind
	EnPassant
	Castling
)

// Move is a packed 32-bit move record, laid out low-to-high as
// [flags:8][kind:8][dst:8][src:8]. The flags byte carries the
// promotion target when kind == PromotionKind; zero means Queen.
type Move uint32

const (
	moveSrcShift   = 0
	moveDstShift   = 8
	moveKindShift  = 16
	moveFlagsShift = 24
	moveByteMask   = 0xFF
)

// NewMove packs src, dst, kind, and flags into a Move.
func NewMove(src, dst Square, kind MoveKind, flags uint8) Move {
	return Move(uint32(src)&moveByteMask<<moveSrcShift |
		uint32(dst)&moveByteMask<<moveDstShift |
		uint32(kind)&moveByteMask<<moveKindShift |
		uint32(flags)&moveByteMask<<moveFlagsShift)
}

// Src returns the move's origin square.
func (m Move) Src() Square {
	return Square((uint32(m) >> moveSrcShift) & moveByteMask)
}

// Dst returns the move's destination square.
func (m Move) Dst() Square {
	return Square((uint32(m) >> moveDstShift) & moveByteMask)
}

// Kind returns the move's kind.
func (m Move) Kind() MoveKind {
	return MoveKind((uint32(m) >> moveKindShift) & moveByteMask)
}

// Flags returns the move's raw flags byte.
func (m Move) Flags() uint8 {
	return uint8((uint32(m) >> moveFlagsShift) & moveByteMask)
}

// promotionFlag values, stored in a PromotionKind move's flags byte; zero
// (the default) means Queen. Values >= firstCustomPromoFlag
// encode a custom piece kind's promotion target as its CustomID.
const (
	promoQueen uint8 = iota
	promoRook
	promoBishop
	promoKnight
	firstCustomPromoFlag
)

// promotionFlagFor returns the flags byte encoding kind as a promotion
// target. Promoting to Pawn or King is not a legal promotion target and
// promotionFlagFor panics if asked to.
func promotionFlagFor(kind PieceKind) uint8 {
	switch kind {
	case Queen:
		return promoQueen
	case Rook:
		return promoRook
	case Bishop:
		return promoBishop
	case Knight:
		return promoKnight
	}
	if kind.IsCustom() {
		return customPromotionFlag(kind)
	}
	panic("vachess: invalid promotion target")
}

// customPromotionFlag encodes a custom piece kind as a promotion flags
// byte.
func customPromotionFlag(kind PieceKind) uint8 {
	return firstCustomPromoFlag + kind.CustomID()
}

// PromotionKindFor decodes the promotion target encoded in a
// PromotionKind move's flags byte. The default (flags == 0) is Queen.
func (m Move) PromotionKindFor() PieceKind {
	switch f := m.Flags(); {
	case f == promoRook:
		return Rook
	case f == promoBishop:
		return Bishop
	case f == promoKnight:
		return Knight
	case f >= firstCustomPromoFlag:
		return CustomKind(f - firstCustomPromoFlag)
	default:
		return Queen
	}
}

// NewPromotion builds a PromotionKind move promoting to target.
func NewPromotion(src, dst Square, target PieceKind) Move {
	return NewMove(src, dst, PromotionKind, promotionFlagFor(target))
}
