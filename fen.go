package vachess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/barakmich/vachess/internal/logx"
)

var log = logx.New("vachess.fen")

// FENError reports a structural problem in a FEN string: malformed input
// never panics, unlike a bad Dimensions or a mismatched MakeMove/UnmakeMove
// pair, which are programmer errors.
type FENError struct {
	Kind FENErrorKind
	Msg  string
}

func (e *FENError) Error() string { return "vachess: fen: " + e.Msg }

// FENErrorKind classifies a FENError for callers that want to branch on it.
type FENErrorKind int

const (
	ErrInvalidFormat FENErrorKind = iota
	ErrRowCountMismatch
	ErrColumnCountMismatch
	ErrUnknownActiveColor
	ErrInvalidCastling
	ErrInvalidEnPassant
	ErrInvalidNumber
)

func fenErr(kind FENErrorKind, format string, args ...interface{}) error {
	err := &FENError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
	log.Debugf("fen parse failed: %s", err.Msg)
	return err
}

// pieceFromFENSymbol maps a FEN letter to a PieceKind and Color, falling
// back to a Custom kind keyed on the letter's code point modulo 128 for any
// letter not among the six standard piece letters.
func pieceFromFENSymbol(c byte) Piece {
	color := White
	lower := c
	if c >= 'a' && c <= 'z' {
		color = Black
	} else {
		lower = c - 'A' + 'a'
	}
	switch lower {
	case 'p':
		return Piece{Color: color, Kind: Pawn}
	case 'n':
		return Piece{Color: color, Kind: Knight}
	case 'b':
		return Piece{Color: color, Kind: Bishop}
	case 'r':
		return Piece{Color: color, Kind: Rook}
	case 'q':
		return Piece{Color: color, Kind: Queen}
	case 'k':
		return Piece{Color: color, Kind: King}
	}
	return Piece{Color: color, Kind: CustomKind(c % 128)}
}

// fenSymbolFor is the inverse of pieceFromFENSymbol for standard kinds.
// Custom kinds serialize as their stored letter, recovered from CustomID.
func fenSymbolFor(pc Piece) string {
	var letter string
	switch pc.Kind {
	case Pawn, Knight, Bishop, Rook, Queen, King:
		letter = pc.Kind.String()
	default:
		letter = string(rune(pc.Kind.CustomID()))
	}
	if pc.Color == White {
		return strings.ToUpper(letter)
	}
	return letter
}

// ParseFEN parses a FEN-like string into a Position sized for dims. The
// piece-placement field must describe exactly dims.Height() ranks of
// exactly dims.Width() files each; an unrecognized piece letter becomes a
// Custom piece rather than a parse error.
func ParseFEN(dims Dimensions, s string) (*Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, fenErr(ErrInvalidFormat, "expected at least 4 space-separated fields, got %d", len(fields))
	}

	pos := NewEmptyPosition(dims)
	if err := parseBoardField(pos, dims, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return nil, fenErr(ErrUnknownActiveColor, "invalid active color %q", fields[1])
	}

	cr, err := parseCastlingField(fields[2])
	if err != nil {
		return nil, err
	}
	pos.castling = cr

	ep, err := parseEnPassantField(dims, fields[3])
	if err != nil {
		return nil, err
	}
	pos.epSquare = ep

	pos.halfmoveClock = 0
	pos.fullmoveNum = 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fenErr(ErrInvalidNumber, "invalid halfmove clock %q", fields[4])
		}
		pos.halfmoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fenErr(ErrInvalidNumber, "invalid fullmove number %q", fields[5])
		}
		pos.fullmoveNum = n
	}

	return pos, nil
}

func parseBoardField(pos *Position, dims Dimensions, field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != dims.Height() {
		return fenErr(ErrRowCountMismatch, "expected %d ranks, got %d", dims.Height(), len(rows))
	}
	for i, row := range rows {
		rank := dims.Height() - 1 - i
		file := 0
		j := 0
		for j < len(row) {
			c := row[j]
			if c >= '0' && c <= '9' {
				start := j
				for j < len(row) && row[j] >= '0' && row[j] <= '9' {
					j++
				}
				n, err := strconv.Atoi(row[start:j])
				if err != nil {
					return fenErr(ErrInvalidFormat, "invalid empty-run count in rank %d", rank+1)
				}
				file += n
				continue
			}
			if file >= dims.Width() {
				return fenErr(ErrColumnCountMismatch, "rank %d has more than %d files", rank+1, dims.Width())
			}
			pos.SetPiece(NewSquare(dims, file, rank), pieceFromFENSymbol(c))
			file++
			j++
		}
		if file != dims.Width() {
			return fenErr(ErrColumnCountMismatch, "rank %d has %d files, want %d", rank+1, file, dims.Width())
		}
	}
	return nil
}

func parseCastlingField(field string) (CastlingRights, error) {
	if field == "-" {
		return 0, nil
	}
	var cr CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			cr = cr.With(WhiteKingside)
		case 'Q':
			cr = cr.With(WhiteQueenside)
		case 'k':
			cr = cr.With(BlackKingside)
		case 'q':
			cr = cr.With(BlackQueenside)
		default:
			return 0, fenErr(ErrInvalidCastling, "invalid castling letter %q", string(c))
		}
	}
	return cr, nil
}

func parseEnPassantField(dims Dimensions, field string) (Square, error) {
	if field == "-" {
		return NoSquare, nil
	}
	sq, ok := ParseSquare(dims, field)
	if !ok {
		return NoSquare, fenErr(ErrInvalidEnPassant, "invalid en passant square %q", field)
	}
	return sq, nil
}

// FEN serializes pos back to a FEN-like string.
func (p *Position) FEN() string {
	var sb strings.Builder
	dims := p.dims
	for rank := dims.Height() - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < dims.Width(); file++ {
			sq := NewSquare(dims, file, rank)
			pc, ok := p.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(fenSymbolFor(pc))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.Algebraic(dims))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNum))
	return sb.String()
}

// StartingPosition returns the standard chess starting position on an 8x8
// board.
func StartingPosition() *Position {
	pos, err := ParseFEN(StandardDimensions(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic("vachess: starting FEN failed to parse: " + err.Error())
	}
	return pos
}
