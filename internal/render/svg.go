// Package render draws a Position as SVG, a debug-visualization
// complement to Position.FEN(), built on github.com/ajstarks/svgo.
package render

import (
	"bytes"
	"errors"

	svg "github.com/ajstarks/svgo"

	"github.com/barakmich/vachess"
)

const squareSize = 48

// lightSquare and darkSquare are the checkerboard fill colors.
const (
	lightSquare = "#f0d9b5"
	darkSquare  = "#b58863"
)

// RenderSVG renders pos as a standalone SVG document: an alternating-color
// board sized to pos.Dimensions(), with each occupied square labeled by
// its piece's letter (the FEN letter for a standard kind, "?" for a custom
// kind). It returns an error if pos is nil.
func RenderSVG(pos *vachess.Position) ([]byte, error) {
	if pos == nil {
		return nil, errors.New("render: RenderSVG called with a nil Position")
	}
	dims := pos.Dimensions()
	width := dims.Width() * squareSize
	height := dims.Height() * squareSize

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)

	for file := 0; file < dims.Width(); file++ {
		for rank := 0; rank < dims.Height(); rank++ {
			x := file * squareSize
			y := (dims.Height() - 1 - rank) * squareSize
			fill := lightSquare
			if (file+rank)%2 == 1 {
				fill = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			sq := vachess.NewSquare(dims, file, rank)
			pc, ok := pos.PieceAt(sq)
			if !ok {
				continue
			}
			letter := pieceLetter(pc)
			textColor := "black"
			if pc.Color == vachess.White {
				textColor = "white"
				if fill == lightSquare {
					textColor = "#555"
				}
			}
			canvas.Text(x+squareSize/2, y+squareSize/2+6, letter,
				"text-anchor:middle;font-size:24px;fill:"+textColor)
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

func pieceLetter(pc vachess.Piece) string {
	s := pc.Kind.String()
	if pc.Color == vachess.White {
		return toUpper(s)
	}
	return s
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
