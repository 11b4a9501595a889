package reversi

import (
	"fmt"
	"strings"
)

// AsciiArtLines returns the ascii art lines for the board, with coordinate
// markers and the side to move's legal moves dotted in.
func (b *Board) AsciiArtLines() []string {
	lines := make([]string, b.height+2)

	var header strings.Builder
	header.WriteByte('+')
	for col := 0; col < b.width; col++ {
		header.WriteByte('-')
		header.WriteByte(byte('a' + col%maxNotationCols))
	}
	header.WriteString("-+")
	lines[0] = header.String()

	for row := 0; row < b.height; row++ {
		line := fmt.Sprintf("%d ", row+1)

		for col := 0; col < b.width; col++ {
			c := Coord{Row: row, Col: col}

			switch {
			case b.at(c) == White:
				line += "○ "
			case b.at(c) == Black:
				line += "● "
			case b.IsLegalMove(c):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[b.height+1] = "+" + strings.Repeat("-", 2*b.width+1) + "+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b *Board) Print() {
	for _, line := range b.AsciiArtLines() {
		fmt.Println(line)
	}
}
