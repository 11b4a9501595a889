package reversi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard_AsciiArtLines(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)

	want := []string{
		"+-a-b-c-d-+",
		"1   ·     |",
		"2 · ○ ●   |",
		"3   ● ○ · |",
		"4     ·   |",
		"+---------+",
	}
	require.Equal(t, want, board.AsciiArtLines())
}

func TestBoard_AsciiArtLines_Size(t *testing.T) {
	board, err := NewBoard(6, 10)
	require.NoError(t, err)

	lines := board.AsciiArtLines()
	require.Len(t, lines, 8)
	require.Equal(t, "+-a-b-c-d-e-f-g-h-i-j-+", lines[0])
	require.Equal(t, "+---------------------+", lines[7])
}
