package reversi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	board, err := NewBoard(8, 8)
	require.NoError(t, err)

	// Black moves first
	require.Equal(t, Black, board.Turn())
	require.Equal(t, 8, board.Height())
	require.Equal(t, 8, board.Width())

	// Starting position has 2 discs per player
	require.Equal(t, 2, board.CountDiscs(Black))
	require.Equal(t, 2, board.CountDiscs(White))

	// Canonical center layout: same-colored discs diagonally opposite
	require.Equal(t, White, board.Square(Coord{Row: 3, Col: 3}))
	require.Equal(t, Black, board.Square(Coord{Row: 3, Col: 4}))
	require.Equal(t, Black, board.Square(Coord{Row: 4, Col: 3}))
	require.Equal(t, White, board.Square(Coord{Row: 4, Col: 4}))

	require.True(t, board.HasLegalMoves())
}

func TestNewBoard_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name   string
		height int
		width  int
	}{
		{name: "odd height", height: 5, width: 8},
		{name: "odd width", height: 8, width: 5},
		{name: "both odd", height: 3, width: 3},
		{name: "zero height", height: 0, width: 8},
		{name: "zero width", height: 8, width: 0},
		{name: "negative", height: -4, width: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.height, tt.width)
			require.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestBoard_LegalMoves_Opening4x4(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)

	want := []Coord{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
		{Row: 2, Col: 3},
		{Row: 3, Col: 2},
	}
	require.Equal(t, want, board.LegalMoves())

	// Playing next to the center block captures exactly the one
	// enclosed white disc.
	require.Equal(t, []Coord{{Row: 1, Col: 1}}, board.CaptureSet(Coord{Row: 0, Col: 1}))
	require.Equal(t, []Coord{{Row: 1, Col: 1}}, board.CaptureSet(Coord{Row: 1, Col: 0}))
	require.Equal(t, []Coord{{Row: 2, Col: 2}}, board.CaptureSet(Coord{Row: 2, Col: 3}))
	require.Equal(t, []Coord{{Row: 2, Col: 2}}, board.CaptureSet(Coord{Row: 3, Col: 2}))
}

func TestBoard_LegalMoves_Opening8x8(t *testing.T) {
	board, err := NewBoard(8, 8)
	require.NoError(t, err)

	want := []Coord{
		{Row: 2, Col: 3},
		{Row: 3, Col: 2},
		{Row: 4, Col: 5},
		{Row: 5, Col: 4},
	}
	require.Equal(t, want, board.LegalMoves())
}

func TestBoard_CaptureSet_NonEmptyIffLegal(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)

	legal := make(map[Coord]bool)
	for _, c := range board.LegalMoves() {
		legal[c] = true
	}

	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			c := Coord{Row: row, Col: col}
			if legal[c] {
				require.NotEmpty(t, board.CaptureSet(c), "legal move %s must capture", c)
			} else {
				require.Empty(t, board.CaptureSet(c), "illegal move %s must not capture", c)
			}
		}
	}
}

func TestBoard_Apply(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)

	captures := board.CaptureSet(Coord{Row: 0, Col: 1})
	require.NoError(t, board.Apply(MoveAt(0, 1)))

	// Turn toggles
	require.Equal(t, White, board.Turn())

	// The played square and every captured disc belong to Black, which
	// is "theirs" from the new side to move's perspective.
	require.Equal(t, CellTheirs, board.Cell(Coord{Row: 0, Col: 1}))
	for _, c := range captures {
		require.Equal(t, CellTheirs, board.Cell(c))
		require.Equal(t, Black, board.Square(c))
	}

	// Flips convert, never remove
	require.Equal(t, 5, board.CountDiscs(Black)+board.CountDiscs(White))
}

func TestBoard_Apply_OutOfBounds(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)

	before := board.Clone()

	for _, m := range []Move{MoveAt(-1, 0), MoveAt(0, -1), MoveAt(4, 0), MoveAt(0, 4), MoveAt(100, 100)} {
		err := board.Apply(m)
		require.ErrorIs(t, err, ErrOutOfBounds)
	}

	// Nothing is mutated on failure
	require.True(t, board.Equal(before))
}

func TestBoard_Apply_IllegalMove(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)

	before := board.Clone()

	// Occupied square
	require.ErrorIs(t, board.Apply(MoveAt(1, 1)), ErrIllegalMove)

	// Empty square without captures
	require.ErrorIs(t, board.Apply(MoveAt(0, 0)), ErrIllegalMove)

	require.True(t, board.Equal(before))
}

func TestBoard_Apply_Pass(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)

	before := board.Clone()

	require.NoError(t, board.Apply(PassMove))
	require.Equal(t, White, board.Turn())

	// Discs stay untouched
	require.Equal(t, 2, board.CountDiscs(Black))
	require.Equal(t, 2, board.CountDiscs(White))

	// Passing twice restores the exact state
	require.NoError(t, board.Apply(PassMove))
	require.True(t, board.Equal(before))
	require.Equal(t, before.LegalMoves(), board.LegalMoves())
}

func TestBoard_Cell(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)

	// Black to move: black discs are mine, white discs theirs
	require.Equal(t, CellMine, board.Cell(Coord{Row: 1, Col: 2}))
	require.Equal(t, CellTheirs, board.Cell(Coord{Row: 1, Col: 1}))
	require.Equal(t, CellEmpty, board.Cell(Coord{Row: 0, Col: 0}))

	// The view follows the side to move
	require.NoError(t, board.Apply(PassMove))
	require.Equal(t, CellTheirs, board.Cell(Coord{Row: 1, Col: 2}))
	require.Equal(t, CellMine, board.Cell(Coord{Row: 1, Col: 1}))
}

func TestBoard_CheckWinner_NotOver(t *testing.T) {
	board, err := NewBoard(8, 8)
	require.NoError(t, err)

	over, winner := board.CheckWinner()
	require.False(t, over)
	require.Equal(t, Nobody, winner)
}

func TestBoard_CheckWinner_StuckPlayerIsNotGameOver(t *testing.T) {
	// Black cannot play anywhere, but White can capture the black disc.
	board, err := NewBoardFromString("4x4:wb..............:b")
	require.NoError(t, err)

	require.False(t, board.HasLegalMoves())

	over, winner := board.CheckWinner()
	require.False(t, over)
	require.Equal(t, Nobody, winner)

	// After the expected pass, White can play.
	require.NoError(t, board.Apply(PassMove))
	require.True(t, board.HasLegalMoves())
}

func TestBoard_CheckWinner_GameOver(t *testing.T) {
	// A lone black disc leaves neither side a legal move.
	board, err := NewBoardFromString("4x4:b...............:b")
	require.NoError(t, err)

	over, winner := board.CheckWinner()
	require.True(t, over)
	require.Equal(t, Black, winner)

	// The winner does not depend on whose turn it is.
	board, err = NewBoardFromString("4x4:b...............:w")
	require.NoError(t, err)

	over, winner = board.CheckWinner()
	require.True(t, over)
	require.Equal(t, Black, winner)
}

func TestBoard_CheckWinner_Draw(t *testing.T) {
	// A 2x2 board is full from the start.
	board, err := NewBoard(2, 2)
	require.NoError(t, err)

	require.False(t, board.HasLegalMoves())

	over, winner := board.CheckWinner()
	require.True(t, over)
	require.Equal(t, Nobody, winner)
}

func TestBoard_CheckWinner_DoublePass(t *testing.T) {
	board, err := NewBoardFromString("4x4:b...............:b")
	require.NoError(t, err)

	// Neither side can play: pass, pass, then the game is over.
	require.NoError(t, board.Apply(PassMove))
	require.False(t, board.HasLegalMoves())
	require.NoError(t, board.Apply(PassMove))

	over, winner := board.CheckWinner()
	require.True(t, over)
	require.Equal(t, Black, winner)
}

func TestBoard_Clone(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)

	clone := board.Clone()
	require.True(t, board.Equal(clone))

	// Mutating the clone leaves the original untouched
	require.NoError(t, clone.Apply(MoveAt(0, 1)))
	require.False(t, board.Equal(clone))
	require.Equal(t, Black, board.Turn())
	require.Equal(t, Nobody, board.Square(Coord{Row: 0, Col: 1}))
}

func TestBoard_String_RoundTrip(t *testing.T) {
	board, err := NewBoard(4, 4)
	require.NoError(t, err)
	require.Equal(t, "4x4:.....wb..bw.....:b", board.String())

	parsed, err := NewBoardFromString(board.String())
	require.NoError(t, err)
	require.True(t, board.Equal(parsed))
	require.Equal(t, board.LegalMoves(), parsed.LegalMoves())

	// Round trip mid-game as well
	require.NoError(t, board.Apply(MoveAt(0, 1)))
	parsed, err = NewBoardFromString(board.String())
	require.NoError(t, err)
	require.True(t, board.Equal(parsed))
}

func TestNewBoardFromString_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "missing parts", input: "4x4:...."},
		{name: "bad size", input: "axb:....:b"},
		{name: "odd size", input: "3x3:.........:b"},
		{name: "cell count mismatch", input: "4x4:....:b"},
		{name: "bad cell character", input: "2x2:bxwb:b"},
		{name: "bad turn", input: "2x2:bwwb:x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromString(tt.input)
			require.Error(t, err)
		})
	}
}

func TestBoard_DiscCountNeverDecreases(t *testing.T) {
	board, err := NewBoard(8, 8)
	require.NoError(t, err)

	selector := NewRandomSelector(42)

	occupied := board.CountDiscs(Black) + board.CountDiscs(White)
	for i := 0; i < 200; i++ {
		if over, _ := board.CheckWinner(); over {
			break
		}

		require.NoError(t, board.Apply(selector.Select(board)))

		count := board.CountDiscs(Black) + board.CountDiscs(White)
		require.GreaterOrEqual(t, count, occupied)
		require.LessOrEqual(t, count, board.Height()*board.Width())
		occupied = count
	}

	over, _ := board.CheckWinner()
	require.True(t, over)
}
