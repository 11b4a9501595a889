package reversi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Player identifies a disc owner. Black moves first.
type Player uint8

const (
	Nobody Player = iota
	Black
	White
)

// Opponent returns the other player, or Nobody for Nobody.
func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	return Nobody
}

// String returns the lowercase player name.
func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "nobody"
}

// Cell is the contents of a square seen from the side to move.
type Cell int8

const (
	CellTheirs Cell = -1
	CellEmpty  Cell = 0
	CellMine   Cell = 1
)

// Coord addresses a square, zero-based, row before column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move is either a square to play on or a pass.
type Move struct {
	Coord Coord
	Pass  bool
}

// PassMove is the pass sentinel.
var PassMove = Move{Pass: true}

// MoveAt returns a move playing the given square.
func MoveAt(row, col int) Move {
	return Move{Coord: Coord{Row: row, Col: col}}
}

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive and even")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrIllegalMove       = errors.New("not a valid move")
)

// Board represents a Reversi board with grid and turn information.
// Its legal move cache is recomputed after every mutation, so it is
// never stale.
type Board struct {
	height int
	width  int

	// grid holds the disc owner per square in row-major order,
	// Nobody for empty squares.
	grid []Player

	turn Player

	// legal maps every legal move for the side to move to the discs
	// it would capture. Squares with nothing to capture are absent.
	legal map[Coord][]Coord
}

// NewBoard creates a board of the given size with the canonical four-disc
// opening and Black to move. Both dimensions must be even and at least 2.
func NewBoard(height, width int) (*Board, error) {
	if height < 2 || width < 2 || height%2 != 0 || width%2 != 0 {
		return nil, ErrInvalidDimensions
	}

	b := &Board{
		height: height,
		width:  width,
		grid:   make([]Player, height*width),
		turn:   Black,
	}

	// Black starts on the anti-diagonal of the center block.
	b.set(Coord{Row: height/2 - 1, Col: width / 2}, Black)
	b.set(Coord{Row: height / 2, Col: width/2 - 1}, Black)
	b.set(Coord{Row: height/2 - 1, Col: width/2 - 1}, White)
	b.set(Coord{Row: height / 2, Col: width / 2}, White)

	b.legal = legalMoves(b.grid, height, width, b.turn)
	return b, nil
}

// NewBoardFromString creates a board from a string representation,
// the inverse of String.
func NewBoardFromString(s string) (*Board, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("board string must have 3 colon-separated parts, got %d", len(parts))
	}

	var height, width int
	if _, err := fmt.Sscanf(parts[0], "%dx%d", &height, &width); err != nil {
		return nil, fmt.Errorf("invalid board size %q: %w", parts[0], err)
	}
	if height < 2 || width < 2 || height%2 != 0 || width%2 != 0 {
		return nil, ErrInvalidDimensions
	}

	cells := parts[1]
	if len(cells) != height*width {
		return nil, fmt.Errorf("board string has %d cells, want %d", len(cells), height*width)
	}

	grid := make([]Player, height*width)
	for i := 0; i < len(cells); i++ {
		switch cells[i] {
		case 'b':
			grid[i] = Black
		case 'w':
			grid[i] = White
		case '.':
			grid[i] = Nobody
		default:
			return nil, fmt.Errorf("invalid cell character %q", cells[i])
		}
	}

	var turn Player
	switch parts[2] {
	case "b":
		turn = Black
	case "w":
		turn = White
	default:
		return nil, fmt.Errorf("invalid turn: %q", parts[2])
	}

	b := &Board{
		height: height,
		width:  width,
		grid:   grid,
		turn:   turn,
	}
	b.legal = legalMoves(b.grid, height, width, turn)
	return b, nil
}

// directions: horizontal, vertical, and both diagonals
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// legalMoves computes the capture set of every playable square for the given
// side. It is a pure function of its arguments; only squares with a nonempty
// capture set appear in the result.
func legalMoves(grid []Player, height, width int, turn Player) map[Coord][]Coord {
	opponent := turn.Opponent()
	legal := make(map[Coord][]Coord)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if grid[row*width+col] != Nobody {
				continue
			}

			var captures []Coord
			for _, dir := range directions {
				dr, dc := dir[0], dir[1]

				// Walk over the opponent's discs in this direction.
				run := 0
				r, c := row+dr, col+dc
				for r >= 0 && r < height && c >= 0 && c < width && grid[r*width+c] == opponent {
					run++
					r += dr
					c += dc
				}

				// The run counts only if it ends on an own disc.
				if run == 0 || r < 0 || r >= height || c < 0 || c >= width || grid[r*width+c] != turn {
					continue
				}

				for s := 1; s <= run; s++ {
					captures = append(captures, Coord{Row: row + s*dr, Col: col + s*dc})
				}
			}

			if len(captures) > 0 {
				legal[Coord{Row: row, Col: col}] = captures
			}
		}
	}

	return legal
}

// Height returns the vertical board size.
func (b *Board) Height() int {
	return b.height
}

// Width returns the horizontal board size.
func (b *Board) Width() int {
	return b.width
}

// Turn returns the side to move.
func (b *Board) Turn() Player {
	return b.turn
}

// Contains checks if the coordinate is on the board.
func (b *Board) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

func (b *Board) at(c Coord) Player {
	return b.grid[c.Row*b.width+c.Col]
}

func (b *Board) set(c Coord, p Player) {
	b.grid[c.Row*b.width+c.Col] = p
}

// Square returns the disc owner at the given coordinate, Nobody for an
// empty square. The coordinate must be on the board.
func (b *Board) Square(c Coord) Player {
	return b.at(c)
}

// Cell returns the square seen from the side to move. The coordinate must
// be on the board.
func (b *Board) Cell(c Coord) Cell {
	switch b.at(c) {
	case b.turn:
		return CellMine
	case b.turn.Opponent():
		return CellTheirs
	}
	return CellEmpty
}

// LegalMoves returns the playable squares for the side to move in
// row-major order.
func (b *Board) LegalMoves() []Coord {
	moves := make([]Coord, 0, len(b.legal))
	for c := range b.legal {
		moves = append(moves, c)
	}

	sort.Slice(moves, func(i, j int) bool {
		if moves[i].Row != moves[j].Row {
			return moves[i].Row < moves[j].Row
		}
		return moves[i].Col < moves[j].Col
	})

	return moves
}

// CaptureSet returns the discs that would flip if the side to move played
// the given square, or nil if playing there is illegal.
func (b *Board) CaptureSet(c Coord) []Coord {
	captures, ok := b.legal[c]
	if !ok {
		return nil
	}

	out := make([]Coord, len(captures))
	copy(out, captures)
	return out
}

// HasLegalMoves checks if the side to move can play anywhere.
func (b *Board) HasLegalMoves() bool {
	return len(b.legal) > 0
}

// IsLegalMove checks if the side to move can play the given square.
func (b *Board) IsLegalMove(c Coord) bool {
	_, ok := b.legal[c]
	return ok
}

// Apply plays a move for the side to move. A pass only changes whose turn
// it is; no legality check applies, callers decide when to pass using
// HasLegalMoves. Nothing is mutated when an error is returned.
func (b *Board) Apply(m Move) error {
	if m.Pass {
		b.turn = b.turn.Opponent()
		b.legal = legalMoves(b.grid, b.height, b.width, b.turn)
		return nil
	}

	if !b.Contains(m.Coord) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, m.Coord)
	}

	captures, ok := b.legal[m.Coord]
	if !ok {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m.Coord)
	}

	b.set(m.Coord, b.turn)
	for _, c := range captures {
		b.set(c, b.turn)
	}

	b.turn = b.turn.Opponent()
	b.legal = legalMoves(b.grid, b.height, b.width, b.turn)
	return nil
}

// CheckWinner reports whether the game is over and who won. The winner is
// Nobody both for a draw and while the game is still running; the boolean
// disambiguates.
func (b *Board) CheckWinner() (bool, Player) {
	if len(b.legal) > 0 {
		return false, Nobody
	}

	// The side to move is stuck. The game continues if the opponent can
	// still play; a pass is expected next.
	if len(legalMoves(b.grid, b.height, b.width, b.turn.Opponent())) > 0 {
		return false, Nobody
	}

	mine := b.CountDiscs(b.turn)
	theirs := b.CountDiscs(b.turn.Opponent())

	switch {
	case mine > theirs:
		return true, b.turn
	case mine < theirs:
		return true, b.turn.Opponent()
	}
	return true, Nobody
}

// CountDiscs returns the number of discs the player has on the board.
func (b *Board) CountDiscs(p Player) int {
	count := 0
	for _, owner := range b.grid {
		if owner == p {
			count++
		}
	}
	return count
}

// Clone returns an independent deep copy, for trying out moves without
// disturbing the original.
func (b *Board) Clone() *Board {
	grid := make([]Player, len(b.grid))
	copy(grid, b.grid)

	legal := make(map[Coord][]Coord, len(b.legal))
	for c, captures := range b.legal {
		legal[c] = append([]Coord(nil), captures...)
	}

	return &Board{
		height: b.height,
		width:  b.width,
		grid:   grid,
		turn:   b.turn,
		legal:  legal,
	}
}

// Equal checks if two boards have the same grid, size and side to move.
func (b *Board) Equal(other *Board) bool {
	if b.height != other.height || b.width != other.width || b.turn != other.turn {
		return false
	}
	for i := range b.grid {
		if b.grid[i] != other.grid[i] {
			return false
		}
	}
	return true
}

// String returns the string representation of the board:
// "<height>x<width>:<cells>:<turn>" with cells in row-major order.
func (b *Board) String() string {
	var cells strings.Builder
	for _, owner := range b.grid {
		switch owner {
		case Black:
			cells.WriteByte('b')
		case White:
			cells.WriteByte('w')
		default:
			cells.WriteByte('.')
		}
	}

	turnString := "b"
	if b.turn == White {
		turnString = "w"
	}

	return fmt.Sprintf("%dx%d:%s:%s", b.height, b.width, cells.String(), turnString)
}
