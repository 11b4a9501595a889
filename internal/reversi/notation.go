package reversi

import (
	"fmt"
	"strconv"
	"strings"
)

// maxNotationCols limits field notation to one column letter.
const maxNotationCols = 26

// ParseField converts a field notation like "c3" to a move: a column letter
// followed by a 1-based row number. "--", "ps" and "pa" mean a pass.
// Bounds beyond the notation's own limits are left to Board.Apply.
func ParseField(field string) (Move, error) {
	field = strings.ToLower(strings.TrimSpace(field))

	if field == "--" || field == "ps" || field == "pa" {
		return PassMove, nil
	}

	if len(field) < 2 {
		return Move{}, fmt.Errorf("invalid field: %q", field)
	}

	if field[0] < 'a' || field[0] > 'z' {
		return Move{}, fmt.Errorf("invalid field column: %q", field)
	}

	row, err := strconv.Atoi(field[1:])
	if err != nil || row < 1 {
		return Move{}, fmt.Errorf("invalid field row: %q", field)
	}

	return MoveAt(row-1, int(field[0]-'a')), nil
}

// Field returns the field notation for the coordinate. Columns beyond
// notation range render as "?".
func (c Coord) Field() string {
	if c.Col < 0 || c.Col >= maxNotationCols {
		return fmt.Sprintf("?%d", c.Row+1)
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col, c.Row+1)
}

// Field returns the field notation for the move, "--" for a pass.
func (m Move) Field() string {
	if m.Pass {
		return "--"
	}
	return m.Coord.Field()
}
