package reversi

import "math/rand"

// Selector chooses the next move for the side to move.
type Selector interface {
	Select(b *Board) Move
}

// RandomSelector picks uniformly among the legal moves and passes when
// there are none.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a RandomSelector with its own seeded source.
func NewRandomSelector(seed int64) *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSelector) Select(b *Board) Move {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return PassMove
	}

	c := moves[s.rng.Intn(len(moves))]
	return Move{Coord: c}
}
