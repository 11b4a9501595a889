package models

import (
	"errors"
	"time"

	"github.com/lib/pq"
)

// maxBoardSize is the largest dimension the field notation can express.
const maxBoardSize = 26

// CreateGameRequest represents the payload for creating a game.
// Zero dimensions default to the standard 8x8 board.
type CreateGameRequest struct {
	Height int  `json:"height"`
	Width  int  `json:"width"`
	VsBot  bool `json:"vs_bot"`
}

// Validate applies defaults and rejects sizes the field notation cannot
// express. Evenness is checked by the engine.
func (r *CreateGameRequest) Validate() error {
	if r.Height == 0 {
		r.Height = 8
	}
	if r.Width == 0 {
		r.Width = 8
	}

	if r.Height > maxBoardSize || r.Width > maxBoardSize {
		return errors.New("board dimensions may be at most 26")
	}

	return nil
}

// MoveRequest represents the payload for playing a move, in field notation
// ("c3", or "--" for a pass).
type MoveRequest struct {
	Move string `json:"move"`
}

// GameResponse is the API view of a game session.
type GameResponse struct {
	ID         string   `json:"id"`
	Height     int      `json:"height"`
	Width      int      `json:"width"`
	Board      string   `json:"board"`
	Turn       string   `json:"turn"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"`
	Winner     string   `json:"winner,omitempty"`
	Moves      []string `json:"moves"`
	BlackDiscs int      `json:"black_discs"`
	WhiteDiscs int      `json:"white_discs"`
}

// FinishedGame represents an archived game row.
type FinishedGame struct {
	ID         string         `json:"id"          db:"id"`
	Height     int            `json:"height"      db:"height"`
	Width      int            `json:"width"       db:"width"`
	Winner     string         `json:"winner"      db:"winner"`
	BlackDiscs int            `json:"black_discs" db:"black_discs"`
	WhiteDiscs int            `json:"white_discs" db:"white_discs"`
	Moves      pq.StringArray `json:"moves"       db:"moves"`
	FinishedAt time.Time      `json:"finished_at" db:"finished_at"`
}
