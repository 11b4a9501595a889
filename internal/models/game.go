package models

import (
	"fmt"
	"time"

	"github.com/abalidoth/reversi/internal/reversi"
)

// Game status values stored in a session.
const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// GameState is the serialized session of a single game.
type GameState struct {
	ID        string    `json:"id"`
	Board     string    `json:"board"`
	Height    int       `json:"height"`
	Width     int       `json:"width"`
	VsBot     bool      `json:"vs_bot"`
	Status    string    `json:"status"`
	Winner    string    `json:"winner,omitempty"`
	Moves     []string  `json:"moves"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGameState creates the session for a freshly created board.
func NewGameState(id string, board *reversi.Board, vsBot bool) GameState {
	now := time.Now().UTC()

	return GameState{
		ID:        id,
		Board:     board.String(),
		Height:    board.Height(),
		Width:     board.Width(),
		VsBot:     vsBot,
		Status:    StatusInProgress,
		Moves:     make([]string, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BoardValue rebuilds the engine board from the serialized session.
func (gs *GameState) BoardValue() (*reversi.Board, error) {
	board, err := reversi.NewBoardFromString(gs.Board)
	if err != nil {
		return nil, fmt.Errorf("invalid stored board: %w", err)
	}
	return board, nil
}

// RecordMove appends a move to the history and syncs the board, status and
// winner fields from the engine board.
func (gs *GameState) RecordMove(board *reversi.Board, move reversi.Move) {
	gs.Moves = append(gs.Moves, move.Field())
	gs.Board = board.String()
	gs.UpdatedAt = time.Now().UTC()

	if over, winner := board.CheckWinner(); over {
		gs.Status = StatusFinished
		if winner != reversi.Nobody {
			gs.Winner = winner.String()
		}
	}
}

// Response builds the API view of the session.
func (gs *GameState) Response() (GameResponse, error) {
	board, err := gs.BoardValue()
	if err != nil {
		return GameResponse{}, err
	}

	legalMoves := board.LegalMoves()
	legalFields := make([]string, len(legalMoves))
	for i, c := range legalMoves {
		legalFields[i] = c.Field()
	}

	return GameResponse{
		ID:         gs.ID,
		Height:     gs.Height,
		Width:      gs.Width,
		Board:      gs.Board,
		Turn:       board.Turn().String(),
		LegalMoves: legalFields,
		Status:     gs.Status,
		Winner:     gs.Winner,
		Moves:      gs.Moves,
		BlackDiscs: board.CountDiscs(reversi.Black),
		WhiteDiscs: board.CountDiscs(reversi.White),
	}, nil
}
