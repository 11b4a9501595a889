package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/abalidoth/reversi/internal/models"
	"github.com/abalidoth/reversi/internal/reversi"
	"github.com/abalidoth/reversi/internal/services"
)

const (
	gameKeyPrefix = "game:"

	// Abandoned sessions expire on their own.
	gameTTL = 24 * time.Hour

	defaultArchiveLimit = 50
	maxArchiveLimit     = 500
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameFinished = errors.New("game is already finished")
)

// GameRepository handles storage operations for game sessions: live games
// live in Redis, finished games are archived in Postgres.
type GameRepository struct {
	services *services.Services
	selector reversi.Selector
}

// NewGameRepository creates a new GameRepository.
func NewGameRepository(c *fiber.Ctx) *GameRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return NewGameRepositoryFromServices(services)
}

func NewGameRepositoryFromServices(services *services.Services) *GameRepository {
	return &GameRepository{
		services: services,
		selector: reversi.NewRandomSelector(time.Now().UnixNano()),
	}
}

// CreateGame creates a new game session and stores it in Redis.
func (repo *GameRepository) CreateGame(ctx context.Context, req models.CreateGameRequest) (models.GameState, error) {
	board, err := reversi.NewBoard(req.Height, req.Width)
	if err != nil {
		return models.GameState{}, err
	}

	state := models.NewGameState(uuid.New().String(), board, req.VsBot)

	if err := repo.saveGame(ctx, state); err != nil {
		return models.GameState{}, err
	}

	return state, nil
}

// GetGame retrieves a game session from Redis.
func (repo *GameRepository) GetGame(ctx context.Context, gameID string) (models.GameState, error) {
	redisConn := repo.services.Redis

	jsonData, err := redisConn.Get(ctx, gameKeyPrefix+gameID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.GameState{}, ErrGameNotFound
		}
		return models.GameState{}, fmt.Errorf("error getting game: %w", err)
	}

	var state models.GameState
	if err := json.Unmarshal(jsonData, &state); err != nil {
		return models.GameState{}, fmt.Errorf("error unmarshaling game state: %w", err)
	}

	return state, nil
}

// PlayMove applies a move to a stored game. When the session has a bot
// opponent, the bot answers (including forced passes) before the state is
// saved. Finished games move from Redis to the Postgres archive.
func (repo *GameRepository) PlayMove(ctx context.Context, gameID string, move reversi.Move) (models.GameState, error) {
	state, err := repo.GetGame(ctx, gameID)
	if err != nil {
		return models.GameState{}, err
	}

	if state.Status == models.StatusFinished {
		return models.GameState{}, ErrGameFinished
	}

	board, err := state.BoardValue()
	if err != nil {
		return models.GameState{}, err
	}

	if err := board.Apply(move); err != nil {
		return models.GameState{}, err
	}
	state.RecordMove(board, move)

	// The bot plays White.
	for state.VsBot && state.Status == models.StatusInProgress && board.Turn() == reversi.White {
		botMove := repo.selector.Select(board)
		if err := board.Apply(botMove); err != nil {
			return models.GameState{}, fmt.Errorf("error applying bot move: %w", err)
		}
		state.RecordMove(board, botMove)
	}

	if state.Status == models.StatusFinished {
		if err := repo.archiveGame(ctx, state, board); err != nil {
			return models.GameState{}, err
		}

		if err := repo.services.Redis.Del(ctx, gameKeyPrefix+gameID).Err(); err != nil {
			return models.GameState{}, fmt.Errorf("error deleting finished game: %w", err)
		}

		return state, nil
	}

	if err := repo.saveGame(ctx, state); err != nil {
		return models.GameState{}, err
	}

	return state, nil
}

// saveGame stores the session in Redis and resets its TTL.
func (repo *GameRepository) saveGame(ctx context.Context, state models.GameState) error {
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling game state: %w", err)
	}

	redisConn := repo.services.Redis
	if err := redisConn.Set(ctx, gameKeyPrefix+state.ID, jsonData, gameTTL).Err(); err != nil {
		return fmt.Errorf("error storing game: %w", err)
	}

	return nil
}

// archiveGame inserts a finished game into the Postgres archive.
func (repo *GameRepository) archiveGame(ctx context.Context, state models.GameState, board *reversi.Board) error {
	pgConn := repo.services.Postgres

	winner := state.Winner
	if winner == "" {
		winner = "draw"
	}

	query := `
		INSERT INTO games (id, height, width, winner, black_discs, white_discs, moves, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := pgConn.ExecContext(ctx, query,
		state.ID,
		state.Height,
		state.Width,
		winner,
		board.CountDiscs(reversi.Black),
		board.CountDiscs(reversi.White),
		pq.Array(state.Moves),
		state.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error archiving game: %w", err)
	}

	return nil
}

// ListFinishedGames returns the most recently finished games from the archive.
func (repo *GameRepository) ListFinishedGames(ctx context.Context, limit int) ([]models.FinishedGame, error) {
	if limit <= 0 {
		limit = defaultArchiveLimit
	}
	if limit > maxArchiveLimit {
		limit = maxArchiveLimit
	}

	pgConn := repo.services.Postgres

	query := `
		SELECT id, height, width, winner, black_discs, white_discs, moves, finished_at
		FROM games
		ORDER BY finished_at DESC
		LIMIT $1
	`

	games := make([]models.FinishedGame, 0)
	if err := pgConn.SelectContext(ctx, &games, query, limit); err != nil {
		return nil, fmt.Errorf("error listing finished games: %w", err)
	}

	return games, nil
}
