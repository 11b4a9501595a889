package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/abalidoth/reversi/internal/models"
	"github.com/abalidoth/reversi/internal/repository"
	"github.com/abalidoth/reversi/internal/reversi"
)

// stateResponse converts a session to its API view.
func stateResponse(c *fiber.Ctx, status int, state models.GameState) error {
	resp, err := state.Response()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(status).JSON(resp)
}

// CreateGame handles game creation requests.
func CreateGame(c *fiber.Ctx) error {
	var req models.CreateGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewGameRepository(c)
	state, err := repo.CreateGame(c.Context(), req)
	if err != nil {
		if errors.Is(err, reversi.ErrInvalidDimensions) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return stateResponse(c, fiber.StatusCreated, state)
}

// GetGame returns the current state of a game.
func GetGame(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)

	state, err := repo.GetGame(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Game not found",
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return stateResponse(c, fiber.StatusOK, state)
}

// PlayMove applies a move to a game.
func PlayMove(c *fiber.Ctx) error {
	var req models.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	move, err := reversi.ParseField(req.Move)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewGameRepository(c)
	state, err := repo.PlayMove(c.Context(), c.Params("id"), move)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrGameNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Game not found",
			})
		case errors.Is(err, repository.ErrGameFinished):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, reversi.ErrOutOfBounds), errors.Is(err, reversi.ErrIllegalMove):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return stateResponse(c, fiber.StatusOK, state)
}

// ListFinishedGames returns the most recently archived games.
func ListFinishedGames(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)

	games, err := repo.ListFinishedGames(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(games)
}
