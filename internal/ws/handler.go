package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/abalidoth/reversi/internal/models"
	"github.com/abalidoth/reversi/internal/repository"
	"github.com/abalidoth/reversi/internal/reversi"
	"github.com/abalidoth/reversi/internal/services"
)

const (
	requestTimeout = 2 * time.Second
)

type Handler struct {
	services *services.Services
	ws       *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "create_request":
		return h.handleCreateRequest(req)
	case "move_request":
		return h.handleMoveRequest(req)
	case "state_request":
		return h.handleStateRequest(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) stateOutgoing(id int, state models.GameState) (*Outgoing, error) {
	resp, err := state.Response()
	if err != nil {
		return nil, fmt.Errorf("failed to build game response: %w", err)
	}

	return &Outgoing{ID: id, Data: resp}, nil
}

func (h *Handler) handleCreateRequest(req *Incoming) (*Outgoing, error) {
	var reqData models.CreateGameRequest
	if len(req.Data) > 0 {
		if err := json.Unmarshal(req.Data, &reqData); err != nil {
			return nil, fmt.Errorf("ws create request unmarshal error: %w", err)
		}
	}

	if err := reqData.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewGameRepositoryFromServices(h.services)

	state, err := repo.CreateGame(ctx, reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return h.stateOutgoing(req.ID, state)
}

func (h *Handler) handleMoveRequest(req *Incoming) (*Outgoing, error) {
	var reqData MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws move request unmarshal error: %w", err)
	}

	move, err := reversi.ParseField(reqData.Move)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewGameRepositoryFromServices(h.services)

	state, err := repo.PlayMove(ctx, reqData.GameID, move)
	if err != nil {
		return nil, fmt.Errorf("failed to play move: %w", err)
	}

	return h.stateOutgoing(req.ID, state)
}

func (h *Handler) handleStateRequest(req *Incoming) (*Outgoing, error) {
	var reqData StateRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws state request unmarshal error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewGameRepositoryFromServices(h.services)

	state, err := repo.GetGame(ctx, reqData.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return h.stateOutgoing(req.ID, state)
}
