package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/presenter"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/validator"
)

var errMalformedPayload = errors.New("malformed payload")

func (that *Server) handleNewGame(ctx context.Context, _ *Message) (ResponsePayload, error) {
	log := that.logger.With("method", "handleNewGame")

	game, err := that.uGame.NewGame(ctx)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return ResponsePayload{}, errors.New("failed to create a new game")
	}

	log.Info("game created", "gameID", game.ID)

	return ResponsePayload{Game: presenter.NewGame(game)}, nil
}

func (that *Server) handleGameState(ctx context.Context, msg *Message) (ResponsePayload, error) {
	var req gameRequest
	if err := decodePayload(msg, &req); err != nil {
		return ResponsePayload{}, err
	}

	game, err := that.uGame.GetGame(ctx, req.GameID)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("game %s: %w", req.GameID, err)
	}

	return ResponsePayload{Game: presenter.NewGame(game)}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message) (ResponsePayload, error) {
	var req turnRequest
	if err := decodePayload(msg, &req); err != nil {
		return ResponsePayload{}, err
	}

	result, err := that.uGame.MakeTurn(ctx, req.GameID, *req.Cell)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("game %s: %w", req.GameID, err)
	}

	return ResponsePayload{
		Game:         presenter.NewGame(result.Game),
		ComputerMove: result.ComputerMove,
	}, nil
}

func (that *Server) handleGameReset(ctx context.Context, msg *Message) (ResponsePayload, error) {
	var req gameRequest
	if err := decodePayload(msg, &req); err != nil {
		return ResponsePayload{}, err
	}

	game, err := that.uGame.Reset(ctx, req.GameID)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("game %s: %w", req.GameID, err)
	}

	return ResponsePayload{Game: presenter.NewGame(game)}, nil
}

func decodePayload(msg *Message, dst any) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%w: payload is required", errMalformedPayload)
	}

	if err := json.Unmarshal(msg.Payload, dst); err != nil {
		return fmt.Errorf("%w: %w", errMalformedPayload, err)
	}

	return validator.Struct(dst)
}
