package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/presenter"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	actionNewGame   = "game:new"
	actionGameState = "game:state"
	actionGameTurn  = "game:turn"
	actionGameReset = "game:reset"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type gameRequest struct {
	GameID string `json:"game_id" validate:"required"`
}

type turnRequest struct {
	GameID string `json:"game_id" validate:"required"`
	Cell   *int   `json:"cell" validate:"required,min=0,max=8"`
}

type ResponsePayload struct {
	Game         *presenter.Game `json:"game,omitempty"`
	ComputerMove *tictactoe.Move `json:"computer_move,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// connection serialises writes, gorilla allows one concurrent writer.
type connection struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (that *connection) send(action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
