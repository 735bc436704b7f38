// Package presenter shapes games and engine results for the client transports.
package presenter

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type Game struct {
	ID           string          `json:"id"`
	Board        tictactoe.Board `json:"board"`
	Turn         tictactoe.Mark  `json:"player_turn"`
	Winner       string          `json:"winner"`
	Status       string          `json:"status"`
	StatusText   string          `json:"status_text"`
	HumanMark    tictactoe.Mark  `json:"human_mark"`
	ComputerMark tictactoe.Mark  `json:"computer_mark"`
}

func NewGame(game *entity.Game) *Game {
	if game == nil {
		return nil
	}

	return &Game{
		ID:           game.ID,
		Board:        game.Board,
		Turn:         game.Turn,
		Winner:       game.Winner,
		Status:       game.Status,
		StatusText:   game.StatusText(),
		HumanMark:    game.HumanMark,
		ComputerMark: game.ComputerMark,
	}
}

type Evaluation struct {
	Outcome string         `json:"outcome"`
	Winner  tictactoe.Mark `json:"winner"`
	Full    bool           `json:"full"`
}

func NewEvaluation(board tictactoe.Board, outcome tictactoe.Outcome) Evaluation {
	return Evaluation{
		Outcome: outcome.String(),
		Winner:  outcome.Winner(),
		Full:    tictactoe.IsFull(board),
	}
}

// Board converts a client board to the engine board. The caller validates
// the length beforehand.
func Board(cells []tictactoe.Mark) tictactoe.Board {
	var board tictactoe.Board
	copy(board[:], cells)

	return board
}
