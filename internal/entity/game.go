package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"

	// The human always plays X and moves first.
	HumanMark    = tictactoe.X
	ComputerMark = tictactoe.O
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID           string          `json:"id"`
	Board        tictactoe.Board `json:"board"`
	Winner       string          `json:"winner"`
	Status       string          `json:"status"`
	Turn         tictactoe.Mark  `json:"player_turn"`
	HumanMark    tictactoe.Mark  `json:"human_mark"`
	ComputerMark tictactoe.Mark  `json:"computer_mark"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewGame(id string) *Game {
	now := time.Now().UTC()

	return &Game{
		ID:           id,
		Turn:         HumanMark,
		Status:       StatusOngoing,
		HumanMark:    HumanMark,
		ComputerMark: ComputerMark,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Outcome derives the result from the board.
func (that *Game) Outcome() tictactoe.Outcome {
	return tictactoe.Evaluate(that.Board)
}

func (that *Game) UpdateGameState() {
	switch outcome := that.Outcome(); outcome {
	// one player wins
	case tictactoe.XWins, tictactoe.OWins:
		that.Winner = string(outcome.Winner())
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// tie
	case tictactoe.Draw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// game continue
	default:
		that.Winner = ""
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(mark tictactoe.Mark, cell int) error {
	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != tictactoe.Empty {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark
	that.Turn = mark.Opponent()
	that.UpdatedAt = time.Now().UTC()

	that.UpdateGameState()

	return nil
}

// Reset clears the board and gives the first move back to the human.
func (that *Game) Reset() {
	that.Board = tictactoe.Board{}
	that.Winner = ""
	that.Status = StatusOngoing
	that.Turn = that.HumanMark
	that.UpdatedAt = time.Now().UTC()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsComputerTurn() bool {
	return that.IsOngoing() && that.Turn == that.ComputerMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// StatusText is the line shown above the board.
func (that *Game) StatusText() string {
	switch outcome := that.Outcome(); outcome {
	case tictactoe.XWins, tictactoe.OWins:
		return "Winner: " + string(outcome.Winner())
	case tictactoe.Draw:
		return "Draw!"
	default:
		return "Next player: " + string(that.Turn)
	}
}
