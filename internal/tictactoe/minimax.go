package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Scores are absolute, seen from the computer's side at every depth.
const (
	ScoreLoss = -1
	ScoreDraw = 0
	ScoreWin  = 1
)

// Move is a cell index paired with the score the search assigned to it.
type Move struct {
	Index int `json:"index"`
	Score int `json:"score"`
}

// SelectBestMove returns the optimal move for computer on board.
// The board must have at least one empty cell and no completed line.
func SelectBestMove(board Board, computer Mark) (Move, error) {
	if !computer.IsPlayer() {
		return Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, computer)
	}

	if outcome := Evaluate(board); outcome.IsTerminal() {
		return Move{}, fmt.Errorf("%w: %s", apperror.ErrTerminalBoard, outcome)
	}

	return minimax(board, computer, computer), nil
}

// minimax explores every continuation of board with toMove playing next.
// board is a copy, so placing marks on it does not leak to the caller.
func minimax(board Board, toMove, computer Mark) Move {
	switch CheckWinner(board) {
	case computer:
		return Move{Index: -1, Score: ScoreWin}
	case computer.Opponent():
		return Move{Index: -1, Score: ScoreLoss}
	}

	if IsFull(board) {
		return Move{Index: -1, Score: ScoreDraw}
	}

	maximizing := toMove == computer

	best := Move{Index: -1, Score: math.MaxInt}
	if maximizing {
		best.Score = math.MinInt
	}

	for i, cell := range board {
		if cell != Empty {
			continue
		}

		next := board
		next[i] = toMove
		score := minimax(next, toMove.Opponent(), computer).Score

		// strict comparison keeps the lowest index among equal scores
		if (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Move{Index: i, Score: score}
		}
	}

	return best
}
