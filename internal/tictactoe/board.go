package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark is the content of a board cell.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Opponent returns the other side. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// IsPlayer reports whether the mark is X or O.
func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

// Board is a 3x3 grid stored row-major, cell 0 is top-left.
type Board [9]Mark

// Line is an index triple that wins when all three cells hold the same mark.
type Line [3]int

// Lines holds the rows, columns and diagonals, in that order.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome is the state of a board derived by Evaluate.
type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case InProgress:
		return "in_progress"
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Winner returns the mark that completed a line, or Empty.
func (that Outcome) Winner() Mark {
	switch that {
	case XWins:
		return X
	case OWins:
		return O
	default:
		return Empty
	}
}

// IsTerminal reports whether no further moves can be played.
func (that Outcome) IsTerminal() bool {
	return that != InProgress
}

// CheckWinner returns the mark of the first complete line, or Empty.
func CheckWinner(board Board) Mark {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

// IsFull reports whether every cell is occupied.
func IsFull(board Board) bool {
	for _, cell := range board {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Evaluate derives the outcome of board.
func Evaluate(board Board) Outcome {
	switch CheckWinner(board) {
	case X:
		return XWins
	case O:
		return OWins
	}

	if IsFull(board) {
		return Draw
	}

	return InProgress
}

// EmptyCells returns the indexes of unoccupied cells in ascending order.
func EmptyCells(board Board) []int {
	cells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// ValidateBoard checks that X moved first and the sides alternated.
func ValidateBoard(board Board) error {
	var xCount, oCount int
	for _, cell := range board {
		switch cell {
		case X:
			xCount++
		case O:
			oCount++
		case Empty:
		default:
			return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, cell)
		}
	}

	if diff := xCount - oCount; diff < 0 || diff > 1 {
		return fmt.Errorf("%w: %d X and %d O", apperror.ErrInvalidBoard, xCount, oCount)
	}

	return nil
}
