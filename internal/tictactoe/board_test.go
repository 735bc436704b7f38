package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Mark
	}{
		{
			name:  "empty board has no winner",
			board: Board{},
			want:  Empty,
		},
		{
			name: "partial board has no winner",
			board: Board{
				X, O, Empty,
				Empty, X, Empty,
				Empty, Empty, O,
			},
			want: Empty,
		},
		{
			name: "X wins first row",
			board: Board{
				X, X, X,
				O, O, Empty,
				Empty, Empty, Empty,
			},
			want: X,
		},
		{
			name: "O wins second column",
			board: Board{
				X, O, Empty,
				X, O, Empty,
				Empty, O, X,
			},
			want: O,
		},
		{
			name: "X wins main diagonal",
			board: Board{
				X, O, Empty,
				Empty, X, O,
				Empty, Empty, X,
			},
			want: X,
		},
		{
			name: "O wins anti-diagonal",
			board: Board{
				X, X, O,
				Empty, O, Empty,
				O, Empty, X,
			},
			want: O,
		},
		{
			name: "full board without a line",
			board: Board{
				X, O, X,
				O, X, O,
				O, X, O,
			},
			want: Empty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckWinner(tt.board))
		})
	}
}

func TestCheckWinner_EveryLine(t *testing.T) {
	for _, mark := range []Mark{X, O} {
		for _, line := range Lines {
			// Given: a board where only one line is filled with mark
			var board Board
			for _, i := range line {
				board[i] = mark
			}

			// When: checking for a winner
			winner := CheckWinner(board)

			// Then: the mark of that line is reported
			assert.Equal(t, mark, winner, "line %v", line)
		}
	}
}

func TestCheckWinner_BrokenLinesHaveNoWinner(t *testing.T) {
	for _, line := range Lines {
		// Given: a line holding two X and one O
		var board Board
		board[line[0]] = X
		board[line[1]] = X
		board[line[2]] = O

		// When: checking for a winner
		winner := CheckWinner(board)

		// Then: no winner is reported
		assert.Equal(t, Empty, winner, "line %v", line)
	}
}

func TestIsFull(t *testing.T) {
	t.Run("empty board is not full", func(t *testing.T) {
		assert.False(t, IsFull(Board{}))
	})

	t.Run("board with one empty cell is not full", func(t *testing.T) {
		for i := 0; i < 9; i++ {
			board := Board{X, O, X, O, X, O, O, X, O}
			board[i] = Empty

			assert.False(t, IsFull(board), "cell %d empty", i)
		}
	})

	t.Run("occupied board is full", func(t *testing.T) {
		assert.True(t, IsFull(Board{X, O, X, O, X, O, O, X, O}))
	})

	t.Run("full board with a winner is still full", func(t *testing.T) {
		assert.True(t, IsFull(Board{X, X, X, O, O, X, O, X, O}))
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("in progress", func(t *testing.T) {
		// Given: a board with no line and free cells
		board := Board{X, O, Empty, Empty, X, Empty, Empty, Empty, O}

		// When: evaluating
		outcome := Evaluate(board)

		// Then: the game continues
		assert.Equal(t, InProgress, outcome)
		assert.False(t, outcome.IsTerminal())
		assert.Equal(t, Empty, outcome.Winner())
	})

	t.Run("X completes a line on the last free cells", func(t *testing.T) {
		// Given: X, O, X, O, X, O with the bottom row free
		board := Board{X, O, X, O, X, O, Empty, Empty, Empty}

		// When: X plays cell 6 and the board is evaluated
		board[6] = X
		outcome := Evaluate(board)

		// Then: X wins
		assert.Equal(t, XWins, outcome)
		assert.Equal(t, X, outcome.Winner())
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		outcome := Evaluate(Board{X, O, X, O, X, O, O, X, O})

		assert.Equal(t, Draw, outcome)
		assert.True(t, outcome.IsTerminal())
		assert.Equal(t, Empty, outcome.Winner())
	})

	t.Run("a win on the final move is not a draw", func(t *testing.T) {
		outcome := Evaluate(Board{X, X, X, O, O, X, O, X, O})

		assert.Equal(t, XWins, outcome)
	})

	t.Run("O win", func(t *testing.T) {
		outcome := Evaluate(Board{X, X, O, X, O, Empty, O, Empty, Empty})

		assert.Equal(t, OWins, outcome)
		assert.Equal(t, O, outcome.Winner())
	})
}

func TestEvaluate_IsIdempotent(t *testing.T) {
	// Given: a board snapshot
	board := Board{X, O, X, Empty, O, Empty, Empty, Empty, Empty}
	snapshot := board

	// When: evaluating twice
	first := Evaluate(board)
	second := Evaluate(board)

	// Then: results match and the board is untouched
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, board)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "in_progress", InProgress.String())
	assert.Equal(t, "x_wins", XWins.String())
	assert.Equal(t, "o_wins", OWins.String())
	assert.Equal(t, "draw", Draw.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestEmptyCells(t *testing.T) {
	board := Board{X, Empty, O, Empty, X, Empty, Empty, O, Empty}

	assert.Equal(t, []int{1, 3, 5, 6, 8}, EmptyCells(board))
	assert.Empty(t, EmptyCells(Board{X, O, X, O, X, O, O, X, O}))
}

func TestValidateBoard(t *testing.T) {
	tests := []struct {
		name    string
		board   Board
		wantErr error
	}{
		{name: "empty board", board: Board{}},
		{name: "X to move", board: Board{X, O}},
		{name: "O to move", board: Board{X, O, X}},
		{name: "O moved first", board: Board{O}, wantErr: apperror.ErrInvalidBoard},
		{name: "X moved twice", board: Board{X, X, O, X}, wantErr: apperror.ErrInvalidBoard},
		{name: "unknown mark", board: Board{"Z"}, wantErr: apperror.ErrInvalidMark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBoard(tt.board)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
