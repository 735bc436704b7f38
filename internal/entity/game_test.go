package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	x = tictactoe.X
	o = tictactoe.O
	e = tictactoe.Empty
)

func TestNewGame(t *testing.T) {
	// Given: a new game
	game := NewGame("123")

	// Then: the board is empty and the human moves first
	assert.Equal(t, "123", game.ID)
	assert.Equal(t, tictactoe.Board{}, game.Board)
	assert.Equal(t, tictactoe.X, game.Turn)
	assert.Equal(t, tictactoe.X, game.HumanMark)
	assert.Equal(t, tictactoe.O, game.ComputerMark)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Empty(t, game.Winner)
	assert.False(t, game.CreatedAt.IsZero())
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsComputerTurn follows the turn of an ongoing game", func(t *testing.T) {
		game := NewGame("123")
		assert.False(t, game.IsComputerTurn())

		game.Turn = game.ComputerMark
		assert.True(t, game.IsComputerTurn())

		game.Status = StatusFinished
		assert.False(t, game.IsComputerTurn())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Updates game state when Player X wins", func(t *testing.T) {
		// Given: a game where X has a winning combination
		game := &Game{
			Board: tictactoe.Board{
				x, x, x,
				o, o, e,
				e, e, e,
			},
			Status: StatusOngoing,
			Turn:   o,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game is finished with X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, "X", game.Winner)
		assert.Equal(t, e, game.Turn)
	})

	t.Run("Updates game state when the game is a tie", func(t *testing.T) {
		game := &Game{
			Board: tictactoe.Board{
				x, o, x,
				o, x, o,
				o, x, o,
			},
			Status: StatusOngoing,
			Turn:   x,
		}

		game.UpdateGameState()

		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, e, game.Turn)
	})

	t.Run("Game remains ongoing when there is no winner or tie", func(t *testing.T) {
		game := &Game{
			Board: tictactoe.Board{
				x, o, e,
				e, x, e,
				e, e, o,
			},
			Status: StatusOngoing,
			Turn:   x,
		}

		game.UpdateGameState()

		assert.Equal(t, StatusOngoing, game.Status)
		assert.Empty(t, game.Winner)
		assert.Equal(t, x, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: X plays cell 0
		err := game.MakeTurn(x, 0)

		// Then: the mark is placed and O is next
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Board{x}, game.Board)
		assert.Equal(t, o, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		game := NewGame("123")
		require.NoError(t, game.MakeTurn(x, 0))

		err := game.MakeTurn(o, 0)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, tictactoe.Board{x}, game.Board)
		assert.Equal(t, o, game.Turn)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		game := NewGame("123")

		err := game.MakeTurn(o, 1)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, tictactoe.Board{}, game.Board)
		assert.Equal(t, x, game.Turn)
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		game := NewGame("123")

		assert.ErrorIs(t, game.MakeTurn(x, 20), apperror.ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(x, -1), apperror.ErrInvalidCell)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X, O, X, O, X, O with X to move
		game := NewGame("123")
		for i, cell := range []int{0, 1, 2, 3, 4, 5} {
			mark := x
			if i%2 == 1 {
				mark = o
			}
			require.NoError(t, game.MakeTurn(mark, cell))
		}

		// When: X plays cell 6
		require.NoError(t, game.MakeTurn(x, 6))

		// Then: X has won and nobody is to move
		assert.True(t, game.IsFinished())
		assert.Equal(t, "X", game.Winner)
		assert.Equal(t, tictactoe.XWins, game.Outcome())
		assert.Equal(t, e, game.Turn)

		// And: further moves are rejected
		assert.ErrorIs(t, game.MakeTurn(o, 7), apperror.ErrGameFinished)
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game
	game := NewGame("123")
	game.Board = tictactoe.Board{x, o, x, o, x, o, o, x, o}
	game.UpdateGameState()
	require.True(t, game.IsFinished())

	// When: resetting
	game.Reset()

	// Then: the board is empty and X moves first again
	assert.Equal(t, tictactoe.Board{}, game.Board)
	assert.Equal(t, x, game.Turn)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Empty(t, game.Winner)
}

func TestGame_StatusText(t *testing.T) {
	tests := []struct {
		name  string
		board tictactoe.Board
		turn  tictactoe.Mark
		want  string
	}{
		{name: "human to move", board: tictactoe.Board{}, turn: x, want: "Next player: X"},
		{name: "computer to move", board: tictactoe.Board{x}, turn: o, want: "Next player: O"},
		{name: "X wins", board: tictactoe.Board{x, x, x, o, o}, want: "Winner: X"},
		{name: "O wins", board: tictactoe.Board{o, o, o, x, x, e, x}, want: "Winner: O"},
		{name: "draw", board: tictactoe.Board{x, o, x, o, x, o, o, x, o}, want: "Draw!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &Game{Board: tt.board, Turn: tt.turn}

			assert.Equal(t, tt.want, game.StatusText())
		})
	}
}
