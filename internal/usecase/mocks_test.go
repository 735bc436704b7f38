package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type mockGameService struct {
	mock.Mock
}

func (m *mockGameService) CreateGame(ctx context.Context) (*entity.Game, error) {
	args := m.Called(ctx)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

type mockGamePlayService struct {
	mock.Mock
}

func (m *mockGamePlayService) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, *tictactoe.Move, error) {
	args := m.Called(ctx, gameID, cell)
	game, _ := args.Get(0).(*entity.Game)
	move, _ := args.Get(1).(*tictactoe.Move)
	return game, move, args.Error(2)
}

func (m *mockGamePlayService) Reset(ctx context.Context, gameID string) (*entity.Game, error) {
	args := m.Called(ctx, gameID)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGamePlayService) CleanupGame(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}
