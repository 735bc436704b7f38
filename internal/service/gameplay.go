package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type GamePlayService interface {
	// MakeTurn plays the human move and, while the game is still open, the
	// computer reply. The returned move is nil when the computer did not play.
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, *tictactoe.Move, error)
	Reset(ctx context.Context, gameID string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game) error
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService

	locks *gameLocks
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:      logger,
		gameService: gameService,
		botService:  botService,
		locks:       newGameLocks(),
	}
}

func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, *tictactoe.Move, error) {
	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.MakeTurn(game.HumanMark, cell); err != nil {
		return game, nil, fmt.Errorf("failed to make turn: %w", err)
	}

	var reply *tictactoe.Move
	if game.IsComputerTurn() {
		move, err := that.botService.MakeTurn(ctx, game)
		if err != nil {
			return nil, nil, fmt.Errorf("bot failed to make turn: %w", err)
		}

		reply = &move
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, reply, nil
}

func (that *gamePlayService) Reset(ctx context.Context, gameID string) (*entity.Game, error) {
	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	game.Reset()

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "CleanupGame", "gameID", game.ID)

	unlock := that.locks.lock(game.ID)
	defer unlock()

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
		return fmt.Errorf("failed to cleanup game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

// gameLocks serializes load, apply and save on a single game. Entries are
// dropped once no caller holds or waits for them.
type gameLocks struct {
	mu    sync.Mutex
	games map[string]*gameLock
}

type gameLock struct {
	mu   sync.Mutex
	refs int
}

func newGameLocks() *gameLocks {
	return &gameLocks{games: make(map[string]*gameLock)}
}

func (that *gameLocks) lock(gameID string) func() {
	that.mu.Lock()
	entry, ok := that.games[gameID]
	if !ok {
		entry = &gameLock{}
		that.games[gameID] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.games, gameID)
		}
		that.mu.Unlock()
	}
}
