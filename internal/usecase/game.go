package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const instrumentationName = "github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"

// TurnResult is the state after a human move. ComputerMove is nil when the
// human move ended the game.
type TurnResult struct {
	Game         *entity.Game
	ComputerMove *tictactoe.Move
}

type GameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*TurnResult, error)
	Reset(ctx context.Context, gameID string) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error

	Evaluate(ctx context.Context, board tictactoe.Board) tictactoe.Outcome
	BestMove(ctx context.Context, board tictactoe.Board, mark tictactoe.Mark) (tictactoe.Move, error)
}

type gameService interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gamePlayService interface {
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, *tictactoe.Move, error)
	Reset(ctx context.Context, gameID string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game) error
}

type gameUseCase struct {
	logger *slog.Logger
	tracer trace.Tracer

	finishedGames metric.Int64Counter

	gameService     gameService
	gamePlayService gamePlayService
}

func NewGameUseCase(logger *slog.Logger, gameService gameService, gamePlayService gamePlayService) (GameUseCase, error) {
	finishedGames, err := otel.Meter(instrumentationName).Int64Counter(
		"tictactoe.games.finished",
		metric.WithDescription("Number of games that reached a final outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create finished games counter: %w", err)
	}

	return &gameUseCase{
		logger:          logger.With("component", "usecase"),
		tracer:          otel.Tracer(instrumentationName),
		finishedGames:   finishedGames,
		gameService:     gameService,
		gamePlayService: gamePlayService,
	}, nil
}

func (that *gameUseCase) NewGame(ctx context.Context) (*entity.Game, error) {
	ctx, span := that.tracer.Start(ctx, "GameUseCase.NewGame")
	defer span.End()

	game, err := that.gameService.CreateGame(ctx)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	span.SetAttributes(attribute.String("game.id", game.ID))
	that.logger.Info("game created", "method", "NewGame", "gameID", game.ID)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	ctx, span := that.tracer.Start(ctx, "GameUseCase.GetGame", trace.WithAttributes(
		attribute.String("game.id", gameID),
	))
	defer span.End()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, cell int) (*TurnResult, error) {
	ctx, span := that.tracer.Start(ctx, "GameUseCase.MakeTurn", trace.WithAttributes(
		attribute.String("game.id", gameID),
		attribute.Int("move.cell", cell),
	))
	defer span.End()

	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, reply, err := that.gamePlayService.MakeTurn(ctx, gameID, cell)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		outcome := game.Outcome()
		that.finishedGames.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome.String())))
		span.SetAttributes(attribute.String("game.outcome", outcome.String()))
		log.Info("game finished", "outcome", outcome.String())
	}

	return &TurnResult{Game: game, ComputerMove: reply}, nil
}

func (that *gameUseCase) Reset(ctx context.Context, gameID string) (*entity.Game, error) {
	ctx, span := that.tracer.Start(ctx, "GameUseCase.Reset", trace.WithAttributes(
		attribute.String("game.id", gameID),
	))
	defer span.End()

	game, err := that.gamePlayService.Reset(ctx, gameID)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) EndGame(ctx context.Context, gameID string) error {
	ctx, span := that.tracer.Start(ctx, "GameUseCase.EndGame", trace.WithAttributes(
		attribute.String("game.id", gameID),
	))
	defer span.End()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to get game: %w", err)
	}

	if err = that.gamePlayService.CleanupGame(ctx, game); err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to end game: %w", err)
	}

	return nil
}

func (that *gameUseCase) Evaluate(ctx context.Context, board tictactoe.Board) tictactoe.Outcome {
	_, span := that.tracer.Start(ctx, "GameUseCase.Evaluate")
	defer span.End()

	outcome := tictactoe.Evaluate(board)
	span.SetAttributes(attribute.String("board.outcome", outcome.String()))

	return outcome
}

func (that *gameUseCase) BestMove(ctx context.Context, board tictactoe.Board, mark tictactoe.Mark) (tictactoe.Move, error) {
	_, span := that.tracer.Start(ctx, "GameUseCase.BestMove", trace.WithAttributes(
		attribute.String("move.mark", string(mark)),
	))
	defer span.End()

	if err := tictactoe.ValidateBoard(board); err != nil {
		recordError(span, err)
		return tictactoe.Move{}, fmt.Errorf("failed to select move: %w", err)
	}

	move, err := tictactoe.SelectBestMove(board, mark)
	if err != nil {
		recordError(span, err)
		return tictactoe.Move{}, fmt.Errorf("failed to select move: %w", err)
	}

	span.SetAttributes(attribute.Int("move.index", move.Index), attribute.Int("move.score", move.Score))

	return move, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
