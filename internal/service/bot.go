package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (tictactoe.Move, error)
}

type botService struct {
	logger     *slog.Logger
	tracer     trace.Tracer
	thinkDelay time.Duration
}

// NewBotService returns the computer player. thinkDelay only paces the reply,
// the chosen move never depends on it.
func NewBotService(logger *slog.Logger, thinkDelay time.Duration) BotService {
	return &botService{
		logger:     logger.With("component", "bot"),
		tracer:     otel.Tracer("tictactoe/bot"),
		thinkDelay: thinkDelay,
	}
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (tictactoe.Move, error) {
	ctx, span := that.tracer.Start(ctx, "bot.MakeTurn", trace.WithAttributes(
		attribute.String("game.id", game.ID),
	))
	defer span.End()

	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if !game.IsComputerTurn() {
		if game.IsFinished() {
			return tictactoe.Move{}, apperror.ErrGameFinished
		}

		return tictactoe.Move{}, apperror.ErrNotYourTurn
	}

	if err := that.think(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "think interrupted")
		return tictactoe.Move{}, err
	}

	move, err := tictactoe.SelectBestMove(game.Board, game.ComputerMark)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select move failed")
		return tictactoe.Move{}, fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = game.MakeTurn(game.ComputerMark, move.Index); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "apply move failed")
		return tictactoe.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	span.SetAttributes(
		attribute.Int("move.index", move.Index),
		attribute.Int("move.score", move.Score),
	)
	log.Debug("bot moved", "cell", move.Index, "score", move.Score)

	return move, nil
}

func (that *botService) think(ctx context.Context) error {
	if that.thinkDelay <= 0 {
		return nil
	}

	select {
	case <-time.After(that.thinkDelay):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("bot think interrupted: %w", ctx.Err())
	}
}
