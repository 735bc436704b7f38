package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/presenter"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	appvalidator "github.com/rocketscienceinc/tictactoe-minimax/internal/validator"
)

const maxBodyBytes = 1 << 12

type uGame interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*usecase.TurnResult, error)
	Reset(ctx context.Context, gameID string) (*entity.Game, error)
	EndGame(ctx context.Context, gameID string) error

	Evaluate(ctx context.Context, board tictactoe.Board) tictactoe.Outcome
	BestMove(ctx context.Context, board tictactoe.Board, mark tictactoe.Mark) (tictactoe.Move, error)
}

type turnRequest struct {
	Cell *int `json:"cell" validate:"required,min=0,max=8"`
}

type boardRequest struct {
	Board []tictactoe.Mark `json:"board" validate:"required,len=9,dive,mark"`
}

type bestMoveRequest struct {
	Board []tictactoe.Mark `json:"board" validate:"required,len=9,dive,mark"`
	Mark  tictactoe.Mark   `json:"mark" validate:"required,oneof=X O"`
}

type turnResponse struct {
	*presenter.Game
	ComputerMove *tictactoe.Move `json:"computer_move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger
	uGame  uGame
}

func newHandlers(logger *slog.Logger, uGame uGame) *handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.NewGame(r.Context())
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, presenter.NewGame(game))
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, presenter.NewGame(game))
}

func (that *handlers) endGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.EndGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "endGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeRequest(w, r, &req); err != nil {
		that.writeError(w, "makeTurn", err)
		return
	}

	result, err := that.uGame.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, "makeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, turnResponse{
		Game:         presenter.NewGame(result.Game),
		ComputerMove: result.ComputerMove,
	})
}

func (that *handlers) resetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "resetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, presenter.NewGame(game))
}

func (that *handlers) evaluate(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decodeRequest(w, r, &req); err != nil {
		that.writeError(w, "evaluate", err)
		return
	}

	board := presenter.Board(req.Board)
	outcome := that.uGame.Evaluate(r.Context(), board)

	that.writeJSON(w, http.StatusOK, presenter.NewEvaluation(board, outcome))
}

func (that *handlers) bestMove(w http.ResponseWriter, r *http.Request) {
	var req bestMoveRequest
	if err := decodeRequest(w, r, &req); err != nil {
		that.writeError(w, "bestMove", err)
		return
	}

	move, err := that.uGame.BestMove(r.Context(), presenter.Board(req.Board), req.Mark)
	if err != nil {
		that.writeError(w, "bestMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, move)
}

var errMalformedBody = errors.New("malformed request body")

func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errors.Join(errMalformedBody, err)
	}

	return appvalidator.Struct(dst)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFromError(err)

	log := that.logger.With("method", method)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	} else {
		log.Debug("request rejected", "status", status, "error", err)
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func statusFromError(err error) int {
	var validationErrors validator.ValidationErrors

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errMalformedBody),
		errors.As(err, &validationErrors),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrInvalidBoard):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrTerminalBoard):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
