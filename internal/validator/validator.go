package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// cell contents: empty, X or O
	if err := validate.RegisterValidation("mark", validateMark); err != nil {
		panic(fmt.Errorf("failed to register mark validation: %w", err))
	}
}

// Struct validates request using its `validate` tags.
func Struct(request any) error {
	if err := validate.Struct(request); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	return nil
}

func validateMark(fl validator.FieldLevel) bool {
	switch tictactoe.Mark(fl.Field().String()) {
	case tictactoe.Empty, tictactoe.X, tictactoe.O:
		return true
	default:
		return false
	}
}
