package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/modsmith/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneralError},
		{"missing field", oerrors.NewMissingFieldError("name", ""), ExitInputError},
		{"validation", oerrors.NewValidationError("bad id", "id", ""), ExitInputError},
		{"io", oerrors.NewIOError("writing file", "/tmp/x", errors.New("disk full")), ExitIOError},
		{"conflict", oerrors.NewConflictError("not empty", "/tmp/x", ""), ExitIOError},
		{"wrapped io", fmt.Errorf("generate: %w", oerrors.NewIOError("write", "/p", nil)), ExitIOError},
		{"explicit exit error", NewExitError(errors.New("x"), 42), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewExitError(cause, ExitGeneralError)

	assert.Equal(t, "cause", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "General Error", ExitCodeName(ExitGeneralError))
	assert.Equal(t, "Input Error", ExitCodeName(ExitInputError))
	assert.Equal(t, "I/O Error", ExitCodeName(ExitIOError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
