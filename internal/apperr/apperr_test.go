package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/schoolday/internal/apperr"
)

var errTemplate = &apperr.Error{
	Message: "tick interval must be between %v and %v",
}

func TestFmtMatchesTemplate(t *testing.T) {
	err := errTemplate.Fmt("1s", "1m0s")

	assert.Equal(t, "tick interval must be between 1s and 1m0s", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.NotErrorIs(t, err, &apperr.Error{Message: errTemplate.Message})
}

func TestWrapKeepsCause(t *testing.T) {
	base := &apperr.Error{Message: "reading store failed"}

	err := base.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "reading store failed: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.True(t, errors.Is(base.Fmt().Wrap(io.EOF), base))
}
