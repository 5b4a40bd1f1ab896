package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	err := NewError("loader.unknownScript", "os", "os/1", "script", "s/1")
	assert.Equal(t, "loader.unknownScript", err.Code)
	assert.Equal(t, "loader.unknownScript: os=os/1 script=s/1", err.Error())

	t.Run("errors.Is matches on code", func(t *testing.T) {
		wrapped := fmt.Errorf("load: %w", err)
		assert.True(t, errors.Is(wrapped, Error{Code: "loader.unknownScript"}))
		assert.False(t, errors.Is(wrapped, Error{Code: "loader.other"}))
	})

	t.Run("odd args panic", func(t *testing.T) {
		assert.Panics(t, func() { NewError("x", "k") })
	})

	t.Run("non-string keys panic", func(t *testing.T) {
		assert.Panics(t, func() { NewError("x", 1, 2) })
	})

	t.Run("no context", func(t *testing.T) {
		assert.Equal(t, "x", NewError("x").Error())
	})
}
