package incodeerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugError_Kinds(t *testing.T) {
	t.Run("invalid address formats as hex", func(t *testing.T) {
		err := NewInvalidAddressError(0x1000)
		require.Equal(t, InvalidAddress, err.Kind)
		require.Contains(t, err.Error(), "0x1000")
	})

	t.Run("io wraps and unwraps the cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := WrapIo(cause)
		require.Equal(t, Io, err.Kind)
		require.True(t, errors.Is(err, cause))
	})

	t.Run("json wraps and unwraps the cause", func(t *testing.T) {
		cause := errors.New("unexpected token")
		err := WrapJson(cause)
		require.Equal(t, Json, err.Kind)
		require.ErrorIs(t, err, cause)
	})

	t.Run("Is reports kind membership", func(t *testing.T) {
		err := NewNotImplementedError("function name breakpoints")
		require.True(t, Is(err, NotImplemented))
		require.False(t, Is(err, Breakpoint))
		require.False(t, Is(errors.New("plain"), NotImplemented))
	})

	t.Run("kind stringer covers every constant", func(t *testing.T) {
		for k := DebuggerInit; k <= InvalidParameter; k++ {
			require.NotEqual(t, "Unknown", k.String())
		}
	})
}
