package chx

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	t.Run("NoCause", func(t *testing.T) {
		err := New(KindValidation, "row count mismatch")
		require.EqualError(t, err, "validation: row count mismatch")
	})
	t.Run("WithCause", func(t *testing.T) {
		cause := errors.New("eof")
		err := Wrap(KindIO, cause, "read header")
		require.EqualError(t, err, "io: read header: eof")
		require.ErrorIs(t, err, cause)
	})
	t.Run("NilCause", func(t *testing.T) {
		require.NoError(t, Wrap(KindIO, nil, "read header"))
	})
}

func TestIs(t *testing.T) {
	err := Newf(KindTypeMismatch, "declared %s, server sent %s", "Int32", "String")
	require.True(t, Is(err, KindTypeMismatch))
	require.False(t, Is(err, KindProtocol))

	wrapped := errors.Wrap(err, "decode column")
	require.True(t, Is(wrapped, KindTypeMismatch), "Is should see through plain wrapping")

	require.False(t, Is(errors.New("plain"), KindIO))
}
