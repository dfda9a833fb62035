package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("round trips through context", func(t *testing.T) {
		logger := New()
		ctx := ToContext(context.Background(), logger)

		require.Same(t, logger, FromContext(ctx))
	})

	t.Run("missing logger builds a new one", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
