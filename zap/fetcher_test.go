package zap_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kalyug-papa-bolo/vahan/mock"
	vahanzap "github.com/kalyug-papa-bolo/vahan/zap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs rc, bytes, and duration", func(t *testing.T) {
		t.Parallel()

		core, logs := observer.New(zap.InfoLevel)
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, rc string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		f := vahanzap.NewLoggingFetcher(inner, zap.New(core))
		html, err := f.Fetch(context.Background(), "dl01ab1234")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)

		entries := logs.FilterMessage("fetch").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "DL01AB1234", fields["rc"])
		assert.EqualValues(t, 20, fields["bytes"])
		assert.Contains(t, fields, "duration")
	})

	t.Run("logs failure cause", func(t *testing.T) {
		t.Parallel()

		core, logs := observer.New(zap.WarnLevel)
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, rc string) (string, error) {
				return "", errors.New("network error")
			},
		}

		f := vahanzap.NewLoggingFetcher(inner, zap.New(core))
		_, err := f.Fetch(context.Background(), "DL01AB1234")

		require.Error(t, err)
		entries := logs.FilterMessage("fetch").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "network error", entries[0].ContextMap()["error"])
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	f := vahanzap.NewLoggingFetcher(inner, zap.NewNop())

	require.NoError(t, f.Close())
	assert.True(t, closed)
}
