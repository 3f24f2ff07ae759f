package logutils

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferred_HoldsUntilFlush(t *testing.T) {
	var held Deferred
	logger := NewWithWriter(&held, zerolog.InfoLevel)

	logger.Info().Msg("first")
	logger.Debug().Msg("dropped")
	logger.Info().Msg("second")

	require.Positive(t, held.Len())

	var out bytes.Buffer
	require.NoError(t, held.Flush(&out))
	assert.Contains(t, out.String(), `"message":"first"`)
	assert.Contains(t, out.String(), `"message":"second"`)
	assert.NotContains(t, out.String(), "dropped")
	assert.Zero(t, held.Len())
}

func TestDeferred_FlushEmpty(t *testing.T) {
	var held Deferred
	var out bytes.Buffer

	require.NoError(t, held.Flush(&out))
	assert.Zero(t, out.Len())
}

func TestDeferred_ConcurrentWrites(t *testing.T) {
	var held Deferred
	var wg sync.WaitGroup

	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = held.Write([]byte("x"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, held.Len())
}
