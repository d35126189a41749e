package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream down")

func failing() error { return errUpstream }
func healthy() error { return nil }

func TestCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("stays closed on success", func(t *testing.T) {
		cb := New("test", Config{FailureThreshold: 2})
		for i := 0; i < 5; i++ {
			require.NoError(t, cb.Execute(ctx, healthy))
		}
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("opens after consecutive failures", func(t *testing.T) {
		cb := New("test", Config{FailureThreshold: 3})

		for i := 0; i < 3; i++ {
			assert.ErrorIs(t, cb.Execute(ctx, failing), errUpstream)
		}
		assert.Equal(t, StateOpen, cb.State())

		err := cb.Execute(ctx, healthy)
		assert.ErrorIs(t, err, ErrCircuitOpen)
	})

	t.Run("intermittent success resets the count", func(t *testing.T) {
		cb := New("test", Config{FailureThreshold: 3})

		cb.Execute(ctx, failing)
		cb.Execute(ctx, failing)
		cb.Execute(ctx, healthy)
		cb.Execute(ctx, failing)
		cb.Execute(ctx, failing)

		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("half-open after cooldown then closes on successes", func(t *testing.T) {
		cb := New("test", Config{
			FailureThreshold: 1,
			SuccessThreshold: 2,
			Cooldown:         10 * time.Millisecond,
		})

		cb.Execute(ctx, failing)
		require.Equal(t, StateOpen, cb.State())

		time.Sleep(15 * time.Millisecond)
		require.Equal(t, StateHalfOpen, cb.State())

		require.NoError(t, cb.Execute(ctx, healthy))
		require.NoError(t, cb.Execute(ctx, healthy))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("half-open failure reopens immediately", func(t *testing.T) {
		cb := New("test", Config{
			FailureThreshold: 1,
			Cooldown:         10 * time.Millisecond,
		})

		cb.Execute(ctx, failing)
		time.Sleep(15 * time.Millisecond)
		require.Equal(t, StateHalfOpen, cb.State())

		cb.Execute(ctx, failing)
		assert.Equal(t, StateOpen, cb.State())
	})
}
