package circuit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker("test", 3, time.Minute)
	cb.SetStateChangeHandler(func(string, State, State) {})

	boom := errors.New("boom")
	for i := 0; i < 3; i++ {
		err := cb.Do(func() error { return boom })
		assert.ErrorIs(t, err, boom)
	}

	err := cb.Do(func() error { return nil })
	assert.ErrorIs(t, err, ErrOpen)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, 10*time.Millisecond)
	cb.SetStateChangeHandler(func(string, State, State) {})

	_ = cb.Do(func() error { return errors.New("boom") })
	assert.False(t, cb.Allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, cb.Allow(), "timeout elapsed, breaker probes half-open")
	cb.RecordSuccess()
	assert.True(t, cb.Allow())
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker("test", 2, time.Minute)
	cb.SetStateChangeHandler(func(string, State, State) {})

	_ = cb.Do(func() error { return errors.New("boom") })
	assert.NoError(t, cb.Do(func() error { return nil }))
	_ = cb.Do(func() error { return errors.New("boom") })
	assert.True(t, cb.Allow(), "single failures interleaved with successes never open the breaker")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "OPEN", StateOpen.String())
	assert.Equal(t, "HALF-OPEN", StateHalfOpen.String())
}
