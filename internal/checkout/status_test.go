package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusStarted.CanTransitionTo(StatusValidated))
	assert.True(t, StatusValidated.CanTransitionTo(StatusPriced))
	assert.True(t, StatusPriced.CanTransitionTo(StatusCommitted))
	assert.True(t, StatusCommitted.CanTransitionTo(StatusCompleted))

	// No skipping phases
	assert.False(t, StatusStarted.CanTransitionTo(StatusPriced))
	assert.False(t, StatusStarted.CanTransitionTo(StatusCommitted))
	assert.False(t, StatusValidated.CanTransitionTo(StatusCompleted))

	// No going back
	assert.False(t, StatusPriced.CanTransitionTo(StatusValidated))

	// Terminal states go nowhere
	assert.False(t, StatusCompleted.CanTransitionTo(StatusFailed))
	assert.False(t, StatusFailed.CanTransitionTo(StatusValidated))
}

func TestStatus_FailureReachableFromAnyActivePhase(t *testing.T) {
	for _, s := range []Status{StatusStarted, StatusValidated, StatusPriced, StatusCommitted} {
		assert.True(t, s.CanTransitionTo(StatusFailed), "from %s", s)
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.False(t, StatusStarted.IsTerminal())
	assert.False(t, StatusPriced.IsTerminal())
}
