package service_test

import (
	"sync"
	"testing"

	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditGate(t *testing.T) {
	gate := service.NewEditGate("2613")

	assert.True(t, gate.Locked(), "a new gate starts locked")
	assert.ErrorIs(t, gate.Check(), apperrors.ErrRosterLocked)

	assert.ErrorIs(t, gate.Unlock("261"), apperrors.ErrInvalidPasscode)
	assert.ErrorIs(t, gate.Unlock("26130"), apperrors.ErrInvalidPasscode)
	assert.ErrorIs(t, gate.Unlock(""), apperrors.ErrInvalidPasscode)
	assert.True(t, gate.Locked())

	require.NoError(t, gate.Unlock("2613"))
	assert.False(t, gate.Locked())
	assert.NoError(t, gate.Check())

	// a failed attempt does not relock an open gate
	assert.Error(t, gate.Unlock("0000"))
	assert.False(t, gate.Locked())

	gate.Lock()
	gate.Lock()
	assert.True(t, gate.Locked())
}

func TestEditGate_Concurrent(t *testing.T) {
	gate := service.NewEditGate("2613")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = gate.Unlock("2613")
		}()
		go func() {
			defer wg.Done()
			_ = gate.Check()
		}()
	}
	wg.Wait()
	assert.False(t, gate.Locked())
}
