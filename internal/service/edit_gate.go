package service

import (
	"crypto/subtle"
	"sync"

	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/logger"
)

// EditGate is the process-wide editing lock. It starts locked; every mutating
// roster operation checks it before touching the engine.
type EditGate struct {
	mu       sync.RWMutex
	passcode []byte
	locked   bool
	log      *logger.Logger
}

// NewEditGate creates a locked gate opened by passcode
func NewEditGate(passcode string) *EditGate {
	return &EditGate{
		passcode: []byte(passcode),
		locked:   true,
		log:      logger.New().WithField("component", "edit_gate"),
	}
}

// Locked reports whether mutations are currently rejected
func (g *EditGate) Locked() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.locked
}

// Unlock opens the gate if passcode matches
func (g *EditGate) Unlock(passcode string) error {
	if subtle.ConstantTimeCompare([]byte(passcode), g.passcode) != 1 {
		g.log.Warn("Rejected unlock attempt with invalid passcode")
		return apperrors.ErrInvalidPasscode
	}
	g.mu.Lock()
	g.locked = false
	g.mu.Unlock()
	g.log.Info("Roster unlocked for editing")
	return nil
}

// Lock closes the gate
func (g *EditGate) Lock() {
	g.mu.Lock()
	g.locked = true
	g.mu.Unlock()
}

// Check returns ErrRosterLocked while the gate is closed
func (g *EditGate) Check() error {
	if g.Locked() {
		return apperrors.ErrRosterLocked
	}
	return nil
}
