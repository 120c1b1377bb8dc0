package roster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"duty-roster-backend/internal/logger"
)

// DocumentStore is the external shared roster document.
// Subscribe delivers the current document, if one exists, to onSnapshot
// before it returns, then every later snapshot; delivery failures go to
// onError. Write applies a top-level merge.
type DocumentStore interface {
	Subscribe(ctx context.Context, key string, onSnapshot func(Snapshot), onError func(error)) (func(), error)
	Write(ctx context.Context, key string, patch Patch) error
}

// Status is the synchronisation state reported to editors
type Status string

const (
	StatusSynchronizing Status = "synchronizing"
	StatusLive          Status = "live"
	StatusSaving        Status = "saving"
	StatusError         Status = "error"
)

// DefaultSettleDelay is how long a successful write stays "saving" before reporting "live"
const DefaultSettleDelay = time.Second

// StatusReport describes the coordinator state at one instant
type StatusReport struct {
	Status     Status    `json:"status"`
	Synced     bool      `json:"synced"`
	Error      string    `json:"error,omitempty"`
	LastSynced time.Time `json:"last_synced,omitempty"`
	LastSaved  time.Time `json:"last_saved,omitempty"`
}

// State is the local mutable roster state owned by a Coordinator
type State struct {
	Staff       *Directory
	Assignments *AssignmentStore
	Annotations *AnnotationStore
}

// Coordinator reconciles local roster state with the shared document.
//
// Inbound snapshots replace all three collections wholesale. Local mutations
// are pushed as a merge write carrying every collection, so the last write to
// reach the store wins per collection. All access to State is serialised
// through the coordinator.
type Coordinator struct {
	mu          sync.Mutex
	key         string
	store       DocumentStore
	state       State
	status      Status
	lastErr     error
	subFailed   bool
	synced      bool
	lastSynced  time.Time
	lastSaved   time.Time
	pushSeq     uint64
	settleDelay time.Duration
	now         func() time.Time
	unsubscribe func()
	log         *logger.Logger
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithSettleDelay sets the delay between a write acknowledgement and reporting "live"
func WithSettleDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		c.settleDelay = d
	}
}

// WithClock overrides the time source used for lastUpdated stamps
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// NewCoordinator creates a coordinator for the document identified by key
func NewCoordinator(store DocumentStore, key string, opts ...Option) *Coordinator {
	c := &Coordinator{
		key:   key,
		store: store,
		state: State{
			Staff:       NewDirectory(nil),
			Assignments: NewAssignmentStore(),
			Annotations: NewAnnotationStore(),
		},
		status:      StatusSynchronizing,
		settleDelay: DefaultSettleDelay,
		now:         time.Now,
		log:         logger.New().WithField("component", "sync").WithField("roster_key", key),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start registers the coordinator's listener with the document store.
// Local edits are refused until Start has succeeded, so an editor that never
// saw the stored document cannot overwrite it.
func (c *Coordinator) Start(ctx context.Context) error {
	unsubscribe, err := c.store.Subscribe(ctx, c.key, c.Apply, c.subscriptionFailed)
	if err != nil {
		c.subscriptionFailed(err)
		return fmt.Errorf("failed to subscribe to roster document: %w", err)
	}
	c.mu.Lock()
	c.unsubscribe = unsubscribe
	// the stored document, if any, has been applied by now
	c.synced = true
	if c.status == StatusError && c.subFailed {
		c.status = StatusSynchronizing
		if !c.lastSynced.IsZero() {
			c.status = StatusLive
		}
		c.lastErr = nil
		c.subFailed = false
	}
	c.mu.Unlock()
	c.log.Info("Subscribed to roster document")
	return nil
}

// StartWithRetry calls Start every interval until it succeeds or ctx is done
func (c *Coordinator) StartWithRetry(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := c.Start(ctx)
		if err == nil {
			return nil
		}
		c.log.Warnf("Retrying roster subscription in %s: %v", interval, err)

		select {
		case <-ctx.Done():
			return errors.Join(ctx.Err(), err)
		case <-ticker.C:
		}
	}
}

// Synced reports whether the stored document has been loaded
func (c *Coordinator) Synced() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.synced
}

// Stop detaches the listener
func (c *Coordinator) Stop() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

// Apply replaces the staff list, assignments and annotations with snap
func (c *Coordinator) Apply(snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Staff.Replace(snap.Staff)
	c.state.Assignments.Replace(snap.Assignments)
	c.state.Annotations.Replace(snap.Annotations)
	c.lastSynced = c.now()
	c.synced = true
	switch {
	case c.status == StatusSynchronizing:
		c.status = StatusLive
	case c.status == StatusError && c.subFailed:
		// snapshots are flowing again
		c.status = StatusLive
		c.lastErr = nil
		c.subFailed = false
	}
	c.log.Debugf("Applied snapshot with %d staff, %d assigned days, %d notes",
		len(snap.Staff), len(snap.Assignments), len(snap.Annotations))
}

// View runs fn with read access to the local state
func (c *Coordinator) View(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.state)
}

// Mutate runs fn against the local state and pushes the result if fn reports a
// change. Write failures are not returned, they move the status to "error".
// Before the stored document has been loaded fn is not run and Mutate returns 0.
func (c *Coordinator) Mutate(ctx context.Context, fn func(State) Field) Field {
	c.mu.Lock()
	if !c.synced {
		c.mu.Unlock()
		c.log.Warn("Ignored local edit before the roster document was loaded")
		return 0
	}
	changed := fn(c.state)
	if changed == 0 {
		c.mu.Unlock()
		return 0
	}
	patch, seq := c.beginPushLocked()
	c.mu.Unlock()

	c.write(ctx, patch, seq)
	return changed
}

// Push writes the current local state without mutating it. It does nothing
// before the stored document has been loaded.
func (c *Coordinator) Push(ctx context.Context) {
	c.mu.Lock()
	if !c.synced {
		c.mu.Unlock()
		return
	}
	patch, seq := c.beginPushLocked()
	c.mu.Unlock()

	c.write(ctx, patch, seq)
}

// Status returns the current synchronisation status
func (c *Coordinator) Status() StatusReport {
	c.mu.Lock()
	defer c.mu.Unlock()

	report := StatusReport{
		Status:     c.status,
		Synced:     c.synced,
		LastSynced: c.lastSynced,
		LastSaved:  c.lastSaved,
	}
	if c.status == StatusError && c.lastErr != nil {
		report.Error = c.lastErr.Error()
	}
	return report
}

// beginPushLocked snapshots the local state into a patch and marks a write in flight
func (c *Coordinator) beginPushLocked() (Patch, uint64) {
	c.pushSeq++
	c.status = StatusSaving
	return Patch{
		Fields:      AllFields,
		Staff:       c.state.Staff.List(),
		Assignments: c.state.Assignments.Snapshot(),
		Annotations: c.state.Annotations.Snapshot(),
		StartDay:    AnchorDay,
		LastUpdated: c.now(),
	}, c.pushSeq
}

func (c *Coordinator) write(ctx context.Context, patch Patch, seq uint64) {
	// an issued write runs to completion even if the caller goes away
	err := c.store.Write(context.WithoutCancel(ctx), c.key, patch)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.log.Errorf("Failed to write roster document: %v", err)
		if seq == c.pushSeq {
			c.status = StatusError
			c.lastErr = err
			c.subFailed = false
		}
		return
	}

	c.lastSaved = c.now()
	if c.settleDelay <= 0 {
		c.settleLocked(seq)
		return
	}
	time.AfterFunc(c.settleDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.settleLocked(seq)
	})
}

// settleLocked reports "live" unless a newer write has started since seq
func (c *Coordinator) settleLocked(seq uint64) {
	if seq == c.pushSeq && c.status == StatusSaving {
		c.status = StatusLive
		c.lastErr = nil
	}
}

func (c *Coordinator) subscriptionFailed(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.log.Errorf("Roster subscription failed: %v", err)
	c.status = StatusError
	c.lastErr = err
	c.subFailed = true
}
