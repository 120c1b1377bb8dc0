package docstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/logger"
	"duty-roster-backend/internal/repository"
	"duty-roster-backend/internal/roster"

	"gorm.io/gorm"
)

// Store is the shared roster document backed by Postgres, with snapshot
// fan-out through a Notifier. Every successful write publishes the full
// stored document, the writer's own subscription included.
type Store struct {
	repo     repository.RosterDocumentRepositoryInterface
	notifier Notifier
	log      *logger.Logger
}

// Ensure Store implements roster.DocumentStore
var _ roster.DocumentStore = (*Store)(nil)

// NewStore creates a document store
func NewStore(repo repository.RosterDocumentRepositoryInterface, notifier Notifier) *Store {
	return &Store{
		repo:     repo,
		notifier: notifier,
		log:      logger.New().WithField("component", "docstore"),
	}
}

// Write merges patch into the stored document and publishes the result
func (s *Store) Write(ctx context.Context, key string, patch roster.Patch) error {
	doc, columns, err := patchToModel(key, patch)
	if err != nil {
		return err
	}
	if err := s.repo.Upsert(doc, columns); err != nil {
		return fmt.Errorf("failed to write roster document: %w", err)
	}

	current, err := s.repo.GetByKey(key)
	if err != nil {
		return fmt.Errorf("failed to reload roster document: %w", err)
	}
	payload, err := modelPayload(current)
	if err != nil {
		return fmt.Errorf("failed to encode roster document: %w", err)
	}

	// the row is committed at this point, a lost notification only delays other editors
	if err := s.notifier.Publish(ctx, key, payload); err != nil {
		s.log.WithField("roster_key", key).Warnf("Failed to publish roster snapshot: %v", err)
	}
	return nil
}

// Subscribe delivers the stored document, if any, then every published snapshot
func (s *Store) Subscribe(ctx context.Context, key string, onSnapshot func(roster.Snapshot), onError func(error)) (func(), error) {
	log := s.log.WithField("roster_key", key)

	// published snapshots wait until the initial load has been delivered
	var deliver sync.Mutex
	deliver.Lock()

	handle := func(payload []byte) {
		deliver.Lock()
		defer deliver.Unlock()
		snap, bad := roster.DecodeSnapshot(payload)
		if len(bad) > 0 {
			log.Warnf("Substituted malformed snapshot fields: %v", bad)
		}
		onSnapshot(snap)
	}

	unsubscribe, err := s.notifier.Subscribe(ctx, key, handle, onError)
	if err != nil {
		deliver.Unlock()
		return nil, err
	}

	snap, err := s.Load(key)
	switch {
	case err == nil:
		onSnapshot(snap)
	case errors.Is(err, apperrors.ErrRosterDocumentNotFound):
		log.Info("Roster document does not exist yet")
	default:
		deliver.Unlock()
		unsubscribe()
		return nil, err
	}
	deliver.Unlock()
	return unsubscribe, nil
}

// Load reads the stored document as a snapshot. A missing document returns
// apperrors.ErrRosterDocumentNotFound.
func (s *Store) Load(key string) (roster.Snapshot, error) {
	doc, err := s.repo.GetByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return roster.Snapshot{}, apperrors.ErrRosterDocumentNotFound
		}
		return roster.Snapshot{}, fmt.Errorf("failed to load roster document: %w", err)
	}
	payload, err := modelPayload(doc)
	if err != nil {
		return roster.Snapshot{}, fmt.Errorf("failed to encode roster document: %w", err)
	}
	snap, bad := roster.DecodeSnapshot(payload)
	if len(bad) > 0 {
		s.log.WithField("roster_key", key).Warnf("Substituted malformed snapshot fields: %v", bad)
	}
	return snap, nil
}
