package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"duty-roster-backend/internal/roster"
)

// MemoryStore is a process-local roster document store with the same merge
// and fan-out semantics as Store. Documents are kept as JSON objects so every
// delivered snapshot goes through the wire codec.
type MemoryStore struct {
	mu       sync.Mutex
	docs     map[string]map[string]json.RawMessage
	notifier *LocalNotifier
}

// Ensure MemoryStore implements roster.DocumentStore
var _ roster.DocumentStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory document store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:     make(map[string]map[string]json.RawMessage),
		notifier: NewLocalNotifier(),
	}
}

// Write merges the top-level fields of patch into the document and fans out the result
func (m *MemoryStore) Write(ctx context.Context, key string, patch roster.Patch) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to encode roster patch: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to encode roster patch: %w", err)
	}

	m.mu.Lock()
	doc, ok := m.docs[key]
	if !ok {
		doc = make(map[string]json.RawMessage)
		m.docs[key] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
	payload, err := json.Marshal(doc)
	m.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to encode roster document: %w", err)
	}

	return m.notifier.Publish(ctx, key, payload)
}

// Subscribe delivers the current document, if any, then every later write
func (m *MemoryStore) Subscribe(ctx context.Context, key string, onSnapshot func(roster.Snapshot), onError func(error)) (func(), error) {
	handle := func(payload []byte) {
		snap, _ := roster.DecodeSnapshot(payload)
		onSnapshot(snap)
	}
	unsubscribe, err := m.notifier.Subscribe(ctx, key, handle, onError)
	if err != nil {
		return nil, err
	}

	if payload, ok := m.Raw(key); ok {
		handle(payload)
	}
	return unsubscribe, nil
}

// Raw returns the stored document as JSON
func (m *MemoryStore) Raw(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[key]
	if !ok {
		return nil, false
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Put replaces the stored document with raw JSON without notifying subscribers
func (m *MemoryStore) Put(key string, payload []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("roster document must be a JSON object: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = doc
	return nil
}

// Deliver publishes raw JSON to the subscribers of key as if it had been written elsewhere
func (m *MemoryStore) Deliver(ctx context.Context, key string, payload []byte) error {
	return m.notifier.Publish(ctx, key, payload)
}
