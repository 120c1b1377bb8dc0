package docstore

import (
	"context"
	"sync"
)

// Notifier fans out snapshot payloads to every subscriber of a roster key
type Notifier interface {
	Publish(ctx context.Context, key string, payload []byte) error
	Subscribe(ctx context.Context, key string, handler func([]byte), onError func(error)) (func(), error)
}

// LocalNotifier delivers payloads to subscribers in the same process.
// Delivery is synchronous, in subscription order.
type LocalNotifier struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]func([]byte)
	order  map[string][]uint64
}

// Ensure LocalNotifier implements Notifier
var _ Notifier = (*LocalNotifier)(nil)

// NewLocalNotifier creates an in-process notifier
func NewLocalNotifier() *LocalNotifier {
	return &LocalNotifier{
		subs:  make(map[string]map[uint64]func([]byte)),
		order: make(map[string][]uint64),
	}
}

// Publish hands payload to every current subscriber of key
func (n *LocalNotifier) Publish(_ context.Context, key string, payload []byte) error {
	n.mu.RLock()
	handlers := make([]func([]byte), 0, len(n.order[key]))
	for _, id := range n.order[key] {
		if h, ok := n.subs[key][id]; ok {
			handlers = append(handlers, h)
		}
	}
	n.mu.RUnlock()

	for _, h := range handlers {
		buf := make([]byte, len(payload))
		copy(buf, payload)
		h(buf)
	}
	return nil
}

// Subscribe registers handler for key; the returned function removes it
func (n *LocalNotifier) Subscribe(_ context.Context, key string, handler func([]byte), _ func(error)) (func(), error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	if n.subs[key] == nil {
		n.subs[key] = make(map[uint64]func([]byte))
	}
	n.subs[key][id] = handler
	n.order[key] = append(n.order[key], id)

	var once sync.Once
	return func() {
		once.Do(func() { n.remove(key, id) })
	}, nil
}

func (n *LocalNotifier) remove(key string, id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.subs[key], id)
	ids := n.order[key]
	for i, v := range ids {
		if v == id {
			n.order[key] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
}
