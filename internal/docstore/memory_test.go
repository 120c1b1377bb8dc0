package docstore_test

import (
	"context"
	"testing"
	"time"

	"duty-roster-backend/internal/docstore"
	"duty-roster-backend/internal/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)

func TestMemoryStore_TopLevelMerge(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	require.NoError(t, store.Write(ctx, "k", roster.Patch{
		Fields:      roster.AllFields,
		Staff:       []roster.StaffMember{{ID: "a", Name: "A", Category: roster.CategoryFaculty, Color: "#fff"}},
		Assignments: map[roster.DateKey][]roster.StaffID{"2025-03-09": {"a"}, "2025-03-10": {"a"}},
		Annotations: map[roster.DateKey]string{"2025-03-09": "note"},
		StartDay:    roster.AnchorDay,
		LastUpdated: stamp,
	}))

	// assignments replace wholesale, staff and annotations are untouched
	require.NoError(t, store.Write(ctx, "k", roster.Patch{
		Fields:      roster.FieldAssignments,
		Assignments: map[roster.DateKey][]roster.StaffID{"2025-03-11": {"a"}},
		StartDay:    roster.AnchorDay,
		LastUpdated: stamp.Add(time.Minute),
	}))

	raw, ok := store.Raw("k")
	require.True(t, ok)
	snap, bad := roster.DecodeSnapshot(raw)
	assert.Empty(t, bad)
	assert.Len(t, snap.Staff, 1)
	assert.Equal(t, map[roster.DateKey][]roster.StaffID{"2025-03-11": {"a"}}, snap.Assignments)
	assert.Equal(t, "note", snap.Annotations["2025-03-09"])
	assert.Equal(t, "2025-03-10T08:01:00Z", snap.LastUpdated)
}

func TestMemoryStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	var received []roster.Snapshot
	unsubscribe, err := store.Subscribe(ctx, "k", func(s roster.Snapshot) {
		received = append(received, s)
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, received, "nothing is delivered before the document exists")

	require.NoError(t, store.Write(ctx, "k", roster.Patch{
		Fields:      roster.FieldAnnotations,
		Annotations: map[roster.DateKey]string{"2025-03-09": "x"},
		StartDay:    roster.AnchorDay,
		LastUpdated: stamp,
	}))
	require.Len(t, received, 1)
	assert.Equal(t, "x", received[0].Annotations["2025-03-09"])
	assert.Empty(t, received[0].Staff)

	// other keys are isolated
	require.NoError(t, store.Write(ctx, "other", roster.Patch{Fields: roster.AllFields, LastUpdated: stamp}))
	assert.Len(t, received, 1)

	unsubscribe()
	require.NoError(t, store.Write(ctx, "k", roster.Patch{Fields: roster.AllFields, LastUpdated: stamp}))
	assert.Len(t, received, 1)

	// a late subscriber gets the current document immediately
	var late []roster.Snapshot
	_, err = store.Subscribe(ctx, "k", func(s roster.Snapshot) { late = append(late, s) }, nil)
	require.NoError(t, err)
	require.Len(t, late, 1)
	assert.Empty(t, late[0].Annotations)
}

func TestMemoryStore_Put(t *testing.T) {
	store := docstore.NewMemoryStore()
	assert.Error(t, store.Put("k", []byte(`[]`)))
	require.NoError(t, store.Put("k", []byte(`{"notes": {"2025-03-09": "legacy"}}`)))

	raw, ok := store.Raw("k")
	require.True(t, ok)
	snap, _ := roster.DecodeSnapshot(raw)
	assert.Equal(t, "legacy", snap.Annotations["2025-03-09"])
}

func TestLocalNotifier(t *testing.T) {
	ctx := context.Background()
	n := docstore.NewLocalNotifier()

	var order []string
	unsubA, err := n.Subscribe(ctx, "k", func(p []byte) { order = append(order, "a:"+string(p)) }, nil)
	require.NoError(t, err)
	_, err = n.Subscribe(ctx, "k", func(p []byte) { order = append(order, "b:"+string(p)) }, nil)
	require.NoError(t, err)

	require.NoError(t, n.Publish(ctx, "k", []byte("1")))
	unsubA()
	unsubA()
	require.NoError(t, n.Publish(ctx, "k", []byte("2")))

	assert.Equal(t, []string{"a:1", "b:1", "b:2"}, order)
}
