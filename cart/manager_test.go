package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerSessionsAreIsolated(t *testing.T) {
	m := NewManager(nil, time.Hour)
	ctx := context.Background()

	m.Add(ctx, "session-a", product(1, "100"), 2)
	m.Add(ctx, "session-b", product(1, "100"), 5)

	a := m.Snapshot(ctx, "session-a")
	b := m.Snapshot(ctx, "session-b")
	assert.Equal(t, 2, a.ItemCount)
	assert.Equal(t, 5, b.ItemCount)
}

func TestManagerReturnsSameCartForSession(t *testing.T) {
	m := NewManager(nil, time.Hour)
	ctx := context.Background()

	m.Add(ctx, "s", product(1, "10"), 1)
	m.Add(ctx, "s", product(1, "10"), 1)

	snap := m.Snapshot(ctx, "s")
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
}

func TestManagerUpdateAndRemove(t *testing.T) {
	m := NewManager(nil, time.Hour)
	ctx := context.Background()

	m.Add(ctx, "s", product(1, "10"), 1)
	m.Add(ctx, "s", product(2, "20"), 1)

	snap := m.UpdateQuantity(ctx, "s", 1, 3)
	assert.Equal(t, 4, snap.ItemCount)

	snap = m.Remove(ctx, "s", 1)
	require.Len(t, snap.Items, 1)
	assert.True(t, snap.Total.Equal(decimal.RequireFromString("20")))
}

func TestManagerClear(t *testing.T) {
	m := NewManager(nil, time.Hour)
	ctx := context.Background()

	m.Add(ctx, "s", product(1, "10"), 4)
	snap := m.Clear(ctx, "s")

	assert.Empty(t, snap.Items)
	assert.Equal(t, 0, snap.ItemCount)
	assert.True(t, snap.Total.IsZero())
}

func TestManagerEmptySessionSnapshot(t *testing.T) {
	m := NewManager(nil, time.Hour)

	snap := m.Snapshot(context.Background(), "never-seen")
	assert.Empty(t, snap.Items)
	assert.True(t, snap.Total.IsZero())
}
