package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int, price string) Product {
	return Product{
		ID:          id,
		Name:        "Branded Mug",
		Price:       decimal.RequireFromString(price),
		Image:       "https://cdn.example.com/mug.webp",
		Description: "350ml ceramic mug",
	}
}

func TestAddNewItem(t *testing.T) {
	c := New()
	c.Add(product(1, "100"), 1)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.Equal(t, 1, snap.ItemCount)
	assert.True(t, snap.Total.Equal(decimal.RequireFromString("100")))
}

func TestAddSameProductIncrementsQuantity(t *testing.T) {
	c := New()
	c.Add(product(1, "100"), 1)
	c.Add(product(1, "100"), 1)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1, "re-adding a product must not create a duplicate line")
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, 2, snap.ItemCount)
	assert.True(t, snap.Total.Equal(decimal.RequireFromString("200")))
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Add(product(1, "10"), 1)
	c.Add(product(2, "20"), 1)
	c.Add(product(3, "30"), 1)
	c.Add(product(2, "20"), 5)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{snap.Items[0].ID, snap.Items[1].ID, snap.Items[2].ID})
	assert.Equal(t, 6, snap.Items[1].Quantity)
}

func TestAddNonPositiveQuantityDefaultsToOne(t *testing.T) {
	c := New()
	c.Add(product(1, "50"), 0)
	c.Add(product(2, "50"), -3)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.Equal(t, 1, snap.Items[1].Quantity)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	c := New()
	c.Add(product(1, "25.50"), 2)
	c.UpdateQuantity(1, 4)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 4, snap.Items[0].Quantity)
	assert.True(t, snap.Total.Equal(decimal.RequireFromString("102")))
	assert.Equal(t, 4, snap.ItemCount)
}

func TestUpdateQuantityToZeroRemovesItem(t *testing.T) {
	c := New()
	c.Add(product(5, "10"), 3)
	c.Add(product(6, "10"), 1)
	before := c.Snapshot().ItemCount

	c.UpdateQuantity(5, 0)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 6, snap.Items[0].ID)
	assert.Equal(t, before-3, snap.ItemCount)
}

func TestUpdateQuantityNegativeRemovesItem(t *testing.T) {
	c := New()
	c.Add(product(5, "10"), 3)
	c.UpdateQuantity(5, -1)

	assert.Empty(t, c.Snapshot().Items)
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	c := New()
	c.Add(product(1, "10"), 2)
	before := c.Snapshot()

	c.UpdateQuantity(99, 7)

	assert.Equal(t, before, c.Snapshot())
}

func TestRemoveItem(t *testing.T) {
	c := New()
	c.Add(product(1, "10"), 1)
	c.Add(product(2, "20"), 1)
	c.Remove(1)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].ID)
	assert.True(t, snap.Total.Equal(decimal.RequireFromString("20")))
}

func TestRemoveAbsentIDIsNoop(t *testing.T) {
	c := New()
	c.Add(product(1, "10"), 2)
	before := c.Snapshot()

	c.Remove(42)

	assert.Equal(t, before, c.Snapshot())
}

func TestClearIsIdempotent(t *testing.T) {
	c := New()
	c.Add(product(1, "10"), 2)
	c.Clear()
	c.Clear()

	snap := c.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Equal(t, 0, snap.ItemCount)
	assert.True(t, snap.Total.IsZero())
}

func TestTotalsAreDerivedFromItems(t *testing.T) {
	c := New()
	c.Add(product(1, "19.99"), 3)
	c.Add(product(2, "5.25"), 2)
	c.UpdateQuantity(1, 1)
	c.Remove(2)
	c.Add(product(3, "100"), 4)

	snap := c.Snapshot()
	wantTotal := decimal.Zero
	wantCount := 0
	for _, item := range snap.Items {
		wantTotal = wantTotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		wantCount += item.Quantity
	}
	assert.True(t, snap.Total.Equal(wantTotal))
	assert.Equal(t, wantCount, snap.ItemCount)
}

func TestSnapshotIsDetached(t *testing.T) {
	c := New()
	c.Add(product(1, "10"), 1)

	snap := c.Snapshot()
	c.Add(product(2, "20"), 1)

	assert.Len(t, snap.Items, 1, "earlier snapshot must not observe later mutations")
}
