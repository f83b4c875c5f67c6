package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func watch(id string, price float64, discount int) Product {
	return Product{ID: id, Name: "Watch " + id, Price: price, Discount: discount}
}

func TestCartAddIncrementsExistingLine(t *testing.T) {
	var c Cart
	p := watch("1", 799, 0)
	c.Add(p)
	c.Add(p)

	assert.Len(t, c.Items, 1, "same product must not duplicate the line")
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestCartAddKeepsInsertionOrder(t *testing.T) {
	var c Cart
	c.Add(watch("1", 799, 0))
	c.Add(watch("2", 349, 0))
	c.Add(watch("1", 799, 0))

	assert.Equal(t, "1", c.Items[0].ID)
	assert.Equal(t, "2", c.Items[1].ID)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
}

func TestCartUpdateQuantityFloorRemovesItem(t *testing.T) {
	var c Cart
	c.Add(watch("1", 100, 0))

	c.UpdateQuantity("1", -1)

	assert.Empty(t, c.Items, "reaching zero must remove the item, never a negative quantity")
}

func TestCartUpdateQuantityLargeNegativeDelta(t *testing.T) {
	var c Cart
	c.Add(watch("1", 100, 0))
	c.UpdateQuantity("1", 4)
	assert.Equal(t, 5, c.Items[0].Quantity)

	c.UpdateQuantity("1", -10)
	assert.Empty(t, c.Items)
}

func TestCartUpdateQuantityUnknownIDIgnored(t *testing.T) {
	var c Cart
	c.Add(watch("1", 100, 0))

	c.UpdateQuantity("nope", 3)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestCartRemove(t *testing.T) {
	var c Cart
	c.Add(watch("1", 100, 0))
	c.Add(watch("2", 50, 0))
	c.UpdateQuantity("2", 2)

	c.Remove("2")

	assert.Len(t, c.Items, 1)
	assert.Equal(t, "1", c.Items[0].ID)

	c.Remove("2") // idempotent
	assert.Len(t, c.Items, 1)
}

func TestCartTotalAppliesDiscounts(t *testing.T) {
	var c Cart
	c.Add(watch("1", 100, 10)) // 90
	c.Add(watch("1", 100, 10)) // x2 -> 180
	c.Add(watch("2", 50, 0))   // 50

	assert.InDelta(t, 230.0, c.Total(), 1e-9)

	// Total is derived, recomputed after every mutation.
	c.UpdateQuantity("2", 1)
	assert.InDelta(t, 280.0, c.Total(), 1e-9)
}

func TestCartClearAndCount(t *testing.T) {
	var c Cart
	c.Add(watch("1", 100, 0))
	c.Add(watch("2", 50, 0))
	c.UpdateQuantity("1", 2)
	assert.Equal(t, 4, c.Count())

	c.Clear()
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total())
	assert.Zero(t, c.Count())
}

func TestEffectivePrice(t *testing.T) {
	assert.InDelta(t, 799.0, watch("1", 799, 0).EffectivePrice(), 1e-9)
	assert.InDelta(t, 719.1, watch("1", 799, 10).EffectivePrice(), 1e-9)
	assert.Zero(t, watch("1", 799, 100).EffectivePrice())
}
