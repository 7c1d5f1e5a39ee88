package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyPackAggregates(t *testing.T) {
	pack := &Pack{Name: "Empty"}

	assert.Equal(t, 0, pack.TotalQuantity())
	assert.Equal(t, 0, pack.PackedQuantity())
	assert.Equal(t, 0.0, pack.Progress())

	count, ok := pack.LastMinuteAdds()
	assert.Equal(t, 0, count)
	assert.False(t, ok)
}

func TestQuantityAggregates(t *testing.T) {
	pack := &Pack{
		Items: []PackItem{
			{Name: "Passport", Quantity: 1, Packed: true},
			{Name: "T-Shirts", Quantity: 5},
			{Name: "Socks", Quantity: 7, Packed: true},
		},
	}

	assert.Equal(t, 13, pack.TotalQuantity())
	assert.Equal(t, 8, pack.PackedQuantity())
	assert.InDelta(t, 8.0/13.0, pack.Progress(), 1e-9)
}

func TestProgressStaysInUnitRange(t *testing.T) {
	// Negative quantities are clamped during summation so a bad caller
	// cannot produce a ratio outside [0, 1].
	pack := &Pack{
		Items: []PackItem{
			{Name: "Broken", Quantity: -4},
			{Name: "Razor", Quantity: 1, Packed: true},
		},
	}

	assert.Equal(t, 1, pack.TotalQuantity())
	assert.Equal(t, 1, pack.PackedQuantity())
	assert.GreaterOrEqual(t, pack.Progress(), 0.0)
	assert.LessOrEqual(t, pack.Progress(), 1.0)
}

func TestLastMinuteAdds(t *testing.T) {
	pack := &Pack{
		Items: []PackItem{
			{Name: "Toothbrush", Quantity: 1, LastMinute: true},
			{Name: "Charger", Quantity: 1, LastMinute: true},
			{Name: "Socks", Quantity: 2},
		},
	}

	count, ok := pack.LastMinuteAdds()
	assert.Equal(t, 2, count)
	assert.True(t, ok)
}

func TestLastMinuteAddsSuppressedWhenAllPacked(t *testing.T) {
	pack := &Pack{
		Items: []PackItem{
			{Name: "Toothbrush", Quantity: 1, LastMinute: true, Packed: true},
		},
	}

	count, ok := pack.LastMinuteAdds()
	assert.Equal(t, 0, count)
	assert.False(t, ok)
}

func TestTagDisplayNameFallback(t *testing.T) {
	withTag := &Pack{TagName: "FITNESS"}
	assert.Equal(t, "FITNESS", withTag.TagDisplayName())

	withoutTag := &Pack{}
	assert.Equal(t, DefaultTagName, withoutTag.TagDisplayName())
}
