package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerAddAndAggregates(t *testing.T) {
	l := NewLedger()
	l.AddItem(Item{ProductID: "p1", Name: "Organic Cotton T-Shirt", Price: 29.99, CarbonFootprint: 1.2})
	l.AddItem(Item{ProductID: "p2", Name: "Bamboo Toothbrush", Price: 12.99, CarbonFootprint: 0.8})
	l.SetQuantity("p2", 2)

	assert.Equal(t, 2, l.LineCount())
	assert.InDelta(t, 55.97, l.Total(), 1e-9)
	assert.InDelta(t, 2.8, l.CarbonSaved(), 1e-9)
}

func TestLedgerMergeDuplicates(t *testing.T) {
	l := NewLedger()
	l.AddItem(Item{ProductID: "p1", Price: 10})
	l.AddItem(Item{ProductID: "p1", Price: 10})

	assert.Equal(t, 1, l.LineCount())
	assert.Equal(t, 2, l.Lines[0].Quantity)
	assert.InDelta(t, 20, l.Total(), 1e-9)
}

func TestLedgerDuplicateLinesWhenMergeDisabled(t *testing.T) {
	l := &Ledger{}
	l.AddItem(Item{ProductID: "p1", Price: 10})
	l.AddItem(Item{ProductID: "p1", Price: 10})

	assert.Equal(t, 2, l.LineCount())
	assert.InDelta(t, 20, l.Total(), 1e-9)
}

func TestLedgerSetQuantity(t *testing.T) {
	l := NewLedger()
	l.AddItem(Item{ProductID: "a", Price: 10})
	l.SetQuantity("a", 3)
	assert.InDelta(t, 30, l.Total(), 1e-9)

	// zero behaves as removal
	l.SetQuantity("a", 0)
	assert.Equal(t, 0, l.LineCount())
	assert.Zero(t, l.Total())

	// absent id is a no-op
	l.SetQuantity("ghost", 5)
	assert.Equal(t, 0, l.LineCount())
}

func TestLedgerRemoveAbsentIsNoOp(t *testing.T) {
	l := NewLedger()
	l.AddItem(Item{ProductID: "a", Price: 5, CarbonFootprint: 0.4})

	l.RemoveItem("missing")

	assert.Equal(t, 1, l.LineCount())
	assert.InDelta(t, 5, l.Total(), 1e-9)
	assert.InDelta(t, 0.4, l.CarbonSaved(), 1e-9)
}

func TestLedgerMissingNumericFieldsTreatedAsZero(t *testing.T) {
	l := NewLedger()
	l.AddItem(Item{ProductID: "free"})

	assert.Equal(t, 1, l.LineCount())
	assert.Zero(t, l.Total())
	assert.Zero(t, l.CarbonSaved())
}

func TestLedgerItemsReturnsCopy(t *testing.T) {
	l := NewLedger()
	l.AddItem(Item{ProductID: "a", Price: 5})

	items := l.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, l.Lines[0].Quantity)
}
