package services

import (
	"testing"

	"aahar-telegram/models"
)

var chickenBiryani = models.MenuItem{
	ID:        "1",
	Name:      "Chicken Biryani",
	Price:     22000,
	HalfPrice: 12000,
	Available: true,
}

var muttonBiryani = models.MenuItem{
	ID:        "3",
	Name:      "Mutton Biryani",
	Price:     28000,
	Available: true,
}

func TestBasketAddMergesSamePortion(t *testing.T) {
	b := NewBasket()
	b.Add(chickenBiryani, models.PortionFull, 1)
	b.Add(chickenBiryani, models.PortionFull, 2)
	b.Add(chickenBiryani, models.PortionFull, 1)

	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
	e, ok := b.Entry("1", models.PortionFull)
	if !ok {
		t.Fatal("entry (1, full) not found")
	}
	if e.Quantity != 4 {
		t.Errorf("quantity = %d, want 4", e.Quantity)
	}
}

func TestBasketPortionsAreSeparateEntries(t *testing.T) {
	b := NewBasket()
	b.Add(chickenBiryani, models.PortionFull, 1)
	b.Add(chickenBiryani, models.PortionHalf, 2)

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	// full 220 + 2 × half 120 = 460 rupees
	if got := b.TotalPrice(); got != 46000 {
		t.Errorf("TotalPrice() = %d, want 46000", got)
	}
}

func TestBasketHalfPortionFallsBackToFullPrice(t *testing.T) {
	b := NewBasket()
	// Mutton Biryani has no half price; a half portion charges the full price.
	b.Add(muttonBiryani, models.PortionHalf, 1)
	if got := b.TotalPrice(); got != 28000 {
		t.Errorf("TotalPrice() = %d, want 28000", got)
	}
}

func TestBasketSetQuantity(t *testing.T) {
	b := NewBasket()
	b.Add(chickenBiryani, models.PortionFull, 1)

	b.SetQuantity("1", models.PortionFull, 5)
	e, _ := b.Entry("1", models.PortionFull)
	if e.Quantity != 5 {
		t.Errorf("quantity after SetQuantity(5) = %d, want 5 (set, not incremented)", e.Quantity)
	}

	// No matching entry: no-op, nothing appears.
	b.SetQuantity("999", models.PortionFull, 3)
	if b.Len() != 1 {
		t.Errorf("Len() after SetQuantity on missing entry = %d, want 1", b.Len())
	}
}

func TestBasketSetQuantityZeroEqualsRemove(t *testing.T) {
	viaSet := NewBasket()
	viaSet.Add(chickenBiryani, models.PortionFull, 2)
	viaSet.Add(chickenBiryani, models.PortionHalf, 1)
	viaSet.SetQuantity("1", models.PortionFull, 0)

	viaRemove := NewBasket()
	viaRemove.Add(chickenBiryani, models.PortionFull, 2)
	viaRemove.Add(chickenBiryani, models.PortionHalf, 1)
	viaRemove.Remove("1", models.PortionFull)

	a, b := viaSet.Entries(), viaRemove.Entries()
	if len(a) != len(b) {
		t.Fatalf("entry counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("entry %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	if viaSet.TotalPrice() != viaRemove.TotalPrice() {
		t.Errorf("totals differ: %d vs %d", viaSet.TotalPrice(), viaRemove.TotalPrice())
	}
}

func TestBasketNegativeQuantityRemoves(t *testing.T) {
	b := NewBasket()
	b.Add(chickenBiryani, models.PortionFull, 2)
	b.SetQuantity("1", models.PortionFull, -1)
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (no zero-quantity entries retained)", b.Len())
	}
}

func TestBasketRemoveMissingIsNoop(t *testing.T) {
	b := NewBasket()
	b.Add(chickenBiryani, models.PortionFull, 1)
	b.Remove("999", models.PortionFull)
	b.Remove("1", models.PortionHalf)
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestBasketTotalNeverStale(t *testing.T) {
	b := NewBasket()
	b.Add(chickenBiryani, models.PortionFull, 1)
	b.Add(chickenBiryani, models.PortionHalf, 2)
	b.Add(muttonBiryani, models.PortionFull, 3)
	b.SetQuantity("1", models.PortionHalf, 1)
	b.Remove("3", models.PortionFull)
	b.Add(muttonBiryani, models.PortionFull, 1)

	var want int64
	for _, e := range b.Entries() {
		want += e.EffectivePrice() * int64(e.Quantity)
	}
	if got := b.TotalPrice(); got != want {
		t.Errorf("TotalPrice() = %d, recomputed sum = %d", got, want)
	}
}

func TestBasketClear(t *testing.T) {
	b := NewBasket()
	b.Add(chickenBiryani, models.PortionFull, 2)
	b.Add(muttonBiryani, models.PortionFull, 1)
	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", b.Len())
	}
	if got := b.TotalPrice(); got != 0 {
		t.Errorf("TotalPrice() after Clear = %d, want 0", got)
	}
}

func TestBasketSnapshotIgnoresLaterCatalogEdits(t *testing.T) {
	c := NewCatalog(DefaultCatalog())
	item, ok := c.Item("1", "1")
	if !ok {
		t.Fatal("seed item (1, 1) not found")
	}

	b := NewBasket()
	b.Add(item, models.PortionFull, 1)

	newPrice := int64(99900)
	c.UpdateItem("1", "1", models.ItemUpdate{Price: &newPrice})

	if got := b.TotalPrice(); got != item.Price {
		t.Errorf("TotalPrice() = %d, want %d (price at add time)", got, item.Price)
	}
}
