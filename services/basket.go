package services

import "aahar-telegram/models"

// Basket holds the items a customer has picked, one entry per
// (item id, portion) pair. Entries snapshot the item's fields at add time,
// so catalog price edits never reprice a basket already in progress.
type Basket struct {
	entries []models.BasketEntry
}

func NewBasket() *Basket {
	return &Basket{}
}

// Add puts qty of the item in the given portion into the basket. If an
// entry for the same (id, portion) already exists its quantity grows by
// qty; otherwise a new entry is appended with a snapshot of the item.
func (b *Basket) Add(item models.MenuItem, portion models.Portion, qty int) {
	for i := range b.entries {
		if b.entries[i].ItemID == item.ID && b.entries[i].Portion == portion {
			b.entries[i].Quantity += qty
			return
		}
	}
	b.entries = append(b.entries, models.BasketEntry{
		ItemID:    item.ID,
		Name:      item.Name,
		Price:     item.Price,
		HalfPrice: item.HalfPrice,
		Image:     item.Image,
		Portion:   portion,
		Quantity:  qty,
	})
}

// SetQuantity sets the matching entry's quantity to exactly qty.
// qty <= 0 removes the entry. No-op if there is no matching entry.
func (b *Basket) SetQuantity(itemID string, portion models.Portion, qty int) {
	if qty <= 0 {
		b.Remove(itemID, portion)
		return
	}
	for i := range b.entries {
		if b.entries[i].ItemID == itemID && b.entries[i].Portion == portion {
			b.entries[i].Quantity = qty
			return
		}
	}
}

// Remove deletes the matching entry. No-op if not present.
func (b *Basket) Remove(itemID string, portion models.Portion) {
	for i := range b.entries {
		if b.entries[i].ItemID == itemID && b.entries[i].Portion == portion {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// Clear empties the basket. Called after a successful checkout.
func (b *Basket) Clear() {
	b.entries = nil
}

// Entry returns the entry for (itemID, portion), if present.
func (b *Basket) Entry(itemID string, portion models.Portion) (models.BasketEntry, bool) {
	for _, e := range b.entries {
		if e.ItemID == itemID && e.Portion == portion {
			return e, true
		}
	}
	return models.BasketEntry{}, false
}

// Entries returns a copy of the basket lines in the order they were added.
func (b *Basket) Entries() []models.BasketEntry {
	out := make([]models.BasketEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *Basket) Len() int {
	return len(b.entries)
}

// TotalPrice sums EffectivePrice × quantity over all entries. Always
// recomputed from the current entries, never cached.
func (b *Basket) TotalPrice() int64 {
	var total int64
	for _, e := range b.entries {
		total += e.LineTotal()
	}
	return total
}
