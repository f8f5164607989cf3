package models

// BasketEntry is one line of the basket: a snapshot of the item's display
// fields taken when it was added, plus the chosen portion and quantity.
// Later catalog edits do not touch existing entries; the customer pays the
// price they saw when they added the item.
type BasketEntry struct {
	ItemID    string  `json:"id"`
	Name      string  `json:"name"`
	Price     int64   `json:"price"`
	HalfPrice int64   `json:"halfPrice,omitempty"`
	Image     string  `json:"image"`
	Portion   Portion `json:"portion"`
	Quantity  int     `json:"quantity"`
}

// EffectivePrice is the unit price that applies to this entry: the half
// price for a half portion when the item has one, the full price otherwise.
func (e BasketEntry) EffectivePrice() int64 {
	if e.Portion == PortionHalf && e.HalfPrice > 0 {
		return e.HalfPrice
	}
	return e.Price
}

// LineTotal is EffectivePrice times quantity.
func (e BasketEntry) LineTotal() int64 {
	return e.EffectivePrice() * int64(e.Quantity)
}
