package models

// MenuItem is a dish on the menu. Prices are in paise.
// HalfPrice is 0 when the item has no half portion.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	HalfPrice   int64  `json:"halfPrice,omitempty"`
	Image       string `json:"image"`
	CookingTime string `json:"cookingTime"`
	SpicyLevel  int    `json:"spicyLevel"` // 0 (none) .. 3 (hot)
	Veg         bool   `json:"isVeg"`
	Available   bool   `json:"available"`
}

// HasHalf reports whether the item offers a half portion.
func (m MenuItem) HasHalf() bool {
	return m.HalfPrice > 0
}

// MenuCategory groups items; item order is display order.
type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// ItemUpdate is a partial update of a MenuItem. Nil fields are left untouched.
// Setting HalfPrice to 0 removes the half portion.
type ItemUpdate struct {
	Name        *string
	Description *string
	Price       *int64
	HalfPrice   *int64
	Image       *string
	CookingTime *string
	SpicyLevel  *int
	Veg         *bool
	Available   *bool
}

// Portion selects a half-size or full-size order of an item.
type Portion string

const (
	PortionFull Portion = "full"
	PortionHalf Portion = "half"
)

// ParsePortion returns the portion for s, defaulting to full for anything
// that is not exactly "half".
func ParsePortion(s string) Portion {
	if s == string(PortionHalf) {
		return PortionHalf
	}
	return PortionFull
}
