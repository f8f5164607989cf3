package services

import "aahar-telegram/models"

// Catalog owns the menu: an ordered list of categories, each with an ordered
// list of items. It is the only owner of MenuItem records; everything handed
// out is a copy. Mutations that name a missing category or item are silent
// no-ops, matching how the admin screens treat a stale id.
type Catalog struct {
	categories []models.MenuCategory
}

func NewCatalog(categories []models.MenuCategory) *Catalog {
	return &Catalog{categories: categories}
}

// Categories returns a copy of the whole menu in display order.
func (c *Catalog) Categories() []models.MenuCategory {
	out := make([]models.MenuCategory, len(c.categories))
	for i, cat := range c.categories {
		items := make([]models.MenuItem, len(cat.Items))
		copy(items, cat.Items)
		cat.Items = items
		out[i] = cat
	}
	return out
}

// Category returns the category with the given id.
func (c *Catalog) Category(categoryID string) (models.MenuCategory, bool) {
	for _, cat := range c.categories {
		if cat.ID == categoryID {
			items := make([]models.MenuItem, len(cat.Items))
			copy(items, cat.Items)
			cat.Items = items
			return cat, true
		}
	}
	return models.MenuCategory{}, false
}

// Item returns the item with the given id within the given category.
func (c *Catalog) Item(categoryID, itemID string) (models.MenuItem, bool) {
	_, itm := c.find(categoryID, itemID)
	if itm == nil {
		return models.MenuItem{}, false
	}
	return *itm, true
}

// FindItem scans all categories for the item id and returns the owning
// category id alongside the item. Item ids are unique across the catalog.
func (c *Catalog) FindItem(itemID string) (categoryID string, item models.MenuItem, ok bool) {
	for _, cat := range c.categories {
		for _, itm := range cat.Items {
			if itm.ID == itemID {
				return cat.ID, itm, true
			}
		}
	}
	return "", models.MenuItem{}, false
}

// UpdateItem merges the non-nil fields of upd into the matching item.
// No-op if the category or item does not exist.
func (c *Catalog) UpdateItem(categoryID, itemID string, upd models.ItemUpdate) {
	_, itm := c.find(categoryID, itemID)
	if itm == nil {
		return
	}
	if upd.Name != nil {
		itm.Name = *upd.Name
	}
	if upd.Description != nil {
		itm.Description = *upd.Description
	}
	if upd.Price != nil {
		itm.Price = *upd.Price
	}
	if upd.HalfPrice != nil {
		itm.HalfPrice = *upd.HalfPrice
	}
	if upd.Image != nil {
		itm.Image = *upd.Image
	}
	if upd.CookingTime != nil {
		itm.CookingTime = *upd.CookingTime
	}
	if upd.SpicyLevel != nil {
		itm.SpicyLevel = *upd.SpicyLevel
	}
	if upd.Veg != nil {
		itm.Veg = *upd.Veg
	}
	if upd.Available != nil {
		itm.Available = *upd.Available
	}
}

// AddItem appends the item to the category. The caller supplies the id;
// the catalog does not generate or deduplicate ids. No-op if the category
// does not exist.
func (c *Catalog) AddItem(categoryID string, item models.MenuItem) {
	for i := range c.categories {
		if c.categories[i].ID == categoryID {
			c.categories[i].Items = append(c.categories[i].Items, item)
			return
		}
	}
}

// RemoveItem deletes the item from the category. No-op if not found.
func (c *Catalog) RemoveItem(categoryID, itemID string) {
	for i := range c.categories {
		if c.categories[i].ID != categoryID {
			continue
		}
		items := c.categories[i].Items
		for j := range items {
			if items[j].ID == itemID {
				c.categories[i].Items = append(items[:j], items[j+1:]...)
				return
			}
		}
		return
	}
}

func (c *Catalog) find(categoryID, itemID string) (*models.MenuCategory, *models.MenuItem) {
	for i := range c.categories {
		if c.categories[i].ID != categoryID {
			continue
		}
		cat := &c.categories[i]
		for j := range cat.Items {
			if cat.Items[j].ID == itemID {
				return cat, &cat.Items[j]
			}
		}
		return cat, nil
	}
	return nil, nil
}
