package services

import (
	"testing"

	"aahar-telegram/models"
)

func TestDefaultCatalogShape(t *testing.T) {
	cats := DefaultCatalog()
	if len(cats) != 4 {
		t.Fatalf("categories = %d, want 4", len(cats))
	}
	total := 0
	seen := map[string]bool{}
	for _, cat := range cats {
		total += len(cat.Items)
		for _, itm := range cat.Items {
			if seen[itm.ID] {
				t.Errorf("duplicate item id %q in seed", itm.ID)
			}
			seen[itm.ID] = true
			if itm.Price <= 0 {
				t.Errorf("item %q has non-positive price %d", itm.ID, itm.Price)
			}
			if !itm.Available {
				t.Errorf("seed item %q should start available", itm.ID)
			}
			if itm.SpicyLevel < 0 || itm.SpicyLevel > 3 {
				t.Errorf("item %q spicy level %d out of range", itm.ID, itm.SpicyLevel)
			}
		}
	}
	if total != 26 {
		t.Errorf("total items = %d, want 26", total)
	}
}

func TestCatalogUpdateItemAvailability(t *testing.T) {
	c := NewCatalog(DefaultCatalog())
	before, ok := c.Item("1", "3")
	if !ok {
		t.Fatal("item (1, 3) not found")
	}

	avail := false
	c.UpdateItem("1", "3", models.ItemUpdate{Available: &avail})

	after, _ := c.Item("1", "3")
	if after.Available {
		t.Error("availability not flipped")
	}
	if after.Price != before.Price || after.Description != before.Description {
		t.Errorf("unrelated fields changed: %+v", after)
	}
}

func TestCatalogUpdateItemMissingIsNoop(t *testing.T) {
	c := NewCatalog(DefaultCatalog())
	snapshot := c.Categories()

	avail := false
	c.UpdateItem("1", "999", models.ItemUpdate{Available: &avail})
	c.UpdateItem("999", "3", models.ItemUpdate{Available: &avail})

	got := c.Categories()
	for i := range snapshot {
		if len(got[i].Items) != len(snapshot[i].Items) {
			t.Fatalf("category %q item count changed", snapshot[i].ID)
		}
		for j := range snapshot[i].Items {
			if got[i].Items[j] != snapshot[i].Items[j] {
				t.Errorf("item %q changed by a miss", snapshot[i].Items[j].ID)
			}
		}
	}
}

func TestCatalogUpdateItemPrices(t *testing.T) {
	c := NewCatalog(DefaultCatalog())
	price := int64(24000)
	half := int64(13500)
	c.UpdateItem("1", "1", models.ItemUpdate{Price: &price, HalfPrice: &half})

	got, _ := c.Item("1", "1")
	if got.Price != 24000 || got.HalfPrice != 13500 {
		t.Errorf("prices = %d/%d, want 24000/13500", got.Price, got.HalfPrice)
	}
	if got.Name != "Chicken Biryani" {
		t.Errorf("name changed: %q", got.Name)
	}
}

func TestCatalogAddAndRemoveItem(t *testing.T) {
	c := NewCatalog(DefaultCatalog())
	item := models.MenuItem{
		ID:        "50",
		Name:      "Veg Pulao",
		Price:     14000,
		Veg:       true,
		Available: true,
	}

	c.AddItem("2", item)
	cat, _ := c.Category("2")
	if cat.Items[len(cat.Items)-1].ID != "50" {
		t.Error("added item should be appended at the end of the category")
	}

	c.RemoveItem("2", "50")
	if _, ok := c.Item("2", "50"); ok {
		t.Error("item still present after RemoveItem")
	}
}

func TestCatalogAddItemMissingCategoryIsNoop(t *testing.T) {
	c := NewCatalog(DefaultCatalog())
	c.AddItem("999", models.MenuItem{ID: "51", Name: "Lost", Price: 100})
	if _, _, ok := c.FindItem("51"); ok {
		t.Error("item added despite missing category")
	}
}

func TestCatalogRemoveItemMissingIsNoop(t *testing.T) {
	c := NewCatalog(DefaultCatalog())
	before := len(mustCategory(t, c, "3").Items)
	c.RemoveItem("3", "999")
	c.RemoveItem("999", "12")
	if got := len(mustCategory(t, c, "3").Items); got != before {
		t.Errorf("category 3 items = %d, want %d", got, before)
	}
}

func TestCatalogFindItem(t *testing.T) {
	c := NewCatalog(DefaultCatalog())
	catID, item, ok := c.FindItem("21")
	if !ok {
		t.Fatal("FindItem(21) not found")
	}
	if catID != "4" || item.Name != "Aloo Paratha" {
		t.Errorf("FindItem(21) = (%q, %q), want (4, Aloo Paratha)", catID, item.Name)
	}
	if _, _, ok := c.FindItem("999"); ok {
		t.Error("FindItem(999) should not be found")
	}
}

func TestCatalogCategoriesReturnsCopies(t *testing.T) {
	c := NewCatalog(DefaultCatalog())
	cats := c.Categories()
	cats[0].Items[0].Price = 1

	got, _ := c.Item("1", "1")
	if got.Price == 1 {
		t.Error("mutating the returned slice must not touch the catalog")
	}
}

func mustCategory(t *testing.T, c *Catalog, id string) models.MenuCategory {
	t.Helper()
	cat, ok := c.Category(id)
	if !ok {
		t.Fatalf("category %q not found", id)
	}
	return cat
}
