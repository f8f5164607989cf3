package bot

import (
	"fmt"
	"strings"

	"aahar-telegram/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

type priceEditState struct {
	CategoryID string
	ItemID     string
	Field      string // "price", "half"
}

type addItemState struct {
	Step       string // "name", "description", "price", "half"
	CategoryID string
	Item       models.MenuItem
}

// handleAdminCallback routes admin: callbacks. The caller has already
// checked the admin role.
func (b *Bot) handleAdminCallback(chatID, userID int64, messageID int, data string) {
	switch {
	case data == "admin":
		b.sendAdminPanel(chatID)
	case strings.HasPrefix(data, "admin:cat:"):
		b.sendAdminCategory(chatID, strings.TrimPrefix(data, "admin:cat:"))
	case strings.HasPrefix(data, "admin:toggle:"):
		categoryID, itemID, ok := splitIDPair(strings.TrimPrefix(data, "admin:toggle:"))
		if !ok {
			return
		}
		item, found := b.catalog.Item(categoryID, itemID)
		if !found {
			return
		}
		avail := !item.Available
		b.catalog.UpdateItem(categoryID, itemID, models.ItemUpdate{Available: &avail})
		b.editAdminCategory(chatID, messageID, categoryID)
	case strings.HasPrefix(data, "admin:price:"):
		b.startPriceEdit(chatID, userID, strings.TrimPrefix(data, "admin:price:"), "price")
	case strings.HasPrefix(data, "admin:half:"):
		b.startPriceEdit(chatID, userID, strings.TrimPrefix(data, "admin:half:"), "half")
	case strings.HasPrefix(data, "admin:del:"):
		categoryID, itemID, ok := splitIDPair(strings.TrimPrefix(data, "admin:del:"))
		if !ok {
			return
		}
		item, found := b.catalog.Item(categoryID, itemID)
		if !found {
			return
		}
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Yes, delete", "admin:delyes:"+categoryID+":"+itemID),
				tgbotapi.NewInlineKeyboardButtonData("Cancel", "admin:cat:"+categoryID),
			),
		)
		b.sendWithInline(chatID, fmt.Sprintf("Delete *%s* from the menu?", item.Name), kb)
	case strings.HasPrefix(data, "admin:delyes:"):
		categoryID, itemID, ok := splitIDPair(strings.TrimPrefix(data, "admin:delyes:"))
		if !ok {
			return
		}
		b.catalog.RemoveItem(categoryID, itemID)
		b.send(chatID, "✅ Item deleted.")
		b.sendAdminCategory(chatID, categoryID)
	case strings.HasPrefix(data, "admin:add:"):
		categoryID := strings.TrimPrefix(data, "admin:add:")
		if _, ok := b.catalog.Category(categoryID); !ok {
			return
		}
		b.stateMu.Lock()
		b.addItem[userID] = &addItemState{Step: "name", CategoryID: categoryID}
		b.stateMu.Unlock()
		b.send(chatID, "➕ *New item*\n\nSend the item name (e.g. Veg Pulao). Cancel: /cancel")
	}
}

func splitIDPair(s string) (categoryID, itemID string, ok bool) {
	categoryID, itemID, found := strings.Cut(s, ":")
	if !found || categoryID == "" || itemID == "" {
		return "", "", false
	}
	return categoryID, itemID, true
}

func (b *Bot) sendAdminPanel(chatID int64) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, cat := range b.catalog.Categories() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s (%d items)", cat.Name, len(cat.Items)), "admin:cat:"+cat.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", "home"),
	))
	b.sendWithInline(chatID, "🛠 *Admin panel*\n\nPick a category to manage:", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) adminCategoryView(categoryID string) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	cat, ok := b.catalog.Category(categoryID)
	if !ok {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range cat.Items {
		status := "🟢"
		if !item.Available {
			status = "🔴"
		}
		label := fmt.Sprintf("%s %s — %s", status, item.Name, models.FormatPrice(item.Price))
		if item.HasHalf() {
			label += " / " + models.FormatPrice(item.HalfPrice)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "noop"),
		))

		ids := categoryID + ":" + item.ID
		controls := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🔄 Toggle", "admin:toggle:"+ids),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Price", "admin:price:"+ids),
		}
		if item.HasHalf() {
			controls = append(controls, tgbotapi.NewInlineKeyboardButtonData("✏️ Half", "admin:half:"+ids))
		}
		controls = append(controls, tgbotapi.NewInlineKeyboardButtonData("🗑", "admin:del:"+ids))
		rows = append(rows, controls)
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add item", "admin:add:"+categoryID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Categories", "admin"),
		),
	)

	return "🛠 *" + cat.Name + "*", tgbotapi.NewInlineKeyboardMarkup(rows...), true
}

func (b *Bot) sendAdminCategory(chatID int64, categoryID string) {
	text, kb, ok := b.adminCategoryView(categoryID)
	if !ok {
		b.sendAdminPanel(chatID)
		return
	}
	b.sendWithInline(chatID, text, kb)
}

func (b *Bot) editAdminCategory(chatID int64, messageID int, categoryID string) {
	text, kb, ok := b.adminCategoryView(categoryID)
	if !ok {
		b.sendAdminPanel(chatID)
		return
	}
	b.editWithInline(chatID, messageID, text, kb)
}

func (b *Bot) startPriceEdit(chatID, userID int64, idPair, field string) {
	categoryID, itemID, ok := splitIDPair(idPair)
	if !ok {
		return
	}
	item, found := b.catalog.Item(categoryID, itemID)
	if !found {
		return
	}
	b.stateMu.Lock()
	b.priceEdit[userID] = &priceEditState{CategoryID: categoryID, ItemID: itemID, Field: field}
	b.stateMu.Unlock()

	which := "price"
	current := item.Price
	if field == "half" {
		which = "half price"
		current = item.HalfPrice
	}
	b.send(chatID, fmt.Sprintf("✏️ Enter the new %s for *%s* (current: %s). Cancel: /cancel",
		which, item.Name, models.FormatPrice(current)))
}

// handlePriceEditFlow consumes the admin's typed price. Returns false when
// no edit is in progress.
func (b *Bot) handlePriceEditFlow(chatID, userID int64, text string) bool {
	b.stateMu.RLock()
	st := b.priceEdit[userID]
	b.stateMu.RUnlock()
	if st == nil {
		return false
	}
	if !b.sessions.IsAdmin(userID) {
		b.clearFlowStates(userID)
		return false
	}

	price, err := models.ParsePrice(text)
	if err != nil {
		b.send(chatID, "⚠️ Please enter a valid price.")
		return true
	}

	upd := models.ItemUpdate{}
	if st.Field == "half" {
		upd.HalfPrice = &price
	} else {
		upd.Price = &price
	}
	b.catalog.UpdateItem(st.CategoryID, st.ItemID, upd)

	b.stateMu.Lock()
	delete(b.priceEdit, userID)
	b.stateMu.Unlock()

	b.send(chatID, "✅ Price updated to "+models.FormatPrice(price)+".")
	b.sendAdminCategory(chatID, st.CategoryID)
	return true
}

// handleAddItemFlow walks name → description → price → half price and then
// appends the item. Returns false when no add is in progress.
func (b *Bot) handleAddItemFlow(chatID, userID int64, text string) bool {
	b.stateMu.RLock()
	st := b.addItem[userID]
	b.stateMu.RUnlock()
	if st == nil {
		return false
	}
	if !b.sessions.IsAdmin(userID) {
		b.clearFlowStates(userID)
		return false
	}

	switch st.Step {
	case "name":
		if strings.TrimSpace(text) == "" {
			b.send(chatID, "⚠️ Name is required. Send the item name:")
			return true
		}
		b.stateMu.Lock()
		st.Item.Name = strings.TrimSpace(text)
		st.Step = "description"
		b.stateMu.Unlock()
		b.send(chatID, "Send a short description:")
	case "description":
		b.stateMu.Lock()
		st.Item.Description = strings.TrimSpace(text)
		st.Step = "price"
		b.stateMu.Unlock()
		b.send(chatID, "Send the full price (e.g. 180 or 180.50):")
	case "price":
		price, err := models.ParsePrice(text)
		if err != nil {
			b.send(chatID, "⚠️ Please enter a valid price.")
			return true
		}
		b.stateMu.Lock()
		st.Item.Price = price
		st.Step = "half"
		b.stateMu.Unlock()
		b.send(chatID, "Send the half-portion price, or 0 if there is no half portion:")
	case "half":
		if strings.TrimSpace(text) != "0" {
			half, err := models.ParsePrice(text)
			if err != nil {
				b.send(chatID, "⚠️ Please enter a valid price, or 0 for no half portion.")
				return true
			}
			b.stateMu.Lock()
			st.Item.HalfPrice = half
			b.stateMu.Unlock()
		}

		item := st.Item
		item.ID = uuid.NewString()
		item.Available = true

		b.catalog.AddItem(st.CategoryID, item)
		b.stateMu.Lock()
		delete(b.addItem, userID)
		b.stateMu.Unlock()

		b.send(chatID, fmt.Sprintf("✅ *%s* added for %s.", item.Name, models.FormatPrice(item.Price)))
		b.sendAdminCategory(chatID, st.CategoryID)
	}
	return true
}
