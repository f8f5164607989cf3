package bot

import (
	"fmt"
	"log"
	"strings"

	"aahar-telegram/models"
	"aahar-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func vegMark(item models.MenuItem) string {
	if item.Veg {
		return "🌱"
	}
	return "🍗"
}

func spiceMark(level int) string {
	if level <= 0 {
		return ""
	}
	return " " + strings.Repeat("🌶", level)
}

func (b *Bot) sendCategories(chatID, userID int64) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, cat := range b.catalog.Categories() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(cat.Name, "cat:"+cat.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", "home"),
	))

	text := "📋 *Menu*\n\nPick a category:"
	if bk := b.basketFor(userID); bk.Len() > 0 {
		text += basketSummary(bk)
	}
	b.sendWithInline(chatID, text, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) sendCategoryMenu(chatID, userID int64, categoryID string) {
	cat, ok := b.catalog.Category(categoryID)
	if !ok {
		b.sendCategories(chatID, userID)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range cat.Items {
		if !item.Available {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🚫 "+item.Name+" — sold out", "noop"),
			))
			continue
		}
		label := fmt.Sprintf("%s %s — %s", vegMark(item), item.Name, models.FormatPrice(item.Price))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "item:"+item.ID),
		))
	}
	if bk := b.basketFor(userID); bk.Len() > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 View cart", "cart"),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Categories", "menu"),
	))

	b.sendWithInline(chatID, "📋 *"+cat.Name+"*", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// sendItemCard shows one dish with its photo and the portion choices.
func (b *Bot) sendItemCard(chatID, userID int64, itemID string) {
	categoryID, item, ok := b.catalog.FindItem(itemID)
	if !ok || !item.Available {
		b.send(chatID, "That item is not available right now.")
		return
	}

	caption := fmt.Sprintf("%s *%s*%s\n%s\n\n⏱ %s", vegMark(item), item.Name, spiceMark(item.SpicyLevel), item.Description, item.CookingTime)

	var row []tgbotapi.InlineKeyboardButton
	if item.HasHalf() {
		row = append(row,
			tgbotapi.NewInlineKeyboardButtonData("Full — "+models.FormatPrice(item.Price), "add:"+item.ID+":full"),
			tgbotapi.NewInlineKeyboardButtonData("Half — "+models.FormatPrice(item.HalfPrice), "add:"+item.ID+":half"),
		)
	} else {
		row = append(row,
			tgbotapi.NewInlineKeyboardButtonData("Add — "+models.FormatPrice(item.Price), "add:"+item.ID+":full"),
		)
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", "cat:"+categoryID),
		),
	)

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(item.Image))
	photo.Caption = caption
	photo.ParseMode = "Markdown"
	photo.ReplyMarkup = kb
	if _, err := b.api.Send(photo); err != nil {
		// Some image hosts are rejected by Telegram; fall back to text.
		log.Printf("send photo: %v", err)
		b.sendWithInline(chatID, caption, kb)
	}
}

// handleAddToBasket parses "itemID:portion" and puts one unit in the basket.
func (b *Bot) handleAddToBasket(chatID, userID int64, data string) {
	itemID, portionStr, _ := strings.Cut(data, ":")
	categoryID, item, ok := b.catalog.FindItem(itemID)
	if !ok || !item.Available {
		b.send(chatID, "That item is not available right now.")
		return
	}
	portion := models.ParsePortion(portionStr)

	bk := b.basketFor(userID)
	bk.Add(item, portion, 1)

	text := fmt.Sprintf("✅ *%s* added to your cart.%s", item.Name, basketSummary(bk))
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 View cart", "cart"),
			tgbotapi.NewInlineKeyboardButtonData("➕ Add more", "cat:"+categoryID),
		),
	)
	b.sendWithInline(chatID, text, kb)
}

func basketSummary(bk *services.Basket) string {
	var sb strings.Builder
	sb.WriteString("\n\n🛒 *Your cart:*\n")
	for _, e := range bk.Entries() {
		label := e.Name
		if e.Portion == models.PortionHalf {
			label += " (half)"
		}
		fmt.Fprintf(&sb, "• %s × %d — %s\n", label, e.Quantity, models.FormatPrice(e.LineTotal()))
	}
	fmt.Fprintf(&sb, "\n*Total: %s*", models.FormatPrice(bk.TotalPrice()))
	return sb.String()
}

func (b *Bot) basketView(userID int64) (string, tgbotapi.InlineKeyboardMarkup) {
	bk := b.basketFor(userID)
	if bk.Len() == 0 {
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🍽 Browse menu", "menu"),
			),
		)
		return "🛒 Your cart is empty.", kb
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, e := range bk.Entries() {
		key := e.ItemID + ":" + string(e.Portion)
		label := e.Name
		if e.Portion == models.PortionHalf {
			label += " (half)"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s × %d", label, e.Quantity), "noop"),
		))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖", "dec:"+key),
			tgbotapi.NewInlineKeyboardButtonData("➕", "inc:"+key),
			tgbotapi.NewInlineKeyboardButtonData("✖ Remove", "del:"+key),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Checkout", "checkout"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧹 Clear cart", "clear"),
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Menu", "menu"),
		),
	)

	return "🛒 *Your cart*" + basketSummary(bk), tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) sendBasket(chatID, userID int64) {
	text, kb := b.basketView(userID)
	b.sendWithInline(chatID, text, kb)
}

func (b *Bot) editBasket(chatID, userID int64, messageID int) {
	text, kb := b.basketView(userID)
	b.editWithInline(chatID, messageID, text, kb)
}

// changeQuantity parses "itemID:portion" and bumps the entry by delta.
// Dropping to zero removes the entry.
func (b *Bot) changeQuantity(chatID, userID int64, messageID int, data string, delta int) {
	itemID, portionStr, _ := strings.Cut(data, ":")
	portion := models.ParsePortion(portionStr)

	bk := b.basketFor(userID)
	e, ok := bk.Entry(itemID, portion)
	if !ok {
		return
	}
	bk.SetQuantity(itemID, portion, e.Quantity+delta)
	b.editBasket(chatID, userID, messageID)
}

func (b *Bot) removeEntry(chatID, userID int64, messageID int, data string) {
	itemID, portionStr, _ := strings.Cut(data, ":")
	bk := b.basketFor(userID)
	bk.Remove(itemID, models.ParsePortion(portionStr))
	b.editBasket(chatID, userID, messageID)
}

func (b *Bot) startCheckout(chatID, userID int64) {
	if b.basketFor(userID).Len() == 0 {
		b.send(chatID, "⚠️ Please add items to your cart before checkout.")
		return
	}
	b.stateMu.Lock()
	b.checkout[userID] = &checkoutState{Step: "name"}
	b.stateMu.Unlock()
	b.send(chatID, "📦 *Delivery details*\n\nWhat's your name?")
}

// handleCheckoutFlow walks name → address → phone, then shows the final
// confirmation. Returns false when no checkout is in progress.
func (b *Bot) handleCheckoutFlow(chatID, userID int64, text string) bool {
	b.stateMu.RLock()
	st := b.checkout[userID]
	b.stateMu.RUnlock()
	if st == nil {
		return false
	}

	switch st.Step {
	case "name":
		if strings.TrimSpace(text) == "" {
			b.send(chatID, "⚠️ Please fill in all required delivery details. What's your name?")
			return true
		}
		b.stateMu.Lock()
		st.Details.Name = text
		st.Step = "address"
		b.stateMu.Unlock()
		b.send(chatID, "🏠 Delivery address?")
	case "address":
		if strings.TrimSpace(text) == "" {
			b.send(chatID, "⚠️ Please fill in all required delivery details. Delivery address?")
			return true
		}
		b.stateMu.Lock()
		st.Details.Address = text
		st.Step = "phone"
		b.stateMu.Unlock()
		b.send(chatID, "📞 Contact phone number?")
	case "phone":
		if strings.TrimSpace(text) == "" {
			b.send(chatID, "⚠️ Please fill in all required delivery details. Contact phone number?")
			return true
		}
		b.stateMu.Lock()
		st.Details.Phone = text
		st.Step = "confirm"
		b.stateMu.Unlock()

		bk := b.basketFor(userID)
		msg := fmt.Sprintf("🧾 *Confirm your order*%s\n\nDeliver to: %s, %s (📞 %s)\n\nProceed with checkout?",
			basketSummary(bk), st.Details.Name, st.Details.Address, st.Details.Phone)
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("✅ Place order", "confirm_order"),
				tgbotapi.NewInlineKeyboardButtonData("Cancel", "cancel_order"),
			),
		)
		b.sendWithInline(chatID, msg, kb)
	case "confirm":
		// Waiting on the inline buttons; ignore stray text.
	}
	return true
}

func (b *Bot) confirmOrder(chatID, userID int64) {
	b.stateMu.Lock()
	st := b.checkout[userID]
	delete(b.checkout, userID)
	b.stateMu.Unlock()
	if st == nil {
		b.sendBasket(chatID, userID)
		return
	}

	order, err := services.PlaceOrder(b.basketFor(userID), st.Details)
	if err != nil {
		b.send(chatID, "⚠️ "+err.Error())
		return
	}
	b.send(chatID, services.OrderReceiptMessage(order))
	b.sendHome(chatID, userID)
}
