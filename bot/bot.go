package bot

import (
	"context"
	"log"
	"strings"
	"sync"

	"aahar-telegram/config"
	"aahar-telegram/models"
	"aahar-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type loginState struct {
	Step   string // "mobile", "code"
	Mobile string
}

type checkoutState struct {
	Step    string // "name", "address", "phone", "confirm"
	Details models.DeliveryDetails
}

// Bot is the ordering front end. One basket per Telegram user, kept in
// memory only; the session manager is the sole thing backed by storage.
type Bot struct {
	api      *tgbotapi.BotAPI
	cfg      *config.Config
	catalog  *services.Catalog
	sessions *services.Sessions

	baskets   map[int64]*services.Basket
	basketsMu sync.RWMutex

	login     map[int64]*loginState
	checkout  map[int64]*checkoutState
	priceEdit map[int64]*priceEditState
	addItem   map[int64]*addItemState
	stateMu   sync.RWMutex
}

func New(cfg *config.Config, catalog *services.Catalog, sessions *services.Sessions) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:       api,
		cfg:       cfg,
		catalog:   catalog,
		sessions:  sessions,
		baskets:   make(map[int64]*services.Basket),
		login:     make(map[int64]*loginState),
		checkout:  make(map[int64]*checkoutState),
		priceEdit: make(map[int64]*priceEditState),
		addItem:   make(map[int64]*addItemState),
	}, nil
}

func (b *Bot) Start() {
	if err := b.setBotCommands(); err != nil {
		log.Printf("set commands: %v", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		msg := update.Message
		chatID := msg.Chat.ID
		userID := msg.From.ID
		text := strings.TrimSpace(msg.Text)

		switch text {
		case "/start":
			b.handleStart(chatID, userID)
			continue
		case "/cancel":
			b.cancelFlows(chatID, userID)
			continue
		case "/menu":
			if b.requireSession(chatID, userID) {
				b.sendCategories(chatID, userID)
			}
			continue
		case "/cart":
			if b.requireSession(chatID, userID) {
				b.sendBasket(chatID, userID)
			}
			continue
		case "/logout":
			if b.requireSession(chatID, userID) {
				b.sendLogoutPrompt(chatID)
			}
			continue
		}

		if b.sessions.Restore(context.Background(), userID) == nil {
			b.handleLoginInput(chatID, userID, text)
			continue
		}

		if b.handleCheckoutFlow(chatID, userID, text) {
			continue
		}
		if b.handlePriceEditFlow(chatID, userID, text) {
			continue
		}
		if b.handleAddItemFlow(chatID, userID, text) {
			continue
		}

		// Logged in, nothing pending: show the main screen.
		b.sendHome(chatID, userID)
	}
}

func (b *Bot) setBotCommands() error {
	cmds := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Open Aahar Tandoori"},
		tgbotapi.BotCommand{Command: "menu", Description: "Browse the menu"},
		tgbotapi.BotCommand{Command: "cart", Description: "View your cart"},
		tgbotapi.BotCommand{Command: "logout", Description: "Log out"},
		tgbotapi.BotCommand{Command: "cancel", Description: "Cancel the current step"},
	)
	_, err := b.api.Request(cmds)
	return err
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}

func (b *Bot) sendWithInline(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}

func (b *Bot) editWithInline(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = "Markdown"
	edit.ReplyMarkup = &kb
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("edit error: %v", err)
	}
}

// basketFor returns the user's basket, creating it on first use.
func (b *Bot) basketFor(userID int64) *services.Basket {
	b.basketsMu.RLock()
	bk := b.baskets[userID]
	b.basketsMu.RUnlock()
	if bk != nil {
		return bk
	}
	b.basketsMu.Lock()
	defer b.basketsMu.Unlock()
	if bk = b.baskets[userID]; bk == nil {
		bk = services.NewBasket()
		b.baskets[userID] = bk
	}
	return bk
}

// requireSession restores the session if needed; without one it starts the
// login flow and reports false.
func (b *Bot) requireSession(chatID, userID int64) bool {
	if b.sessions.Restore(context.Background(), userID) != nil {
		return true
	}
	b.startLogin(chatID, userID)
	return false
}

func (b *Bot) handleStart(chatID, userID int64) {
	b.clearFlowStates(userID)
	sess := b.sessions.Restore(context.Background(), userID)
	if sess == nil {
		b.startLogin(chatID, userID)
		return
	}
	b.sendHome(chatID, userID)
}

func (b *Bot) startLogin(chatID, userID int64) {
	b.stateMu.Lock()
	b.login[userID] = &loginState{Step: "mobile"}
	b.stateMu.Unlock()
	b.send(chatID, "🍛 *Welcome to Aahar Tandoori!*\n\nPlease enter your 10-digit mobile number to continue.")
}

func isMobileNumber(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (b *Bot) handleLoginInput(chatID, userID int64, text string) {
	b.stateMu.RLock()
	st := b.login[userID]
	b.stateMu.RUnlock()
	if st == nil {
		b.startLogin(chatID, userID)
		return
	}

	switch st.Step {
	case "mobile":
		if !isMobileNumber(text) {
			b.send(chatID, "Please enter a valid 10-digit mobile number.")
			return
		}
		b.stateMu.Lock()
		st.Mobile = text
		st.Step = "code"
		b.stateMu.Unlock()
		b.send(chatID, "🔑 Now enter your login code.")
	case "code":
		sess, err := b.sessions.Login(context.Background(), userID, st.Mobile, text)
		if err != nil {
			b.send(chatID, "❌ Invalid code. Please try again.")
			return
		}
		b.stateMu.Lock()
		delete(b.login, userID)
		b.stateMu.Unlock()
		if sess.IsAdmin() {
			b.send(chatID, "✅ Logged in as *admin*.")
		} else {
			b.send(chatID, "✅ Logged in. Happy ordering!")
		}
		b.sendHome(chatID, userID)
	}
}

func (b *Bot) sendHome(chatID, userID int64) {
	sess := b.sessions.Current(userID)
	if sess == nil {
		b.startLogin(chatID, userID)
		return
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		{tgbotapi.NewInlineKeyboardButtonData("🍽 Menu", "menu")},
		{tgbotapi.NewInlineKeyboardButtonData("🛒 Cart", "cart")},
	}
	if sess.IsAdmin() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛠 Admin panel", "admin"),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🚪 Logout", "logout"),
	))

	text := "🍛 *Aahar Tandoori*\n\nWhat would you like to do?"
	b.sendWithInline(chatID, text, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) sendLogoutPrompt(chatID int64) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes, log out", "logout_yes"),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", "home"),
		),
	)
	b.sendWithInline(chatID, "Are you sure you want to logout?", kb)
}

func (b *Bot) doLogout(chatID, userID int64) {
	b.sessions.Logout(context.Background(), userID)
	b.basketsMu.Lock()
	delete(b.baskets, userID)
	b.basketsMu.Unlock()
	b.clearFlowStates(userID)
	b.send(chatID, "👋 You have been logged out.")
	b.startLogin(chatID, userID)
}

func (b *Bot) cancelFlows(chatID, userID int64) {
	b.clearFlowStates(userID)
	if b.sessions.Restore(context.Background(), userID) == nil {
		b.startLogin(chatID, userID)
		return
	}
	b.send(chatID, "Cancelled.")
	b.sendHome(chatID, userID)
}

func (b *Bot) clearFlowStates(userID int64) {
	b.stateMu.Lock()
	delete(b.login, userID)
	delete(b.checkout, userID)
	delete(b.priceEdit, userID)
	delete(b.addItem, userID)
	b.stateMu.Unlock()
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	userID := cq.From.ID
	data := cq.Data

	b.api.Request(tgbotapi.NewCallback(cq.ID, ""))

	if data == "noop" {
		return
	}

	if b.sessions.Restore(context.Background(), userID) == nil {
		b.startLogin(chatID, userID)
		return
	}

	switch {
	case data == "home":
		b.sendHome(chatID, userID)
	case data == "logout":
		b.sendLogoutPrompt(chatID)
	case data == "logout_yes":
		b.doLogout(chatID, userID)
	case data == "menu":
		b.sendCategories(chatID, userID)
	case data == "cart":
		b.sendBasket(chatID, userID)
	case strings.HasPrefix(data, "cat:"):
		b.sendCategoryMenu(chatID, userID, strings.TrimPrefix(data, "cat:"))
	case strings.HasPrefix(data, "item:"):
		b.sendItemCard(chatID, userID, strings.TrimPrefix(data, "item:"))
	case strings.HasPrefix(data, "add:"):
		b.handleAddToBasket(chatID, userID, strings.TrimPrefix(data, "add:"))
	case strings.HasPrefix(data, "inc:"):
		b.changeQuantity(chatID, userID, cq.Message.MessageID, strings.TrimPrefix(data, "inc:"), +1)
	case strings.HasPrefix(data, "dec:"):
		b.changeQuantity(chatID, userID, cq.Message.MessageID, strings.TrimPrefix(data, "dec:"), -1)
	case strings.HasPrefix(data, "del:"):
		b.removeEntry(chatID, userID, cq.Message.MessageID, strings.TrimPrefix(data, "del:"))
	case data == "clear":
		b.basketFor(userID).Clear()
		b.editBasket(chatID, userID, cq.Message.MessageID)
	case data == "checkout":
		b.startCheckout(chatID, userID)
	case data == "confirm_order":
		b.confirmOrder(chatID, userID)
	case data == "cancel_order":
		b.stateMu.Lock()
		delete(b.checkout, userID)
		b.stateMu.Unlock()
		b.send(chatID, "Checkout cancelled.")
		b.sendBasket(chatID, userID)
	case strings.HasPrefix(data, "admin"):
		if !b.sessions.IsAdmin(userID) {
			b.send(chatID, "This area is for admins only.")
			return
		}
		b.handleAdminCallback(chatID, userID, cq.Message.MessageID, data)
	}
}
