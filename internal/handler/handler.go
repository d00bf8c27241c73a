package handler

import (
	"coursebot/internal/catalog"
	"coursebot/internal/domain"
	"coursebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	catalog  *catalog.Catalog
	payments *service.PaymentService
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	cat *catalog.Catalog,
	payments *service.PaymentService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		catalog:  cat,
		payments: payments,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Main menu (reply keyboard) arrives as plain text
	h.bot.Handle(tele.OnText, h.handleText)

	// Every inline button goes through the decoder
	h.bot.Handle(tele.OnCallback, h.handleCallback)

	// Media
	h.bot.Handle(tele.OnPhoto, h.handlePhoto)
	h.bot.Handle(tele.OnDocument, h.handleDocument)
	h.bot.Handle(tele.OnChannelPost, h.handleChannelPost)
}

// mainMenuMarkup returns the reply keyboard built from the catalog menus
func (h *Handler) mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	rows := []tele.Row{}
	for _, labels := range h.catalog.MenuRows() {
		btns := make([]tele.Btn, 0, len(labels))
		for _, label := range labels {
			btns = append(btns, menu.Text(label))
		}
		rows = append(rows, menu.Row(btns...))
	}
	menu.Reply(rows...)
	return menu
}

// senderOf converts the update author; ok is false for anonymous updates
func senderOf(c tele.Context) (domain.Sender, bool) {
	user := c.Sender()
	if user == nil {
		return domain.Sender{}, false
	}
	return domain.Sender{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
	}, true
}
