package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes main-menu buttons; other text is ignored
func (h *Handler) handleText(c tele.Context) error {
	sender, ok := senderOf(c)
	if !ok {
		return nil
	}
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	handled, err := h.payments.ShowMenu(sender, text)
	if err != nil {
		return err
	}
	if !handled {
		h.logger.Debug("Ignoring free text", zap.Int64("user_id", sender.ID))
	}
	return nil
}
