package handler

import (
	"strings"
	"unicode"

	"coursebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const toastCopied = "Номер скопирован!"

// cleanCallbackData removes all non-printable characters from callback data,
// including the \f prefix telebot puts in front of button uniques
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}
	sender, ok := senderOf(c)
	if !ok {
		return c.Respond()
	}

	data := cleanCallbackData(callback.Data)
	if data == "" {
		data = cleanCallbackData(callback.Unique)
	}
	decoded := h.catalog.Decode(data)

	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("action", decoded.Action.String()),
		zap.String("id", callback.ID),
		zap.Int64("user_id", sender.ID),
	)

	// Acknowledge first so the client stops its spinner whatever happens next
	if err := h.respond(c, decoded); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	switch decoded.Action {
	case domain.ActionLearnMore:
		return h.payments.SendCourseDocument(sender, decoded.CourseID)
	case domain.ActionBuy:
		return h.payments.StartPurchase(sender, decoded.CourseID)
	case domain.ActionPay:
		return h.payments.SelectCurrency(sender, decoded.CourseID, decoded.Currency)
	case domain.ActionCopy:
		return h.payments.RevealCopyValue(sender, decoded.Currency)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return nil
}

func (h *Handler) respond(c tele.Context, decoded domain.Callback) error {
	if decoded.Action == domain.ActionCopy {
		return c.Respond(&tele.CallbackResponse{Text: toastCopied})
	}
	return c.Respond()
}
