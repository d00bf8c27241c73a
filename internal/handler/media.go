package handler

import (
	"coursebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const mimePDF = "application/pdf"

// handlePhoto treats a photo as a payment screenshot when one is expected
func (h *Handler) handlePhoto(c tele.Context) error {
	sender, ok := senderOf(c)
	if !ok {
		return nil
	}
	msg := c.Message()
	if msg == nil || msg.Photo == nil {
		return nil
	}

	// telebot keeps only the largest size of the photo
	sizes := []domain.PhotoSize{{
		FileID:   msg.Photo.FileID,
		Width:    msg.Photo.Width,
		Height:   msg.Photo.Height,
		FileSize: int64(msg.Photo.FileSize),
	}}

	consumed, err := h.payments.HandlePhoto(sender, sizes)
	if err != nil {
		return err
	}
	if !consumed {
		h.logger.Debug("Photo without pending payment", zap.Int64("user_id", sender.ID))
	}
	return nil
}

// handleDocument replies with the file_id of an uploaded PDF so it can be
// put into the catalog as a course document
func (h *Handler) handleDocument(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Document == nil || msg.Document.MIME != mimePDF {
		return nil
	}

	if err := c.Send("PDF получен. Вот его file_id:"); err != nil {
		return err
	}
	return c.Send(msg.Document.FileID)
}

// handleChannelPost ignores channel posts
func (h *Handler) handleChannelPost(c tele.Context) error {
	if chat := c.Chat(); chat != nil {
		h.logger.Debug("Ignoring channel post", zap.Int64("chat_id", chat.ID))
	}
	return nil
}
