package service

import "coursebot/internal/domain"

// Messenger is the outbound side of the messaging platform.
// Send* return the id of the created message.
// Implementations mark "chat not found" style failures with domain.ErrRecipientNotFound.
type Messenger interface {
	Send(chatID int64, msg domain.Message) (int, error)
	SendDocument(chatID int64, fileID, caption string) (int, error)
	// SendPhoto sends a photo by file id; the caption is HTML
	SendPhoto(chatID int64, fileID, caption string) (int, error)
	Delete(chatID int64, messageID int) error
}
