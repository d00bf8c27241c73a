package handler

import (
	"strconv"
	"strings"

	"coursebot/internal/domain"

	"github.com/cockroachdb/errors"
	tele "gopkg.in/telebot.v3"
)

// BotMessenger implements service.Messenger on top of a telebot bot
type BotMessenger struct {
	bot *tele.Bot
}

// NewBotMessenger creates a messenger that talks through bot
func NewBotMessenger(bot *tele.Bot) *BotMessenger {
	return &BotMessenger{bot: bot}
}

// Send sends a text message with an optional inline keyboard
func (m *BotMessenger) Send(chatID int64, msg domain.Message) (int, error) {
	opts := &tele.SendOptions{
		ParseMode:   tele.ParseMode(msg.ParseMode),
		ReplyMarkup: inlineMarkup(msg.Inline),
	}
	sent, err := m.bot.Send(tele.ChatID(chatID), msg.Text, opts)
	if err != nil {
		return 0, classifyError(err)
	}
	return sent.ID, nil
}

// SendDocument sends a previously uploaded document by file id
func (m *BotMessenger) SendDocument(chatID int64, fileID, caption string) (int, error) {
	doc := &tele.Document{File: tele.File{FileID: fileID}, Caption: caption}
	sent, err := m.bot.Send(tele.ChatID(chatID), doc)
	if err != nil {
		return 0, classifyError(err)
	}
	return sent.ID, nil
}

// SendPhoto sends a photo by file id with an HTML caption
func (m *BotMessenger) SendPhoto(chatID int64, fileID, caption string) (int, error) {
	photo := &tele.Photo{File: tele.File{FileID: fileID}, Caption: caption}
	sent, err := m.bot.Send(tele.ChatID(chatID), photo, tele.ModeHTML)
	if err != nil {
		return 0, classifyError(err)
	}
	return sent.ID, nil
}

// Delete removes a message the bot sent earlier
func (m *BotMessenger) Delete(chatID int64, messageID int) error {
	msg := tele.StoredMessage{MessageID: strconv.Itoa(messageID), ChatID: chatID}
	if err := m.bot.Delete(msg); err != nil {
		return classifyError(err)
	}
	return nil
}

// classifyError marks chats the bot cannot reach with domain.ErrRecipientNotFound
func classifyError(err error) error {
	switch {
	case errors.Is(err, tele.ErrChatNotFound),
		errors.Is(err, tele.ErrBlockedByUser),
		strings.Contains(err.Error(), "chat not found"),
		strings.Contains(err.Error(), "user is deactivated"):
		return errors.Mark(err, domain.ErrRecipientNotFound)
	}
	return err
}

// inlineMarkup converts domain buttons into a telebot inline keyboard
func inlineMarkup(rows [][]domain.Button) *tele.ReplyMarkup {
	if len(rows) == 0 {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	teleRows := make([]tele.Row, 0, len(rows))
	for _, row := range rows {
		btns := make([]tele.Btn, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				btns = append(btns, markup.URL(b.Text, b.URL))
				continue
			}
			btns = append(btns, markup.Data(b.Text, b.Data))
		}
		teleRows = append(teleRows, markup.Row(btns...))
	}
	markup.Inline(teleRows...)
	return markup
}
