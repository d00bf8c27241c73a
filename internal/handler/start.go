package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const welcomeMessage = `👋 *Добро пожаловать!*

Я ваш помощник в мире новых знаний. Здесь вы можете получить доступ к эксклюзивным курсам.

Выберите интересующий вас раздел в меню ниже. 👇`

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	sender, ok := senderOf(c)
	if !ok {
		return nil
	}

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	h.payments.Forget(sender.ID)
	return c.Send(welcomeMessage, &tele.SendOptions{
		ParseMode:   tele.ModeMarkdown,
		ReplyMarkup: h.mainMenuMarkup(),
	})
}
