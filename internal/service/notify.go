package service

import (
	"fmt"
	"html"
	"strings"

	"coursebot/internal/domain"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Notifier forwards payment screenshots to administrators
type Notifier struct {
	messenger Messenger
	logger    *zap.Logger
}

// NewNotifier creates a new notifier
func NewNotifier(messenger Messenger, logger *zap.Logger) *Notifier {
	return &Notifier{
		messenger: messenger,
		logger:    logger,
	}
}

// ForwardScreenshot sends the photo to the admin. Failures are marked with
// domain.ErrRecipientNotFound or domain.ErrDeliveryFailed and never retried.
func (n *Notifier) ForwardScreenshot(adminID int64, fileID, caption string) error {
	messageID, err := n.messenger.SendPhoto(adminID, fileID, caption)
	if err == nil {
		n.logger.Info("Screenshot forwarded",
			zap.Int64("admin_id", adminID),
			zap.Int("message_id", messageID),
		)
		return nil
	}

	err = errors.Wrapf(err, "forward screenshot to admin %d", adminID)
	if errors.Is(err, domain.ErrRecipientNotFound) {
		return err
	}
	return errors.Mark(err, domain.ErrDeliveryFailed)
}

// screenshotCaption builds the HTML caption shown to the admin
func screenshotCaption(courseName string, sender domain.Sender) string {
	var b strings.Builder
	b.WriteString("Новый скриншот оплаты!\n\n")
	fmt.Fprintf(&b, "Курс: <b>%s</b>\n", html.EscapeString(courseName))
	fmt.Fprintf(&b, "Пользователь: %s\n", html.EscapeString(sender.DisplayName()))
	if sender.HasHandle() {
		fmt.Fprintf(&b, "Username: @%s\n", html.EscapeString(sender.Username))
	}
	fmt.Fprintf(&b, "User ID: %d", sender.ID)
	return b.String()
}
