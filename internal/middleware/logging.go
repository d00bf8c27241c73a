package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging logs every update with its kind, author and processing time
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.String("update", updateKind(c)),
				zap.Int64("user_id", userID(c)),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Warn("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

func updateKind(c tele.Context) string {
	if c.Callback() != nil {
		return "callback"
	}
	if post := c.Update().ChannelPost; post != nil {
		return "channel_post"
	}
	msg := c.Message()
	switch {
	case msg == nil:
		return "other"
	case msg.Photo != nil:
		return "photo"
	case msg.Document != nil:
		return "document"
	case msg.Text != "":
		return "text"
	}
	return "message"
}
