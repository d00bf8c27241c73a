package middleware

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover turns a panic inside a handler into a logged error so a single
// broken update does not take the bot down
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Recovered from panic in handler",
						zap.Any("panic", r),
						zap.Int64("user_id", userID(c)),
						zap.Stack("stack"),
					)
					err = errors.Newf("panic in handler: %v", r)
				}
			}()
			return next(c)
		}
	}
}

func userID(c tele.Context) int64 {
	if sender := c.Sender(); sender != nil {
		return sender.ID
	}
	return 0
}
