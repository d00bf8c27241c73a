package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// maxUpdateSize bounds a single webhook body
const maxUpdateSize = 1 << 20

// UpdateProcessor runs bot handlers for one update; *tele.Bot satisfies it
type UpdateProcessor interface {
	ProcessUpdate(u tele.Update)
}

// NewWebhookHandler decodes a Telegram update and hands it to the bot.
// It never waits on a poller, so it can serve before the webhook is registered.
func NewWebhookHandler(processor UpdateProcessor, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var update tele.Update
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateSize)).Decode(&update); err != nil {
			logger.Warn("Malformed webhook update", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		processor.ProcessUpdate(update)
		w.WriteHeader(http.StatusOK)
	})
}
