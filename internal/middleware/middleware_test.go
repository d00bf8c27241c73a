package middleware

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	tele "gopkg.in/telebot.v3"
)

func textUpdate(userID int64, text string) tele.Context {
	return (*tele.Bot)(nil).NewContext(tele.Update{
		Message: &tele.Message{Sender: &tele.User{ID: userID}, Text: text},
	})
}

func TestRecover(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mw := Recover(zap.New(core))

	handler := mw(func(c tele.Context) error {
		panic("boom")
	})

	var err error
	require.NotPanics(t, func() {
		err = handler(textUpdate(42, "hi"))
	})
	assert.ErrorContains(t, err, "boom")

	entries := logs.FilterMessage("Recovered from panic in handler").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(42), entries[0].ContextMap()["user_id"])
}

func TestRecover_PassesThrough(t *testing.T) {
	mw := Recover(zap.NewNop())
	want := errors.New("handler failed")

	err := mw(func(c tele.Context) error { return want })(textUpdate(1, "hi"))
	assert.ErrorIs(t, err, want)
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		update    tele.Update
		handlerFn tele.HandlerFunc
		wantMsg   string
		wantKind  string
	}{
		{
			name:      "text handled",
			update:    tele.Update{Message: &tele.Message{Sender: &tele.User{ID: 7}, Text: "Экспресс курс"}},
			handlerFn: func(c tele.Context) error { return nil },
			wantMsg:   "Update handled",
			wantKind:  "text",
		},
		{
			name:      "photo failed",
			update:    tele.Update{Message: &tele.Message{Sender: &tele.User{ID: 7}, Photo: &tele.Photo{}}},
			handlerFn: func(c tele.Context) error { return errors.New("send failed") },
			wantMsg:   "Update failed",
			wantKind:  "photo",
		},
		{
			name: "callback",
			update: tele.Update{Callback: &tele.Callback{
				Sender: &tele.User{ID: 7},
				Data:   "express_buy",
			}},
			handlerFn: func(c tele.Context) error { return nil },
			wantMsg:   "Update handled",
			wantKind:  "callback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			handler := Logging(zap.New(core))(tt.handlerFn)

			_ = handler((*tele.Bot)(nil).NewContext(tt.update))

			entries := logs.FilterMessage(tt.wantMsg).All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.wantKind, fields["update"])
			assert.Equal(t, int64(7), fields["user_id"])
		})
	}
}
