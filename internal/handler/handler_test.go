package handler

import (
	"testing"

	"coursebot/internal/domain"
	"coursebot/internal/repository/memory"
	"coursebot/internal/service"
	"coursebot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

// callbackContext is a tele.Context for a single callback query.
// Methods the handler is not expected to call panic through the nil embed.
type callbackContext struct {
	tele.Context
	callback *tele.Callback
	events   *[]string
}

func (c *callbackContext) Callback() *tele.Callback { return c.callback }

func (c *callbackContext) Sender() *tele.User { return c.callback.Sender }

func (c *callbackContext) Respond(resp ...*tele.CallbackResponse) error {
	text := ""
	if len(resp) > 0 && resp[0] != nil {
		text = resp[0].Text
	}
	*c.events = append(*c.events, "respond:"+text)
	return nil
}

type handlerFixture struct {
	handler   *Handler
	payments  *service.PaymentService
	messenger *testutil.MockMessenger
	events    []string
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	f := &handlerFixture{messenger: new(testutil.MockMessenger)}
	logger := testutil.NewTestLogger()
	cat := testutil.NewTestCatalog(t)

	f.payments = service.NewPaymentService(
		cat,
		memory.NewExpectationRepo(),
		service.NewTrailService(memory.NewTrailRepo(), f.messenger, logger),
		service.NewNotifier(f.messenger, logger),
		f.messenger,
		logger,
		service.PaymentOptions{},
	)
	f.handler = NewHandler(nil, cat, f.payments, logger)

	f.messenger.On("Send", mock.Anything, mock.Anything).Return(101, nil).Run(func(mock.Arguments) {
		f.events = append(f.events, "send")
	})
	f.messenger.On("SendDocument", mock.Anything, mock.Anything, mock.Anything).Return(1, nil).Run(func(mock.Arguments) {
		f.events = append(f.events, "document")
	})
	return f
}

func (f *handlerFixture) press(data, unique string) error {
	c := &callbackContext{
		callback: &tele.Callback{
			ID:     "cb",
			Sender: &tele.User{ID: 7, FirstName: "Test", Username: "ivan"},
			Data:   data,
			Unique: unique,
		},
		events: &f.events,
	}
	return f.handler.handleCallback(c)
}

func TestHandleCallback_AcknowledgesBeforeDispatch(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		unique    string
		want      []string
		wantState domain.FlowState
	}{
		{
			name:      "buy",
			data:      "\fexpress_buy",
			want:      []string{"respond:", "send"},
			wantState: domain.StateCurrencySelectionShown,
		},
		{
			name:      "buy from unique only",
			unique:    "express_buy",
			want:      []string{"respond:", "send"},
			wantState: domain.StateCurrencySelectionShown,
		},
		{
			name:      "pay sends requisites and prompt",
			data:      "express_pay_rub",
			want:      []string{"respond:", "send", "send"},
			wantState: domain.StateAwaitingScreenshot,
		},
		{
			name:      "copy shows toast",
			data:      "copy_rub",
			want:      []string{"respond:" + toastCopied, "send", "send"},
			wantState: domain.StateIdle,
		},
		{
			name:      "learn more sends document",
			data:      "express_more",
			want:      []string{"respond:", "document"},
			wantState: domain.StateIdle,
		},
		{
			name:      "unknown payload is only acknowledged",
			data:      "express_refund",
			want:      []string{"respond:"},
			wantState: domain.StateIdle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)

			err := f.press(tt.data, tt.unique)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, f.events)
			assert.Equal(t, tt.wantState, f.payments.State(7))
		})
	}
}

func TestHandleCallback_UnknownPayloadTouchesNothing(t *testing.T) {
	f := newHandlerFixture(t)

	assert.NoError(t, f.press("copy_usd", ""))

	f.messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	f.messenger.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
