package testutil

import (
	"testing"

	"coursebot/internal/catalog"
	"coursebot/internal/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSender creates a test user; an empty username means no public handle
func NewTestSender(userID int64, username string) domain.Sender {
	return domain.Sender{
		ID:        userID,
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
	}
}

// Admin ids used by NewTestCatalog
const (
	AdminRub     int64 = 1001
	AdminEur     int64 = 1002
	AdminUah     int64 = 1003
	AdminPremium int64 = 1004
)

const testCatalog = `
admins:
  rub: {id: 1001, handle: "@rub_admin"}
  eur: {id: 1002, handle: "@eur_admin"}
  uah: {id: 1003, handle: "@uah_admin"}
  premium: {id: 1004, handle: "@premium_admin"}
currencies:
  - {code: rub, button: "Оплата в рублях", symbol: "₽", details: "Карта: 2202 2002 1234 5678", raw: "2202 2002 1234 5678", copy_button: "Скопировать номер"}
  - {code: eur, button: "Оплата в евро", symbol: "€", details: "IBAN: DE89 3704 0044 0532 0130 00", raw: "DE89 3704 0044 0532 0130 00", copy_button: "Скопировать IBAN"}
  - {code: uah, button: "Оплата в гривнях", symbol: "₴", details: "Карта: 5375 4141 0000 1111", raw: "5375-4141-0000-1111", copy_button: "Скопировать номер"}
courses:
  - id: express
    name: "Экспресс курс"
    document: "express-doc"
    document_caption: "Программа экспресс курса"
    more_button: "Узнать больше"
    buy_button: "Приобрести экспресс курс"
    prices:
      rub: {amount: "4900", admin: rub}
      eur: {amount: "49", admin: eur}
      uah: {amount: "1990", admin: uah}
  - id: author_standard
    name: "Авторский курс (Стандарт)"
    buy_button: "Стандарт"
    prices:
      rub: {amount: "14900", admin: rub}
      eur: {amount: "149", admin: eur}
  - id: author_premium
    name: "Авторский курс (Премиум)"
    buy_button: "Премиум"
    prices:
      rub: {amount: "29900", admin: rub}
      eur: {amount: "299", admin: premium}
      uah: {amount: "11990", admin: uah}
menus:
  - label: "Бесплатный урок"
    text: "Бесплатный урок"
    url: "https://t.me/+invite"
    url_button: "Получить урок"
  - label: "Экспресс курс"
    text: "Экспресс курс"
    courses: [express]
  - label: "Авторский курс"
    text: "Авторский курс"
    courses: [author_standard, author_premium]
`

// NewTestCatalog returns a three-course, three-currency catalog
func NewTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(testCatalog))
	require.NoError(t, err)
	return cat
}
