package testutil

import (
	"strings"

	"coursebot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockMessenger is a mock for service.Messenger
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) Send(chatID int64, msg domain.Message) (int, error) {
	args := m.Called(chatID, msg)
	return args.Int(0), args.Error(1)
}

func (m *MockMessenger) SendDocument(chatID int64, fileID, caption string) (int, error) {
	args := m.Called(chatID, fileID, caption)
	return args.Int(0), args.Error(1)
}

func (m *MockMessenger) SendPhoto(chatID int64, fileID, caption string) (int, error) {
	args := m.Called(chatID, fileID, caption)
	return args.Int(0), args.Error(1)
}

func (m *MockMessenger) Delete(chatID int64, messageID int) error {
	args := m.Called(chatID, messageID)
	return args.Error(0)
}

// TextContains matches a domain.Message whose text contains substr
func TextContains(substr string) interface{} {
	return mock.MatchedBy(func(msg domain.Message) bool {
		return strings.Contains(msg.Text, substr)
	})
}
