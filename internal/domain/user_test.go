package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSender_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		sender   Sender
		expected string
	}{
		{
			name:     "first and last",
			sender:   Sender{FirstName: "Ivan", LastName: "Petrov"},
			expected: "Ivan Petrov",
		},
		{
			name:     "first only",
			sender:   Sender{FirstName: "Ivan"},
			expected: "Ivan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sender.DisplayName())
		})
	}
}

func TestSender_HasHandle(t *testing.T) {
	assert.True(t, Sender{Username: "ivan"}.HasHandle())
	assert.False(t, Sender{}.HasHandle())
	assert.False(t, Sender{Username: "  "}.HasHandle())
}

func TestTrail_MessageIDs(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Trail{MainMessageID: 1, HasMain: true, SubMessageIDs: []int{2, 3}}.MessageIDs())
	assert.Equal(t, []int{2}, Trail{SubMessageIDs: []int{2}}.MessageIDs())
	assert.Empty(t, Trail{}.MessageIDs())
}
