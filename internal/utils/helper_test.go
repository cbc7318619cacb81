package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUID(t *testing.T) {
	id, err := ParseUUID("8f14e45f-ceea-467f-a0f9-b1b5ff383b1a")
	require.NoError(t, err)
	assert.Equal(t, "8f14e45f-ceea-467f-a0f9-b1b5ff383b1a", id.String())

	_, err = ParseUUID("not-a-uuid")
	assert.Error(t, err)
}

func TestContains(t *testing.T) {
	slice := []string{"active", "on_hold", "completed"}

	assert.True(t, Contains(slice, "on_hold"))
	assert.False(t, Contains(slice, "cancelled"))
	assert.False(t, Contains(nil, "active"))
}

func TestValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last@sub.domain.org", "a@b.co"}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), "email %q", email)
	}

	invalid := []string{"", "   ", "no-at-sign", "user@", "Display Name <user@example.com>"}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), "email %q", email)
	}
}
