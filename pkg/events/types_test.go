package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "order:42", OrderChannel(42))
	assert.Equal(t, "mail:abc-123", MailChannel("abc-123"))
}

func TestIsTerminal(t *testing.T) {
	terminal := []string{
		EventTypeOrderCompleted,
		EventTypeOrderFailed,
		EventTypeMailJobCompleted,
		EventTypeMailJobFailed,
	}
	for _, et := range terminal {
		assert.True(t, IsTerminal(et), et)
	}

	nonTerminal := []string{
		EventTypeOrderStarted,
		EventTypeOrderProgress,
		EventTypeIntentUpserted,
		EventTypeArticleUpserted,
		EventTypeMailJobStarted,
		EventTypeMailReplyCreated,
		EventTypeMailThreadUpdated,
		EventTypeMailUnreadChanged,
	}
	for _, et := range nonTerminal {
		assert.False(t, IsTerminal(et), et)
	}
}
