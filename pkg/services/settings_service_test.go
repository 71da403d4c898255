package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/lumenlabs/lumen/test/database"
)

func TestApplySetting(t *testing.T) {
	t.Run("parses known keys", func(t *testing.T) {
		s := DefaultSettings()
		applySetting(&s, SettingRetryMaxAttempts, "4")
		applySetting(&s, SettingRetryTimeoutMs, "1500")
		applySetting(&s, SettingMailMaxMessages, "10")
		applySetting(&s, SettingMailSummaryTriggerToks, "800")
		applySetting(&s, SettingMailAttachMaxCount, "0")
		applySetting(&s, SettingMailAttachMaxTextChars, "100")

		assert.Equal(t, 4, s.RetryMaxAttempts)
		assert.Equal(t, 1500*time.Millisecond, s.RetryTimeout)
		assert.Equal(t, 10, s.MailMaxMessages)
		assert.Equal(t, 800, s.MailSummaryTriggerTokens)
		assert.Equal(t, 0, s.MailAttachmentsMaxCount)
		assert.Equal(t, 100, s.MailAttachmentsMaxTextChars)
	})

	t.Run("clamps retry attempts to at least one", func(t *testing.T) {
		s := DefaultSettings()
		applySetting(&s, SettingRetryMaxAttempts, "0")
		assert.Equal(t, 1, s.RetryMaxAttempts)
	})

	t.Run("ignores malformed values", func(t *testing.T) {
		s := DefaultSettings()
		applySetting(&s, SettingRetryTimeoutMs, "soon")
		assert.Equal(t, DefaultSettings().RetryTimeout, s.RetryTimeout)
	})

	t.Run("ignores unknown keys", func(t *testing.T) {
		s := DefaultSettings()
		applySetting(&s, "llm.unknown", "7")
		assert.Equal(t, DefaultSettings(), s)
	})

	t.Run("ignores non-positive durations", func(t *testing.T) {
		s := DefaultSettings()
		applySetting(&s, SettingRetryTimeoutMs, "-5")
		assert.Equal(t, DefaultSettings().RetryTimeout, s.RetryTimeout)
	})
}

func TestSettingsService_Snapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("defaults when table is empty", func(t *testing.T) {
		svc := NewSettingsService(client.Client)
		assert.Equal(t, DefaultSettings(), svc.Snapshot(ctx))
	})

	t.Run("reads stored overrides", func(t *testing.T) {
		svc := NewSettingsService(client.Client)
		require.NoError(t, svc.Set(ctx, SettingRetryMaxAttempts, "5"))
		require.NoError(t, svc.Set(ctx, SettingMailMaxMessages, "7"))

		got := svc.Snapshot(ctx)
		assert.Equal(t, 5, got.RetryMaxAttempts)
		assert.Equal(t, 7, got.MailMaxMessages)
	})

	t.Run("set upserts existing key", func(t *testing.T) {
		svc := NewSettingsService(client.Client)
		require.NoError(t, svc.Set(ctx, SettingRetryMaxAttempts, "2"))
		require.NoError(t, svc.Set(ctx, SettingRetryMaxAttempts, "3"))

		got := svc.Snapshot(ctx)
		assert.Equal(t, 3, got.RetryMaxAttempts)
	})

	t.Run("snapshot is cached within the TTL", func(t *testing.T) {
		svc := NewSettingsService(client.Client)
		first := svc.Snapshot(ctx)

		require.NoError(t, svc.Set(ctx, SettingMailSummaryTriggerToks, "123"))
		assert.Equal(t, first, svc.Snapshot(ctx), "change invisible until the snapshot expires")
	})
}
