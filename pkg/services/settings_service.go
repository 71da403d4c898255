package services

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/lumenlabs/lumen/ent"
	"github.com/lumenlabs/lumen/ent/runtimesetting"
)

// Runtime setting keys.
const (
	SettingRetryMaxAttempts       = "llm.retry.max_attempts"
	SettingRetryTimeoutMs         = "llm.retry.timeout_ms"
	SettingMailMaxMessages        = "mail.context.max_messages"
	SettingMailSummaryTriggerToks = "mail.context.summary_trigger_token_count"
	SettingMailAttachMaxCount     = "mail.attachments.max_count"
	SettingMailAttachMaxTextChars = "mail.attachments.max_text_chars"
)

const settingsTTL = 5 * time.Second

// Settings is an immutable snapshot of the runtime tunables. Values are
// already parsed and clamped; callers can use them directly.
type Settings struct {
	RetryMaxAttempts            int
	RetryTimeout                time.Duration
	MailMaxMessages             int
	MailSummaryTriggerTokens    int
	MailAttachmentsMaxCount     int
	MailAttachmentsMaxTextChars int
}

// DefaultSettings returns the compiled-in defaults.
func DefaultSettings() Settings {
	return Settings{
		RetryMaxAttempts:            2,
		RetryTimeout:                20 * time.Second,
		MailMaxMessages:             20,
		MailSummaryTriggerTokens:    5000,
		MailAttachmentsMaxCount:     3,
		MailAttachmentsMaxTextChars: 4000,
	}
}

// SettingsService serves Settings snapshots from the runtime_settings table
// with a short TTL. Parse failures and DB errors fall back to the last good
// snapshot; they never abort the engine.
type SettingsService struct {
	db *ent.Client

	mu        sync.Mutex
	snapshot  Settings
	fetchedAt time.Time
}

// NewSettingsService creates a SettingsService seeded with defaults.
func NewSettingsService(db *ent.Client) *SettingsService {
	return &SettingsService{db: db, snapshot: DefaultSettings()}
}

// Snapshot returns the current settings, refreshing from the database when
// the cached copy is older than the TTL.
func (s *SettingsService) Snapshot(ctx context.Context) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.fetchedAt) < settingsTTL && !s.fetchedAt.IsZero() {
		return s.snapshot
	}

	rows, err := s.db.RuntimeSetting.Query().All(ctx)
	if err != nil {
		slog.Warn("Failed to refresh runtime settings, keeping previous snapshot", "error", err)
		s.fetchedAt = time.Now()
		return s.snapshot
	}

	next := DefaultSettings()
	for _, row := range rows {
		applySetting(&next, row.Key, row.Value)
	}
	s.snapshot = next
	s.fetchedAt = time.Now()
	return s.snapshot
}

// Set upserts one runtime setting. The new value becomes visible to readers
// after the current snapshot expires.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	err := s.db.RuntimeSetting.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(runtimesetting.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func applySetting(s *Settings, key, value string) {
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Ignoring malformed runtime setting", "key", key, "value", value)
		return
	}
	switch key {
	case SettingRetryMaxAttempts:
		if n < 1 {
			n = 1
		}
		s.RetryMaxAttempts = n
	case SettingRetryTimeoutMs:
		if n > 0 {
			s.RetryTimeout = time.Duration(n) * time.Millisecond
		}
	case SettingMailMaxMessages:
		if n > 0 {
			s.MailMaxMessages = n
		}
	case SettingMailSummaryTriggerToks:
		if n > 0 {
			s.MailSummaryTriggerTokens = n
		}
	case SettingMailAttachMaxCount:
		if n >= 0 {
			s.MailAttachmentsMaxCount = n
		}
	case SettingMailAttachMaxTextChars:
		if n > 0 {
			s.MailAttachmentsMaxTextChars = n
		}
	}
}
