package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lumen.yaml"), []byte(content), 0o644))
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Initialize(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, DefaultQueueConfig(), cfg.Queue)
		assert.Equal(t, DefaultProviderConfig(), cfg.Provider)
	})

	t.Run("yaml overrides defaults and keeps the rest", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
queue:
  poll_interval: 2s
provider:
  model: custom-model
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, cfg.Queue.PollInterval)
		assert.Equal(t, DefaultQueueConfig().MaxRunTime, cfg.Queue.MaxRunTime)
		assert.Equal(t, "custom-model", cfg.Provider.Model)
		assert.Equal(t, ProviderModeStub, cfg.Provider.Mode)
	})

	t.Run("grpc mode requires an address", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
provider:
  mode: grpc
`)
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider.addr is required")
	})

	t.Run("grpc mode with address validates", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
provider:
  mode: grpc
  addr: localhost:9090
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, ProviderModeGRPC, cfg.Provider.Mode)
		assert.Equal(t, "localhost:9090", cfg.Provider.Addr)
	})

	t.Run("unknown provider mode is rejected", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
provider:
  mode: psychic
`)
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider.mode")
	})

	t.Run("non-positive poll interval is rejected", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
queue:
  poll_interval: -1s
`)
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "poll_interval")
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "queue: [not a mapping")
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
	})

	t.Run("environment variables expand in values", func(t *testing.T) {
		t.Setenv("LUMEN_TEST_ADDR", "llm.internal:7443")
		dir := t.TempDir()
		writeConfig(t, dir, `
provider:
  mode: grpc
  addr: "{{.LUMEN_TEST_ADDR}}"
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, "llm.internal:7443", cfg.Provider.Addr)
	})
}

func TestExpandEnv(t *testing.T) {
	t.Run("expands known variables", func(t *testing.T) {
		t.Setenv("LUMEN_TEST_VALUE", "secret")
		out := ExpandEnv([]byte("password: {{.LUMEN_TEST_VALUE}}"))
		assert.Equal(t, "password: secret", string(out))
	})

	t.Run("missing variables expand to empty", func(t *testing.T) {
		out := ExpandEnv([]byte("addr: {{.LUMEN_DEFINITELY_UNSET}}"))
		assert.Equal(t, "addr: ", string(out))
	})

	t.Run("dollar signs pass through untouched", func(t *testing.T) {
		in := []byte("password: pa$$word")
		assert.Equal(t, in, ExpandEnv(in))
	})
}
