package config

import "time"

// QueueConfig contains worker loop configuration.
// These values control how orders are polled, claimed, and recovered.
type QueueConfig struct {
	// PollInterval is the base interval for checking queued orders.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MaxRunTime is how long an order may stay running before the next tick
	// forcibly requeues it. This is the crash-recovery window: a process that
	// died mid-run leaves a stale running row behind.
	MaxRunTime time.Duration `yaml:"max_run_time"`

	// LeaseTTL is the expiry applied when a pipeline acquires a scope lease.
	// Renewal is not automatic; the TTL must comfortably exceed a stage.
	LeaseTTL time.Duration `yaml:"lease_ttl"`

	// GracefulShutdownTimeout is the max time to wait for the active order
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		PollInterval:            500 * time.Millisecond,
		PollIntervalJitter:      100 * time.Millisecond,
		MaxRunTime:              5 * time.Minute,
		LeaseTTL:                60 * time.Second,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}
