package config

// Provider modes.
const (
	// ProviderModeStub selects the deterministic in-process provider.
	// No external service required; intended for development and tests.
	ProviderModeStub = "stub"

	// ProviderModeGRPC selects the gRPC provider backed by the LLM service.
	ProviderModeGRPC = "grpc"
)

// ProviderConfig selects and configures the LLM provider implementation.
type ProviderConfig struct {
	// Mode is "stub" or "grpc".
	Mode string `yaml:"mode"`

	// Addr is the LLM service address for grpc mode.
	Addr string `yaml:"addr"`

	// Model is the default generation model identifier.
	Model string `yaml:"model"`

	// MailModel is the default model for mail reply generation.
	// Falls back to Model when empty.
	MailModel string `yaml:"mail_model"`
}

// DefaultProviderConfig returns the built-in provider defaults.
func DefaultProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		Mode:  ProviderModeStub,
		Model: "lumen-default",
	}
}
