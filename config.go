package threadstart

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/threadstart/internal/envexpr"
	"github.com/viant/threadstart/internal/logging"
	"github.com/viant/threadstart/policy"
	"github.com/viant/threadstart/service/sink"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the service configuration. It
// can be populated from YAML or JSON; LoadConfig starts from DefaultConfig so
// omitted fields keep their defaults.
type Config struct {
	Log        logging.Config `json:"log" yaml:"log" toml:"log"`
	Sink       string         `json:"sink,omitempty" yaml:"sink,omitempty" toml:"sink,omitempty"`
	MaxThreads int            `json:"maxThreads,omitempty" yaml:"maxThreads,omitempty" toml:"maxThreads,omitempty"`
	Events     EventsConfig   `json:"events" yaml:"events" toml:"events"`
	Tracing    TracingConfig  `json:"tracing" yaml:"tracing" toml:"tracing"`
	Policy     *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty" toml:"policy,omitempty"`
}

type EventsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	Buffer  int  `json:"buffer,omitempty" yaml:"buffer,omitempty" toml:"buffer,omitempty"`
}

type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	Service string `json:"service,omitempty" yaml:"service,omitempty" toml:"service,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	// Output is a file path; empty means stdout.
	Output string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() *Config {
	return &Config{
		Log:  logging.DefaultConfig(),
		Sink: sink.KindLog,
		Events: EventsConfig{
			Buffer: 256,
		},
		Tracing: TracingConfig{
			Service: "threadstart",
			Version: "0.1.0",
		},
	}
}

// Validate returns an error describing the first invalid setting, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.MaxThreads < 0 {
		return fmt.Errorf("maxThreads must be >= 0")
	}
	if c.Events.Buffer < 0 {
		return fmt.Errorf("events.buffer must be >= 0")
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok && c.Log.Level != "" {
		return fmt.Errorf("unsupported log level: %v", c.Log.Level)
	}
	switch strings.ToLower(c.Sink) {
	case "", sink.KindLog, sink.KindDiscard:
	default:
		return fmt.Errorf("unsupported sink: %v", c.Sink)
	}
	return c.Policy.Validate()
}

// LoadConfig reads a configuration from any afs supported URL. Files ending
// in .toml are decoded as TOML, everything else as YAML (or JSON).
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	if strings.EqualFold(path.Ext(URL), ".toml") {
		return DecodeConfigTOML(data)
	}
	return DecodeConfig(data)
}

// DecodeConfig expands ${env.KEY} references, parses YAML on top of
// DefaultConfig and validates the result.
func DecodeConfig(data []byte) (*Config, error) {
	return decodeConfig(data, yaml.Unmarshal)
}

// DecodeConfigTOML is DecodeConfig for TOML documents.
func DecodeConfigTOML(data []byte) (*Config, error) {
	return decodeConfig(data, toml.Unmarshal)
}

func decodeConfig(data []byte, unmarshal func([]byte, interface{}) error) (*Config, error) {
	cfg := DefaultConfig()
	if err := unmarshal([]byte(envexpr.Expand(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
