package policy

import (
	"context"
	"fmt"
	"strings"
)

// Spawn modes.
const (
	ModeAuto = "auto" // spawn everything not blocked (default)
	ModeDeny = "deny" // refuse every spawn
)

// Policy filters spawn requests by callable name.
//
//   - Mode controls the high-level behaviour (auto / deny).
//   - AllowList, BlockList allow coarse filtering in auto mode.
//
// A nil *Policy admits everything.
type Policy struct {
	Mode      string
	AllowList []string
	BlockList []string
}

// Config represents the serialisable form of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty" toml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty" toml:"block,omitempty"`
}

// Validate checks the mode name.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch strings.ToLower(c.Mode) {
	case "", ModeAuto, ModeDeny:
		return nil
	}
	return fmt.Errorf("unsupported policy mode: %v", c.Mode)
}

// FromConfig converts a stored Config back to a runtime Policy.
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      c.Mode,
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
}

// IsAllowed evaluates the mode and the lists against a callable name. Names
// match case-insensitively; BlockList wins over AllowList and an empty
// AllowList admits everything.
func (p *Policy) IsAllowed(name string) bool {
	if p == nil {
		return true
	}
	if strings.EqualFold(p.Mode, ModeDeny) {
		return false
	}
	normalized := strings.ToLower(name)
	for _, b := range p.BlockList {
		if normalized == strings.ToLower(b) {
			return false
		}
	}
	if len(p.AllowList) == 0 {
		return true
	}
	for _, a := range p.AllowList {
		if normalized == strings.ToLower(a) {
			return true
		}
	}
	return false
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx; it takes precedence over the launcher's
// own policy for spawns made with that context.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy from ctx, or nil.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
