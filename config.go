package guard

import (
	"sync"
	"sync/atomic"

	"github.com/reoring/guard/i18n"
)

// CheckConfig is the process-wide configuration read by the diagnostic
// checks in package optional.
type CheckConfig struct {
	// FullCheck enables diagnostic-only checks. When false they return their
	// input without evaluating anything.
	FullCheck bool `yaml:"full_check" mapstructure:"full_check" json:"full_check"`
	// Language selects the built-in default message dictionary ("en", "ja").
	Language string `yaml:"language" mapstructure:"language" json:"language"`
}

// DefaultConfig returns the configuration in effect before Configure is
// called. FullCheck defaults to true unless built with the guard_release tag.
func DefaultConfig() CheckConfig {
	return CheckConfig{FullCheck: defaultFullCheck, Language: "en"}
}

var (
	fullCheck atomic.Bool
	language  atomic.Value // string
	configMu  sync.Mutex   // serializes writers only
)

func init() {
	cfg := DefaultConfig()
	fullCheck.Store(cfg.FullCheck)
	language.Store(cfg.Language)
}

// Configure installs cfg. Call it once during startup, before checks run;
// changing the configuration while checks execute is unsupported, although
// a concurrent reader observes either the old or the new value.
func Configure(cfg CheckConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	install(cfg)
}

func install(cfg CheckConfig) {
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	fullCheck.Store(cfg.FullCheck)
	language.Store(cfg.Language)
	i18n.SetLanguage(cfg.Language)
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() CheckConfig {
	return CheckConfig{FullCheck: fullCheck.Load(), Language: language.Load().(string)}
}

// FullCheck reports whether diagnostic-only checks are enabled.
func FullCheck() bool { return fullCheck.Load() }

// Cleanuper is the part of testing.TB used by Override.
type Cleanuper interface {
	Cleanup(func())
}

// Override installs cfg for the duration of a test and restores the previous
// configuration through tb.Cleanup. Tests using it must not run in parallel
// with tests that depend on the configuration.
func Override(tb Cleanuper, cfg CheckConfig) {
	configMu.Lock()
	prev := CurrentConfig()
	install(cfg)
	configMu.Unlock()
	tb.Cleanup(func() { Configure(prev) })
}
