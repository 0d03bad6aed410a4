// Package config loads guard.CheckConfig from YAML files and GUARD_*
// environment variables and installs it at startup.
package config

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/reoring/guard"
	"github.com/reoring/guard/i18n"
)

// Environment variables read by Load.
const (
	EnvPrefix    = "GUARD"
	EnvFullCheck = "GUARD_FULL_CHECK"
	EnvLanguage  = "GUARD_LANGUAGE"
)

const (
	keyFullCheck = "full_check"
	keyLanguage  = "language"
)

// ErrUnsupportedLanguage is returned for a language without a built-in
// dictionary.
var ErrUnsupportedLanguage = errors.New("config: unsupported language")

// file mirrors guard.CheckConfig with optional fields so a partial document
// only overrides what it names.
type file struct {
	FullCheck *bool   `yaml:"full_check"`
	Language  *string `yaml:"language"`
}

// Decode reads a single YAML document on top of guard.DefaultConfig.
// Unknown keys are rejected.
func Decode(r io.Reader) (guard.CheckConfig, error) {
	cfg := guard.DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return guard.CheckConfig{}, fmt.Errorf("decoding guard config: %w", err)
	}
	if f.FullCheck != nil {
		cfg.FullCheck = *f.FullCheck
	}
	if f.Language != nil {
		cfg.Language = *f.Language
	}
	return cfg, Validate(cfg)
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg guard.CheckConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding guard config: %w", err)
	}
	return enc.Close()
}

// Load layers guard.DefaultConfig, the optional file at path (any format
// viper understands) and GUARD_* environment variables, in increasing
// precedence.
func Load(path string) (guard.CheckConfig, error) {
	v := viper.New()
	def := guard.DefaultConfig()
	v.SetDefault(keyFullCheck, def.FullCheck)
	v.SetDefault(keyLanguage, def.Language)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return guard.CheckConfig{}, fmt.Errorf("reading guard config %s: %w", path, err)
		}
	}

	var cfg guard.CheckConfig
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.DecodeHookFuncType(languageHook),
		mapstructure.TextUnmarshallerHookFunc(),
	))); err != nil {
		return guard.CheckConfig{}, fmt.Errorf("decoding guard config: %w", err)
	}
	return cfg, Validate(cfg)
}

// languageHook normalizes language strings ("JA ", "ja") before they land
// in CheckConfig.Language.
func languageHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.String {
		return data, nil
	}
	s, ok := data.(string)
	if !ok {
		return data, nil
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}

// Validate rejects configurations that name an unknown language.
func Validate(cfg guard.CheckConfig) error {
	if cfg.Language != "" && !i18n.Supported(cfg.Language) {
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedLanguage, cfg.Language, strings.Join(i18n.Languages(), ", "))
	}
	return nil
}

// Apply loads the configuration like Load and installs it with
// guard.Configure. Call it once at startup.
func Apply(path string) (guard.CheckConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return guard.CheckConfig{}, err
	}
	guard.Configure(cfg)
	return cfg, nil
}
