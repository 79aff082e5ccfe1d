// Package config loads generator settings from defaults, an optional YAML
// file, EMOJI_GENERATOR_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"emoji-generator/internal/fetch"
	"emoji-generator/internal/gen"
)

// EnvPrefix prefixes environment overrides, e.g. EMOJI_GENERATOR_UPSTREAM_URL.
const EnvPrefix = "EMOJI_GENERATOR"

// Config keys.
const (
	KeyRoot            = "root"
	KeyUpstreamURL     = "upstream.url"
	KeyUpstreamTimeout = "upstream.timeout"
	KeyLocalMap        = "paths.local_map"
	KeyOrder           = "paths.order"
	KeyLexicon         = "paths.lexicon"
	KeyTips            = "paths.tips"
	KeyLogLevel        = "log.level"
	KeyLogFile         = "log.file"
)

// Config holds all generator settings. Paths are absolute after Load.
type Config struct {
	Root     string   `mapstructure:"root"`
	Upstream Upstream `mapstructure:"upstream"`
	Paths    Paths    `mapstructure:"paths"`
	Log      Log      `mapstructure:"log"`
}

// Upstream describes where the upstream emoji map is fetched from.
type Upstream struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Paths are the files read and written, relative to Root unless absolute.
type Paths struct {
	LocalMap string `mapstructure:"local_map"`
	Order    string `mapstructure:"order"`
	Lexicon  string `mapstructure:"lexicon"`
	Tips     string `mapstructure:"tips"`
}

// Log configures logging.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// File, when set, sends JSON logs to a rotating file instead of stderr.
	File string `mapstructure:"file"`
}

// New returns a viper instance with defaults and environment overrides wired.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	outputs := gen.DefaultGeneratorConfig()

	v.SetDefault(KeyRoot, DefaultRoot())
	v.SetDefault(KeyUpstreamURL, fetch.DefaultURL)
	v.SetDefault(KeyUpstreamTimeout, fetch.DefaultTimeout)
	v.SetDefault(KeyLocalMap, "scripts/emoji-map.txt")
	v.SetDefault(KeyOrder, "scripts/emoji-order.txt")
	v.SetDefault(KeyLexicon, outputs.LexiconPath)
	v.SetDefault(KeyTips, outputs.TipsPath)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
}

// ReadFile merges the YAML config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return nil
}

// Load decodes v into a Config, resolves paths against the root and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", cfg.Root, err)
	}

	cfg.Root = root
	cfg.Paths.LocalMap = cfg.Resolve(cfg.Paths.LocalMap)
	cfg.Paths.Order = cfg.Resolve(cfg.Paths.Order)
	cfg.Paths.Lexicon = cfg.Resolve(cfg.Paths.Lexicon)
	cfg.Paths.Tips = cfg.Resolve(cfg.Paths.Tips)

	if cfg.Log.File != "" {
		cfg.Log.File = cfg.Resolve(cfg.Log.File)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve returns p joined to the root unless it is already absolute.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.Root, p)
}

// Validate checks that required settings are present and well formed.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.Upstream.URL)

	switch {
	case c.Upstream.URL == "":
		errs = append(errs, errors.New("upstream.url is required"))
	case err != nil:
		errs = append(errs, fmt.Errorf("upstream.url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("upstream.url: unsupported scheme %q", u.Scheme))
	}

	if c.Upstream.Timeout < 0 {
		errs = append(errs, fmt.Errorf("upstream.timeout must not be negative, got %s", c.Upstream.Timeout))
	}

	if c.Paths.Lexicon == "" {
		errs = append(errs, errors.New("paths.lexicon is required"))
	}

	if c.Paths.Tips == "" {
		errs = append(errs, errors.New("paths.tips is required"))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

// DefaultRoot is the parent of the directory holding the executable,
// or the working directory when running from a temporary build (go run).
func DefaultRoot() string {
	wd, _ := os.Getwd()

	exe, err := os.Executable()
	if err != nil {
		return wd
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	if tmp, err := filepath.EvalSymlinks(os.TempDir()); err == nil && strings.HasPrefix(exe, tmp) {
		return wd
	}

	return filepath.Dir(filepath.Dir(exe))
}
