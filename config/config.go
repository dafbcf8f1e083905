// Package config loads fintrack settings.
//
// Settings are layered, each layer overriding the previous one: built-in
// defaults, a YAML file, a .env file, then FINTRACK_* environment variables.
// Command-line flags are applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Directory and file name of the config file under the XDG config home.
const (
	AppDir   = "fintrack"
	FileName = "config.yml"
)

// Defaults.
const (
	DefaultLedgerFile = "transactions.csv"
	DefaultCurrency   = "USD"
	DefaultStyle      = "auto"
)

// Environment variables overriding the config file.
const (
	EnvLedgerFile = "FINTRACK_LEDGER_FILE"
	EnvCurrency   = "FINTRACK_CURRENCY"
	EnvStyle      = "FINTRACK_STYLE"
	EnvVerbose    = "FINTRACK_VERBOSE"
)

// Config holds the user settings.
type Config struct {
	LedgerFile string `yaml:"ledger_file"`
	Currency   string `yaml:"currency"`
	// Style is a glamour style name: "auto", "dark", "light", "notty"...
	Style   string `yaml:"style"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LedgerFile: DefaultLedgerFile,
		Currency:   DefaultCurrency,
		Style:      DefaultStyle,
	}
}

// Load builds the settings.
//
// If file is empty the config file is searched for in the XDG config
// directories, and it is fine if there is none. An explicit file must exist.
// envFile is the .env file to read, missing ones are ignored.
//
// It returns the settings and the path of the config file actually read, if
// any.
func Load(file, envFile string) (Config, string, error) {
	conf := Default()

	path := file
	if path == "" {
		p, err := xdg.SearchConfigFile(filepath.Join(AppDir, FileName))
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := conf.readFile(path); err != nil {
			return conf, "", err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return conf, path, fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
	}

	if err := conf.applyEnv(); err != nil {
		return conf, path, err
	}
	return conf, path, nil
}

// DefaultPath returns where the config file is expected to be created.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppDir, FileName)
}

// readFile overrides settings with the ones set in a YAML file.
func (c *Config) readFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLedgerFile); v != "" {
		c.LedgerFile = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		c.Currency = v
	}
	if v := os.Getenv(EnvStyle); v != "" {
		c.Style = v
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvVerbose, v, err)
		}
		c.Verbose = b
	}
	return nil
}

// Encode writes the settings as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// Save writes the settings as YAML, creating parent directories as needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config %q: %w", path, err)
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write config %q: %w", path, err)
	}
	return nil
}
