// Package config loads the batch-lookup configuration consumed by the scan
// subcommand: a list of vaults to open and where each one's passphrase can
// be found.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level batch configuration document.
type Config struct {
	Vaults []VaultConfig `yaml:"vaults"`
}

// VaultConfig names one PWS3 file and how to obtain its passphrase. At most
// one of PassphraseEnv or PassphraseFile may be set; a vault with neither
// falls back to an interactive prompt.
type VaultConfig struct {
	Path           string `yaml:"path"`
	Label          string `yaml:"label,omitempty"`
	PassphraseEnv  string `yaml:"passphrase_env,omitempty"`
	PassphraseFile string `yaml:"passphrase_file,omitempty"`
}

// Load reads and validates the YAML configuration at path. Paths within the
// document that are relative are resolved against the config file's
// directory, not the process's working directory.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.resolvePaths(path)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Vaults) == 0 {
		return fmt.Errorf("config.vaults must list at least one vault")
	}
	for i, v := range c.Vaults {
		if strings.TrimSpace(v.Path) == "" {
			return fmt.Errorf("config.vaults[%d].path is required", i)
		}
		if v.PassphraseEnv != "" && v.PassphraseFile != "" {
			return fmt.Errorf("config.vaults[%d]: passphrase_env and passphrase_file are mutually exclusive", i)
		}
		if v.PassphraseFile != "" {
			if err := validateReadableFile(v.PassphraseFile, fmt.Sprintf("config.vaults[%d].passphrase_file", i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Config) resolvePaths(configPath string) {
	configDir := filepath.Dir(configPath)
	for i := range c.Vaults {
		c.Vaults[i].Path = resolvePath(configDir, c.Vaults[i].Path)
		c.Vaults[i].PassphraseFile = resolvePath(configDir, c.Vaults[i].PassphraseFile)
	}
}

func resolvePath(baseDir, path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || filepath.IsAbs(trimmed) {
		return trimmed
	}
	return filepath.Clean(filepath.Join(baseDir, trimmed))
}

// ResolvePassphrase returns the vault's passphrase from its configured
// source (environment variable or file). A file's contents have trailing
// CR/LF characters removed; an environment variable's value is returned
// unchanged. It returns an empty string and no error when neither source is configured,
// signaling the caller should prompt interactively.
func (v *VaultConfig) ResolvePassphrase() (string, error) {
	if v.PassphraseEnv != "" {
		val, ok := os.LookupEnv(v.PassphraseEnv)
		if !ok {
			return "", fmt.Errorf("environment variable %s is not set", v.PassphraseEnv)
		}
		return val, nil
	}
	if v.PassphraseFile != "" {
		content, err := os.ReadFile(v.PassphraseFile)
		if err != nil {
			return "", fmt.Errorf("read passphrase file: %w", err)
		}
		return strings.TrimRight(string(content), "\r\n"), nil
	}
	return "", nil
}

func validateReadableFile(path string, field string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s must point to a file, got directory", field)
	}
	return nil
}
