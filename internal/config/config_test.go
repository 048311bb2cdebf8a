package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadValidConfigResolvesRelativePaths(t *testing.T) {
	tmp := t.TempDir()
	passphrasePath := filepath.Join(tmp, "passphrase.txt")
	if err := os.WriteFile(passphrasePath, []byte("hunter2\n"), 0o644); err != nil {
		t.Fatalf("write passphrase file: %v", err)
	}

	cfgPath := filepath.Join(tmp, "config.yaml")
	cfgYAML := `
vaults:
  - path: "personal.psafe3"
    label: personal
    passphrase_env: PWSAFE_PERSONAL_PASSPHRASE
  - path: "work.psafe3"
    label: work
    passphrase_file: "passphrase.txt"
`
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Vaults) != 2 {
		t.Fatalf("want 2 vaults, got %d", len(cfg.Vaults))
	}
	wantPath := filepath.Join(tmp, "personal.psafe3")
	if cfg.Vaults[0].Path != wantPath {
		t.Fatalf("expected resolved path %q, got %q", wantPath, cfg.Vaults[0].Path)
	}
	if cfg.Vaults[1].PassphraseFile != passphrasePath {
		t.Fatalf("expected resolved passphrase file %q, got %q", passphrasePath, cfg.Vaults[1].PassphraseFile)
	}
}

func TestLoadRejectsEmptyVaultList(t *testing.T) {
	cfgPath := writeConfig(t, "vaults: []\n")
	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "at least one vault") {
		t.Fatalf("expected empty vault list error, got %v", err)
	}
}

func TestLoadRejectsConflictingPassphraseSources(t *testing.T) {
	cfgPath := writeConfig(t, `
vaults:
  - path: "x.psafe3"
    passphrase_env: FOO
    passphrase_file: "foo.txt"
`)
	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("expected mutually-exclusive error, got %v", err)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	cfgPath := writeConfig(t, `
vaults:
  - path: "x.psafe3"
    bogus_field: true
`)
	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestResolvePassphraseFromEnv(t *testing.T) {
	t.Setenv("PWSAFE_TEST_PASSPHRASE", "s3cr3t")
	v := VaultConfig{PassphraseEnv: "PWSAFE_TEST_PASSPHRASE"}
	got, err := v.ResolvePassphrase()
	if err != nil {
		t.Fatalf("ResolvePassphrase: %v", err)
	}
	if got != "s3cr3t" {
		t.Errorf("got %q, want %q", got, "s3cr3t")
	}
}

func TestResolvePassphraseMissingEnv(t *testing.T) {
	v := VaultConfig{PassphraseEnv: "PWSAFE_DEFINITELY_UNSET_VAR"}
	_, err := v.ResolvePassphrase()
	if err == nil {
		t.Fatal("expected error for unset environment variable")
	}
}

func TestResolvePassphraseEmptyMeansPrompt(t *testing.T) {
	v := VaultConfig{}
	got, err := v.ResolvePassphrase()
	if err != nil || got != "" {
		t.Fatalf("got (%q, %v), want (\"\", nil)", got, err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}
