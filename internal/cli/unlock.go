package cli

import (
	"fmt"
	"os"

	"github.com/barnettlynn/pwsafe3/pkg/pwsafe3"
	"golang.org/x/term"
)

// resolvePassphrase returns the passphrase from the named environment
// variable or file, falling back to an interactive raw-mode prompt on
// os.Stdin when neither is set.
func resolvePassphrase(passphraseEnv, passphraseFile string) (string, error) {
	if passphraseEnv != "" {
		val, ok := os.LookupEnv(passphraseEnv)
		if !ok {
			return "", fmt.Errorf("environment variable %s is not set", passphraseEnv)
		}
		return val, nil
	}
	if passphraseFile != "" {
		content, err := os.ReadFile(passphraseFile)
		if err != nil {
			return "", fmt.Errorf("read passphrase file: %w", err)
		}
		return string(content), nil
	}
	return promptPassphrase()
}

// promptPassphrase reads a passphrase from the terminal with echo
// disabled.
func promptPassphrase() (string, error) {
	fmt.Fprint(os.Stderr, "Passphrase: ")
	bytePw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return string(bytePw), nil
}

// openVault resolves a passphrase and unlocks the vault at path, exiting
// the process with a diagnostic message on any failure.
func openVault(path, passphraseEnv, passphraseFile string) *pwsafe3.Database {
	passphrase, err := resolvePassphrase(passphraseEnv, passphraseFile)
	if err != nil {
		fatalf("pwsafe-dump: %v", err)
	}

	db, err := unlockQuiet(path, passphrase)
	if err != nil {
		fatalf("pwsafe-dump: %s: %v", path, err)
	}
	return db
}

// unlockQuiet unlocks path with passphrase and returns any error to the
// caller instead of exiting the process, for callers (scan) that continue
// past a single vault's failure.
func unlockQuiet(path, passphrase string) (*pwsafe3.Database, error) {
	return pwsafe3.UnlockFile(path, passphrase)
}
