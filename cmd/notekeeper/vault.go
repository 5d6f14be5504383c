package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/term"

	"github.com/ainotebuddy/notekeeper/internal/store"
	"github.com/ainotebuddy/notekeeper/internal/vault"
)

// unlockVault prompts for the vault passphrase and installs the cipher
// on the service. The key derivation salt lives next to the databases
// and is created on first use.
func unlockVault(a *app) error {
	salt, err := loadOrCreateSalt(a.cfg.Vault.SaltPath)
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stderr, "Vault passphrase: ")
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}

	key, err := vault.DeriveKey(string(pass), salt)
	if err != nil {
		return err
	}
	cipher, err := vault.NewCipher(key)
	if err != nil {
		return err
	}

	a.svc.UnlockVault(cipher)
	return nil
}

// maybeUnlockVault unlocks the vault only when the target note is a
// vault note. Missing notes are left for the service to report.
func maybeUnlockVault(ctx context.Context, a *app, noteID string) error {
	n, err := a.notes.Get(ctx, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !n.InVault {
		return nil
	}
	return unlockVault(a)
}

func loadOrCreateSalt(path string) ([]byte, error) {
	salt, err := os.ReadFile(path)
	if err == nil {
		if len(salt) != vault.SaltSize {
			return nil, fmt.Errorf("vault salt at %s is corrupt", path)
		}
		return salt, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read vault salt: %w", err)
	}

	salt, err = vault.GenerateSalt()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, salt, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write vault salt: %w", err)
	}
	return salt, nil
}
