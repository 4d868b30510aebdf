// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

// Package crypto implements the keychain that protects the cached panel
// API key at rest. The key is sealed with AES-256-GCM under a key derived
// from a machine-specific secret, so copying the local database file to
// another machine does not expose the credential.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChainService seals and unseals small secrets for at-rest storage.
type KeyChainService interface {
	// Seal encrypts plaintext and returns a base64 blob safe to persist
	// in the local store.
	Seal(plaintext string) (string, error)

	// Unseal reverses Seal. It fails if the blob is corrupted or was
	// sealed on a different machine.
	Unseal(sealed string) (string, error)
}
