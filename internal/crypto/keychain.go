// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/argon2"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	machineSecret []byte
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		machineSecret: machineSecret(),
	}
}

// machineSecret derives a stable per-machine secret from the hostname and
// the user's home directory. Not a hardware-bound secret, but enough to
// keep the sealed API key from being portable as a plain file copy.
func machineSecret() []byte {
	host, _ := os.Hostname()
	home, _ := os.UserHomeDir()
	return []byte(host + "|" + home + "|coindesk")
}

// Seal implements [KeyChainService]. It derives a 256-bit key from the
// machine secret and a fresh random salt, then wraps plaintext with
// AES-256-GCM. Layout of the sealed blob: salt ‖ nonce ‖ ciphertext,
// base64-encoded for safe storage in the local store.
func (k *keyChainService) Seal(plaintext string) (string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	gcm, err := k.newGCM(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	blob := append(salt, nonce...)
	blob = append(blob, gcm.Seal(nil, nonce, []byte(plaintext), nil)...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Unseal implements [KeyChainService]. It splits the blob produced by
// [keyChainService.Seal] back into salt, nonce, and ciphertext and
// decrypts. An authentication-tag mismatch almost always means the blob
// was sealed on a different machine.
func (k *keyChainService) Unseal(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("decode sealed blob: %w", err)
	}
	if len(blob) < 16 {
		return "", fmt.Errorf("sealed blob too short")
	}

	salt, rest := blob[:16], blob[16:]
	gcm, err := k.newGCM(salt)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", fmt.Errorf("sealed blob too short")
	}

	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("unseal: %w", err)
	}

	return string(plaintext), nil
}

func (k *keyChainService) newGCM(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(
		k.machineSecret,
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
