// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain stores the operator's signing key material in the OS
// keychain/credential store, so it does not have to sit in a keys.json file
// next to the tool.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "dadbod-seed"

// KeyMaterial is the item holding the keys.json document.
const KeyMaterial = "operator_key_material"

// ErrNotFound is returned when no key material has been imported.
var ErrNotFound = errors.New("no key material in keychain; run 'dadbod-seed keys import' first")

// Manager provides thread-safe access to the key material item.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager opens the OS keyring.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewManagerWithRing wraps an already opened keyring.
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// openRing opens the OS keyring using native platform backends only; there is
// no file fallback, since that would just be keys.json with extra steps.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	case "linux":
		allowedBackends = []keyring.BackendType{keyring.SecretServiceBackend, keyring.KWalletBackend, keyring.PassBackend}
	default:
		return nil, errors.New("secure storage not supported on this OS")
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
		WinCredPrefix:   ServiceName,
	}
	return keyring.Open(cfg)
}

// SaveKeyMaterial stores the serialized key material.
func (m *Manager) SaveKeyMaterial(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Set(keyring.Item{
		Key:         KeyMaterial,
		Data:        data,
		Label:       "dadbod-seed operator key",
		Description: "ed25519 key material used to sign collection transactions",
	})
}

// LoadKeyMaterial returns the stored key material.
func (m *Manager) LoadKeyMaterial() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeyMaterial)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(it.Data) == 0 {
		return nil, ErrNotFound
	}
	return it.Data, nil
}

// ClearKeyMaterial removes the stored key material. Missing items are not an error.
func (m *Manager) ClearKeyMaterial() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(KeyMaterial); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
