// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config holds the run options of the seed command and the optional
// settings file kept in the XDG config dir.
// Options are built once at startup from parsed flags and passed down; nothing
// reads flag state after that.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dadbod/seed/internal/network"
	"dadbod/seed/internal/xdg"

	"github.com/BurntSushi/toml"
	"github.com/pterm/pterm"
)

// DefaultKeyFile is the key material file expected in the working directory.
const DefaultKeyFile = "keys.json"

// Options describes a single seeding run.
type Options struct {
	// Network is the Chainweb environment selected by the -m flag.
	Network network.Profile
	// Send enables broadcasting after the local preview.
	Send bool
	// KeyFile is the path of the key material file.
	KeyFile string
	// UseKeychain loads key material from the OS keychain instead of KeyFile.
	UseKeychain bool
	// Settings carries the transaction and transport tuning.
	Settings Settings
}

// NewOptions builds run options from flag presence. Flag values are ignored:
// -m and -s only count if they were given.
func NewOptions(mainnetPresent, sendPresent bool, keyFile string, useKeychain bool, settings Settings) Options {
	if keyFile == "" {
		keyFile = DefaultKeyFile
	}
	return Options{
		Network:     network.Select(mainnetPresent),
		Send:        sendPresent,
		KeyFile:     keyFile,
		UseKeychain: useKeychain,
		Settings:    settings,
	}
}

// Settings holds non-secret tuning for transactions and HTTP calls.
type Settings struct {
	GasLimit int64
	GasPrice float64
	// TTL is the transaction time-to-live in seconds.
	TTL int64
	// Timeout bounds each HTTP request to Chainweb.
	Timeout time.Duration
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		GasLimit: 10000,
		GasPrice: 0.0000001,
		TTL:      600,
		Timeout:  30 * time.Second,
	}
}

// fileSettings is the config.toml key mapping.
type fileSettings struct {
	GasLimit       int64   `toml:"gas_limit"`
	GasPrice       float64 `toml:"gas_price"`
	TTL            int64   `toml:"ttl"`
	TimeoutSeconds int64   `toml:"timeout_seconds"`
}

// SettingsPath returns the path of config.toml in the XDG config dir. The
// directory is not created.
func SettingsPath() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadSettings reads config.toml from the XDG config dir. A missing file, or
// a config dir that cannot be resolved, returns defaults.
func LoadSettings() (Settings, error) {
	p, err := SettingsPath()
	if err != nil {
		pterm.Debug.Printf("no config dir (%v), using default settings\n", err)
		return DefaultSettings(), nil
	}
	return LoadSettingsFile(p)
}

// LoadSettingsFile reads settings from path, overlaying only the keys it defines
// onto the defaults. A missing file returns defaults.
func LoadSettingsFile(path string) (Settings, error) {
	s := DefaultSettings()

	var raw fileSettings
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("load settings: %w", err)
	}

	if meta.IsDefined("gas_limit") {
		if raw.GasLimit <= 0 {
			return s, fmt.Errorf("load settings: gas_limit must be positive, got %d", raw.GasLimit)
		}
		s.GasLimit = raw.GasLimit
	}
	if meta.IsDefined("gas_price") {
		if raw.GasPrice <= 0 {
			return s, fmt.Errorf("load settings: gas_price must be positive, got %v", raw.GasPrice)
		}
		s.GasPrice = raw.GasPrice
	}
	if meta.IsDefined("ttl") {
		if raw.TTL <= 0 {
			return s, fmt.Errorf("load settings: ttl must be positive, got %d", raw.TTL)
		}
		s.TTL = raw.TTL
	}
	if meta.IsDefined("timeout_seconds") {
		if raw.TimeoutSeconds <= 0 {
			return s, fmt.Errorf("load settings: timeout_seconds must be positive, got %d", raw.TimeoutSeconds)
		}
		s.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	return s, nil
}
