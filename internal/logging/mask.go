// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It masks key material in messages before they reach the terminal, so a
// failing key file or keychain item never echoes the operator's secret.
package logging

import (
	"regexp"
)

var (
	reSecretJSON = regexp.MustCompile(`(?i)("secret"\s*:\s*")([^"]*)(")`)
	reSecretKV   = regexp.MustCompile(`(?i)((?:secret|private_?key|seed)=)([^\s;&]+)`)
	reBearer     = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._-]+)`)
	reLongHex    = regexp.MustCompile(`\b([0-9a-fA-F]{8})[0-9a-fA-F]{120}\b`)
)

// Mask replaces sensitive values in the input string with "***".
// Public keys (64 hex chars) are left readable; 128-char hex strings, the
// length of an expanded ed25519 private key, are truncated.
func Mask(s string) string {
	out := s
	out = reSecretJSON.ReplaceAllString(out, "$1***$3")
	out = reSecretKV.ReplaceAllString(out, "$1***")
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reLongHex.ReplaceAllString(out, "$1***")
	return out
}
