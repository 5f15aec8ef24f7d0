// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keypair loads the operator's ed25519 key material and signs Pact
// command hashes with it.
//
// Key material is a JSON document holding the hex public key and the hex
// 32-byte secret seed:
//
//	{"public": "<64 hex chars>", "secret": "<64 hex chars>"}
package keypair

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// KeyPair is an ed25519 signing key with its hex-encoded public half.
type KeyPair struct {
	public  string
	private ed25519.PrivateKey
}

// file is the on-disk key material layout.
type file struct {
	Public string `json:"public"`
	Secret string `json:"secret"`
}

// Load reads key material from path.
func Load(path string) (*KeyPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	return Parse(data)
}

// Parse decodes key material and checks that the public key matches the secret.
func Parse(data []byte) (*KeyPair, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse key material: %w", err)
	}
	if strings.TrimSpace(f.Secret) == "" {
		return nil, errors.New("key material: missing secret")
	}
	seed, err := ParseSeedHex(f.Secret)
	if err != nil {
		return nil, fmt.Errorf("key material: secret: %w", err)
	}
	kp := FromSeed(seed)
	if pub := strings.ToLower(strings.TrimSpace(f.Public)); pub != "" && pub != kp.public {
		return nil, errors.New("key material: public key does not match secret")
	}
	return kp, nil
}

// ParseSeedHex decodes a hex ed25519 seed, accepting an optional 0x prefix.
func ParseSeedHex(seedHex string) ([]byte, error) {
	seedHex = strings.TrimSpace(seedHex)
	seedHex = strings.TrimPrefix(seedHex, "0x")
	data, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, err
	}
	if len(data) != ed25519.SeedSize {
		return nil, fmt.Errorf("expected seed length of %d bytes, got %d", ed25519.SeedSize, len(data))
	}
	return data, nil
}

// FromSeed derives a key pair from a 32-byte seed.
func FromSeed(seed []byte) *KeyPair {
	priv := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{
		public:  hex.EncodeToString(priv.Public().(ed25519.PublicKey)),
		private: priv,
	}
}

// PublicKey returns the hex-encoded public key.
func (k *KeyPair) PublicKey() string { return k.public }

// Account returns the principal k: account owned by this key.
func (k *KeyPair) Account() string { return "k:" + k.public }

// Sign signs msg (a command hash) and returns the hex signature.
func (k *KeyPair) Sign(msg []byte) string {
	return hex.EncodeToString(ed25519.Sign(k.private, msg))
}

// Marshal encodes the key pair back into key material.
func (k *KeyPair) Marshal() ([]byte, error) {
	return json.Marshal(file{
		Public: k.public,
		Secret: hex.EncodeToString(k.private.Seed()),
	})
}
