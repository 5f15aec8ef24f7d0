// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package pact

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
)

// KeySigner signs command hashes. Implemented by keypair.KeyPair.
type KeySigner interface {
	PublicKey() string
	Sign(msg []byte) string
}

// Settings carries the network and gas parameters stamped into every command.
type Settings struct {
	NetworkID string
	ChainID   string
	GasLimit  int64
	GasPrice  float64
	TTL       int64
}

// Builder builds commands signed by a single key.
type Builder struct {
	settings Settings
	key      KeySigner
	// now is replaced in tests.
	now func() time.Time
}

// NewBuilder returns a builder that signs with key.
func NewBuilder(settings Settings, key KeySigner) *Builder {
	return &Builder{settings: settings, key: key, now: time.Now}
}

// Build serializes the command body, hashes it, and signs the hash.
// Every signer must be the builder's own key; there is no way to collect
// signatures from other parties here.
func (b *Builder) Build(ctx context.Context, sender string, payload Payload, signers []Signer) (*Command, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if payload.Exec == nil {
		return nil, errors.New("build command: payload has no exec section")
	}
	for _, s := range signers {
		if s.PubKey != b.key.PublicKey() {
			return nil, fmt.Errorf("build command: no key for signer %s", s.PubKey)
		}
	}

	now := b.now()
	body := CommandBody{
		NetworkID: b.settings.NetworkID,
		Payload:   payload,
		Signers:   signers,
		Meta: Meta{
			ChainID:  b.settings.ChainID,
			Sender:   sender,
			GasLimit: b.settings.GasLimit,
			GasPrice: Decimal(b.settings.GasPrice),
			TTL:      b.settings.TTL,
			// Back-dated so a node whose clock runs slightly behind still accepts it.
			CreationTime: now.Add(-15 * time.Second).Unix(),
		},
		Nonce: now.UTC().Format(time.RFC3339Nano),
	}
	cmd, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("build command: %w", err)
	}

	hash := blake2b.Sum256(cmd)
	sigs := make([]Sig, len(signers))
	for i := range signers {
		sigs[i] = Sig{Sig: b.key.Sign(hash[:])}
	}
	return &Command{
		Hash: HashString(hash[:]),
		Sigs: sigs,
		Cmd:  string(cmd),
	}, nil
}

// HashString encodes a command hash the way Chainweb reports request keys.
func HashString(hash []byte) string {
	return base64.RawURLEncoding.EncodeToString(hash)
}

// Verify checks that c.Hash is the blake2b-256 hash of c.Cmd.
func (c *Command) Verify() error {
	hash := blake2b.Sum256([]byte(c.Cmd))
	if got := HashString(hash[:]); got != c.Hash {
		return fmt.Errorf("command hash mismatch: have %s, computed %s", c.Hash, got)
	}
	return nil
}
