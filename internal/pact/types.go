// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package pact builds signed Pact commands for submission to Chainweb.
//
// A command is the JSON serialization of a CommandBody, the blake2b-256 hash
// of that serialization, and one signature over the hash per declared signer.
package pact

import (
	"strconv"
	"strings"
)

// Decimal is a number that Pact must read as a decimal.
// Pact parses 9001 as an integer and 9001.0 as a decimal, so the JSON form
// always carries a fractional part and never uses exponent notation.
type Decimal float64

// MarshalJSON implements json.Marshaler.
func (d Decimal) MarshalJSON() ([]byte, error) {
	s := strconv.FormatFloat(float64(d), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return []byte(s), nil
}

// Capability scopes what a signature may authorize, e.g. (coin.GAS).
type Capability struct {
	Name string `json:"name"`
	Args []any  `json:"args"`
}

// Signer declares a key that must sign the command.
type Signer struct {
	PubKey string       `json:"pubKey"`
	Scheme string       `json:"scheme,omitempty"`
	Clist  []Capability `json:"clist,omitempty"`
}

// UnrestrictedSigner declares pubKey as a signer with no capability list.
//
// SECURITY: a signature without capabilities is unscoped. The transaction can
// do anything the key is authorized to do on-chain, including spending the
// account's KDA for gas or anything else the code asks for.
func UnrestrictedSigner(pubKey string) Signer {
	return Signer{PubKey: pubKey}
}

// ExecPayload runs Code with Data available to read-msg.
type ExecPayload struct {
	Data map[string]any `json:"data"`
	Code string         `json:"code"`
}

// Payload is the transaction body. Only exec payloads are built here.
type Payload struct {
	Exec *ExecPayload `json:"exec"`
}

// Meta is the public chain metadata of a command.
type Meta struct {
	ChainID      string  `json:"chainId"`
	Sender       string  `json:"sender"`
	GasLimit     int64   `json:"gasLimit"`
	GasPrice     Decimal `json:"gasPrice"`
	TTL          int64   `json:"ttl"`
	CreationTime int64   `json:"creationTime"`
}

// CommandBody is the signed portion of a command.
type CommandBody struct {
	NetworkID string   `json:"networkId"`
	Payload   Payload  `json:"payload"`
	Signers   []Signer `json:"signers"`
	Meta      Meta     `json:"meta"`
	Nonce     string   `json:"nonce"`
}

// Sig is a hex ed25519 signature over the command hash.
type Sig struct {
	Sig string `json:"sig"`
}

// Command is a signed command as accepted by the /local and /send endpoints.
type Command struct {
	Hash string `json:"hash"`
	Sigs []Sig  `json:"sigs"`
	Cmd  string `json:"cmd"`
}
