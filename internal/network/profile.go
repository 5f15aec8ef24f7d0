// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package network holds the Chainweb environments the seeder can target.
package network

import (
	"fmt"
	"strings"
)

// Profile selects a Chainweb environment and the chain within it.
type Profile struct {
	Name      string
	BaseURL   string
	NetworkID string
	ChainID   string
}

var (
	// Mainnet is the production Chainweb network.
	Mainnet = Profile{
		Name:      "mainnet",
		BaseURL:   "https://api.chainweb.com",
		NetworkID: "mainnet01",
		ChainID:   "1",
	}
	// Testnet is the public Chainweb test network.
	Testnet = Profile{
		Name:      "testnet",
		BaseURL:   "https://api.testnet.chainweb.com",
		NetworkID: "testnet04",
		ChainID:   "1",
	}
)

// Select returns Mainnet when the mainnet flag was given at all and Testnet otherwise.
// Only presence counts: the flag's value, even an empty one, is never inspected.
func Select(mainnetFlagPresent bool) Profile {
	if mainnetFlagPresent {
		return Mainnet
	}
	return Testnet
}

// PactURL returns the Pact API endpoint for the given action (local, send, poll, ...).
func (p Profile) PactURL(action string) string {
	return fmt.Sprintf("%s/chainweb/0.0/%s/chain/%s/pact/api/v1/%s",
		strings.TrimRight(p.BaseURL, "/"), p.NetworkID, p.ChainID, action)
}

// String renders the profile on one line for the run banner.
func (p Profile) String() string {
	return fmt.Sprintf("%s (base_url=%s network_id=%s chain_id=%s)", p.Name, p.BaseURL, p.NetworkID, p.ChainID)
}
