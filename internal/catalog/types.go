// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package catalog defines the dadbod collection catalog that is registered on-chain.
// It contains the collection types in the shape the free.dadbod contract reads from
// transaction data, the builder for flat-priced item collections, and the fixed
// catalog submitted by the seed command.
package catalog

import "dadbod/seed/internal/pact"

// Status is the lifecycle tag of a collection.
type Status string

const (
	StatusOpen          Status = "OPEN"
	StatusClosed        Status = "CLOSED"
	StatusWhitelistFree Status = "WHITELIST_FREE"
)

// Category distinguishes dadbod bodies from wearable items.
type Category string

const (
	CategoryBod  Category = "BOD"
	CategoryItem Category = "ITEM"
)

// Decimal is a number the contract reads as a Pact decimal.
type Decimal = pact.Decimal

// Tranche is one step of a collection's price schedule: once min-supply units
// have been minted, each further unit costs price.
type Tranche struct {
	MinSupply Decimal `json:"min-supply"`
	Price     Decimal `json:"price"`
}

// CollectionSpec describes one collection passed to create-collection.
// Tranches are kept in the order they were authored; their ordering is not validated.
type CollectionSpec struct {
	Name        string         `json:"name"`
	Status      Status         `json:"status"`
	StartDate   string         `json:"start-date"`
	TotalSupply Decimal        `json:"total-supply"`
	Type        Category       `json:"type"`
	Info        map[string]any `json:"info"`
	Tranches    []Tranche      `json:"tranches"`
}
