// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import "strconv"

// StartDate is shared by every collection in the catalog.
const StartDate = "2022-11-30T00:00:00Z"

const (
	itemSupply    = 10000.0
	bodyItemCount = 16
)

// NewItem returns a closed ITEM collection with a single flat tranche priced at 1.0.
// info is stored as given.
func NewItem(name string, supply float64, info map[string]any) CollectionSpec {
	return CollectionSpec{
		Name:        name,
		Status:      StatusClosed,
		StartDate:   StartDate,
		TotalSupply: Decimal(supply),
		Type:        CategoryItem,
		Info:        info,
		Tranches: []Tranche{
			{MinSupply: 0.0, Price: 1.0},
		},
	}
}

// originalItemInfo is the info payload for the launch wearables.
func originalItemInfo(slot, itemID string) map[string]any {
	return map[string]any{
		"is-original": true,
		"type":        slot,
		"item-id":     itemID,
	}
}

// Default returns the launch catalog in submission order: the dadbod and
// whitelist collections, the hat, then clothing1 through clothing16.
func Default() []CollectionSpec {
	collections := []CollectionSpec{
		{
			Name:        "dadbod",
			Status:      StatusOpen,
			StartDate:   StartDate,
			TotalSupply: 9001.0,
			Type:        CategoryBod,
			Info:        map[string]any{"is-dadbod": true},
			Tranches: []Tranche{
				{MinSupply: 1000.0, Price: 10.0},
				{MinSupply: 2000.0, Price: 12.5},
				{MinSupply: 3000.0, Price: 15.0},
				{MinSupply: 4000.0, Price: 17.5},
				{MinSupply: 5000.0, Price: 20.0},
				{MinSupply: 6000.0, Price: 22.5},
				{MinSupply: 7000.0, Price: 25.0},
				{MinSupply: 8000.0, Price: 27.5},
				{MinSupply: 8500.0, Price: 30.0},
				// sold out
				{MinSupply: 9000.0, Price: 0.0},
			},
		},
		{
			Name:        "dadbod-wl",
			Status:      StatusWhitelistFree,
			StartDate:   StartDate,
			TotalSupply: 199.0,
			Type:        CategoryBod,
			Info:        map[string]any{"is-dadbod": true},
			Tranches: []Tranche{
				{MinSupply: 0.0, Price: 10000.0},
			},
		},
		// Head
		NewItem("hat", itemSupply, originalItemInfo("head", "1")),
	}

	// Body
	for i := 1; i <= bodyItemCount; i++ {
		id := strconv.Itoa(i)
		collections = append(collections, NewItem("clothing"+id, itemSupply, originalItemInfo("body", id)))
	}
	return collections
}
