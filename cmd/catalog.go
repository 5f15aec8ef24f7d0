// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"

	"dadbod/seed/internal/catalog"
	"dadbod/seed/internal/seeder"

	"github.com/spf13/cobra"
)

var showPayload bool

// catalogCmd prints the catalog without touching the network.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the collection catalog as JSON",
	Long: `The catalog command prints every collection the seed command would register,
in submission order, exactly as it is serialized into transaction data.
With --payload, the full exec payload of each transaction is printed instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		collections := catalog.Default()
		var v any = collections
		if showPayload {
			payloads := make([]any, len(collections))
			for i, c := range collections {
				payloads[i] = seeder.Payload(c)
			}
			v = payloads
		}
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&showPayload, "payload", false, "print exec payloads instead of collections")
	rootCmd.AddCommand(catalogCmd)
}
