// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"dadbod/seed/internal/config"
	errs "dadbod/seed/internal/errors"
	"dadbod/seed/internal/keychain"
	"dadbod/seed/internal/keypair"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// keysCmd groups operator key management.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Inspect and store the operator signing key",
}

var keysShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the operator public key and account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd.Flags(), config.DefaultSettings())
		if err != nil {
			return err
		}
		kp, err := loadKeyPair(opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "public key: %s\naccount:    %s\n", kp.PublicKey(), kp.Account())
		return nil
	},
}

var keysImportCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Copy key material from a file into the OS keychain",
	Long: `The import command validates a keys.json file and stores it in the OS keychain,
so later runs can use --keychain instead of keeping the secret on disk.
The file itself is left untouched; delete it once the import succeeded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultKeyFile
		if len(args) == 1 {
			path = args[0]
		}
		kp, err := keypair.Load(path)
		if err != nil {
			return errs.Wrap(errs.KeyLoadFailed, path, err)
		}
		data, err := kp.Marshal()
		if err != nil {
			return err
		}
		km, err := keychain.NewManager()
		if err != nil {
			return errs.Wrap(errs.KeyLoadFailed, "open keychain", err)
		}
		if err := km.SaveKeyMaterial(data); err != nil {
			return fmt.Errorf("store key material: %w", err)
		}
		pterm.Success.Printf("Stored key for %s in the OS keychain\n", kp.Account())
		return nil
	},
}

var keysForgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Remove the operator key from the OS keychain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.NewManager()
		if err != nil {
			return err
		}
		if err := km.ClearKeyMaterial(); err != nil {
			return err
		}
		fmt.Println("✅ Key material removed from the OS keychain")
		return nil
	},
}

func init() {
	registerKeySourceFlags(keysShowCmd.Flags())
	keysCmd.AddCommand(keysShowCmd, keysImportCmd, keysForgetCmd)
	rootCmd.AddCommand(keysCmd)
}
