// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface of dadbod-seed.
// The root command registers the dadbod collection catalog on Chainweb; the
// catalog and keys subcommands inspect what would be submitted and manage the
// operator key. Commands are built with the Cobra CLI framework.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dadbod/seed/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagMainnet  = "mainnet"
	flagSend     = "send"
	flagKeys     = "keys"
	flagKeychain = "keychain"
	flagNode     = "node"
)

var (
	showVersion bool
	verbose     bool
)

// rootCmd seeds the collection registry when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "dadbod-seed",
	Short: "Register the dadbod collection catalog on Chainweb",
	Long: `dadbod-seed builds one signed free.dadbod.create-collection transaction per
catalog entry. Every transaction is previewed with the node's /local endpoint and
the raw response is printed. With -s, each transaction is also broadcast with /send.

Flags -m and -s take a value that is ignored: only their presence matters.
  dadbod-seed              preview on testnet
  dadbod-seed -s 1         preview and send on testnet
  dadbod-seed -m 1 -s 1    preview and send on mainnet

The signing key is declared without capabilities, so each transaction may do
anything the key can do on-chain. Review the catalog with 'dadbod-seed catalog'
before sending.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			pterm.EnableDebugMessages()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("dadbod-seed %s\n", Version)
			return nil
		}
		return runSeed(cmd)
	},
}

// Execute runs the CLI application. Ctrl-C cancels the in-flight request;
// transactions already sent are not rolled back.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("dadbod-seed", err))
		stop()
		os.Exit(1)
	}
}

// registerSeedFlags adds the seeding flags to fs.
func registerSeedFlags(fs *pflag.FlagSet) {
	fs.StringP(flagMainnet, "m", "", "use mainnet if present (value ignored)")
	fs.StringP(flagSend, "s", "", "broadcast with /send after /local if present (value ignored)")
	fs.StringP(flagKeys, "k", "", "key material file (default \"keys.json\")")
	fs.Bool(flagKeychain, false, "load key material from the OS keychain instead of a file")
	fs.String(flagNode, "", "override the selected network's base URL, e.g. a local devnet")
}

// registerKeySourceFlags adds only the flags that locate key material.
func registerKeySourceFlags(fs *pflag.FlagSet) {
	fs.StringP(flagKeys, "k", "", "key material file (default \"keys.json\")")
	fs.Bool(flagKeychain, false, "load key material from the OS keychain instead of a file")
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug messages")
	registerSeedFlags(rootCmd.Flags())
}
