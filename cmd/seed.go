// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"dadbod/seed/internal/catalog"
	"dadbod/seed/internal/chainweb"
	"dadbod/seed/internal/config"
	errs "dadbod/seed/internal/errors"
	"dadbod/seed/internal/httperrors"
	"dadbod/seed/internal/keychain"
	"dadbod/seed/internal/keypair"
	"dadbod/seed/internal/pact"
	"dadbod/seed/internal/seeder"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// optionsFromFlags builds run options from parsed flags. -m and -s count as
// set when they appear on the command line at all, whatever their value.
func optionsFromFlags(fs *pflag.FlagSet, settings config.Settings) (config.Options, error) {
	keyFile, err := fs.GetString(flagKeys)
	if err != nil {
		return config.Options{}, err
	}
	useKeychain, err := fs.GetBool(flagKeychain)
	if err != nil {
		return config.Options{}, err
	}
	opts := config.NewOptions(
		fs.Changed(flagMainnet),
		fs.Changed(flagSend),
		keyFile,
		useKeychain,
		settings,
	)
	if f := fs.Lookup(flagNode); f != nil && f.Value.String() != "" {
		opts.Network.BaseURL = f.Value.String()
	}
	return opts, nil
}

// loadKeyPair reads the operator key from the keychain or the key file.
func loadKeyPair(opts config.Options) (*keypair.KeyPair, error) {
	if opts.UseKeychain {
		km, err := keychain.NewManager()
		if err != nil {
			return nil, errs.Wrap(errs.KeyLoadFailed, "open keychain", err)
		}
		data, err := km.LoadKeyMaterial()
		if err != nil {
			return nil, errs.Wrap(errs.KeyLoadFailed, "load key material from keychain", err)
		}
		kp, err := keypair.Parse(data)
		if err != nil {
			return nil, errs.Wrap(errs.KeyLoadFailed, "keychain key material", err)
		}
		return kp, nil
	}
	kp, err := keypair.Load(opts.KeyFile)
	if err != nil {
		return nil, errs.Wrap(errs.KeyLoadFailed, opts.KeyFile, err)
	}
	return kp, nil
}

// errInterrupted is returned when the operator cancels the run.
var errInterrupted = errors.New("interrupted")

// runSeed parses options and seeds the catalog on the selected network.
func runSeed(cmd *cobra.Command) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	opts, err := optionsFromFlags(cmd.Flags(), settings)
	if err != nil {
		return err
	}
	return seed(cmd.Context(), opts, cmd.OutOrStdout())
}

// seed loads the key, then previews (and with opts.Send, broadcasts) every
// catalog entry. Raw node responses go to out.
func seed(ctx context.Context, opts config.Options, out io.Writer) error {
	printProfile(opts)

	kp, err := loadKeyPair(opts)
	if err != nil {
		return err
	}
	pterm.Debug.Printf("signing as %s\n", kp.Account())

	builder := pact.NewBuilder(pact.Settings{
		NetworkID: opts.Network.NetworkID,
		ChainID:   opts.Network.ChainID,
		GasLimit:  opts.Settings.GasLimit,
		GasPrice:  opts.Settings.GasPrice,
		TTL:       opts.Settings.TTL,
	}, kp)
	client := chainweb.New(opts.Network, opts.Settings.Timeout)

	s := seeder.New(builder, withSpinner(client), kp.PublicKey(), opts.Send, out)
	results, runErr := s.Run(ctx, catalog.Default())
	printSummary(results, opts.Send)

	if runErr == nil {
		return nil
	}
	if errors.Is(runErr, context.Canceled) {
		pterm.Warning.Printf("Interrupted after %d collection(s); transactions already sent are not rolled back\n", len(results))
		return errInterrupted
	}
	switch errs.KindOf(runErr) {
	case errs.LocalFailed, errs.SendFailed:
		host := httperrors.ExtractHostFromURL(opts.Network.BaseURL)
		return httperrors.FormatNetworkError(runErr, "submitting collections", host)
	}
	return runErr
}

func printProfile(opts config.Options) {
	label := pterm.NewStyle(pterm.FgLightCyan)
	value := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	pterm.Println(label.Sprint("→ Network: ") + value.Sprint(opts.Network.String()))
	if opts.Send {
		pterm.Println(label.Sprint("→ Mode:    ") + pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("local + send"))
	} else {
		pterm.Println(label.Sprint("→ Mode:    ") + "local only")
	}
}

// printSummary lists the collections handled before the run ended, so a
// partial run shows which entries already went out.
func printSummary(results []seeder.Result, send bool) {
	if len(results) == 0 {
		return
	}
	header := []string{"Collection", "Request key", "Local"}
	if send {
		header = append(header, "Send")
	}
	data := pterm.TableData{header}
	for _, r := range results {
		row := []string{r.Name, r.RequestKey, strconv.Itoa(r.LocalStatus)}
		if send {
			row = append(row, strconv.Itoa(r.SendStatus))
		}
		data = append(data, row)
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Success.Println(fmt.Sprintf("%d collection(s) processed", len(results)))
}
