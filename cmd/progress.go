// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"os"

	"dadbod/seed/internal/chainweb"
	"dadbod/seed/internal/pact"
	"dadbod/seed/internal/seeder"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// spinningSubmitter shows a spinner while a Chainweb request is in flight.
// The spinner is removed before the seeder prints the response.
type spinningSubmitter struct {
	next seeder.Submitter
}

// withSpinner wraps next when stdout is a terminal; otherwise it returns next.
func withSpinner(next seeder.Submitter) seeder.Submitter {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return next
	}
	return &spinningSubmitter{next: next}
}

func (s *spinningSubmitter) Local(ctx context.Context, cmd *pact.Command) (*chainweb.Response, error) {
	stop := startSpinner("previewing " + cmd.Hash)
	defer stop()
	return s.next.Local(ctx, cmd)
}

func (s *spinningSubmitter) Send(ctx context.Context, cmd *pact.Command) (*chainweb.Response, error) {
	stop := startSpinner("sending " + cmd.Hash)
	defer stop()
	return s.next.Send(ctx, cmd)
}

func startSpinner(text string) func() {
	cursor.Hide()
	sp, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	if err != nil {
		cursor.Show()
		return func() {}
	}
	return func() {
		_ = sp.Stop()
		cursor.Show()
	}
}
