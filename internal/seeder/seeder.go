// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package seeder registers catalog collections on-chain, one signed
// create-collection transaction per collection.
package seeder

import (
	"context"
	"fmt"
	"io"

	"dadbod/seed/internal/catalog"
	"dadbod/seed/internal/chainweb"
	errs "dadbod/seed/internal/errors"
	"dadbod/seed/internal/pact"

	"github.com/pterm/pterm"
)

// CreateCollectionCode is the Pact expression run for every collection. It
// reads the collection from the "c" data key and pays with the coin module.
const CreateCollectionCode = `(free.dadbod.create-collection (read-msg "c") coin)`

// CommandBuilder builds and signs a command. Implemented by pact.Builder.
type CommandBuilder interface {
	Build(ctx context.Context, sender string, payload pact.Payload, signers []pact.Signer) (*pact.Command, error)
}

// Submitter previews and broadcasts commands. Implemented by chainweb.Client.
type Submitter interface {
	Local(ctx context.Context, cmd *pact.Command) (*chainweb.Response, error)
	Send(ctx context.Context, cmd *pact.Command) (*chainweb.Response, error)
}

// Result records what happened to one collection.
type Result struct {
	Name        string
	RequestKey  string
	LocalStatus int
	Sent        bool
	SendStatus  int
}

// Seeder runs the submission loop.
type Seeder struct {
	builder   CommandBuilder
	submitter Submitter
	// pubKey is the operator key; its k: account is the sender and its sole signer.
	pubKey string
	send   bool
	out    io.Writer
}

// New returns a seeder that signs as pubKey and prints raw responses to out.
// When send is false commands are only previewed with /local.
func New(builder CommandBuilder, submitter Submitter, pubKey string, send bool, out io.Writer) *Seeder {
	return &Seeder{
		builder:   builder,
		submitter: submitter,
		pubKey:    pubKey,
		send:      send,
		out:       out,
	}
}

// Payload wraps c as the "c" data key of a create-collection exec payload.
func Payload(c catalog.CollectionSpec) pact.Payload {
	return pact.Payload{Exec: &pact.ExecPayload{
		Data: map[string]any{"c": c},
		Code: CreateCollectionCode,
	}}
}

// Run submits collections in order. Each is always previewed with /local and,
// when sending is enabled, broadcast with /send. Response bodies are printed
// as-is and never inspected, so a rejected transaction does not stop the run.
// Any Go error (signing, transport) stops the run immediately; nothing is retried.
// The returned results cover every collection handled before the stop.
func (s *Seeder) Run(ctx context.Context, collections []catalog.CollectionSpec) ([]Result, error) {
	results := make([]Result, 0, len(collections))
	sender := "k:" + s.pubKey
	signers := []pact.Signer{pact.UnrestrictedSigner(s.pubKey)}

	for i, c := range collections {
		pterm.Debug.Printf("[%d/%d] building command for %s\n", i+1, len(collections), c.Name)

		cmd, err := s.builder.Build(ctx, sender, Payload(c), signers)
		if err != nil {
			return results, errs.Wrap(errs.CommandBuildFailed, fmt.Sprintf("build command for %s", c.Name), err)
		}
		res := Result{Name: c.Name, RequestKey: cmd.Hash}

		fmt.Fprintln(s.out)
		local, err := s.submitter.Local(ctx, cmd)
		if err != nil {
			return results, errs.Wrap(errs.LocalFailed, fmt.Sprintf("preview %s", c.Name), err)
		}
		res.LocalStatus = local.StatusCode
		fmt.Fprintln(s.out, local.Text)

		if s.send {
			sent, err := s.submitter.Send(ctx, cmd)
			if err != nil {
				return results, errs.Wrap(errs.SendFailed, fmt.Sprintf("send %s", c.Name), err)
			}
			res.Sent = true
			res.SendStatus = sent.StatusCode
			fmt.Fprintln(s.out, sent.Text)
		}
		fmt.Fprintln(s.out)

		results = append(results, res)
	}
	return results, nil
}
