// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package chainweb submits Pact commands to a Chainweb node's Pact REST API.
// Responses are returned as raw text regardless of HTTP status; only transport
// failures are reported as errors.
package chainweb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dadbod/seed/internal/network"
	"dadbod/seed/internal/pact"
)

// Response is the raw result of a Pact API call.
type Response struct {
	StatusCode int
	Text       string
}

// Client calls the Pact API of one chain on one network.
type Client struct {
	// profile selects the base URL, network and chain in every request path
	profile network.Profile
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// New creates a client for profile. A zero timeout means 30 seconds.
func New(profile network.Profile, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		profile: profile,
		client:  &http.Client{Timeout: timeout},
	}
}

// sendRequest is the body of POST /send.
type sendRequest struct {
	Cmds []*pact.Command `json:"cmds"`
}

// Local calls POST /local, executing cmd against current chain state without
// committing it.
func (c *Client) Local(ctx context.Context, cmd *pact.Command) (*Response, error) {
	return c.post(ctx, "local", cmd)
}

// Send calls POST /send, submitting cmd for inclusion in a block.
func (c *Client) Send(ctx context.Context, cmd *pact.Command) (*Response, error) {
	return c.post(ctx, "send", sendRequest{Cmds: []*pact.Command{cmd}})
}

func (c *Client) post(ctx context.Context, action string, body any) (*Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", action, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.profile.PactURL(action), bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", action, err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", action, err)
	}
	return &Response{StatusCode: resp.StatusCode, Text: string(text)}, nil
}
