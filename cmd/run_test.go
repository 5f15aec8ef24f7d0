// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"dadbod/seed/internal/catalog"
	"dadbod/seed/internal/keypair"
	"dadbod/seed/internal/pact"

	"github.com/spf13/cobra"
)

const nodeReply = `{"result":{"status":"success"}}`

// fakeNode is a Chainweb node that counts Pact API calls per path.
type fakeNode struct {
	mu    sync.Mutex
	calls map[string]int
	bad   []string
}

func (n *fakeNode) record(path string, problem string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls[path]++
	if problem != "" {
		n.bad = append(n.bad, problem)
	}
}

func (n *fakeNode) count(path string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[path]
}

func (n *fakeNode) summary() (paths int, bad []string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls), append([]string(nil), n.bad...)
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var cmds []pact.Command
	switch {
	case strings.HasSuffix(r.URL.Path, "/local"):
		var c pact.Command
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			n.record(r.URL.Path, "decode local: "+err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		cmds = append(cmds, c)
	case strings.HasSuffix(r.URL.Path, "/send"):
		var body struct {
			Cmds []pact.Command `json:"cmds"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			n.record(r.URL.Path, "decode send: "+err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		cmds = body.Cmds
	}

	problem := ""
	if len(cmds) != 1 {
		problem = r.URL.Path + ": want exactly one command"
	} else if err := cmds[0].Verify(); err != nil {
		problem = err.Error()
	}
	n.record(r.URL.Path, problem)
	_, _ = w.Write([]byte(nodeReply))
}

func newTestSeedCommand() *cobra.Command {
	c := &cobra.Command{
		Use:           "dadbod-seed",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd)
		},
	}
	registerSeedFlags(c.Flags())
	return c
}

func writeTestKeys(t *testing.T) string {
	t.Helper()
	kp := keypair.FromSeed(bytes.Repeat([]byte{7}, ed25519.SeedSize))
	data, err := kp.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "keys.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunSeedAgainstNode(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	keyFile := writeTestKeys(t)
	entries := len(catalog.Default())

	tests := []struct {
		name      string
		flags     []string
		networkID string
		wantSend  int
	}{
		{
			name:      "no flags previews on testnet",
			flags:     nil,
			networkID: "testnet04",
			wantSend:  0,
		},
		{
			name:      "-m previews on mainnet",
			flags:     []string{"-m", "1"},
			networkID: "mainnet01",
			wantSend:  0,
		},
		{
			name:      "-s sends on testnet",
			flags:     []string{"-s", "no"},
			networkID: "testnet04",
			wantSend:  entries,
		},
		{
			name:      "-m and -s send on mainnet",
			flags:     []string{"-m", "", "-s", "x"},
			networkID: "mainnet01",
			wantSend:  entries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &fakeNode{calls: map[string]int{}}
			srv := httptest.NewServer(node)
			defer srv.Close()

			c := newTestSeedCommand()
			var out bytes.Buffer
			c.SetOut(&out)
			c.SetArgs(append([]string{"-k", keyFile, "--node", srv.URL}, tt.flags...))

			if err := c.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			base := "/chainweb/0.0/" + tt.networkID + "/chain/1/pact/api/v1/"
			if got := node.count(base + "local"); got != entries {
				t.Errorf("local calls = %d, want %d", got, entries)
			}
			if got := node.count(base + "send"); got != tt.wantSend {
				t.Errorf("send calls = %d, want %d", got, tt.wantSend)
			}
			paths, bad := node.summary()
			if want := 1 + min(tt.wantSend, 1); paths != want {
				t.Errorf("distinct paths = %d, want %d", paths, want)
			}
			if len(bad) > 0 {
				t.Errorf("node rejected commands: %v", bad)
			}
			if got := strings.Count(out.String(), nodeReply); got != entries+tt.wantSend {
				t.Errorf("printed %d responses, want %d", got, entries+tt.wantSend)
			}
		})
	}
}

func TestRunSeedInterrupted(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	keyFile := writeTestKeys(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cancel()
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	c := newTestSeedCommand()
	c.SetOut(&bytes.Buffer{})
	c.SetArgs([]string{"-k", keyFile, "--node", srv.URL, "-s", "1"})

	err := c.ExecuteContext(ctx)
	if !errors.Is(err, errInterrupted) {
		t.Fatalf("Execute() error = %v, want %v", err, errInterrupted)
	}
	if strings.Contains(err.Error(), "network error") {
		t.Errorf("interrupt reported as a network failure: %v", err)
	}
}
