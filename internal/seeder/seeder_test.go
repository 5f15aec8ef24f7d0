// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package seeder

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"dadbod/seed/internal/catalog"
	"dadbod/seed/internal/chainweb"
	errs "dadbod/seed/internal/errors"
	"dadbod/seed/internal/pact"
)

type fakeBuilder struct {
	calls   []pact.Payload
	senders []string
	signers [][]pact.Signer
	failAt  int
}

func (f *fakeBuilder) Build(ctx context.Context, sender string, payload pact.Payload, signers []pact.Signer) (*pact.Command, error) {
	f.calls = append(f.calls, payload)
	f.senders = append(f.senders, sender)
	f.signers = append(f.signers, signers)
	if f.failAt > 0 && len(f.calls) == f.failAt {
		return nil, errors.New("signing failed")
	}
	name := payload.Exec.Data["c"].(catalog.CollectionSpec).Name
	return &pact.Command{Hash: "hash-" + name}, nil
}

type fakeSubmitter struct {
	local     []string
	send      []string
	localFail int
	status    int
}

func (f *fakeSubmitter) Local(ctx context.Context, cmd *pact.Command) (*chainweb.Response, error) {
	f.local = append(f.local, cmd.Hash)
	if f.localFail > 0 && len(f.local) == f.localFail {
		return nil, errors.New("connection refused")
	}
	return &chainweb.Response{StatusCode: f.status, Text: "local " + cmd.Hash}, nil
}

func (f *fakeSubmitter) Send(ctx context.Context, cmd *pact.Command) (*chainweb.Response, error) {
	f.send = append(f.send, cmd.Hash)
	return &chainweb.Response{StatusCode: f.status, Text: "send " + cmd.Hash}, nil
}

func TestRunCallCounts(t *testing.T) {
	collections := catalog.Default()

	tests := []struct {
		name      string
		send      bool
		wantSends int
	}{
		{name: "preview only", send: false, wantSends: 0},
		{name: "preview and send", send: true, wantSends: len(collections)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBuilder{}
			sub := &fakeSubmitter{status: 200}
			var out bytes.Buffer

			results, err := New(b, sub, "abc", tt.send, &out).Run(context.Background(), collections)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(sub.local) != len(collections) {
				t.Errorf("local calls = %d, want %d", len(sub.local), len(collections))
			}
			if len(sub.send) != tt.wantSends {
				t.Errorf("send calls = %d, want %d", len(sub.send), tt.wantSends)
			}
			if len(results) != len(collections) {
				t.Errorf("results = %d, want %d", len(results), len(collections))
			}
			for i, c := range collections {
				if sub.local[i] != "hash-"+c.Name {
					t.Errorf("local call %d = %s, want hash-%s", i, sub.local[i], c.Name)
				}
				if results[i].Sent != tt.send {
					t.Errorf("result %s Sent = %v, want %v", c.Name, results[i].Sent, tt.send)
				}
			}
		})
	}
}

func TestRunPayloadAndSigner(t *testing.T) {
	b := &fakeBuilder{}
	collections := catalog.Default()[:2]
	if _, err := New(b, &fakeSubmitter{}, "abc", false, &bytes.Buffer{}).Run(context.Background(), collections); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i, p := range b.calls {
		if p.Exec.Code != `(free.dadbod.create-collection (read-msg "c") coin)` {
			t.Errorf("code = %s", p.Exec.Code)
		}
		if len(p.Exec.Data) != 1 {
			t.Errorf("data keys = %v, want only c", p.Exec.Data)
		}
		if got := p.Exec.Data["c"].(catalog.CollectionSpec).Name; got != collections[i].Name {
			t.Errorf("data c = %s, want %s", got, collections[i].Name)
		}
		if b.senders[i] != "k:abc" {
			t.Errorf("sender = %s, want k:abc", b.senders[i])
		}
		if len(b.signers[i]) != 1 || b.signers[i][0].PubKey != "abc" || len(b.signers[i][0].Clist) != 0 {
			t.Errorf("signers = %+v, want one unrestricted abc", b.signers[i])
		}
	}
}

func TestRunPrintsRawResponses(t *testing.T) {
	var out bytes.Buffer
	c := catalog.NewItem("hat", 1, nil)
	if _, err := New(&fakeBuilder{}, &fakeSubmitter{}, "abc", true, &out).Run(context.Background(), []catalog.CollectionSpec{c}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := "\nlocal hash-hat\nsend hash-hat\n\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunIgnoresRejectedResponses(t *testing.T) {
	sub := &fakeSubmitter{status: 400}
	collections := catalog.Default()
	results, err := New(&fakeBuilder{}, sub, "abc", true, &bytes.Buffer{}).Run(context.Background(), collections)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(sub.send) != len(collections) {
		t.Errorf("send calls = %d, want %d", len(sub.send), len(collections))
	}
	if results[0].LocalStatus != 400 || results[0].SendStatus != 400 {
		t.Errorf("result = %+v", results[0])
	}
}

func TestRunStopsOnError(t *testing.T) {
	tests := []struct {
		name      string
		builder   *fakeBuilder
		submitter *fakeSubmitter
		wantKind  errs.Kind
		wantDone  int
	}{
		{
			name:      "build failure",
			builder:   &fakeBuilder{failAt: 3},
			submitter: &fakeSubmitter{},
			wantKind:  errs.CommandBuildFailed,
			wantDone:  2,
		},
		{
			name:      "local failure",
			builder:   &fakeBuilder{},
			submitter: &fakeSubmitter{localFail: 2},
			wantKind:  errs.LocalFailed,
			wantDone:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := New(tt.builder, tt.submitter, "abc", true, &bytes.Buffer{}).Run(context.Background(), catalog.Default())
			if err == nil {
				t.Fatal("Run() expected error, got nil")
			}
			if kind := errs.KindOf(err); kind != tt.wantKind {
				t.Errorf("KindOf() = %q, want %q", kind, tt.wantKind)
			}
			if len(results) != tt.wantDone {
				t.Errorf("results = %d, want %d", len(results), tt.wantDone)
			}
			if len(tt.submitter.send) != tt.wantDone {
				t.Errorf("send calls = %d, want %d", len(tt.submitter.send), tt.wantDone)
			}
			if !strings.Contains(err.Error(), catalog.Default()[tt.wantDone].Name) {
				t.Errorf("error %q does not name the failing collection", err)
			}
		})
	}
}
