// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"context"
	"errors"
	"net"
	"syscall"
	"testing"
)

func TestClassify(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}

	tests := []struct {
		name    string
		err     error
		timeout bool
		dns     bool
		refused bool
		tls     bool
	}{
		{name: "deadline", err: context.DeadlineExceeded, timeout: true},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "api.chainweb.com"}, dns: true},
		{name: "refused", err: refused, refused: true},
		{name: "tls", err: errors.New("tls: failed to verify certificate"), tls: true},
		{name: "other", err: errors.New("unexpected EOF")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTimeoutError(tt.err); got != tt.timeout {
				t.Errorf("isTimeoutError() = %v, want %v", got, tt.timeout)
			}
			if got := isDNSError(tt.err); got != tt.dns {
				t.Errorf("isDNSError() = %v, want %v", got, tt.dns)
			}
			if got := isConnectionRefusedError(tt.err); got != tt.refused {
				t.Errorf("isConnectionRefusedError() = %v, want %v", got, tt.refused)
			}
			if got := isSSLError(tt.err); got != tt.tls {
				t.Errorf("isSSLError() = %v, want %v", got, tt.tls)
			}
		})
	}
}

func TestFormatNetworkErrorWraps(t *testing.T) {
	if FormatNetworkError(nil, "previewing hat", "api.chainweb.com") != nil {
		t.Error("FormatNetworkError(nil) should return nil")
	}
	cause := errors.New("unexpected EOF")
	err := FormatNetworkError(cause, "previewing hat", "api.chainweb.com")
	if !errors.Is(err, cause) {
		t.Errorf("FormatNetworkError() = %v, should wrap cause", err)
	}
}

func TestExtractHostFromURL(t *testing.T) {
	if got := ExtractHostFromURL("https://api.testnet.chainweb.com"); got != "api.testnet.chainweb.com" {
		t.Errorf("ExtractHostFromURL() = %q", got)
	}
	if got := ExtractHostFromURL("::bad"); got != "server" {
		t.Errorf("ExtractHostFromURL(bad) = %q, want server", got)
	}
}
