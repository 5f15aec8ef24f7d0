// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors explains failed Chainweb HTTP calls to the operator.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// FormatNetworkError explains a failed Chainweb call to the operator and returns
// the error wrapped. It detects timeouts, DNS failures, refused connections and
// TLS problems; anything else gets a generic message. host names the node.
func FormatNetworkError(err error, context string, host string) error {
	if err == nil {
		return nil
	}

	displayErrorMessage(err, context, host)

	// Return wrapped error for logging/debugging
	return fmt.Errorf("network error: %w", err)
}

// displayErrorMessage shows a formatted error message to the user based on error type.
func displayErrorMessage(err error, context string, host string) {
	errStr := err.Error()

	// Check for specific error types
	if isTimeoutError(err) {
		showTimeoutError(context, host)
		return
	}

	if isDNSError(err) {
		showDNSError(context, host)
		return
	}

	if isConnectionRefusedError(err) {
		showConnectionRefusedError(context, host)
		return
	}

	if isSSLError(err) {
		showSSLError(context)
		return
	}

	// Generic network error
	showGenericError(context, host, errStr)
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	// Check for timeout in error message
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	// Check for net.Error with Timeout()
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	if err == nil {
		return false
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "ssl") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// showTimeoutError displays a user-friendly timeout error message.
func showTimeoutError(context, host string) {
	pterm.Printf("⏱️  Timeout while %s\n", context)
	pterm.Println()
	pterm.Printf("%s took too long to respond. This could mean:\n", host)
	pterm.Println("  • The node is under heavy load")
	pterm.Println("  • timeout_seconds in config.toml is too low")
	pterm.Println()
	pterm.Println("Transactions already sent in this run are not rolled back.")
	pterm.Println()
}

// showDNSError displays a user-friendly DNS error message.
func showDNSError(context, host string) {
	pterm.Printf("🌐 Cannot resolve %s while %s\n", host, context)
	pterm.Println()
	pterm.Println("Please check your internet connection and DNS settings.")
	pterm.Println()
}

// showConnectionRefusedError displays a user-friendly connection refused error message.
func showConnectionRefusedError(context, host string) {
	pterm.Printf("🚫 Connection refused by %s while %s\n", host, context)
	pterm.Println()
	pterm.Println("The Chainweb node is not accepting connections. It may be down")
	pterm.Println("or a firewall is blocking it.")
	pterm.Println()
}

// showSSLError displays a user-friendly SSL/TLS error message.
func showSSLError(context string) {
	pterm.Printf("🔒 Secure connection failed while %s\n", context)
	pterm.Println()
	pterm.Println("Try:")
	pterm.Println("  • Check your system date and time")
	pterm.Println("  • Verify network proxy settings")
	pterm.Println()
}

// showGenericError displays a generic error message for unrecognized errors.
func showGenericError(context, host, errDetails string) {
	pterm.Printf("❌ Cannot reach %s while %s\n", host, context)
	pterm.Println()

	// Show abbreviated error details for debugging
	if errDetails != "" {
		shortErr := errDetails
		if len(shortErr) > 100 {
			shortErr = shortErr[:100] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", shortErr)
		pterm.Println()
	}
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
