// Copyright (c) 2025 The dadbod-seed Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"

	errs "dadbod/seed/internal/errors"
)

// PresentError renders err for stderr, prefixed with prog.
// Key material is masked. A typed error whose kind is known gets a hint
// about what to check next.
func PresentError(prog string, err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	if prog != "" {
		b.WriteString(prog)
		b.WriteString(": ")
	}
	b.WriteString(Mask(err.Error()))
	if hint := hintFor(errs.KindOf(err)); hint != "" {
		b.WriteString("\n  hint: ")
		b.WriteString(hint)
	}
	return b.String()
}

func hintFor(k errs.Kind) string {
	switch k {
	case errs.KeyLoadFailed:
		return "check -k <path> or run 'dadbod-seed keys import' and pass --keychain"
	case errs.CommandBuildFailed:
		return "check gas settings in config.toml"
	}
	return ""
}
