// Package ops implements the core operations over the analysis store. Each
// operation takes an Input struct and returns an Output struct plus a
// structured error; the transport layers (HTTP, MCP, CLI) translate those to
// status codes and payloads without adding semantics of their own.
package ops

import (
	"unicode/utf8"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/errors"
)

// requireValue rejects a missing value. An empty string is a legitimate
// value; only absence (or a non-string at the transport boundary) is invalid.
func requireValue(value *string) (string, error) {
	if value == nil {
		return "", errors.NewInvalidRequest("value is required and must be a string")
	}
	return *value, nil
}

// checkSize enforces the configured input ceiling. A zero limit disables it.
func checkSize(cfg *config.Config, value string) error {
	if cfg == nil || cfg.MaxValueChars <= 0 {
		return nil
	}
	if n := utf8.RuneCountInString(value); n > cfg.MaxValueChars {
		return errors.NewValueTooLarge(cfg.MaxValueChars, n)
	}
	return nil
}
