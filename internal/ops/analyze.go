package ops

import (
	"github.com/hpungsan/sift/internal/analyze"
	"github.com/hpungsan/sift/internal/config"
)

// AnalyzeInput contains parameters for the Analyze operation.
type AnalyzeInput struct {
	Value *string // required; empty string is valid
}

// Analyze computes the derived properties for a value without touching the
// store. Used by the one-off CLI command and the string_analyze MCP tool.
func Analyze(cfg *config.Config, input AnalyzeInput) (*analyze.Analysis, error) {
	value, err := requireValue(input.Value)
	if err != nil {
		return nil, err
	}
	if err := checkSize(cfg, value); err != nil {
		return nil, err
	}
	return analyze.Analyze(value), nil
}
