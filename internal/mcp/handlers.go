package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/url"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/filter"
	"github.com/hpungsan/sift/internal/ops"
	"github.com/hpungsan/sift/internal/store"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	store *store.Store
	cfg   *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st *store.Store, cfg *config.Config) *Handlers {
	return &Handlers{store: st, cfg: cfg}
}

// Request types for each tool

// ValueRequest represents the arguments for analyze, store, fetch, and delete.
type ValueRequest struct {
	Value *string `json:"value,omitempty"`
}

// ListRequest represents the arguments for list.
type ListRequest struct {
	IsPalindrome      *string `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// QueryRequest represents the arguments for query.
type QueryRequest struct {
	Phrase string `json:"phrase,omitempty"`
}

// Handler implementations

// HandleAnalyze handles the string_analyze tool call.
func (h *Handlers) HandleAnalyze(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ValueRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Analyze(h.cfg, ops.AnalyzeInput{Value: input.Value})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleStore handles the string_store tool call.
func (h *Handlers) HandleStore(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ValueRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Store(h.store, h.cfg, ops.StoreInput{Value: input.Value})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the string_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ValueRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Fetch(h.store, ops.FetchInput{Value: input.Value})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the string_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ValueRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(h.store, ops.DeleteInput{Value: input.Value})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the string_list tool call. Arguments are funneled
// through the same validation path as HTTP query parameters so both surfaces
// report identical problems.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	set, problems := filter.Validate(listParams(input))
	if problems != nil {
		return errorResult(errors.NewValidationFailed(problems)), nil
	}

	result := ops.List(h.store, ops.ListInput{Filters: set})
	return successResult(result)
}

// HandleQuery handles the string_query tool call.
func (h *Handlers) HandleQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[QueryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Query(h.store, ops.QueryInput{Phrase: input.Phrase})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// listParams converts list tool arguments to raw query parameters.
func listParams(input ListRequest) url.Values {
	params := url.Values{}
	if input.IsPalindrome != nil {
		params.Set("is_palindrome", *input.IsPalindrome)
	}
	if input.MinLength != nil {
		params.Set("min_length", strconv.Itoa(*input.MinLength))
	}
	if input.MaxLength != nil {
		params.Set("max_length", strconv.Itoa(*input.MaxLength))
	}
	if input.WordCount != nil {
		params.Set("word_count", strconv.Itoa(*input.WordCount))
	}
	if input.ContainsCharacter != nil {
		params.Set("contains_character", *input.ContainsCharacter)
	}
	return params
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var sErr *errors.SiftError
	if stderrors.As(err, &sErr) {
		errorObj := map[string]any{
			"code": sErr.Code,
			// err.Error() rather than sErr.Message so wrapper context survives
			"message": err.Error(),
			"status":  sErr.Status,
		}
		if sErr.Code != errors.ErrInternal && sErr.Details != nil {
			errorObj["details"] = sErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
