package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions. Names follow the pattern "string_<action>".

var analyzeToolDef = mcp.NewTool("string_analyze",
	mcp.WithDescription("Analyze a string without storing it. Returns length, palindrome status, word count, unique character count, per-character frequency, and the SHA-256 content digest."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The string to analyze. May be empty."),
	),
)

var storeToolDef = mcp.NewTool("string_store",
	mcp.WithDescription("Analyze a string and store the result, keyed by its SHA-256 digest. Fails with DUPLICATE_CONTENT if the same content was already stored."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The string to analyze and store. May be empty."),
	),
)

var fetchToolDef = mcp.NewTool("string_fetch",
	mcp.WithDescription("Fetch the stored analysis for a string. The lookup recomputes the content digest; no identifier is accepted."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The exact string to look up."),
	),
)

var deleteToolDef = mcp.NewTool("string_delete",
	mcp.WithDescription("Delete the stored analysis for a string. The same content may be stored again afterwards as a fresh record."),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The exact string to delete."),
	),
)

var listToolDef = mcp.NewTool("string_list",
	mcp.WithDescription("List stored analyses in insertion order, optionally narrowed by structured filters. All filters are combined with AND."),
	mcp.WithString("is_palindrome",
		mcp.Description(`Filter on palindrome status: "true" or "false".`),
	),
	mcp.WithNumber("min_length",
		mcp.Description("Inclusive minimum length (non-negative integer)."),
	),
	mcp.WithNumber("max_length",
		mcp.Description("Inclusive maximum length (non-negative integer)."),
	),
	mcp.WithNumber("word_count",
		mcp.Description("Exact word count (non-negative integer)."),
	),
	mcp.WithString("contains_character",
		mcp.Description("Single character the value must contain (case-sensitive)."),
	),
)

var queryToolDef = mcp.NewTool("string_query",
	mcp.WithDescription(`Filter stored analyses with a natural-language phrase. Recognized patterns: "palindromic", "single word"/"one word", "longer than N", "containing the letter X". Unrecognized phrases fail with UNPARSEABLE_QUERY.`),
	mcp.WithString("phrase",
		mcp.Required(),
		mcp.Description("The natural-language query phrase."),
	),
)
