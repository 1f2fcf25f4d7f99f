package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/hpungsan/sift/internal/analyze"
	"github.com/hpungsan/sift/internal/errors"
)

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderError writes a structured error response. Unknown errors are wrapped
// as internal so their details never reach the client.
func renderError(w http.ResponseWriter, err error) {
	var sErr *errors.SiftError
	if !stderrors.As(err, &sErr) {
		sErr = errors.NewInternal(err)
	}

	errorObj := map[string]any{
		"code":    string(sErr.Code),
		"message": sErr.Message,
		"status":  sErr.Status,
	}
	// Internal details stay server-side
	if sErr.Code != errors.ErrInternal && sErr.Details != nil {
		errorObj["details"] = sErr.Details
	}

	renderJSON(w, sErr.Status, map[string]any{"error": errorObj})
}

// renderReport writes an HTML analysis report for a record. The report body
// is built as markdown and converted with goldmark.
func renderReport(w http.ResponseWriter, record *analyze.Analysis) {
	md := buildReportMarkdown(record)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		renderError(w, errors.NewInternal(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head><title>Analysis %s</title></head>\n<body>\n%s</body>\n</html>\n",
		template.HTMLEscapeString(shortID(record.ID)), buf.String())
}

// buildReportMarkdown renders a record as a markdown document. The raw value
// is fenced so markdown inside it is not interpreted; everything else is
// escaped by goldmark's HTML renderer.
func buildReportMarkdown(record *analyze.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# String analysis `%s`\n\n", shortID(record.ID))
	fmt.Fprintf(&b, "```\n%s\n```\n\n", record.Value)
	b.WriteString("## Properties\n\n")
	fmt.Fprintf(&b, "- Length: %d\n", record.Properties.Length)
	fmt.Fprintf(&b, "- Palindrome: %v\n", record.Properties.IsPalindrome)
	fmt.Fprintf(&b, "- Unique characters: %d\n", record.Properties.UniqueCharacters)
	fmt.Fprintf(&b, "- Word count: %d\n", record.Properties.WordCount)
	fmt.Fprintf(&b, "- SHA-256: `%s`\n\n", record.Properties.SHA256Hash)

	if len(record.Properties.CharacterFrequency) > 0 {
		b.WriteString("## Character frequency\n\n")
		chars := make([]string, 0, len(record.Properties.CharacterFrequency))
		for ch := range record.Properties.CharacterFrequency {
			chars = append(chars, ch)
		}
		sort.Strings(chars)
		for _, ch := range chars {
			fmt.Fprintf(&b, "- `%q`: %d\n", ch, record.Properties.CharacterFrequency[ch])
		}
	}

	return b.String()
}

// shortID truncates a digest for display.
func shortID(id string) string {
	if len(id) > 10 {
		return id[:10]
	}
	return id
}
