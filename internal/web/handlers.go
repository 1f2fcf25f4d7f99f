package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	sifterrors "github.com/hpungsan/sift/internal/errors"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/filter"
	"github.com/hpungsan/sift/internal/ops"
	"github.com/hpungsan/sift/internal/store"
)

// Handlers contains HTTP route handlers for the Sift API.
type Handlers struct {
	store   *store.Store
	cfg     *config.Config
	version string
}

// createRequest is the body of POST /strings. Value is a pointer so a
// missing field is distinguishable from an explicit empty string.
type createRequest struct {
	Value *string `json:"value"`
}

// HandleCreate handles POST /strings — analyze and store a new string.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r.Body, &req); err != nil {
		renderError(w, err)
		return
	}

	record, err := ops.Store(h.store, h.cfg, ops.StoreInput{Value: req.Value})
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, record)
}

// HandleFetch handles GET /strings/{value} — look up a string by content.
func (h *Handlers) HandleFetch(w http.ResponseWriter, r *http.Request) {
	value := r.PathValue("value")

	record, err := ops.Fetch(h.store, ops.FetchInput{Value: &value})
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, record)
}

// HandleDelete handles DELETE /strings/{value} — remove a stored string.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	value := r.PathValue("value")

	if _, err := ops.Delete(h.store, ops.DeleteInput{Value: &value}); err != nil {
		renderError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleList handles GET /strings — list stored strings, optionally filtered
// by structured query parameters. Every validation problem is reported, not
// just the first.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	set, problems := filter.Validate(r.URL.Query())
	if problems != nil {
		renderError(w, sifterrors.NewValidationFailed(problems))
		return
	}

	result := ops.List(h.store, ops.ListInput{Filters: set})
	renderJSON(w, http.StatusOK, result)
}

// HandleQuery handles GET /strings/query — filter via a natural-language
// phrase in the q parameter.
func (h *Handlers) HandleQuery(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Query(h.store, ops.QueryInput{Phrase: r.URL.Query().Get("q")})
	if err != nil {
		renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

// HandleReport handles GET /strings/{value}/report — an HTML analysis report.
func (h *Handlers) HandleReport(w http.ResponseWriter, r *http.Request) {
	value := r.PathValue("value")

	record, err := ops.Fetch(h.store, ops.FetchInput{Value: &value})
	if err != nil {
		renderError(w, err)
		return
	}

	renderReport(w, record)
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": h.version,
		"stored":  h.store.Len(),
	})
}

// decodeBody decodes a JSON request body, mapping malformed or wrongly-typed
// input to an invalid-request error before it reaches the core.
func decodeBody(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return sifterrors.NewInvalidRequest("request body is required")
		}
		return sifterrors.NewInvalidRequest("request body must be JSON with a string value field")
	}
	return nil
}
