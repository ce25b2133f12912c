package rest

import (
	"net/http"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

// maxNormalizeEntries bounds one batch request.
const maxNormalizeEntries = 1000

type normalizeRequest struct {
	Entry   *string  `json:"entry,omitempty"`
	Entries []string `json:"entries,omitempty"`
}

type normalizeResult struct {
	Entry string `json:"entry"`
	Text  string `json:"text"`
	Key   string `json:"key"`
}

type normalizeBatchResponse struct {
	Results []normalizeResult `json:"results"`
}

// NormalizeHandler exposes the canonical key rule.
type NormalizeHandler struct {
	canonicalize func(string) string
}

// NewNormalizeHandler creates a NormalizeHandler. canonicalize derives the
// canonical key of one label.
func NewNormalizeHandler(canonicalize func(string) string) *NormalizeHandler {
	return &NormalizeHandler{canonicalize: canonicalize}
}

// Normalize handles POST /normalize.
// {"entry": "..."} answers one result; {"entries": [...]} answers a batch.
func (h *NormalizeHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.Entry != nil && req.Entries == nil:
		writeJSON(w, http.StatusOK, h.normalize(*req.Entry))
	case req.Entry == nil && req.Entries != nil:
		if len(req.Entries) > maxNormalizeEntries {
			writeError(w, http.StatusBadRequest, "too many entries")
			return
		}
		results := make([]normalizeResult, len(req.Entries))
		for i, e := range req.Entries {
			results[i] = h.normalize(e)
		}
		writeJSON(w, http.StatusOK, normalizeBatchResponse{Results: results})
	default:
		writeError(w, http.StatusBadRequest, "exactly one of entry or entries is required")
	}
}

func (h *NormalizeHandler) normalize(entry string) normalizeResult {
	return normalizeResult{
		Entry: entry,
		Text:  domain.NormalizeText(entry),
		Key:   h.canonicalize(entry),
	}
}
