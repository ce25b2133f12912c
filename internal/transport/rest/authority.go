package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
	"github.com/heartmarshall/authority-backend/internal/service/authority"
	"github.com/heartmarshall/authority-backend/pkg/ctxutil"
)

type authorityService interface {
	Create(ctx context.Context, input authority.CreateInput) (domain.Authority, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Authority, error)
	List(ctx context.Context, input authority.ListInput) (*authority.ListResult, error)
	FindEquivalent(ctx context.Context, kind domain.AuthorityKind, label string) ([]domain.Authority, error)
	Rename(ctx context.Context, input authority.RenameInput) (domain.Authority, error)
	AddReference(ctx context.Context, input authority.AddReferenceInput) (domain.AuthorityRef, error)
	ListReferences(ctx context.Context, authorityID uuid.UUID) ([]domain.AuthorityRef, error)
}

// AuthorityHandler serves the authority REST endpoints.
type AuthorityHandler struct {
	svc authorityService
	log *slog.Logger
}

// NewAuthorityHandler creates an AuthorityHandler.
func NewAuthorityHandler(svc authorityService, logger *slog.Logger) *AuthorityHandler {
	return &AuthorityHandler{svc: svc, log: logger.With("handler", "authority")}
}

type createAuthorityRequest struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

type renameAuthorityRequest struct {
	Label string `json:"label"`
}

type addReferenceRequest struct {
	DocumentID string `json:"documentId"`
	Role       string `json:"role"`
}

// Create handles POST /authorities.
func (h *AuthorityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAuthorityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), authority.CreateInput{
		Kind:  domain.AuthorityKind(strings.ToUpper(strings.TrimSpace(req.Kind))),
		Label: req.Label,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", ctxutil.BaseURLFromCtx(r.Context())+"/authorities/"+created.ID.String())
	writeJSON(w, http.StatusCreated, toAuthorityResponse(created))
}

// Get handles GET /authorities/{id}.
func (h *AuthorityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthorityResponse(a))
}

// List handles GET /authorities?kind=&search=&sortBy=&sortOrder=&limit=&offset=.
func (h *AuthorityHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, err := queryKind(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q := r.URL.Query()
	result, err := h.svc.List(r.Context(), authority.ListInput{
		Kind:      kind,
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authorityListResponse{
		Items:       toAuthorityResponses(result.Items),
		TotalCount:  result.TotalCount,
		HasNextPage: result.HasNextPage,
	})
}

// Equivalents handles GET /authorities/equivalents?kind=&label=.
func (h *AuthorityHandler) Equivalents(w http.ResponseWriter, r *http.Request) {
	kind, err := queryKind(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if kind == nil {
		handleError(h.log, w, r, domain.NewValidationError("kind", "required"))
		return
	}

	found, err := h.svc.FindEquivalent(r.Context(), *kind, r.URL.Query().Get("label"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthorityResponses(found))
}

// Rename handles PATCH /authorities/{id}.
func (h *AuthorityHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req renameAuthorityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	renamed, err := h.svc.Rename(r.Context(), authority.RenameInput{ID: id, Label: req.Label})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthorityResponse(renamed))
}

// AddReference handles POST /authorities/{id}/references.
func (h *AuthorityHandler) AddReference(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addReferenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	documentID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("documentId", "must be a UUID"))
		return
	}

	ref, err := h.svc.AddReference(r.Context(), authority.AddReferenceInput{
		AuthorityID: id,
		DocumentID:  documentID,
		Role:        req.Role,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReferenceResponse(ref))
}

// ListReferences handles GET /authorities/{id}/references.
func (h *AuthorityHandler) ListReferences(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	refs, err := h.svc.ListReferences(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]referenceResponse, len(refs))
	for i, ref := range refs {
		out[i] = toReferenceResponse(ref)
	}
	writeJSON(w, http.StatusOK, out)
}
