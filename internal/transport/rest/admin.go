package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/authority-backend/internal/domain"
	"github.com/heartmarshall/authority-backend/internal/service/authority"
	"github.com/heartmarshall/authority-backend/pkg/ctxutil"
)

type adminService interface {
	ListDuplicates(ctx context.Context, kind *domain.AuthorityKind) ([]domain.DuplicateGroup, error)
	Merge(ctx context.Context, input authority.MergeInput) (*authority.MergeReport, error)
	RecomputeKeys(ctx context.Context) (*authority.RecomputeResult, error)
	ListMerges(ctx context.Context, limit int) ([]domain.AuthorityMerge, error)
	Stats(ctx context.Context) (*authority.Stats, error)
}

// AdminHandler serves admin REST endpoints. Routes are expected to sit
// behind middleware.RequireAdmin.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc: svc,
		log: logger.With("handler", "admin"),
	}
}

type mergeRequest struct {
	Kind   string `json:"kind,omitempty"`
	DryRun bool   `json:"dryRun"`
}

type recomputeResponse struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
}

// Duplicates lists groups of equivalent authorities.
// GET /admin/duplicates?kind=PERSON
func (h *AdminHandler) Duplicates(w http.ResponseWriter, r *http.Request) {
	kind, err := queryKind(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	groups, err := h.svc.ListDuplicates(r.Context(), kind)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDuplicateGroupResponses(groups))
}

// Merge collapses duplicate groups into their survivors.
// POST /admin/merge {"kind": "PERSON", "dryRun": true}
func (h *AdminHandler) Merge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := authority.MergeInput{DryRun: req.DryRun}
	if req.Kind != "" {
		kind, err := parseKind(req.Kind)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		input.Kind = kind
	}

	report, err := h.svc.Merge(r.Context(), input)
	if report != nil && err != nil {
		h.log.WarnContext(r.Context(), "merge stopped early",
			slog.Int("merged", report.Merged),
			slog.String("error", err.Error()),
		)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	h.log.InfoContext(r.Context(), "merge requested",
		slog.String("user_id", userID.String()),
		slog.Bool("dry_run", report.DryRun),
		slog.Int("groups", len(report.Groups)),
		slog.Int("merged", report.Merged),
	)

	writeJSON(w, http.StatusOK, toMergeReportResponse(report))
}

// RecomputeKeys rederives every stored canonical key.
// POST /admin/recompute-keys
func (h *AdminHandler) RecomputeKeys(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.RecomputeKeys(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, recomputeResponse{Scanned: res.Scanned, Updated: res.Updated})
}

// Merges returns the most recent merge log records.
// GET /admin/merges?limit=50
func (h *AdminHandler) Merges(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	merges, err := h.svc.ListMerges(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMergeLogResponses(merges))
}

// Stats counts authorities per kind.
// GET /admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	byKind := make(map[string]int, len(st.ByKind))
	for k, n := range st.ByKind {
		byKind[k.String()] = n
	}
	writeJSON(w, http.StatusOK, statsResponse{Total: st.Total, ByKind: byKind})
}
