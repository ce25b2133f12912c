package rest

import (
	"time"

	"github.com/heartmarshall/authority-backend/internal/domain"
	"github.com/heartmarshall/authority-backend/internal/service/authority"
)

type authorityResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Label        string    `json:"label"`
	CanonicalKey string    `json:"canonicalKey"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toAuthorityResponse(a domain.Authority) authorityResponse {
	return authorityResponse{
		ID:           a.ID.String(),
		Kind:         a.Kind.String(),
		Label:        a.Label,
		CanonicalKey: a.CanonicalKey,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toAuthorityResponses(items []domain.Authority) []authorityResponse {
	out := make([]authorityResponse, len(items))
	for i, a := range items {
		out[i] = toAuthorityResponse(a)
	}
	return out
}

type authorityListResponse struct {
	Items       []authorityResponse `json:"items"`
	TotalCount  int                 `json:"totalCount"`
	HasNextPage bool                `json:"hasNextPage"`
}

type referenceResponse struct {
	ID          string    `json:"id"`
	AuthorityID string    `json:"authorityId"`
	DocumentID  string    `json:"documentId"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toReferenceResponse(ref domain.AuthorityRef) referenceResponse {
	return referenceResponse{
		ID:          ref.ID.String(),
		AuthorityID: ref.AuthorityID.String(),
		DocumentID:  ref.DocumentID.String(),
		Role:        ref.Role,
		CreatedAt:   ref.CreatedAt,
	}
}

type duplicateGroupResponse struct {
	Kind         string              `json:"kind"`
	CanonicalKey string              `json:"canonicalKey"`
	Survivor     authorityResponse   `json:"survivor"`
	Duplicates   []authorityResponse `json:"duplicates"`
}

func toDuplicateGroupResponses(groups []domain.DuplicateGroup) []duplicateGroupResponse {
	out := make([]duplicateGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = duplicateGroupResponse{
			Kind:         g.Kind.String(),
			CanonicalKey: g.CanonicalKey,
			Survivor:     toAuthorityResponse(g.Survivor),
			Duplicates:   toAuthorityResponses(g.Duplicates),
		}
	}
	return out
}

type mergedGroupResponse struct {
	Kind         string   `json:"kind"`
	CanonicalKey string   `json:"canonicalKey"`
	SurvivorID   string   `json:"survivorId"`
	Survivor     string   `json:"survivor"`
	MergedIDs    []string `json:"mergedIds"`
	RefsMoved    int      `json:"refsMoved"`
	RefsDropped  int      `json:"refsDropped"`
}

type mergeReportResponse struct {
	DryRun    bool                  `json:"dryRun"`
	Groups    []mergedGroupResponse `json:"groups"`
	Merged    int                   `json:"merged"`
	RefsMoved int                   `json:"refsMoved"`
	Skipped   int                   `json:"skipped"`
	Truncated bool                  `json:"truncated"`
}

func toMergeReportResponse(r *authority.MergeReport) mergeReportResponse {
	groups := make([]mergedGroupResponse, len(r.Groups))
	for i, g := range r.Groups {
		ids := make([]string, len(g.MergedIDs))
		for j, id := range g.MergedIDs {
			ids[j] = id.String()
		}
		groups[i] = mergedGroupResponse{
			Kind:         g.Kind.String(),
			CanonicalKey: g.CanonicalKey,
			SurvivorID:   g.SurvivorID.String(),
			Survivor:     g.Survivor,
			MergedIDs:    ids,
			RefsMoved:    g.RefsMoved,
			RefsDropped:  g.RefsDropped,
		}
	}
	return mergeReportResponse{
		DryRun:    r.DryRun,
		Groups:    groups,
		Merged:    r.Merged,
		RefsMoved: r.RefsMoved,
		Skipped:   r.Skipped,
		Truncated: r.Truncated,
	}
}

type mergeLogResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	CanonicalKey string    `json:"canonicalKey"`
	SurvivorID   string    `json:"survivorId"`
	MergedID     string    `json:"mergedId"`
	MergedLabel  string    `json:"mergedLabel"`
	RefsMoved    int       `json:"refsMoved"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toMergeLogResponses(merges []domain.AuthorityMerge) []mergeLogResponse {
	out := make([]mergeLogResponse, len(merges))
	for i, m := range merges {
		out[i] = mergeLogResponse{
			ID:           m.ID.String(),
			Kind:         m.Kind.String(),
			CanonicalKey: m.CanonicalKey,
			SurvivorID:   m.SurvivorID.String(),
			MergedID:     m.MergedID.String(),
			MergedLabel:  m.MergedLabel,
			RefsMoved:    m.RefsMoved,
			CreatedAt:    m.CreatedAt,
		}
	}
	return out
}

type statsResponse struct {
	Total  int            `json:"total"`
	ByKind map[string]int `json:"byKind"`
}
