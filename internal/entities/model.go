// Package entities implements the per-entity get/search orchestrators
// (spec §4.D): argument validation, section parsing, primary source
// calls, section-gated concurrent enrichment, and pagination assembly.
package entities

import (
	"strings"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
)

// MaxSearchLimit bounds every search orchestrator's limit argument, per
// spec §4.D step 1.
const MaxSearchLimit = 50

// MaxStructuresLimit is the raised bound for Protein.get's structures
// section, which pages a much larger per-accession result set.
const MaxStructuresLimit = 100

// MaxBatchIDs bounds the batch executor (spec §4.E).
const MaxBatchIDs = 10

// PaginationMeta is attached to every search response, per spec §3/§6.
type PaginationMeta struct {
	Offset        int    `json:"offset"`
	Limit         int    `json:"limit"`
	Returned      int    `json:"returned"`
	Total         *int   `json:"total,omitempty"`
	HasMore       bool   `json:"has_more"`
	NextPageToken string `json:"next_page_token,omitempty"`
}

// NewOffsetPagination builds PaginationMeta for offset-mode search, where
// HasMore is true iff offset+returned < total (spec §3).
func NewOffsetPagination(offset, limit, returned int, total *int) PaginationMeta {
	meta := PaginationMeta{Offset: offset, Limit: limit, Returned: returned, Total: total}
	if total != nil {
		meta.HasMore = offset+returned < *total
	}
	return meta
}

// NewCursorPagination builds PaginationMeta for cursor-mode search, where
// HasMore is true iff a next-page token is present (spec §3).
func NewCursorPagination(limit, returned int, total *int, nextPageToken string) PaginationMeta {
	return PaginationMeta{
		Limit: limit, Returned: returned, Total: total,
		NextPageToken: nextPageToken, HasMore: nextPageToken != "",
	}
}

// ValidateLimit enforces 1 <= limit <= max, per spec §4.D step 1 and §8's
// boundary cases (limit=0, limit=max+1 -> InvalidArgument).
func ValidateLimit(limit, max int) error {
	if limit < 1 || limit > max {
		return bmerrors.NewInvalidArgument("limit must be between 1 and %d, got %d", max, limit)
	}
	return nil
}

// ValidatePaginationMode rejects mixing a non-zero offset with a
// next-page cursor token (spec §6).
func ValidatePaginationMode(offset int, nextPageToken string) error {
	if nextPageToken != "" && offset != 0 {
		return bmerrors.NewInvalidArgument("cannot combine --cursor with a non-zero --offset")
	}
	return nil
}

// ParseSections expands "all" to every valid section name, strips stray
// --json/-j tokens that may arrive mixed in with section tokens, and
// rejects unknown tokens with the valid set listed, per spec §4.D step 2.
func ParseSections(tokens []string, valid []string) (map[string]bool, error) {
	validSet := make(map[string]bool, len(valid))
	for _, v := range valid {
		validSet[v] = true
	}

	result := make(map[string]bool)
	for _, raw := range tokens {
		t := strings.TrimSpace(raw)
		if t == "" || t == "--json" || t == "-j" {
			continue
		}
		if t == "all" {
			for _, v := range valid {
				result[v] = true
			}
			continue
		}
		if !validSet[t] {
			return nil, bmerrors.NewInvalidArgument(
				"unknown section %q; expected one of: %s, all", t, strings.Join(valid, ", "))
		}
		result[t] = true
	}
	return result, nil
}

// EnrichmentResult carries the outcome of one section's enrichment call:
// either the section succeeded (Err nil) or it failed and Note explains
// why, per spec §4.D step 4 ("the section is left empty or carries a
// *_note explanation").
type EnrichmentResult struct {
	Section string
	Note    string
	Err     error
}

// Note formats a standard "<source> annotations unavailable; <reason>" explanation.
func Note(source, reason string) string {
	return source + " annotations unavailable; " + reason
}
