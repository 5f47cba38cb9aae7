package application

import (
	"strings"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

// NamedItem is the minimal view the matcher needs of any resource.
type NamedItem struct {
	ID   string
	Name string
}

const maxAmbiguousCandidates = 5

// MatchNamed picks the single item a query refers to. Exact case-folded
// equality wins before substring containment, so a query that names one
// item exactly never goes ambiguous just because other names contain it.
func MatchNamed(resource domain.Resource, items []NamedItem, query string) (NamedItem, error) {
	folded := foldName(query)
	if folded == "" {
		return NamedItem{}, domain.ErrEmptyQuery
	}

	var exact []NamedItem
	for _, item := range items {
		if foldName(item.Name) == folded {
			exact = append(exact, item)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}
	if len(exact) > 1 {
		return NamedItem{}, ambiguous(query, exact)
	}

	var partial []NamedItem
	for _, item := range items {
		if strings.Contains(foldName(item.Name), folded) {
			partial = append(partial, item)
		}
	}
	switch len(partial) {
	case 1:
		return partial[0], nil
	case 0:
		return NamedItem{}, &domain.NotFoundError{Resource: resource, Query: strings.TrimSpace(query)}
	default:
		return NamedItem{}, ambiguous(query, partial)
	}
}

func foldName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func ambiguous(query string, matches []NamedItem) *domain.AmbiguousError {
	candidates := make([]domain.Candidate, 0, maxAmbiguousCandidates)
	for _, item := range matches {
		if len(candidates) == maxAmbiguousCandidates {
			break
		}
		candidates = append(candidates, domain.Candidate{ID: item.ID, Name: item.Name})
	}
	return &domain.AmbiguousError{Query: strings.TrimSpace(query), Candidates: candidates}
}
