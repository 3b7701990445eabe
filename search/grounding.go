package search

import "context"

// SnippetSource adapts the index service to grounded generation,
// surfacing match fragments only.
type SnippetSource struct {
	service *Service
}

// NewSnippetSource returns a fragment-only retrieval view of service.
func NewSnippetSource(service *Service) *SnippetSource {
	return &SnippetSource{service: service}
}

// Retrieve returns the fragments of the top limit matches for query.
func (s *SnippetSource) Retrieve(ctx context.Context, source, query string, limit int) ([]string, error) {
	matches, err := s.service.Retrieve(ctx, source, query, limit)
	if err != nil {
		return nil, err
	}
	var snippets []string
	for _, match := range matches {
		if match.Fragment != "" {
			snippets = append(snippets, match.Fragment)
		}
	}
	return snippets, nil
}
