// Package search maintains per-project knowledge-base indexes over
// workspace documents and serves keyword retrieval for grounded
// generation.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/intelia/rfpaccel/docparse"
	"github.com/intelia/rfpaccel/internal/logging"
	"github.com/viant/afs"
)

const fragmentLimit = 300

// ErrIndexNotFound is returned when an index id resolves to no known index.
var ErrIndexNotFound = errors.New("index not found")

// Index identifies a knowledge-base index.
type Index struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match is a retrieval hit.
type Match struct {
	DocumentURL string  `json:"documentURL"`
	Fragment    string  `json:"fragment"`
	Score       float64 `json:"score"`
}

// Service creates and queries knowledge-base indexes. With an empty root
// the indexes live in memory only; otherwise each index persists under
// root and reopens on demand.
type Service struct {
	fs      afs.Service
	parser  *docparse.Service
	logger  *slog.Logger
	root    string
	mux     sync.RWMutex
	indexes map[string]bleve.Index
}

// Option customizes the service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an index service rooted at root ("" keeps indexes in memory).
func New(root string, parser *docparse.Service, options ...Option) *Service {
	result := &Service{
		fs:      afs.New(),
		parser:  parser,
		logger:  logging.Nop(),
		root:    root,
		indexes: map[string]bleve.Index{},
	}
	for _, option := range options {
		option(result)
	}
	return result
}

// CreateIndex provisions an empty index for displayName.
func (s *Service) CreateIndex(ctx context.Context, displayName string) (*Index, error) {
	id := indexID(displayName)
	mapping := bleve.NewIndexMapping()
	var index bleve.Index
	var err error
	if s.root == "" {
		index, err = bleve.NewMemOnly(mapping)
	} else {
		index, err = bleve.New(filepath.Join(s.root, id), mapping)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create index %v: %w", id, err)
	}
	s.mux.Lock()
	s.indexes[id] = index
	s.mux.Unlock()
	s.logger.Info("created knowledge-base index", "id", id, "name", displayName)
	return &Index{ID: id, Name: displayName}, nil
}

// document is the indexed representation of one workspace file.
type document struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Import indexes every parseable document under folderURL. Files the
// parser cannot read are skipped with a warning.
func (s *Service) Import(ctx context.Context, indexID, folderURL string) error {
	index, err := s.index(indexID)
	if err != nil {
		return err
	}
	objects, err := s.fs.List(ctx, folderURL)
	if err != nil {
		return fmt.Errorf("failed to list %v: %w", folderURL, err)
	}
	batch := index.NewBatch()
	indexed := 0
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		parsed, err := s.parser.Parse(ctx, object.URL())
		if err != nil {
			s.logger.Warn("skipping unparseable document", "url", object.URL(), "error", err)
			continue
		}
		if err = batch.Index(object.URL(), &document{Name: object.Name(), Text: parsed.Text}); err != nil {
			return fmt.Errorf("failed to index %v: %w", object.URL(), err)
		}
		indexed++
	}
	if err = index.Batch(batch); err != nil {
		return fmt.Errorf("failed to apply index batch: %w", err)
	}
	s.logger.Info("imported documents", "index", indexID, "count", indexed)
	return nil
}

// Endpoint returns the grounding reference for indexID, or "" when the
// index is unknown.
func (s *Service) Endpoint(indexID string) string {
	s.mux.RLock()
	_, ok := s.indexes[indexID]
	s.mux.RUnlock()
	if ok {
		return indexID
	}
	if s.root != "" {
		if _, err := os.Stat(filepath.Join(s.root, indexID)); err == nil {
			return indexID
		}
	}
	return ""
}

// Retrieve returns up to limit matches for query in the referenced index.
func (s *Service) Retrieve(ctx context.Context, ref, query string, limit int) ([]Match, error) {
	index, err := s.index(ref)
	if err != nil {
		return nil, err
	}
	request := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, 0, false)
	request.Fields = []string{"name", "text"}
	request.Highlight = bleve.NewHighlightWithStyle("html")
	result, err := index.SearchInContext(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to search index %v: %w", ref, err)
	}
	var matches []Match
	for _, hit := range result.Hits {
		matches = append(matches, Match{
			DocumentURL: hit.ID,
			Fragment:    fragment(hit.Fragments["text"], hit.Fields["text"]),
			Score:       hit.Score,
		})
	}
	return matches, nil
}

// Close releases every open index.
func (s *Service) Close() error {
	s.mux.Lock()
	defer s.mux.Unlock()
	var err error
	for id, index := range s.indexes {
		err = errors.Join(err, index.Close())
		delete(s.indexes, id)
	}
	return err
}

func (s *Service) index(id string) (bleve.Index, error) {
	s.mux.RLock()
	index, ok := s.indexes[id]
	s.mux.RUnlock()
	if ok {
		return index, nil
	}
	if s.root == "" {
		return nil, fmt.Errorf("%w: %v", ErrIndexNotFound, id)
	}
	opened, err := bleve.Open(filepath.Join(s.root, id))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexNotFound, id)
	}
	s.mux.Lock()
	s.indexes[id] = opened
	s.mux.Unlock()
	return opened, nil
}

var markTags = strings.NewReplacer("<mark>", "", "</mark>", "")

func fragment(highlights []string, stored interface{}) string {
	if len(highlights) > 0 {
		return markTags.Replace(highlights[0])
	}
	text, _ := stored.(string)
	if len(text) > fragmentLimit {
		text = text[:fragmentLimit]
	}
	return text
}

func indexID(displayName string) string {
	slug := strings.ReplaceAll(strings.ToLower(displayName), " ", "-")
	if len(slug) > 20 {
		slug = slug[:20]
	}
	return fmt.Sprintf("rfp-%v-%v", slug, time.Now().Unix())
}
