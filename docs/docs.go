// Package docs is the document editor used for generated deliverables.
// Documents are markdown files written through afs; content is supplied
// as structured blocks so callers never concatenate markup themselves.
package docs

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// BlockType enumerates supported content blocks.
type BlockType string

const (
	Heading1  BlockType = "heading1"
	Heading2  BlockType = "heading2"
	Heading3  BlockType = "heading3"
	Paragraph BlockType = "paragraph"
	Bullet    BlockType = "bullet"
	Numbered  BlockType = "numbered"
)

// Block is one unit of document content.
type Block struct {
	Type BlockType `json:"type"`
	Text string    `json:"text"`
}

// Document identifies a created document.
type Document struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Service creates and writes documents.
type Service struct {
	fs afs.Service
}

// New returns a document editor.
func New() *Service {
	return &Service{fs: afs.New()}
}

// CreateDocument creates an empty markdown document in the target folder.
func (s *Service) CreateDocument(ctx context.Context, title, folderURL string) (*Document, error) {
	name := fmt.Sprintf("%v.md", title)
	docURL := url.Join(folderURL, name)
	if err := s.fs.Upload(ctx, docURL, file.DefaultFileOsMode, bytes.NewReader(nil)); err != nil {
		return nil, fmt.Errorf("failed to create document %v: %w", title, err)
	}
	return &Document{ID: uuid.New().String(), URL: docURL, Title: title}, nil
}

// WriteBlocks renders blocks to markdown and writes them to the document.
// With replace false the rendered content is appended to what is there.
func (s *Service) WriteBlocks(ctx context.Context, docURL string, blocks []Block, replace bool) error {
	content := Render(blocks)
	if !replace {
		if ok, _ := s.fs.Exists(ctx, docURL); ok {
			existing, err := s.fs.DownloadWithURL(ctx, docURL)
			if err != nil {
				return fmt.Errorf("failed to read document %v: %w", docURL, err)
			}
			if len(existing) > 0 {
				content = string(existing) + "\n" + content
			}
		}
	}
	if err := s.fs.Upload(ctx, docURL, file.DefaultFileOsMode, bytes.NewReader([]byte(content))); err != nil {
		return fmt.Errorf("failed to write document %v: %w", docURL, err)
	}
	return nil
}
