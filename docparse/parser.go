// Package docparse extracts text and metadata from bid documents so the
// workflow can prompt and index them. Sources are addressed as local
// paths or afs URLs.
package docparse

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// FileInfo describes the parsed source file.
type FileInfo struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"sizeBytes"`
	Extension string `json:"extension"`
	Path      string `json:"path"`
}

// Metadata carries embedded document properties when the format has them.
type Metadata struct {
	Title   string `json:"title,omitempty"`
	Author  string `json:"author,omitempty"`
	Subject string `json:"subject,omitempty"`
	Creator string `json:"creator,omitempty"`
	Created string `json:"created,omitempty"`
}

// Document is the parse result.
type Document struct {
	Text           string   `json:"text"`
	Metadata       Metadata `json:"metadata"`
	FileInfo       FileInfo `json:"fileInfo"`
	PageCount      int      `json:"pageCount,omitempty"`
	ParagraphCount int      `json:"paragraphCount,omitempty"`
	LineCount      int      `json:"lineCount,omitempty"`
}

// Service parses source documents.
type Service struct {
	fs afs.Service
}

// New returns a parser.
func New() *Service {
	return &Service{fs: afs.New()}
}

// Parse reads the source and extracts text plus metadata. Supported
// formats: .pdf, .docx, .txt, .md.
func (s *Service) Parse(ctx context.Context, location string) (*Document, error) {
	URL := url.Normalize(location, file.Scheme)
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", location, err)
	}
	_, name := url.Split(URL, file.Scheme)
	ext := strings.ToLower(path.Ext(name))
	doc := &Document{
		FileInfo: FileInfo{Name: name, SizeBytes: int64(len(data)), Extension: ext, Path: URL},
	}
	switch ext {
	case ".pdf":
		err = parsePDF(data, doc)
	case ".docx":
		err = parseDocx(data, doc)
	case ".txt", ".md":
		parseText(data, doc)
	case ".doc":
		return nil, fmt.Errorf("legacy .doc format is not supported, convert %v to .docx", name)
	default:
		return nil, fmt.Errorf("unsupported file format: %v", ext)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Text returns just the extracted text of the document at location.
func (s *Service) Text(ctx context.Context, location string) (string, error) {
	document, err := s.Parse(ctx, location)
	if err != nil {
		return "", err
	}
	return document.Text, nil
}

func parseText(data []byte, doc *Document) {
	doc.Text = string(data)
	doc.LineCount = strings.Count(doc.Text, "\n") + 1
}
