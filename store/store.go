// Package store implements the engagement document store on top of afs,
// so workspaces work the same against file://, mem://, s3:// or gs://
// locations. A workspace is one folder per proposal engagement with a
// fixed set of numbered subfolders.
package store

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Subfolder names, numbered so storage listings keep kickoff order.
const (
	SourceDocumentsFolder = "00_Source_Documents"
	AnalysisFolder        = "01_Analysis"
	PlanningFolder        = "02_Planning"
	CollaborationFolder   = "03_Collaboration"
)

var invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Folder identifies a created storage folder.
type Folder struct {
	ID   string `json:"id" yaml:"id"`
	URL  string `json:"url" yaml:"url"`
	Name string `json:"name" yaml:"name"`
}

// Subfolders groups the fixed workspace layout.
type Subfolders struct {
	SourceDocuments Folder `json:"sourceDocuments" yaml:"sourceDocuments"`
	Analysis        Folder `json:"analysis" yaml:"analysis"`
	Planning        Folder `json:"planning" yaml:"planning"`
	Collaboration   Folder `json:"collaboration" yaml:"collaboration"`
}

// Workspace is the folder hierarchy created for one engagement.
type Workspace struct {
	Folder     `yaml:",inline"`
	Subfolders Subfolders `json:"subfolders" yaml:"subfolders"`
}

// File identifies an uploaded source document.
type File struct {
	ID   string `json:"id" yaml:"id"`
	URL  string `json:"url" yaml:"url"`
	Name string `json:"name" yaml:"name"`
}

// Object carries storage metadata for a resource.
type Object struct {
	URL     string    `json:"url"`
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
	Dir     bool      `json:"dir"`
}

// Service is the afs-backed document store.
type Service struct {
	fs   afs.Service
	root string
}

// New returns a store creating workspaces under the supplied afs root URL.
func New(root string) *Service {
	return &Service{fs: afs.New(), root: root}
}

// Root returns the workspace root URL.
func (s *Service) Root() string {
	return s.root
}

// CreateWorkspace creates the engagement folder and its subfolders under
// the store root. The name is sanitized before use.
func (s *Service) CreateWorkspace(ctx context.Context, name string) (*Workspace, error) {
	name = SanitizeName(name)
	if name == "" {
		return nil, fmt.Errorf("workspace name was empty after sanitization")
	}
	folderURL := url.Join(s.root, name)
	if err := s.fs.Create(ctx, folderURL, file.DefaultDirOsMode, true); err != nil {
		return nil, fmt.Errorf("failed to create workspace folder %v: %w", name, err)
	}
	workspace := &Workspace{
		Folder: Folder{ID: uuid.New().String(), URL: folderURL, Name: name},
	}
	subfolders := []struct {
		dest *Folder
		name string
	}{
		{&workspace.Subfolders.SourceDocuments, SourceDocumentsFolder},
		{&workspace.Subfolders.Analysis, AnalysisFolder},
		{&workspace.Subfolders.Planning, PlanningFolder},
		{&workspace.Subfolders.Collaboration, CollaborationFolder},
	}
	for _, sub := range subfolders {
		subURL := url.Join(folderURL, sub.name)
		if err := s.fs.Create(ctx, subURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create subfolder %v: %w", sub.name, err)
		}
		*sub.dest = Folder{ID: uuid.New().String(), URL: subURL, Name: sub.name}
	}
	return workspace, nil
}

// UploadFile copies a local path or afs URL into the target folder,
// keeping the base file name.
func (s *Service) UploadFile(ctx context.Context, path, folderURL string) (*File, error) {
	srcURL := url.Normalize(path, file.Scheme)
	data, err := s.fs.DownloadWithURL(ctx, srcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %v: %w", path, err)
	}
	_, name := url.Split(srcURL, file.Scheme)
	destURL := url.Join(folderURL, name)
	if err := s.fs.Upload(ctx, destURL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to upload %v: %w", name, err)
	}
	return &File{ID: uuid.New().String(), URL: destURL, Name: name}, nil
}

// Metadata returns storage metadata for a resource URL or path.
func (s *Service) Metadata(ctx context.Context, resource string) (*Object, error) {
	obj, err := s.fs.Object(ctx, url.Normalize(resource, file.Scheme))
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata for %v: %w", resource, err)
	}
	return &Object{
		URL:     obj.URL(),
		Name:    obj.Name(),
		Size:    obj.Size(),
		ModTime: obj.ModTime(),
		Dir:     obj.IsDir(),
	}, nil
}

// SanitizeName removes characters storage providers reject and trims the
// result to a safe length.
func SanitizeName(name string) string {
	name = invalidNameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, ". ")
	if len(name) > 200 {
		name = name[:200]
	}
	return name
}
