package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/intelia/rfpaccel/docparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestService_ImportAndRetrieve(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	folderURL := "mem://localhost/search/sources"
	err := fs.Upload(ctx, folderURL+"/rfp.txt", file.DefaultFileOsMode,
		strings.NewReader("The migration covers data centers in two regions."))
	require.Nil(t, err)
	err = fs.Upload(ctx, folderURL+"/notes.md", file.DefaultFileOsMode,
		strings.NewReader("Budget review happens quarterly."))
	require.Nil(t, err)

	service := New("", docparse.New())
	defer service.Close()
	index, err := service.CreateIndex(ctx, "Acme Cloud Migration")
	require.Nil(t, err)
	assert.True(t, strings.HasPrefix(index.ID, "rfp-acme-cloud-migration-"), index.ID)

	require.Nil(t, service.Import(ctx, index.ID, folderURL))
	assert.EqualValues(t, index.ID, service.Endpoint(index.ID))
	assert.EqualValues(t, "", service.Endpoint("unknown"))

	matches, err := service.Retrieve(ctx, index.ID, "migration regions", 3)
	require.Nil(t, err)
	require.True(t, len(matches) > 0)
	assert.Contains(t, matches[0].Fragment, "migration")

	snippets, err := NewSnippetSource(service).Retrieve(ctx, index.ID, "budget", 3)
	require.Nil(t, err)
	require.True(t, len(snippets) > 0)
	assert.Contains(t, snippets[0], "Budget")

	_, err = service.Retrieve(ctx, "missing", "migration", 3)
	assert.True(t, errors.Is(err, ErrIndexNotFound))
}

func TestService_DiskPersistence(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	folderURL := "mem://localhost/search/disk"
	err := fs.Upload(ctx, folderURL+"/rfp.txt", file.DefaultFileOsMode,
		strings.NewReader("Deployment spans retail stores nationwide."))
	require.Nil(t, err)

	root := t.TempDir()
	service := New(root, docparse.New())
	index, err := service.CreateIndex(ctx, "Retail Rollout")
	require.Nil(t, err)
	require.Nil(t, service.Import(ctx, index.ID, folderURL))
	require.Nil(t, service.Close())

	reopened := New(root, docparse.New())
	defer reopened.Close()
	assert.EqualValues(t, index.ID, reopened.Endpoint(index.ID))
	matches, err := reopened.Retrieve(ctx, index.ID, "retail deployment", 3)
	require.Nil(t, err)
	require.True(t, len(matches) > 0)
	assert.Contains(t, matches[0].Fragment, "retail")
}
