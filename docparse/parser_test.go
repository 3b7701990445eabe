package docparse

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestService_Parse_text(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/docparse/rfp.txt"
	err := fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader([]byte("line one\nline two")))
	assert.Nil(t, err)

	doc, err := New().Parse(ctx, URL)
	assert.Nil(t, err)
	assert.Equal(t, "line one\nline two", doc.Text)
	assert.Equal(t, 2, doc.LineCount)
	assert.Equal(t, "rfp.txt", doc.FileInfo.Name)
	assert.Equal(t, ".txt", doc.FileInfo.Extension)
}

func TestService_Parse_unsupported(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/docparse/rfp.xls"
	err := fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader([]byte("x")))
	assert.Nil(t, err)

	_, err = New().Parse(ctx, URL)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestService_Parse_docx(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	body, err := writer.Create("word/document.xml")
	assert.Nil(t, err)
	_, err = body.Write([]byte(`<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Scope of work</w:t></w:r></w:p>
    <w:p><w:r><w:t>Deliver </w:t></w:r><w:r><w:t>a migration plan.</w:t></w:r></w:p>
  </w:body>
</w:document>`))
	assert.Nil(t, err)
	core, err := writer.Create("docProps/core.xml")
	assert.Nil(t, err)
	_, err = core.Write([]byte(`<?xml version="1.0"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title>Acme RFP</dc:title>
  <dc:creator>Acme Procurement</dc:creator>
</cp:coreProperties>`))
	assert.Nil(t, err)
	assert.Nil(t, writer.Close())

	fs := afs.New()
	URL := "mem://localhost/docparse/rfp.docx"
	err = fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(buf.Bytes()))
	assert.Nil(t, err)

	doc, err := New().Parse(ctx, URL)
	assert.Nil(t, err)
	assert.Equal(t, "Scope of work\n\nDeliver a migration plan.", doc.Text)
	assert.Equal(t, 2, doc.ParagraphCount)
	assert.Equal(t, "Acme RFP", doc.Metadata.Title)
	assert.Equal(t, "Acme Procurement", doc.Metadata.Author)
}

func TestExtractClientInfo(t *testing.T) {
	text := `REQUEST FOR PROPOSAL CLOUD MIGRATION SERVICES
RFP# 2026-014

Proposals are invited for a cloud migration program.
Submission date: September 15, 2026
`
	info := ExtractClientInfo(text)
	assert.Equal(t, "REQUEST FOR PROPOSAL CLOUD MIGRATION SERVICES", info.RFPTitle)
	assert.Equal(t, "2026-014", info.RFPNumber)
	assert.Equal(t, "September 15, 2026", info.Deadline)
}
