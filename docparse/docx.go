package docparse

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// A .docx is a zip archive; body text lives in word/document.xml as w:t
// runs grouped into w:p paragraphs, properties in docProps/core.xml.
func parseDocx(data []byte, doc *Document) error {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to open docx %v: %w", doc.FileInfo.Name, err)
	}
	body, err := readZipEntry(archive, "word/document.xml")
	if err != nil {
		return fmt.Errorf("failed to read docx body from %v: %w", doc.FileInfo.Name, err)
	}
	doc.Text, doc.ParagraphCount = docxText(body)

	if core, err := readZipEntry(archive, "docProps/core.xml"); err == nil {
		props := struct {
			Title   string `xml:"title"`
			Creator string `xml:"creator"`
			Subject string `xml:"subject"`
			Created string `xml:"created"`
		}{}
		if err := xml.Unmarshal(core, &props); err == nil {
			doc.Metadata = Metadata{
				Title:   props.Title,
				Author:  props.Creator,
				Subject: props.Subject,
				Created: props.Created,
			}
		}
	}
	return nil
}

func readZipEntry(archive *zip.Reader, name string) ([]byte, error) {
	for _, entry := range archive.File {
		if entry.Name != name {
			continue
		}
		reader, err := entry.Open()
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return io.ReadAll(reader)
	}
	return nil, fmt.Errorf("entry %v not found", name)
}

func docxText(body []byte) (string, int) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	var parts []string
	var current strings.Builder
	inRun := false
	paragraphs := 0
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch actual := token.(type) {
		case xml.StartElement:
			if actual.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch actual.Name.Local {
			case "t":
				inRun = false
			case "p":
				paragraphs++
				if text := strings.TrimSpace(current.String()); text != "" {
					parts = append(parts, text)
				}
				current.Reset()
			}
		case xml.CharData:
			if inRun {
				current.Write(actual)
			}
		}
	}
	if text := strings.TrimSpace(current.String()); text != "" {
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n"), paragraphs
}
