package docparse

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

func parsePDF(data []byte, doc *Document) error {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to open pdf %v: %w", doc.FileInfo.Name, err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return fmt.Errorf("failed to extract pdf text from %v: %w", doc.FileInfo.Name, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return fmt.Errorf("failed to extract pdf text from %v: %w", doc.FileInfo.Name, err)
	}
	doc.Text = buf.String()
	doc.PageCount = reader.NumPage()

	// Info dictionary is optional; absent keys come back empty.
	info := reader.Trailer().Key("Info")
	doc.Metadata = Metadata{
		Title:   info.Key("Title").Text(),
		Author:  info.Key("Author").Text(),
		Subject: info.Key("Subject").Text(),
		Creator: info.Key("Creator").Text(),
	}
	return nil
}
