// Package extract turns uploaded files into plain text for prompt
// composition. Extraction is best-effort: a document that cannot be parsed
// yields a readable placeholder instead of an error, so the request keeps
// going with that placeholder as the file content.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// FromUpload returns the plain text of an uploaded file. Word documents
// (.docx) are parsed paragraph by paragraph; anything else is decoded as
// UTF-8 with invalid byte sequences dropped.
func FromUpload(filename string, data []byte) string {
	if strings.HasSuffix(strings.ToLower(filename), ".docx") {
		text, err := docxText(data)
		if err != nil {
			return fmt.Sprintf("Error reading file: %v", err)
		}
		return text
	}
	return string(bytes.ToValidUTF8(data, nil))
}

// docxText extracts paragraph text from a .docx archive. A .docx is a zip
// containing word/document.xml; paragraphs (<w:p>) are concatenated with
// newline separators in document order.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("word/document.xml not found")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)

	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
