package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	// ErrEmptyContent reports a document that parsed fine but yielded no
	// usable text after trimming whitespace.
	ErrEmptyContent = errors.New("document contains no extractable text")

	// ErrUnsupported reports a document type this service cannot read.
	ErrUnsupported = errors.New("unsupported document type")
)

// ParseError wraps a failure to parse the document bytes.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse document: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// TextFromBytes extracts plain text from an in-memory document payload.
// The declared mime type is normalized against the payload itself; PDF text
// is the in-order concatenation of every page.
// Library used: github.com/ledongthuc/pdf (PDF). DOCX is read directly from
// the OOXML zip container.
func TextFromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", &ParseError{Err: errors.New("empty document")}
	}

	var (
		text string
		err  error
	)
	mime := normalizeMimeType(mimeType, fileName, data)
	switch mime {
	case mimePDF:
		text, err = extractPDF(data)
	case mimeDOCX:
		text, err = extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, mime)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyContent
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", &ParseError{Err: err}
	}

	var builder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ParseError{Err: fmt.Errorf("page %d: %w", i, err)}
		}
		builder.WriteString(text)
	}
	return builder.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return "", &ParseError{Err: err}
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", &ParseError{Err: errors.New("document.xml file not found")}
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", &ParseError{Err: err}
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", &ParseError{Err: err}
	}

	return stripDocxXML(string(raw)), nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean == "" || clean == "application/octet-stream" {
		clean = sniffMimeType(data)
	}
	if clean != "application/zip" {
		return clean
	}

	if mapped := mapOOXMLFromZip(data); mapped != "" {
		return mapped
	}

	if strings.ToLower(filepath.Ext(fileName)) == ".docx" {
		return mimeDOCX
	}
	return clean
}

func sniffMimeType(data []byte) string {
	sniffed := http.DetectContentType(data)
	return strings.ToLower(strings.TrimSpace(strings.Split(sniffed, ";")[0]))
}

func mapOOXMLFromZip(data []byte) string {
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			return mimeDOCX
		}
	}
	return ""
}
