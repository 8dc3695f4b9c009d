package resume

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	pdf "github.com/ledongthuc/pdf"
)

// PDFReader returns the text layer of every page, in page order.
type PDFReader func(data []byte) ([]string, error)

// DocxReader returns the raw text of an OOXML document.
type DocxReader func(data []byte) (string, error)

// Extractor turns an uploaded document into flat text.
type Extractor struct {
	readPDF  PDFReader
	readDocx DocxReader
}

type Option func(*Extractor)

func WithPDFReader(r PDFReader) Option {
	return func(e *Extractor) { e.readPDF = r }
}

func WithDocxReader(r DocxReader) Option {
	return func(e *Extractor) { e.readDocx = r }
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{readPDF: readPDFPages, readDocx: readDocxText}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract dispatches on the declared MIME type. Types other than PDF and DOCX
// are rejected with ErrUnsupportedFormat before any parser runs.
func (e *Extractor) Extract(data []byte, mimeType string) (string, error) {
	switch mimeType {
	case MimePDF:
		var pages []string
		err := guard("pdf", func() (err error) {
			pages, err = e.readPDF(data)
			return err
		})
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(strings.Join(pages, "\n")), nil
	case MimeDOCX:
		var text string
		err := guard("docx", func() (err error) {
			text, err = e.readDocx(data)
			return err
		})
		if err != nil {
			return "", err
		}
		return normalizeWhitespace(text), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// guard converts parser errors and parser panics into *ParseFailure.
func guard(format string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ParseFailure{Format: format, Cause: fmt.Errorf("parser panic: %v", r)}
		}
	}()
	if err := fn(); err != nil {
		return &ParseFailure{Format: format, Cause: err}
	}
	return nil
}

// DetectMimeType trusts the declared type unless the client sent none or the
// generic octet-stream type, in which case the file extension decides.
func DetectMimeType(filename, declared string) string {
	declared = strings.TrimSpace(declared)
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	declared = strings.ToLower(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	default:
		return declared
	}
}

func readPDFPages(data []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	n := r.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, txt)
	}
	return pages, nil
}

func readDocxText(data []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return text, nil
}

var (
	reHorizontalSpace = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines        = regexp.MustCompile(`\n+`)
)

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reHorizontalSpace.ReplaceAllString(s, " ")
	// Preserve newlines but collapse runs
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
