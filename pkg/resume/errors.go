package resume

import (
	"errors"
	"fmt"

	pdf "github.com/ledongthuc/pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported file type: please upload a PDF or DOCX file")

// ParseFailure wraps any error raised while decoding a supported document.
type ParseFailure struct {
	Format string
	Cause  error
}

func (e *ParseFailure) Error() string {
	if errors.Is(e.Cause, pdf.ErrInvalidPassword) {
		return "this PDF is password protected, please upload an unprotected file"
	}
	return fmt.Sprintf("failed to parse %s: %v, please ensure the file is not corrupted", e.Format, e.Cause)
}

func (e *ParseFailure) Unwrap() error { return e.Cause }
