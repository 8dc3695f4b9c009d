package resume

import (
	"log/slog"
)

// Service parses an uploaded resume into contact guesses. The extracted text
// lives only for the duration of the call.
type Service interface {
	Parse(filename, declaredMime string, data []byte) (Parsed, error)
}

type service struct {
	extractor *Extractor
	log       *slog.Logger
}

func NewService(extractor *Extractor, log *slog.Logger) Service {
	if extractor == nil {
		extractor = NewExtractor()
	}
	if log == nil {
		log = slog.Default()
	}
	return &service{extractor: extractor, log: log.With("component", "resume")}
}

func (s *service) Parse(filename, declaredMime string, data []byte) (Parsed, error) {
	mimeType := DetectMimeType(filename, declaredMime)
	text, err := s.extractor.Extract(data, mimeType)
	if err != nil {
		s.log.Warn("resume extraction failed", "filename", filename, "mime", mimeType, "error", err)
		return Parsed{}, err
	}
	contact := ExtractContact(text)
	s.log.Info("resume parsed", "filename", filename, "mime", mimeType, "chars", len(text), "fields", contact.Fields())
	return Parsed{
		Contact: contact,
		Resume:  Meta{Filename: filename, MimeType: mimeType, Size: int64(len(data))},
	}, nil
}
