package extraction

import (
	"context"
	"errors"
	"strings"
)

// ErrUnsupportedFormat is returned for MIME types the extractor cannot handle
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ImageTranscriber turns an image into the text it contains. The Gemini
// client satisfies this; format is the image subtype ("jpeg", "png").
type ImageTranscriber interface {
	TranscribeImage(ctx context.Context, data []byte, format string) (string, error)
}

// Extractor extracts plain text from uploaded contract documents,
// dispatching on MIME type: PDFs are parsed directly, images go through OCR.
type Extractor struct {
	ocr ImageTranscriber
}

// NewExtractor creates an extractor backed by the given OCR collaborator
func NewExtractor(ocr ImageTranscriber) *Extractor {
	return &Extractor{ocr: ocr}
}

// ExtractText extracts text from the document bytes. Supported MIME types
// are application/pdf, image/jpeg and image/png; anything else returns
// ErrUnsupportedFormat.
func (e *Extractor) ExtractText(ctx context.Context, data []byte, mimeType string) (string, error) {
	switch {
	case mimeType == "application/pdf":
		return extractPDFText(data)
	case mimeType == "image/jpeg" || mimeType == "image/png":
		if e.ocr == nil {
			return "", errors.New("image transcriber not set")
		}
		format := strings.TrimPrefix(mimeType, "image/")
		return e.ocr.TranscribeImage(ctx, data, format)
	default:
		return "", ErrUnsupportedFormat
	}
}
