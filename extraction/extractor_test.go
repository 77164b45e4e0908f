package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranscriber struct {
	text    string
	formats []string
}

func (f *fakeTranscriber) TranscribeImage(_ context.Context, _ []byte, format string) (string, error) {
	f.formats = append(f.formats, format)
	return f.text, nil
}

func TestExtractText_UnsupportedMimeType(t *testing.T) {
	extractor := NewExtractor(&fakeTranscriber{})

	for _, mimeType := range []string{"text/plain", "application/msword", "image/gif", ""} {
		_, err := extractor.ExtractText(context.Background(), []byte("data"), mimeType)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, mimeType)
	}
}

func TestExtractText_ImagesGoThroughOCR(t *testing.T) {
	ocr := &fakeTranscriber{text: "근로계약서 제1조 ..."}
	extractor := NewExtractor(ocr)

	text, err := extractor.ExtractText(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "근로계약서 제1조 ...", text)

	_, err = extractor.ExtractText(context.Background(), []byte{0x89, 0x50}, "image/png")
	require.NoError(t, err)

	// The transcriber receives the bare image subtype.
	assert.Equal(t, []string{"jpeg", "png"}, ocr.formats)
}

func TestExtractText_ImageWithoutTranscriber(t *testing.T) {
	extractor := NewExtractor(nil)

	_, err := extractor.ExtractText(context.Background(), []byte("img"), "image/png")
	assert.Error(t, err)
}

func TestExtractText_MalformedPDF(t *testing.T) {
	extractor := NewExtractor(nil)

	_, err := extractor.ExtractText(context.Background(), []byte("not a pdf"), "application/pdf")
	assert.Error(t, err)
}
