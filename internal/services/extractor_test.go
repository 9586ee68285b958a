package services

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVision struct {
	text     string
	err      error
	mimeType string
	image    []byte
}

func (f *fakeVision) GenerateFromImage(_ context.Context, _ string, image []byte, mimeType string) (string, error) {
	f.image = image
	f.mimeType = mimeType
	return f.text, f.err
}

type panickingParser struct{}

func (panickingParser) ExtractText(string) (string, error) {
	panic("malformed xref table")
}

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestExtractor(vision VisionClient) TextExtractor {
	return NewTextExtractor(
		NewPDFParserService(),
		NewDocxParserService(),
		NewImageOCRService(vision),
		silentLogger(),
	)
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

func writeDocx(t *testing.T, paragraphs string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			paragraphs + `</w:body></w:document>`,
	}
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return path
}

func TestTextExtractor_PlainText(t *testing.T) {
	path := writeFile(t, "cv.txt", []byte("  Jane Doe \n\n\n Go developer  \n"))

	text := newTestExtractor(&fakeVision{}).Extract(context.Background(), path, ".TXT")

	assert.Equal(t, "Jane Doe\nGo developer", text)
}

func TestTextExtractor_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "cv.odt", []byte("content"))

	assert.Empty(t, newTestExtractor(&fakeVision{}).Extract(context.Background(), path, ".odt"))
}

func TestTextExtractor_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.txt")

	assert.Empty(t, newTestExtractor(&fakeVision{}).Extract(context.Background(), path, ".txt"))
}

func TestTextExtractor_CorruptPDF(t *testing.T) {
	path := writeFile(t, "cv.pdf", []byte("this is not a pdf"))

	assert.Empty(t, newTestExtractor(&fakeVision{}).Extract(context.Background(), path, ".pdf"))
}

func TestTextExtractor_PanickingParser(t *testing.T) {
	extractor := NewTextExtractor(panickingParser{}, NewDocxParserService(), NewImageOCRService(&fakeVision{}), silentLogger())
	path := writeFile(t, "cv.pdf", []byte("%PDF-1.4"))

	assert.NotPanics(t, func() {
		assert.Empty(t, extractor.Extract(context.Background(), path, ".pdf"))
	})
}

func TestTextExtractor_Docx(t *testing.T) {
	path := writeDocx(t,
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go &amp; SQL</w:t></w:r></w:p>`)

	text := newTestExtractor(&fakeVision{}).Extract(context.Background(), path, ".docx")

	assert.Equal(t, "Jane Doe\nSkills:\tGo & SQL", text)
}

func TestTextExtractor_Image(t *testing.T) {
	vision := &fakeVision{text: "Jane Doe\nData Analyst\n"}
	path := writeFile(t, "cv.JPG", []byte{0xff, 0xd8, 0xff})

	text := newTestExtractor(vision).Extract(context.Background(), path, ".jpg")

	assert.Equal(t, "Jane Doe\nData Analyst", text)
	assert.Equal(t, "image/jpeg", vision.mimeType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, vision.image)
}

func TestTextExtractor_ImageVisionFailure(t *testing.T) {
	vision := &fakeVision{err: errors.New("quota exceeded")}
	path := writeFile(t, "cv.png", []byte{0x89, 'P', 'N', 'G'})

	assert.Empty(t, newTestExtractor(vision).Extract(context.Background(), path, ".png"))
}
