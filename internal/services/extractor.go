package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// TextExtractor turns an uploaded document into plain text. Extract never
// fails: unsupported types and extraction errors both yield "".
type TextExtractor interface {
	Extract(ctx context.Context, filePath, ext string) string
}

type textExtractor struct {
	pdfParser  PDFParserService
	docxParser DocxParserService
	imageOCR   ImageOCRService
	logger     *logrus.Logger
}

func NewTextExtractor(
	pdfParser PDFParserService,
	docxParser DocxParserService,
	imageOCR ImageOCRService,
	logger *logrus.Logger,
) TextExtractor {
	return &textExtractor{
		pdfParser:  pdfParser,
		docxParser: docxParser,
		imageOCR:   imageOCR,
		logger:     logger,
	}
}

// Extract implements TextExtractor.
func (e *textExtractor) Extract(ctx context.Context, filePath, ext string) (text string) {
	ext = strings.ToLower(ext)
	log := e.logger.WithFields(logrus.Fields{"ext": ext, "kind": KindExtractionFailure})

	// The PDF reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("🛑 Text extraction panicked")
			text = ""
		}
	}()

	var err error
	switch ext {
	case ".pdf":
		text, err = e.pdfParser.ExtractText(filePath)
	case ".docx":
		text, err = e.docxParser.ExtractText(filePath)
	case ".jpg", ".jpeg", ".png":
		text, err = e.imageOCR.ExtractText(ctx, filePath)
	case ".txt":
		text, err = readPlainText(filePath)
	default:
		e.logger.WithField("ext", ext).Warn("Unsupported file type")
		return ""
	}

	if err != nil {
		log.WithError(err).Error("🛑 Error while extracting text")
		return ""
	}

	return CleanText(text)
}

func readPlainText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
