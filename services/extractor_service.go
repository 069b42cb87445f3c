package services

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// SetDocumentLicense registers the UniPDF metered key. Without it PDF import fails
// while plain text files keep working.
func SetDocumentLicense(key string) {
	if key == "" {
		log.Println("WARN: UNIDOC_LICENSE_KEY not set. PDF import will fail.")
		return
	}
	if err := license.SetMeteredKey(key); err != nil {
		log.Printf("ERROR: Failed to set Unidoc license key: %v. PDF import will fail.", err)
	}
}

// IsSupportedDocument reports whether the file name has an extension ExtractText can read.
func IsSupportedDocument(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md", ".pdf":
		return true
	default:
		return false
	}
}

// ExtractText returns the text of a document, picking the reader by the file extension.
func ExtractText(filename string, r io.ReadSeeker) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt", ".md":
		content, err := io.ReadAll(r)
		if err != nil {
			return "", err
		}
		return string(content), nil
	case ".pdf":
		return extractTextFromPDF(r)
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}

// extractTextFromPDF uses UniPDF to get all text from a PDF document.
func extractTextFromPDF(r io.ReadSeeker) (string, error) {
	pdfReader, err := model.NewPdfReader(r)
	if err != nil {
		return "", err
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return "", err
		}

		ex, err := extractor.New(page)
		if err != nil {
			return "", err
		}

		text, err := ex.ExtractText()
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		sb.WriteString("\n\n") // Add space between pages
	}

	return sb.String(), nil
}
