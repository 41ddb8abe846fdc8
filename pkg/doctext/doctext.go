// Package doctext pulls plain text out of resume files.
package doctext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Supported extensions, lower case.
const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
	ExtTXT  = ".txt"
)

// Extract returns the text of the file at path, dispatching on its extension.
// Any extension other than .pdf, .docx and .txt fails with ErrUnsupportedFormat.
func Extract(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		text string
		err  error
	)
	switch ext {
	case ExtPDF:
		text, err = extractPDF(path)
	case ExtDOCX:
		text, err = extractDOCX(path)
	case ExtTXT:
		text, err = extractTXT(path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("read %s: %w", filepath.Base(path), ErrNoText)
	}
	return text, nil
}

func extractTXT(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
