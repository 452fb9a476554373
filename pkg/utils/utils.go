package utils

import (
	"path/filepath"
	"strings"
)

// DerivePDFPath returns the default output path for a Markdown input:
// the same path with the extension swapped for .pdf.
func DerivePDFPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".pdf"
}

// IsMarkdownPath reports whether the path carries a Markdown extension.
func IsMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
