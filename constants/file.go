package constants

import (
	"path/filepath"
	"strings"
)

// DocumentKind distinguishes page-oriented documents from delimited feeds.
type DocumentKind string

const (
	KindPDF DocumentKind = "PDF" // page-oriented, goes through text extraction
	KindCSV DocumentKind = "CSV" // delimited feed, parsed column-wise
	KindTXT DocumentKind = "TXT" // pre-extracted text, parsed as-is
)

// AllowedExtensions holds the default allowed file extensions for invoice ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"csv": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// KindForFile maps a filename to its DocumentKind. Unknown extensions are
// treated as TXT so that pre-extracted dumps still parse.
func KindForFile(name string) DocumentKind {
	switch NormalizeExt(filepath.Ext(name)) {
	case "pdf":
		return KindPDF
	case "csv":
		return KindCSV
	default:
		return KindTXT
	}
}
