package content

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/soruj/portfolio-assistant/internal/types"
)

// maxDocumentBytes bounds how much of a single file is read. Oversized files
// are truncated, not skipped, so large documents still contribute content.
const maxDocumentBytes = 64 * 1024

// ReadDocsDir reads every regular file in dir into a Document, labeling each
// with its file name as the source. HTML files are reduced to their visible
// text. An unreadable directory yields an empty set, never an error: the
// documents directory is a best-effort source.
func ReadDocsDir(dir string) []types.Document {
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var docs []types.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		if len(data) > maxDocumentBytes {
			data = data[:maxDocumentBytes]
		}

		text := string(data)
		if isHTMLFile(entry.Name()) {
			if extracted, err := extractHTMLText(text); err == nil {
				text = extracted
			}
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		docs = append(docs, types.Document{Content: text, Source: entry.Name()})
	}
	return docs
}

func isHTMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}

// extractHTMLText strips markup and returns the visible text of an HTML
// document, collapsing runs of whitespace.
func extractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
