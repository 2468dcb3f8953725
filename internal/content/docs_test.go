package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadDocsDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bio.txt", "Soruj builds web applications.")
	writeFile(t, dir, "notes.md", "Prefers boring proven technology.")
	writeFile(t, dir, "page.html", `<html><head><style>p{color:red}</style></head><body><p>Visible text only.</p><script>alert(1)</script></body></html>`)
	writeFile(t, dir, "empty.txt", "   \n  ")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	docs := ReadDocsDir(dir)

	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3 (empty file and directory skipped)", len(docs))
	}

	bySource := make(map[string]string)
	for _, d := range docs {
		bySource[d.Source] = d.Content
	}

	if bySource["bio.txt"] != "Soruj builds web applications." {
		t.Errorf("bio.txt content = %q", bySource["bio.txt"])
	}

	html := bySource["page.html"]
	if html != "Visible text only." {
		t.Errorf("html extraction = %q, want visible text without markup", html)
	}
	if strings.Contains(html, "alert") || strings.Contains(html, "color:red") {
		t.Errorf("script/style content leaked into extraction: %q", html)
	}
}

func TestReadDocsDir_MissingDirectory(t *testing.T) {
	if docs := ReadDocsDir("/does/not/exist"); docs != nil {
		t.Errorf("missing directory should yield no documents, got %d", len(docs))
	}
}

func TestReadDocsDir_EmptyPath(t *testing.T) {
	if docs := ReadDocsDir(""); docs != nil {
		t.Errorf("empty path should yield no documents")
	}
}

func TestReadDocsDir_TruncatesOversizedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "big.txt", strings.Repeat("x", maxDocumentBytes+1000))

	docs := ReadDocsDir(dir)
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	if len(docs[0].Content) != maxDocumentBytes {
		t.Errorf("content length = %d, want %d", len(docs[0].Content), maxDocumentBytes)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
