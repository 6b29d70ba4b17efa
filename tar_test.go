package rxhttp

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArchiveSource_ReadsAreChunked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctx.tar")
	content := strings.Repeat("x", 3000)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	rc, err := NewArchiveSource(path).NewReader()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	buf := make([]byte, 8192)
	var total int
	for {
		n, err := rc.Read(buf)
		if n > tarChunkSize {
			t.Fatalf("read returned %d bytes, chunk bound is %d", n, tarChunkSize)
		}
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
	}
	if total != len(content) {
		t.Errorf("read %d bytes in total, want %d", total, len(content))
	}
}

func TestArchiveSource_ContentLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctx.tar")
	if err := os.WriteFile(path, []byte("1234567890"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	n, ok := NewArchiveSource(path).ContentLength()
	if !ok || n != 10 {
		t.Errorf("got (%d, %v), want (10, true)", n, ok)
	}

	if _, ok := NewArchiveSource("/nonexistent/ctx.tar").ContentLength(); ok {
		t.Error("missing archive must report unknown length")
	}
}

func TestArchiveSource_MissingFile(t *testing.T) {
	if _, err := NewArchiveSource("/nonexistent/ctx.tar").NewReader(); err == nil {
		t.Error("expected error for missing archive")
	}
}
