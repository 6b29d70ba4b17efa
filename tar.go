package rxhttp

import (
	"fmt"
	"io"
	"os"
)

// tarChunkSize bounds one read from the archive file while streaming it into
// the request body, so the archive is never held in memory whole.
const tarChunkSize = 1024

// BodySource is a re-openable request body. Each NewReader call must yield a
// fresh reader so a call built on one source can be subscribed more than once.
type BodySource interface {
	NewReader() (io.ReadCloser, error)
	ContentLength() (int64, bool)
}

// ArchiveSource is a readable byte source over a tar archive on disk. Each
// NewReader call opens the file fresh, so a call built on one source can be
// subscribed more than once.
type ArchiveSource struct {
	path string
}

// NewArchiveSource creates an archive source for the tar file at path.
func NewArchiveSource(path string) *ArchiveSource {
	return &ArchiveSource{path: path}
}

// NewReader opens the archive for streaming, with reads bounded to
// tarChunkSize bytes.
func (s *ArchiveSource) NewReader() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open tar archive %s: %w", s.path, err)
	}
	return &chunkedReadCloser{rc: f, max: tarChunkSize}, nil
}

// ContentLength returns the archive size when known.
func (s *ArchiveSource) ContentLength() (int64, bool) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

// chunkedReadCloser caps every Read at max bytes.
type chunkedReadCloser struct {
	rc  io.ReadCloser
	max int
}

func (r *chunkedReadCloser) Read(p []byte) (int, error) {
	if len(p) > r.max {
		p = p[:r.max]
	}
	return r.rc.Read(p)
}

func (r *chunkedReadCloser) Close() error {
	return r.rc.Close()
}
