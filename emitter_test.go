package rxhttp

import (
	"context"
	"io"
	"strings"
	"testing"
)

// trackingSource records whether the reader it handed out was closed.
type trackingSource struct {
	closed bool
}

func (s *trackingSource) NewReader() (io.ReadCloser, error) {
	return &trackingReadCloser{src: s, Reader: strings.NewReader("body")}, nil
}

func (s *trackingSource) ContentLength() (int64, bool) {
	return 4, true
}

type trackingReadCloser struct {
	src *trackingSource
	io.Reader
}

func (r *trackingReadCloser) Close() error {
	r.src.closed = true
	return nil
}

func TestBuildRequest_ClosesBodySourceOnConstructionFailure(t *testing.T) {
	c := newTestClient(t, "http://example.com")
	src := &trackingSource{}
	o := &callOptions{bodySource: src}

	// A method with a space is rejected by request construction, after the
	// body reader has already been opened.
	if _, err := c.buildRequest(context.Background(), "BAD METHOD", "http://example.com/x", o); err == nil {
		t.Fatal("expected request construction to fail")
	}
	if !src.closed {
		t.Error("body reader must be closed when request construction fails")
	}
}

func TestBuildRequest_BodySourceContentLength(t *testing.T) {
	c := newTestClient(t, "http://example.com")
	src := &trackingSource{}
	o := &callOptions{bodySource: src, contentType: MediaTypeTar}

	req, err := c.buildRequest(context.Background(), "POST", "http://example.com/build", o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ContentLength != 4 {
		t.Errorf("content length = %d, want 4", req.ContentLength)
	}
	if got := req.Header.Get("Content-Type"); got != MediaTypeTar {
		t.Errorf("content type = %q, want %q", got, MediaTypeTar)
	}
}
