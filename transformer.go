package rxhttp

import "strings"

// StringTransformer converts one unit of response text — the whole body in
// single-value mode, or one chunk in streaming mode — into an element.
// Transformers must be pure: they own nothing and may be re-applied.
type StringTransformer[R any] func(string) (R, error)

// CollectionTransformer converts a whole response body into an ordered
// sequence of elements.
type CollectionTransformer[R any] func(string) ([]R, error)

// ResponseTransformer converts the response handle into an element. Used by
// operations that need status or headers rather than (or in addition to) the
// body.
type ResponseTransformer[R any] func(*Response) (R, error)

// BufferTransformer converts one opaque binary chunk into an element.
type BufferTransformer[R any] func([]byte) (R, error)

// Splitter divides a response body into ordered records.
type Splitter func(string) []string

// Identity passes the response body through unchanged.
func Identity() StringTransformer[string] {
	return func(body string) (string, error) {
		return body, nil
	}
}

// IdentityBuffer passes each binary chunk through as its own copy. The copy is
// required because the read buffer is reused between chunks.
func IdentityBuffer() BufferTransformer[[]byte] {
	return func(chunk []byte) ([]byte, error) {
		out := make([]byte, len(chunk))
		copy(out, chunk)
		return out, nil
	}
}

// HTTPStatusTransformer ignores the body and yields the response status line.
func HTTPStatusTransformer() ResponseTransformer[HttpStatus] {
	return func(resp *Response) (HttpStatus, error) {
		return resp.HTTPStatus(), nil
	}
}

// SplitLines splits a body on newlines, dropping a trailing empty record.
// An empty body yields an empty sequence.
func SplitLines(body string) []string {
	if body == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	return lines
}

// ToCollection lifts a single-value transformer over a record splitter,
// producing one element per record. This is the composition primitive behind
// every multi-element body mode.
func (t StringTransformer[R]) ToCollection(split Splitter) CollectionTransformer[R] {
	return func(body string) ([]R, error) {
		records := split(body)
		out := make([]R, 0, len(records))
		for _, record := range records {
			v, err := t(record)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// ToLineCollection lifts a single-value transformer into one element per line.
func (t StringTransformer[R]) ToLineCollection() CollectionTransformer[R] {
	return t.ToCollection(SplitLines)
}

// FromBody lifts a body transformer into a response transformer.
func FromBody[R any](t StringTransformer[R]) ResponseTransformer[R] {
	return func(resp *Response) (R, error) {
		return t(resp.Body)
	}
}
