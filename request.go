package rxhttp

// Media types used on outgoing requests.
const (
	// MediaTypeJSON is the content type for structured request bodies.
	MediaTypeJSON = "application/json; charset=utf-8"
	// MediaTypeOctetStream is the content type for raw binary posts.
	MediaTypeOctetStream = "application/octet-stream"
	// MediaTypeTar is the content type for archive uploads.
	MediaTypeTar = "application/tar"

	// DefaultRawStreamAccept is the accept header value that opts in to
	// multiplexed binary-protocol streaming responses.
	DefaultRawStreamAccept = "application/vnd.docker.raw-stream"
)

// HttpStatus is the status line of a response, for operations that only care
// about success or failure.
type HttpStatus struct {
	// Code is the HTTP status code.
	Code int
	// Message is the HTTP status message.
	Message string
}

// StatusFrom creates an HttpStatus.
func StatusFrom(code int, message string) HttpStatus {
	return HttpStatus{Code: code, Message: message}
}

// Response is the handle for one completed (non-streaming) call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the HTTP status message.
	Status string
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the full response body. Empty for HEAD responses.
	Body string
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// HTTPStatus returns the response's status line.
func (r *Response) HTTPStatus() HttpStatus {
	return HttpStatus{Code: r.StatusCode, Message: r.Status}
}
