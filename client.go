package rxhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/rxhttp/stream"
)

// Client turns blocking HTTP calls against a REST-style API into cancellable
// push-based sequences. Each operation performs exactly one network call per
// subscription; interpretation of the response bytes is delegated to the
// transformer the operation was built with.
type Client struct {
	httpClient   *http.Client
	streamClient *http.Client
	config       Config
	log          zerolog.Logger
	tracer       trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger used for request/response metadata.
// The default logger is disabled.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithTracerProvider enables a trace span per call.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer("github.com/kbukum/rxhttp")
	}
}

// New creates a client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		// Streaming calls must not be bounded by a global timeout; the
		// request context carries cancellation instead.
		streamClient: &http.Client{
			Transport: transport,
		},
		config: cfg,
		log:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// GetConfig returns the client's configuration.
func (c *Client) GetConfig() Config {
	return c.config
}

// --- per-verb entry points ---

// Get performs a GET and emits the full response body as a single element.
func (c *Client) Get(ctx context.Context, endpoint string, opts ...CallOption) *stream.Observable[string] {
	return GetAs(c, ctx, endpoint, Identity(), opts...)
}

// GetAs performs a GET and emits the transformed body as a single element.
func GetAs[R any](c *Client, ctx context.Context, endpoint string, t StringTransformer[R], opts ...CallOption) *stream.Observable[R] {
	return emitResponse(c, ctx, http.MethodGet, endpoint, FromBody(t), newCallOptions(opts))
}

// GetCollection performs a GET, converts the body into an ordered sequence,
// and emits each element in order.
func GetCollection[R any](c *Client, ctx context.Context, endpoint string, t CollectionTransformer[R], opts ...CallOption) *stream.Observable[R] {
	return emitCollection(c, ctx, http.MethodGet, endpoint, t, newCallOptions(opts))
}

// GetResponse performs a GET and applies a response-handle transformer.
func GetResponse[R any](c *Client, ctx context.Context, endpoint string, t ResponseTransformer[R], opts ...CallOption) *stream.Observable[R] {
	return emitResponse(c, ctx, http.MethodGet, endpoint, t, newCallOptions(opts))
}

// GetStatus performs a GET and emits only the response status line.
func (c *Client) GetStatus(ctx context.Context, endpoint string, opts ...CallOption) *stream.Observable[HttpStatus] {
	return GetResponse(c, ctx, endpoint, HTTPStatusTransformer(), opts...)
}

// GetStream performs a GET and emits each response line as it arrives.
func (c *Client) GetStream(ctx context.Context, endpoint string, opts ...CallOption) *stream.Observable[string] {
	return GetStreamAs(c, ctx, endpoint, Identity(), opts...)
}

// GetStreamAs performs a GET and emits the transformer applied to each
// response line as it arrives. This is the single-value transformer lifted
// into streaming form.
func GetStreamAs[R any](c *Client, ctx context.Context, endpoint string, t StringTransformer[R], opts ...CallOption) *stream.Observable[R] {
	return emitLines(c, ctx, http.MethodGet, endpoint, t, nil, newCallOptions(opts))
}

// GetBufferStream performs a GET and emits raw binary chunks as they arrive.
func (c *Client) GetBufferStream(ctx context.Context, endpoint string, opts ...CallOption) *stream.Observable[[]byte] {
	return GetBufferStreamAs(c, ctx, endpoint, IdentityBuffer(), opts...)
}

// GetBufferStreamAs performs a GET and emits the transformer applied to each
// raw binary chunk as it arrives.
func GetBufferStreamAs[R any](c *Client, ctx context.Context, endpoint string, t BufferTransformer[R], opts ...CallOption) *stream.Observable[R] {
	return emitBuffers(c, ctx, http.MethodGet, endpoint, t, newCallOptions(opts))
}

// Post performs a POST and emits the response status line. Use WithBody to
// attach a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, opts ...CallOption) *stream.Observable[HttpStatus] {
	return PostResponse(c, ctx, endpoint, HTTPStatusTransformer(), opts...)
}

// PostAs performs a POST and emits the transformed response body as a single
// element.
func PostAs[R any](c *Client, ctx context.Context, endpoint string, t StringTransformer[R], opts ...CallOption) *stream.Observable[R] {
	return emitResponse(c, ctx, http.MethodPost, endpoint, FromBody(t), newCallOptions(opts))
}

// PostResponse performs a POST and applies a response-handle transformer.
func PostResponse[R any](c *Client, ctx context.Context, endpoint string, t ResponseTransformer[R], opts ...CallOption) *stream.Observable[R] {
	return emitResponse(c, ctx, http.MethodPost, endpoint, t, newCallOptions(opts))
}

// PostAndReceiveStream performs a POST that opts in to a raw multiplexed
// response stream and emits each response line as it arrives.
func (c *Client) PostAndReceiveStream(ctx context.Context, endpoint string, opts ...CallOption) *stream.Observable[string] {
	o := newCallOptions(opts)
	if o.accept == "" {
		o.accept = c.config.RawStreamAccept
	}
	return emitLines(c, ctx, http.MethodPost, endpoint, Identity(), nil, o)
}

// PostAndReceiveResponse performs a POST against an endpoint that multiplexes
// data and in-band error notifications on the same stream. Each response line
// is checked against errorCheck before emission; a matching line terminates
// the sequence with a stream error and nothing further is read.
func (c *Client) PostAndReceiveResponse(ctx context.Context, endpoint string, errorCheck func(string) bool, opts ...CallOption) *stream.Observable[string] {
	return emitLines(c, ctx, http.MethodPost, endpoint, Identity(), errorCheck, newCallOptions(opts))
}

// PostTarStream uploads the tar archive at archivePath, streamed in bounded
// chunks, and emits the raw binary response chunks as they arrive.
func (c *Client) PostTarStream(ctx context.Context, endpoint, archivePath string, opts ...CallOption) *stream.Observable[[]byte] {
	return PostTarStreamAs(c, ctx, endpoint, archivePath, IdentityBuffer(), opts...)
}

// PostTarStreamAs uploads the tar archive at archivePath and emits the
// transformer applied to each raw binary response chunk.
func PostTarStreamAs[R any](c *Client, ctx context.Context, endpoint, archivePath string, t BufferTransformer[R], opts ...CallOption) *stream.Observable[R] {
	o := newCallOptions(opts)
	o.bodySource = NewArchiveSource(archivePath)
	o.contentType = MediaTypeTar
	return emitBuffers(c, ctx, http.MethodPost, endpoint, t, o)
}

// PostTarStatus uploads the tar archive at archivePath and emits only the
// response status line.
func (c *Client) PostTarStatus(ctx context.Context, endpoint, archivePath string, opts ...CallOption) *stream.Observable[HttpStatus] {
	o := newCallOptions(opts)
	o.bodySource = NewArchiveSource(archivePath)
	o.contentType = MediaTypeTar
	return emitResponse(c, ctx, http.MethodPost, endpoint, HTTPStatusTransformer(), o)
}

// Delete performs a DELETE and emits the response status line.
func (c *Client) Delete(ctx context.Context, endpoint string, opts ...CallOption) *stream.Observable[HttpStatus] {
	return emitResponse(c, ctx, http.MethodDelete, endpoint, HTTPStatusTransformer(), newCallOptions(opts))
}

// Head performs a HEAD and emits the raw response handle (status and headers,
// no body).
func (c *Client) Head(ctx context.Context, endpoint string, opts ...CallOption) *stream.Observable[*Response] {
	o := newCallOptions(opts)
	o.skipBody = true
	return emitResponse(c, ctx, http.MethodHead, endpoint,
		func(resp *Response) (*Response, error) { return resp, nil }, o)
}

func validateEndpoint(endpoint string) *Error {
	if strings.TrimSpace(endpoint) == "" {
		return NewInvalidArgumentError("endpoint can't be null or empty")
	}
	return nil
}
