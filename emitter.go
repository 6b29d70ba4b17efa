package rxhttp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/rxhttp/stream"
)

const (
	// bufferChunkSize bounds one raw-buffer read from a streaming response.
	bufferChunkSize = 32 * 1024
	// maxLineSize bounds one line of a line-delimited streaming response.
	maxLineSize = 1024 * 1024
)

// callState tracks the resources of one in-flight call: the cancellable
// request context, the optional trace span, and the response body. close
// releases all of them exactly once and runs on every exit path.
type callState struct {
	url    string
	cancel context.CancelFunc
	span   trace.Span
	resp   *http.Response
	closed bool
}

func (s *callState) close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.resp != nil && s.resp.Body != nil {
		_ = s.resp.Body.Close()
	}
	if s.span != nil {
		s.span.End()
	}
	s.cancel()
}

func (s *callState) recordStatus(code int) {
	if s.span != nil {
		s.span.SetAttributes(attribute.Int("http.status_code", code))
	}
}

func (s *callState) recordError(err error) {
	if s.span != nil {
		s.span.RecordError(err)
	}
}

// begin validates the endpoint, resolves the URL, and performs the single
// blocking HTTP call. onUnsubscribe wires consumer cancellation to the request
// context so blocked network reads unwind. The returned state is nil when err
// is non-nil.
func (c *Client) begin(ctx context.Context, method, endpoint string, o *callOptions, streaming bool, onUnsubscribe func(func())) (*callState, error) {
	if err := validateEndpoint(endpoint); err != nil {
		return nil, err
	}
	fullURL, err := ResolveURL(c.config.BaseURL, endpoint, o.query)
	if err != nil {
		return nil, NewInvalidArgumentError(err.Error())
	}

	callCtx, cancel := context.WithCancel(ctx)
	onUnsubscribe(cancel)

	st := &callState{url: fullURL, cancel: cancel}
	if c.tracer != nil {
		callCtx, st.span = c.tracer.Start(callCtx, "rxhttp."+strings.ToLower(method),
			trace.WithAttributes(
				attribute.String("http.method", method),
				attribute.String("url.full", fullURL),
			))
	}

	req, err := c.buildRequest(callCtx, method, fullURL, o)
	if err != nil {
		st.recordError(err)
		st.close()
		return nil, err
	}

	requestID := uuid.NewString()
	c.log.Info().
		Str("method", method).
		Str("url", fullURL).
		Str("request_id", requestID).
		Msg("making request")

	client := c.httpClient
	if streaming {
		client = c.streamClient
	}

	resp, err := client.Do(req)
	if err != nil {
		terr := NewTransportError(err)
		c.log.Error().
			Str("method", method).
			Str("url", fullURL).
			Str("request_id", requestID).
			Err(err).
			Msg("request failed")
		st.recordError(terr)
		st.close()
		return nil, terr
	}

	c.log.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("received response")

	st.resp = resp
	st.recordStatus(resp.StatusCode)
	return st, nil
}

// buildRequest constructs the *http.Request for one call.
func (c *Client) buildRequest(ctx context.Context, method, fullURL string, o *callOptions) (*http.Request, error) {
	var body io.Reader
	var rc io.ReadCloser
	if o.bodySource != nil {
		var err error
		rc, err = o.bodySource.NewReader()
		if err != nil {
			return nil, NewTransportError(err)
		}
		body = rc
	} else if o.hasBody {
		body = strings.NewReader(o.body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		if rc != nil {
			_ = rc.Close()
		}
		return nil, NewInvalidArgumentError(fmt.Sprintf("create request: %v", err))
	}
	if o.bodySource != nil {
		if n, ok := o.bodySource.ContentLength(); ok {
			req.ContentLength = n
		}
	}

	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" && o.contentType != "" {
		req.Header.Set("Content-Type", o.contentType)
	}
	if o.accept != "" && req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", o.accept)
	}

	c.config.Auth.apply(req)
	return req, nil
}

// statusMessage extracts the status message from the response status line.
func statusMessage(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

// serviceError builds the typed error for a non-success response.
func serviceError(resp *http.Response) *Error {
	return NewServiceError(resp.StatusCode, statusMessage(resp))
}

// emitResponse drives single-value mode: one call, one transformed element,
// completion.
func emitResponse[R any](c *Client, ctx context.Context, method, endpoint string, t ResponseTransformer[R], o *callOptions) *stream.Observable[R] {
	return stream.Create(func(sub *stream.Subscriber[R]) {
		st, err := c.begin(ctx, method, endpoint, o, false, sub.OnUnsubscribe)
		if err != nil {
			sub.OnError(err)
			return
		}
		defer st.close()

		if !c.config.isSuccess(st.resp.StatusCode) {
			err := serviceError(st.resp)
			st.recordError(err)
			sub.OnError(err)
			return
		}

		var body string
		if !o.skipBody {
			b, err := io.ReadAll(st.resp.Body)
			if err != nil {
				if sub.IsUnsubscribed() {
					return
				}
				terr := NewTransportError(fmt.Errorf("read response body: %w", err))
				st.recordError(terr)
				sub.OnError(terr)
				return
			}
			body = string(b)
		}
		if sub.IsUnsubscribed() {
			return
		}

		v, err := t(&Response{
			StatusCode: st.resp.StatusCode,
			Status:     statusMessage(st.resp),
			Headers:    flattenHeaders(st.resp.Header),
			Body:       body,
		})
		if err != nil {
			st.recordError(err)
			sub.OnError(err)
			return
		}
		sub.OnNext(v)
		sub.OnCompleted()
	})
}

// emitCollection drives collection mode: the whole body becomes an ordered
// sequence, emitted element by element with a cancellation check before each.
func emitCollection[R any](c *Client, ctx context.Context, method, endpoint string, t CollectionTransformer[R], o *callOptions) *stream.Observable[R] {
	return stream.Create(func(sub *stream.Subscriber[R]) {
		st, err := c.begin(ctx, method, endpoint, o, false, sub.OnUnsubscribe)
		if err != nil {
			sub.OnError(err)
			return
		}
		defer st.close()

		if !c.config.isSuccess(st.resp.StatusCode) {
			err := serviceError(st.resp)
			st.recordError(err)
			sub.OnError(err)
			return
		}

		b, err := io.ReadAll(st.resp.Body)
		if err != nil {
			if sub.IsUnsubscribed() {
				return
			}
			terr := NewTransportError(fmt.Errorf("read response body: %w", err))
			st.recordError(terr)
			sub.OnError(terr)
			return
		}

		elements, err := t(string(b))
		if err != nil {
			st.recordError(err)
			sub.OnError(err)
			return
		}
		for _, v := range elements {
			if sub.IsUnsubscribed() {
				return
			}
			sub.OnNext(v)
		}
		sub.OnCompleted()
	})
}

// emitLines drives line-streaming mode: each line is checked against the
// optional error predicate, transformed, and emitted as it arrives. A
// predicate match terminates the sequence with a stream error and nothing
// further is read.
func emitLines[R any](c *Client, ctx context.Context, method, endpoint string, t StringTransformer[R], errorCheck func(string) bool, o *callOptions) *stream.Observable[R] {
	return stream.Create(func(sub *stream.Subscriber[R]) {
		st, err := c.begin(ctx, method, endpoint, o, true, sub.OnUnsubscribe)
		if err != nil {
			sub.OnError(err)
			return
		}
		defer st.close()

		if !c.config.isSuccess(st.resp.StatusCode) {
			err := serviceError(st.resp)
			st.recordError(err)
			sub.OnError(err)
			return
		}

		scanner := bufio.NewScanner(st.resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if sub.IsUnsubscribed() {
				return
			}
			line := scanner.Text()
			if errorCheck != nil && errorCheck(line) {
				serr := NewStreamError(line)
				st.recordError(serr)
				sub.OnError(serr)
				return
			}
			v, err := t(line)
			if err != nil {
				st.recordError(err)
				sub.OnError(err)
				return
			}
			sub.OnNext(v)
		}
		if err := scanner.Err(); err != nil {
			// A cancelled consumer tears down the body mid-read; that read
			// error is not a fault.
			if sub.IsUnsubscribed() {
				return
			}
			terr := NewTransportError(err)
			st.recordError(terr)
			sub.OnError(terr)
			return
		}
		sub.OnCompleted()
	})
}

// emitBuffers drives raw-buffer mode: opaque bounded chunks, no text decoding.
func emitBuffers[R any](c *Client, ctx context.Context, method, endpoint string, t BufferTransformer[R], o *callOptions) *stream.Observable[R] {
	return stream.Create(func(sub *stream.Subscriber[R]) {
		st, err := c.begin(ctx, method, endpoint, o, true, sub.OnUnsubscribe)
		if err != nil {
			sub.OnError(err)
			return
		}
		defer st.close()

		if !c.config.isSuccess(st.resp.StatusCode) {
			err := serviceError(st.resp)
			st.recordError(err)
			sub.OnError(err)
			return
		}

		buf := make([]byte, bufferChunkSize)
		for {
			if sub.IsUnsubscribed() {
				return
			}
			n, err := st.resp.Body.Read(buf)
			if n > 0 {
				v, terr := t(buf[:n])
				if terr != nil {
					st.recordError(terr)
					sub.OnError(terr)
					return
				}
				sub.OnNext(v)
			}
			if err == io.EOF {
				sub.OnCompleted()
				return
			}
			if err != nil {
				if sub.IsUnsubscribed() {
					return
				}
				terr := NewTransportError(err)
				st.recordError(terr)
				sub.OnError(terr)
				return
			}
		}
	})
}
