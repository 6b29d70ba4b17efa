package rxhttp

// callOptions collects everything one call can vary: headers, body, query
// parameters, and media types. Options replace the per-arity overloads this
// API shape traditionally grows.
type callOptions struct {
	headers     map[string]string
	query       []QueryParameter
	body        string
	hasBody     bool
	contentType string
	accept      string
	// bodySource streams the request body instead of sending an in-memory one.
	bodySource BodySource
	// skipBody suppresses body reading (HEAD).
	skipBody bool
}

// CallOption configures a single call.
type CallOption func(*callOptions)

func newCallOptions(opts []CallOption) *callOptions {
	o := &callOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithHeader adds a header to the call.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithHeaders adds a set of headers to the call.
func WithHeaders(headers map[string]string) CallOption {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			o.headers[k] = v
		}
	}
}

// WithQuery appends query parameters, preserving the given order.
func WithQuery(params ...QueryParameter) CallOption {
	return func(o *callOptions) {
		o.query = append(o.query, params...)
	}
}

// WithBody attaches a JSON request body.
func WithBody(body string) CallOption {
	return func(o *callOptions) {
		o.body = body
		o.hasBody = true
		o.contentType = MediaTypeJSON
	}
}

// WithRawBody attaches a request body with an explicit content type.
func WithRawBody(body []byte, contentType string) CallOption {
	return func(o *callOptions) {
		o.body = string(body)
		o.hasBody = true
		o.contentType = contentType
	}
}

// WithAccept sets the accept header for the call.
func WithAccept(mediaType string) CallOption {
	return func(o *callOptions) {
		o.accept = mediaType
	}
}
