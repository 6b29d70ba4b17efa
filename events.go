package rxhttp

import (
	"context"
	"io"
	"net/http"

	"github.com/kbukum/rxhttp/sse"
	"github.com/kbukum/rxhttp/stream"
)

// GetEventStream performs a GET against a server-push endpoint and emits one
// decoded server-sent event per arrival. The sequence completes when the
// server closes the stream.
func (c *Client) GetEventStream(ctx context.Context, endpoint string, opts ...CallOption) *stream.Observable[sse.Event] {
	o := newCallOptions(opts)
	if o.accept == "" {
		o.accept = "text/event-stream"
	}
	return stream.Create(func(sub *stream.Subscriber[sse.Event]) {
		st, err := c.begin(ctx, http.MethodGet, endpoint, o, true, sub.OnUnsubscribe)
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

		dec := sse.NewDecoder(st.resp.Body)
		for {
			if sub.IsUnsubscribed() {
				return
			}
			ev, err := dec.Next()
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
			sub.OnNext(ev)
		}
	})
}
