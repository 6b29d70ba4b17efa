package rxhttp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetEventStream_DecodesEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "text/event-stream" {
			t.Errorf("accept = %q, want text/event-stream", got)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		f := w.(http.Flusher)
		fmt.Fprint(w, "event: created\ndata: {\"id\":\"a\"}\n\n")
		f.Flush()
		fmt.Fprint(w, "data: {\"id\":\"b\"}\n\n")
		f.Flush()
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	events, err, completed := drain(t, c.GetEventStream(context.Background(), "/events"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != "created" || events[0].Data != `{"id":"a"}` {
		t.Errorf("first event: %+v", events[0])
	}
	if events[1].Type != "" || events[1].Data != `{"id":"b"}` {
		t.Errorf("second event: %+v", events[1])
	}
	if !completed {
		t.Error("expected completion when the server closes the stream")
	}
}

func TestGetEventStream_NonSuccessYieldsServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	events, err, _ := drain(t, c.GetEventStream(context.Background(), "/events"))
	if len(events) != 0 {
		t.Errorf("no events expected, got %+v", events)
	}
	if !IsService(err) || StatusOf(err) != 503 {
		t.Fatalf("expected 503 service error, got %v", err)
	}
}
