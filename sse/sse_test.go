package sse

import (
	"io"
	"strings"
	"testing"
)

func decodeAll(t *testing.T, body string) []Event {
	t.Helper()
	dec := NewDecoder(strings.NewReader(body))
	var events []Event
	for {
		ev, err := dec.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		events = append(events, ev)
	}
}

func TestDecoder_SingleEvent(t *testing.T) {
	events := decodeAll(t, "data: hello\n\n")
	if len(events) != 1 || events[0].Data != "hello" {
		t.Errorf("got %+v", events)
	}
}

func TestDecoder_MultipleEvents(t *testing.T) {
	events := decodeAll(t, "data: one\n\ndata: two\n\ndata: three\n\n")
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0].Data != "one" || events[1].Data != "two" || events[2].Data != "three" {
		t.Errorf("got %+v", events)
	}
}

func TestDecoder_MultilineData(t *testing.T) {
	events := decodeAll(t, "data: first\ndata: second\n\n")
	if len(events) != 1 || events[0].Data != "first\nsecond" {
		t.Errorf("got %+v", events)
	}
}

func TestDecoder_TypedEventWithID(t *testing.T) {
	events := decodeAll(t, "id: 42\nevent: update\ndata: {\"x\":1}\n\n")
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.ID != "42" || ev.Type != "update" || ev.Data != `{"x":1}` {
		t.Errorf("got %+v", ev)
	}
}

func TestDecoder_SkipsComments(t *testing.T) {
	events := decodeAll(t, ": keepalive\n\ndata: real\n\n")
	if len(events) != 1 || events[0].Data != "real" {
		t.Errorf("got %+v", events)
	}
}

func TestDecoder_Retry(t *testing.T) {
	events := decodeAll(t, "retry: 3000\ndata: x\n\n")
	if len(events) != 1 || events[0].Retry != 3000 {
		t.Errorf("got %+v", events)
	}
}

func TestDecoder_TrailingEventWithoutBlankLine(t *testing.T) {
	events := decodeAll(t, "data: last")
	if len(events) != 1 || events[0].Data != "last" {
		t.Errorf("got %+v", events)
	}
}

func TestDecoder_NoSpaceAfterColon(t *testing.T) {
	events := decodeAll(t, "data:tight\n\n")
	if len(events) != 1 || events[0].Data != "tight" {
		t.Errorf("got %+v", events)
	}
}

func TestDecoder_EmptyStream(t *testing.T) {
	if events := decodeAll(t, ""); len(events) != 0 {
		t.Errorf("got %+v, want none", events)
	}
}
