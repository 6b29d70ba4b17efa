package rxhttp

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestServiceError(t *testing.T) {
	err := NewServiceError(404, "Not Found")
	if !IsService(err) {
		t.Error("expected IsService=true")
	}
	if err.StatusCode != 404 || err.Message != "Not Found" {
		t.Errorf("got (%d, %q)", err.StatusCode, err.Message)
	}
	if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "Not Found") {
		t.Errorf("error string should carry status line: %s", err.Error())
	}
	if StatusOf(err) != 404 {
		t.Errorf("StatusOf = %d, want 404", StatusOf(err))
	}
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := NewTransportError(cause)
	if !IsTransport(err) {
		t.Error("expected IsTransport=true")
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestStreamError(t *testing.T) {
	err := NewStreamError(`{"error":"build failed"}`)
	if !IsStream(err) {
		t.Error("expected IsStream=true")
	}
	if err.Line != `{"error":"build failed"}` {
		t.Errorf("got line %q", err.Line)
	}
}

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("endpoint can't be null or empty")
	if !IsInvalidArgument(err) {
		t.Error("expected IsInvalidArgument=true")
	}
	if IsTransport(err) || IsService(err) || IsStream(err) {
		t.Error("predicates must not overlap")
	}
}

func TestPredicatesRejectForeignErrors(t *testing.T) {
	plain := errors.New("plain")
	if IsService(plain) || IsTransport(plain) || IsStream(plain) || IsInvalidArgument(plain) {
		t.Error("predicates must reject non-client errors")
	}
	if StatusOf(plain) != 0 {
		t.Error("StatusOf on a foreign error must be 0")
	}
}

func TestErrorCodeString(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrCodeInvalidArgument: "invalid_argument",
		ErrCodeTransport:       "transport",
		ErrCodeService:         "service",
		ErrCodeStream:          "stream",
		ErrorCode(99):          "unknown",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", code, got, want)
		}
	}
}
