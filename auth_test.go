package rxhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newAuthRequest(t *testing.T) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "http://example.com/items?a=1", nil)
	return req
}

func TestAuth_Bearer(t *testing.T) {
	req := newAuthRequest(t)
	BearerAuth("tok").apply(req)
	if got := req.Header.Get("Authorization"); got != "Bearer tok" {
		t.Errorf("authorization = %q", got)
	}
}

func TestAuth_Basic(t *testing.T) {
	req := newAuthRequest(t)
	BasicAuth("user", "pass").apply(req)
	u, p, ok := req.BasicAuth()
	if !ok || u != "user" || p != "pass" {
		t.Errorf("got (%q, %q, %v)", u, p, ok)
	}
}

func TestAuth_APIKeyHeader(t *testing.T) {
	req := newAuthRequest(t)
	APIKeyAuth("secret").apply(req)
	if got := req.Header.Get("X-API-Key"); got != "secret" {
		t.Errorf("X-API-Key = %q", got)
	}
}

func TestAuth_APIKeyQueryAppendsAfterExistingParams(t *testing.T) {
	req := newAuthRequest(t)
	APIKeyAuthQuery("secret", "api_key").apply(req)
	if got := req.URL.RawQuery; got != "a=1&api_key=secret" {
		t.Errorf("query = %q", got)
	}
}

func TestAuth_Custom(t *testing.T) {
	req := newAuthRequest(t)
	CustomAuth(func(r *http.Request) {
		r.Header.Set("X-Signed", "yes")
	}).apply(req)
	if got := req.Header.Get("X-Signed"); got != "yes" {
		t.Errorf("X-Signed = %q", got)
	}
}

func TestAuth_NilConfigIsNoOp(t *testing.T) {
	req := newAuthRequest(t)
	var a *AuthConfig
	a.apply(req)
	if len(req.Header) != 0 {
		t.Errorf("headers modified: %v", req.Header)
	}
}
