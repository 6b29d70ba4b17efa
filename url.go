package rxhttp

import (
	"fmt"
	"net/url"
	"strings"
)

// QueryParameter is one key-value pair appended to the request URL.
// Parameters are encoded in the order given, not sorted.
type QueryParameter struct {
	Name  string
	Value string
}

// Param creates a query parameter.
func Param(name, value string) QueryParameter {
	return QueryParameter{Name: name, Value: value}
}

// ResolveURL joins the base address and endpoint path and appends the query
// parameters, percent-encoding names and values. It fails on an unparsable
// base address or on a parameter with an empty name.
func ResolveURL(base, endpoint string, params []QueryParameter) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base address %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base address %q must be absolute", base)
	}

	full := strings.TrimRight(u.String(), "/") + "/" + strings.TrimLeft(endpoint, "/")

	if len(params) == 0 {
		return full, nil
	}

	var q strings.Builder
	for i, p := range params {
		if p.Name == "" {
			return "", fmt.Errorf("query parameter %d has an empty name", i)
		}
		if i > 0 {
			q.WriteByte('&')
		}
		q.WriteString(url.QueryEscape(p.Name))
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(p.Value))
	}

	sep := "?"
	if strings.Contains(full, "?") {
		sep = "&"
	}
	return full + sep + q.String(), nil
}
