package rxhttp

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultSuccessFrom = 200
	defaultSuccessTo   = 299
)

// Config configures the client.
type Config struct {
	// BaseURL is the base address prepended to all endpoint paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the request timeout for non-streaming calls. Defaults to 30s.
	// Streaming calls are not bounded by this timeout; cancel them through the
	// context or by unsubscribing.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth configures default authentication applied to all requests.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// RawStreamAccept is the accept header sent by PostAndReceiveStream.
	// Defaults to DefaultRawStreamAccept.
	RawStreamAccept string `yaml:"raw_stream_accept" mapstructure:"raw_stream_accept"`

	// SuccessFrom and SuccessTo bound the inclusive status range treated as
	// success. Defaults to 200-299.
	SuccessFrom int `yaml:"success_from" mapstructure:"success_from"`
	SuccessTo   int `yaml:"success_to" mapstructure:"success_to"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.RawStreamAccept == "" {
		c.RawStreamAccept = DefaultRawStreamAccept
	}
	if c.SuccessFrom == 0 {
		c.SuccessFrom = defaultSuccessFrom
	}
	if c.SuccessTo == 0 {
		c.SuccessTo = defaultSuccessTo
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("rxhttp: base_url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("rxhttp: base_url %q must be an absolute URL", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("rxhttp: timeout must be positive")
	}
	if c.SuccessFrom > c.SuccessTo {
		return fmt.Errorf("rxhttp: success range %d-%d is inverted", c.SuccessFrom, c.SuccessTo)
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// isSuccess reports whether code lies in the configured success range.
func (c *Config) isSuccess(code int) bool {
	return code >= c.SuccessFrom && code <= c.SuccessTo
}
