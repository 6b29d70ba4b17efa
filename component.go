package rxhttp

import "context"

// HealthStatus represents the health state of the client component.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
)

// Health describes the component's health.
type Health struct {
	Name   string
	Status HealthStatus
}

// Component wraps a Client with lifecycle management for managed
// applications. The client is created lazily in Start.
type Component struct {
	client *Client
	config Config
	opts   []Option
}

// NewComponent creates a new client component.
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	return "rxhttp"
}

// Start initializes the client.
func (c *Component) Start(_ context.Context) error {
	client, err := New(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.client = client
	return nil
}

// Stop releases idle connections held by the client.
func (c *Component) Stop(_ context.Context) error {
	if c.client != nil {
		c.client.Unwrap().CloseIdleConnections()
	}
	return nil
}

// Health returns the component health status.
func (c *Component) Health(_ context.Context) Health {
	status := StatusHealthy
	if c.client == nil {
		status = StatusUnhealthy
	}
	return Health{Name: c.Name(), Status: status}
}

// Client returns the underlying client. Must be called after Start.
func (c *Component) Client() *Client {
	return c.client
}
