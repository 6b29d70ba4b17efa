package rxhttp

import (
	"context"
	"testing"
)

func TestComponent_Lifecycle(t *testing.T) {
	comp := NewComponent(Config{BaseURL: "http://localhost:2375"})
	ctx := context.Background()

	if h := comp.Health(ctx); h.Status != StatusUnhealthy {
		t.Errorf("health before start = %q, want unhealthy", h.Status)
	}

	if err := comp.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if comp.Client() == nil {
		t.Fatal("client must be available after start")
	}
	if h := comp.Health(ctx); h.Status != StatusHealthy || h.Name != "rxhttp" {
		t.Errorf("health after start = %+v", h)
	}

	if err := comp.Stop(ctx); err != nil {
		t.Errorf("stop: %v", err)
	}
}

func TestComponent_StartRejectsInvalidConfig(t *testing.T) {
	comp := NewComponent(Config{})
	if err := comp.Start(context.Background()); err == nil {
		t.Error("expected error for missing base url")
	}
}
