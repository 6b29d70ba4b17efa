package logger

import "testing"

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("level = %q, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("format = %q, want console", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("output = %q, want stderr", cfg.Output)
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "debug", Format: "json"}, false},
		{"valid console", Config{Level: "info", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := New(Config{Level: "nope", Format: "json"}, "test")
	if log.GetLevel().String() != "info" {
		t.Errorf("level = %q, want info", log.GetLevel())
	}
}

func TestNewDefault_TagsComponent(t *testing.T) {
	// Smoke test: the default logger must be usable without panicking.
	log := NewDefault("rxhttp")
	log.Debug().Msg("suppressed at info level")
}
