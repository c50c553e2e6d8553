package cli

import (
	"runtime"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DEPTHIFY_DEBUG", "DEPTHIFY_WORKERS", "DEPTHIFY_JPEG_QUALITY", "DEPTHIFY_PREVIEW_BACKEND"} {
		t.Setenv(k, "")
	}
}

func TestConfigDefaults(t *testing.T) {
	clearConfigEnv(t)
	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	if cfg.Debug || cfg.Workers != runtime.GOMAXPROCS(0) || cfg.JPEGQuality != 92 || cfg.PreviewBackend != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DEPTHIFY_DEBUG", "yes")
	t.Setenv("DEPTHIFY_WORKERS", " 3 ")
	t.Setenv("DEPTHIFY_JPEG_QUALITY", "75")
	t.Setenv("DEPTHIFY_PREVIEW_BACKEND", "Kitty")
	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv: %v", err)
	}
	want := Config{Debug: true, Workers: 3, JPEGQuality: 75, PreviewBackend: "kitty"}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
}

func TestConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"DEPTHIFY_DEBUG":           "maybe",
		"DEPTHIFY_WORKERS":         "0",
		"DEPTHIFY_JPEG_QUALITY":    "101",
		"DEPTHIFY_PREVIEW_BACKEND": "sixel",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(key, val)
			if _, err := configFromEnv(); err == nil {
				t.Fatalf("expected error for %s=%q", key, val)
			}
		})
	}
}
