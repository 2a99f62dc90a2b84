package storage_test

import (
	"testing"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/storage"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := storage.Config{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Backend != storage.BackendFilesystem {
		t.Errorf("Backend = %q, want filesystem default", cfg.Backend)
	}
	if cfg.BasePath != ".data/objects" {
		t.Errorf("BasePath = %q, want default", cfg.BasePath)
	}
	if cfg.PublicBaseURL != "/media" {
		t.Errorf("PublicBaseURL = %q, want /media default", cfg.PublicBaseURL)
	}
	if cfg.MaxUploadSizeBytes() != 10_000_000 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 10MB", cfg.MaxUploadSizeBytes())
	}
}

func TestConfig_Finalize_ParsesHumanSizes(t *testing.T) {
	tests := []struct {
		name string
		size string
		want int64
	}{
		{"megabytes", "5MB", 5_000_000},
		{"kilobytes", "512KB", 512_000},
		{"bare bytes", "1024", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := storage.Config{MaxUploadSize: tt.size}

			if err := cfg.Finalize(nil); err != nil {
				t.Fatalf("Finalize() error = %v", err)
			}
			if got := cfg.MaxUploadSizeBytes(); got != tt.want {
				t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"unknown backend", storage.Config{Backend: "tape"}},
		{"s3 without bucket", storage.Config{Backend: storage.BackendS3}},
		{"bad size", storage.Config{MaxUploadSize: "much"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() error = nil, want validation failure")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := storage.Config{Backend: storage.BackendFilesystem, BasePath: "a"}
	cfg.Merge(&storage.Config{BasePath: "b", Bucket: "media"})

	if cfg.BasePath != "b" {
		t.Errorf("BasePath = %q, want overlay value", cfg.BasePath)
	}
	if cfg.Bucket != "media" {
		t.Errorf("Bucket = %q, want overlay value", cfg.Bucket)
	}
	if cfg.Backend != storage.BackendFilesystem {
		t.Errorf("Backend = %q, want untouched", cfg.Backend)
	}
}
