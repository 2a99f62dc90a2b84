package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/storage"
	pkgstorage "github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/storage"
)

func newTestFilesystem(t *testing.T) (storage.System, string) {
	t.Helper()

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sys, err := storage.NewFilesystem(&pkgstorage.Config{
		BasePath:      dir,
		PublicBaseURL: "/media",
	}, logger)
	if err != nil {
		t.Fatalf("NewFilesystem() error = %v", err)
	}

	return sys, dir
}

func TestFilesystem_StoreRetrieve(t *testing.T) {
	sys, _ := newTestFilesystem(t)
	ctx := context.Background()

	data := []byte("isi berkas")
	if err := sys.Store(ctx, "berita/foto.jpg", data); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	got, err := sys.Retrieve(ctx, "berita/foto.jpg")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Retrieve() = %q, want %q", got, data)
	}
}

func TestFilesystem_Store_Overwrites(t *testing.T) {
	sys, _ := newTestFilesystem(t)
	ctx := context.Background()

	if err := sys.Store(ctx, "galeri/a.jpg", []byte("lama")); err != nil {
		t.Fatal(err)
	}
	if err := sys.Store(ctx, "galeri/a.jpg", []byte("baru")); err != nil {
		t.Fatal(err)
	}

	got, err := sys.Retrieve(ctx, "galeri/a.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "baru" {
		t.Errorf("Retrieve() after overwrite = %q, want %q", got, "baru")
	}
}

func TestFilesystem_Retrieve_NotFound(t *testing.T) {
	sys, _ := newTestFilesystem(t)

	_, err := sys.Retrieve(context.Background(), "tidak/ada.jpg")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() error = %v, want ErrNotFound", err)
	}
}

func TestFilesystem_Delete(t *testing.T) {
	sys, dir := newTestFilesystem(t)
	ctx := context.Background()

	if err := sys.Store(ctx, "dokumen/surat.pdf", []byte("pdf")); err != nil {
		t.Fatal(err)
	}

	if err := sys.Delete(ctx, "dokumen/surat.pdf"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := sys.Retrieve(ctx, "dokumen/surat.pdf"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() after delete error = %v, want ErrNotFound", err)
	}

	// Empty namespace directory is cleaned up.
	if _, err := os.Stat(filepath.Join(dir, "dokumen")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("namespace directory still exists after delete")
	}
}

func TestFilesystem_Delete_MissingKeyIsIdempotent(t *testing.T) {
	sys, _ := newTestFilesystem(t)

	if err := sys.Delete(context.Background(), "tidak/ada.jpg"); err != nil {
		t.Errorf("Delete() on missing key error = %v, want nil", err)
	}
}

func TestFilesystem_Validate(t *testing.T) {
	sys, _ := newTestFilesystem(t)
	ctx := context.Background()

	ok, err := sys.Validate(ctx, "berita/x.jpg")
	if err != nil || ok {
		t.Errorf("Validate() missing key = (%v, %v), want (false, nil)", ok, err)
	}

	if err := sys.Store(ctx, "berita/x.jpg", []byte("a")); err != nil {
		t.Fatal(err)
	}

	ok, err = sys.Validate(ctx, "berita/x.jpg")
	if err != nil || !ok {
		t.Errorf("Validate() stored key = (%v, %v), want (true, nil)", ok, err)
	}
}

func TestFilesystem_InvalidKeys(t *testing.T) {
	sys, _ := newTestFilesystem(t)
	ctx := context.Background()

	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"traversal", "../etc/passwd"},
		{"nested traversal", "berita/../../etc/passwd"},
		{"absolute", "/etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := sys.Store(ctx, tt.key, []byte("x")); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Store(%q) error = %v, want ErrInvalidKey", tt.key, err)
			}
		})
	}
}

func TestFilesystem_PublicURL(t *testing.T) {
	sys, _ := newTestFilesystem(t)

	if got := sys.PublicURL("berita/foto.jpg"); got != "/media/berita/foto.jpg" {
		t.Errorf("PublicURL() = %q, want %q", got, "/media/berita/foto.jpg")
	}
}
