package uploads_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/identity"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/uploads"
)

// fakeStorage records stored objects in memory.
type fakeStorage struct {
	stored     map[string][]byte
	storeErr   error
	deleteErr  error
	storeCalls int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{stored: map[string][]byte{}}
}

func (s *fakeStorage) Store(ctx context.Context, key string, data []byte) error {
	s.storeCalls++
	if s.storeErr != nil {
		return s.storeErr
	}
	s.stored[key] = data
	return nil
}

func (s *fakeStorage) Retrieve(ctx context.Context, key string) ([]byte, error) {
	data, ok := s.stored[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.stored, key)
	return nil
}

func (s *fakeStorage) Validate(ctx context.Context, key string) (bool, error) {
	_, ok := s.stored[key]
	return ok, nil
}

func (s *fakeStorage) PublicURL(key string) string {
	return "/media/" + key
}

// fakeSessions resolves sessions straight from the context.
type fakeSessions struct{}

func (fakeSessions) Login(ctx context.Context, username, password string) (string, error) {
	return "", identity.ErrInvalidCredentials
}

func (fakeSessions) Verify(token string) (*identity.Session, error) {
	return nil, identity.ErrInvalidToken
}

func (fakeSessions) CurrentSession(ctx context.Context) (*identity.Session, error) {
	if session, ok := identity.SessionFromContext(ctx); ok {
		return session, nil
	}
	return nil, identity.ErrUnauthenticated
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authedContext() context.Context {
	return identity.ContextWithSession(context.Background(), &identity.Session{
		OwnerID:  "3f2504e0-4f89-11d3-9a0c-0305e82c3301",
		Username: "admin",
	})
}

func testFile(name string, size int64) uploads.File {
	return uploads.File{
		Name:        name,
		ContentType: "image/jpeg",
		Size:        size,
		Data:        make([]byte, size),
	}
}

func TestGateway_Upload_SizeCheckedBeforeSession(t *testing.T) {
	store := newFakeStorage()
	gw := uploads.New(store, fakeSessions{}, testLogger())

	// No session attached; the size failure must still win.
	_, err := gw.Upload(context.Background(), testFile("foto.jpg", 2048), uploads.Constraints{
		MaxSizeBytes: 1024,
		Namespace:    "berita",
	})

	if !errors.Is(err, uploads.ErrSizeExceeded) {
		t.Errorf("Upload() error = %v, want ErrSizeExceeded", err)
	}
	if store.storeCalls != 0 {
		t.Errorf("store calls = %d, want 0", store.storeCalls)
	}
}

func TestGateway_Upload_RequiresSession(t *testing.T) {
	store := newFakeStorage()
	gw := uploads.New(store, fakeSessions{}, testLogger())

	_, err := gw.Upload(context.Background(), testFile("foto.jpg", 100), uploads.Constraints{
		MaxSizeBytes: 1024,
		Namespace:    "berita",
	})

	if !errors.Is(err, uploads.ErrUnauthenticated) {
		t.Errorf("Upload() error = %v, want ErrUnauthenticated", err)
	}
	if store.storeCalls != 0 {
		t.Errorf("store calls = %d, want 0", store.storeCalls)
	}
}

func TestGateway_Upload_KeyNaming(t *testing.T) {
	store := newFakeStorage()
	gw := uploads.New(store, fakeSessions{}, testLogger())

	result, err := gw.Upload(authedContext(), testFile("Foto Kegiatan.JPG", 100), uploads.Constraints{
		MaxSizeBytes: 1024,
		Namespace:    "galeri",
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	pattern := regexp.MustCompile(`^galeri/3f2504e0-4f89-11d3-9a0c-0305e82c3301-\d+\.jpg$`)
	if !pattern.MatchString(result.StoragePath) {
		t.Errorf("StoragePath = %q, want match for %q", result.StoragePath, pattern)
	}
	if result.PublicURL != "/media/"+result.StoragePath {
		t.Errorf("PublicURL = %q, want storage-derived URL", result.PublicURL)
	}
	if result.PageCount != nil {
		t.Errorf("PageCount = %v, want nil for non-PDF", *result.PageCount)
	}

	if _, ok := store.stored[result.StoragePath]; !ok {
		t.Error("uploaded data not stored under returned path")
	}
}

func TestGateway_Upload_ExtensionFallback(t *testing.T) {
	store := newFakeStorage()
	gw := uploads.New(store, fakeSessions{}, testLogger())

	result, err := gw.Upload(authedContext(), testFile("README", 10), uploads.Constraints{
		MaxSizeBytes: 1024,
		Namespace:    "dokumen",
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if matched, _ := regexp.MatchString(`\.bin$`, result.StoragePath); !matched {
		t.Errorf("StoragePath = %q, want .bin fallback extension", result.StoragePath)
	}
}

func TestGateway_Upload_AcceptedTypesNotEnforced(t *testing.T) {
	store := newFakeStorage()
	gw := uploads.New(store, fakeSessions{}, testLogger())

	file := testFile("laporan.exe", 100)
	file.ContentType = "application/octet-stream"

	_, err := gw.Upload(authedContext(), file, uploads.Constraints{
		AcceptedTypes: "image/*",
		MaxSizeBytes:  1024,
		Namespace:     "dokumen",
	})

	// The accept filter is advisory; the gateway stores the file anyway.
	if err != nil {
		t.Errorf("Upload() error = %v, want success regardless of accepted types", err)
	}
	if store.storeCalls != 1 {
		t.Errorf("store calls = %d, want 1", store.storeCalls)
	}
}

func TestGateway_Upload_NoSizeLimit(t *testing.T) {
	store := newFakeStorage()
	gw := uploads.New(store, fakeSessions{}, testLogger())

	_, err := gw.Upload(authedContext(), testFile("besar.jpg", 1<<20), uploads.Constraints{
		Namespace: "galeri",
	})

	if err != nil {
		t.Errorf("Upload() error = %v, want success when no limit set", err)
	}
}

func TestGateway_Upload_StorageFailure(t *testing.T) {
	store := newFakeStorage()
	store.storeErr = errors.New("bucket unavailable")
	gw := uploads.New(store, fakeSessions{}, testLogger())

	_, err := gw.Upload(authedContext(), testFile("foto.jpg", 100), uploads.Constraints{
		MaxSizeBytes: 1024,
		Namespace:    "berita",
	})

	if err == nil {
		t.Fatal("Upload() error = nil, want storage failure")
	}
	if errors.Is(err, uploads.ErrSizeExceeded) || errors.Is(err, uploads.ErrUnauthenticated) {
		t.Errorf("Upload() error = %v, want wrapped storage error", err)
	}
}

func TestGateway_Remove(t *testing.T) {
	store := newFakeStorage()
	store.stored["berita/abc.jpg"] = []byte{1}
	gw := uploads.New(store, fakeSessions{}, testLogger())

	if err := gw.Remove(context.Background(), "berita/abc.jpg"); !errors.Is(err, uploads.ErrUnauthenticated) {
		t.Errorf("Remove() without session error = %v, want ErrUnauthenticated", err)
	}

	if err := gw.Remove(authedContext(), "berita/abc.jpg"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok := store.stored["berita/abc.jpg"]; ok {
		t.Error("Remove() left object in storage")
	}
}
