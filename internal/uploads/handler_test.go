package uploads_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/routes"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/uploads"
)

func newUploadServer(t *testing.T, store *fakeStorage, maxUploadSize int64) *httptest.Server {
	t.Helper()

	gw := uploads.New(store, fakeSessions{}, testLogger())
	handler := uploads.NewHandler(gw, testLogger(), maxUploadSize)

	routeSys := routes.New(testLogger())
	routeSys.RegisterGroup(handler.Routes())

	server := httptest.NewServer(routeSys.Build())
	t.Cleanup(server.Close)
	return server
}

func multipartBody(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestHandler_Upload_OversizedBody(t *testing.T) {
	store := newFakeStorage()
	server := newUploadServer(t, store, 1024)

	body, contentType := multipartBody(t, "foto.jpg", make([]byte, 20<<10))

	resp, err := http.Post(server.URL+"/uploads/berita", contentType, body)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusRequestEntityTooLarge)
	}
	if store.storeCalls != 0 {
		t.Errorf("store calls = %d, want 0", store.storeCalls)
	}
}

func TestHandler_Upload_OversizedFileWithinBodyCap(t *testing.T) {
	store := newFakeStorage()
	server := newUploadServer(t, store, 1024)

	// 4KB fits the request body cap but exceeds the per-file limit, so
	// the gateway's own size check must reject it.
	body, contentType := multipartBody(t, "foto.jpg", make([]byte, 4<<10))

	resp, err := http.Post(server.URL+"/uploads/berita", contentType, body)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusRequestEntityTooLarge)
	}
	if store.storeCalls != 0 {
		t.Errorf("store calls = %d, want 0", store.storeCalls)
	}
}

func TestHandler_Upload_MalformedBody(t *testing.T) {
	store := newFakeStorage()
	server := newUploadServer(t, store, 1024)

	resp, err := http.Post(server.URL+"/uploads/berita",
		"multipart/form-data; boundary=xyz",
		strings.NewReader("not a multipart body"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	// Parse failures that are not size failures must not masquerade as
	// an oversized request.
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if store.storeCalls != 0 {
		t.Errorf("store calls = %d, want 0", store.storeCalls)
	}
}

func TestHandler_Remove_MissingPath(t *testing.T) {
	store := newFakeStorage()
	server := newUploadServer(t, store, 1024)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/uploads", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}
