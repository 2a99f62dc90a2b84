package uploads

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/identity"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/storage"
)

// Constraints bound a single upload. AcceptedTypes mirrors the file
// input's accept filter; it is informational here and enforced by the
// input control, not re-validated at the gateway.
type Constraints struct {
	AcceptedTypes string `json:"accepted_types"`
	MaxSizeBytes  int64  `json:"max_size_bytes"`
	Namespace     string `json:"namespace"`
}

// File is the upload payload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// Result is the stable public reference to a stored upload. The caller
// persists it alongside its record; when replacing an existing
// reference, the caller is responsible for removing the old object.
type Result struct {
	PublicURL   string `json:"public_url"`
	StoragePath string `json:"storage_path"`
	PageCount   *int   `json:"page_count,omitempty"`
}

// Gateway validates and transfers uploads to object storage.
type Gateway struct {
	storage  storage.System
	sessions identity.System
	logger   *slog.Logger
}

// New creates an upload gateway. Storage and identity collaborators are
// injected so tests can substitute fakes.
func New(store storage.System, sessions identity.System, logger *slog.Logger) *Gateway {
	return &Gateway{
		storage:  store,
		sessions: sessions,
		logger:   logger.With("system", "uploads"),
	}
}

// Upload validates the file against the constraints and stores it. The
// destination key is namespaced by session owner and timestamp, so
// concurrent uploads by different users cannot collide and re-uploading
// identical content always creates a new object.
func (g *Gateway) Upload(ctx context.Context, file File, c Constraints) (*Result, error) {
	if c.MaxSizeBytes > 0 && file.Size > c.MaxSizeBytes {
		return nil, ErrSizeExceeded
	}

	session, err := g.sessions.CurrentSession(ctx)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	key := buildKey(c.Namespace, session.OwnerID, file.Name, time.Now())

	var pageCount *int
	if isPDF(file) {
		count, err := extractPageCount(file.Data)
		if err != nil {
			g.logger.Warn("failed to extract pdf page count", "key", key, "error", err)
		} else {
			pageCount = count
		}
	}

	if err := g.storage.Store(ctx, key, file.Data); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	g.logger.Info("file uploaded", "key", key, "size", file.Size, "owner", session.OwnerID)

	return &Result{
		PublicURL:   g.storage.PublicURL(key),
		StoragePath: key,
		PageCount:   pageCount,
	}, nil
}

// Remove deletes a previously uploaded object. The gateway never
// garbage-collects on its own; replacing a reference means the caller
// removes the old path explicitly.
func (g *Gateway) Remove(ctx context.Context, path string) error {
	if _, err := g.sessions.CurrentSession(ctx); err != nil {
		return ErrUnauthenticated
	}

	if err := g.storage.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}

	g.logger.Info("file removed", "key", path)
	return nil
}

func buildKey(namespace, ownerID, filename string, now time.Time) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%s-%d.%s", namespace, ownerID, now.UnixMilli(), ext)
}

func isPDF(file File) bool {
	if file.ContentType == "application/pdf" {
		return true
	}
	return strings.EqualFold(filepath.Ext(file.Name), ".pdf")
}

func extractPageCount(data []byte) (*int, error) {
	count, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, err
	}
	return &count, nil
}
