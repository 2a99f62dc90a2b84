package uploads

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/handlers"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/routes"
)

// multipartOverhead is the slack allowed on top of the configured file
// size limit so multipart boundaries and form headers do not trip the
// request body cap before the gateway's own size check runs.
const multipartOverhead = 10 << 10

// Handler provides HTTP endpoints for upload operations.
type Handler struct {
	gateway       *Gateway
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates an upload handler with the configured size limit.
func NewHandler(gateway *Gateway, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		gateway:       gateway,
		logger:        logger.With("handler", "uploads"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the upload endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/uploads",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{namespace}", Handler: h.Upload},
			{Method: "DELETE", Pattern: "", Handler: h.Remove},
		},
	}
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrSizeExceeded)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	result, err := h.gateway.Upload(r.Context(), File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, Constraints{
		MaxSizeBytes: h.maxUploadSize,
		Namespace:    r.PathValue("namespace"),
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	if err := h.gateway.Remove(r.Context(), path); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
