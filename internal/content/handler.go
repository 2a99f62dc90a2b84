package content

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/resource"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/handlers"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/pagination"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/routes"
)

// Handler serves every catalog resource through one set of generic
// endpoints. It holds one resource manager per schema.
type Handler struct {
	managers   map[string]*resource.Manager
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler builds a manager per catalog schema against the given store.
func NewHandler(schemas []resource.Schema, store resource.Store, logger *slog.Logger, pagecfg pagination.Config) (*Handler, error) {
	managers := make(map[string]*resource.Manager, len(schemas))

	for _, schema := range schemas {
		mgr, err := resource.NewManager(schema, store, requestConfirmer{}, logger)
		if err != nil {
			return nil, fmt.Errorf("resource %s: %w", schema.Name, err)
		}
		managers[schema.Name] = mgr
	}

	return &Handler{
		managers:   managers,
		logger:     logger.With("handler", "content"),
		pagination: pagecfg,
	}, nil
}

// Routes returns the content endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/api",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{resource}", Handler: h.List},
			{Method: "GET", Pattern: "/{resource}/schema", Handler: h.Schema},
			{Method: "GET", Pattern: "/{resource}/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "/{resource}", Handler: h.Create},
			{Method: "PUT", Pattern: "/{resource}/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{resource}/{id}", Handler: h.Delete},
		},
	}
}

type listResponse struct {
	pagination.PageResult[resource.Record]
	Status *resource.StatusMessage `json:"status,omitempty"`
}

type recordResponse struct {
	Record *resource.Record        `json:"record"`
	Status *resource.StatusMessage `json:"status,omitempty"`
}

type statusResponse struct {
	Status *resource.StatusMessage `json:"status"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mgr, ok := h.manager(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrUnknownResource)
		return
	}

	records := mgr.Load(r.Context())

	if search := r.URL.Query().Get("search"); search != "" {
		records = resource.Filter(records, search, mgr.Schema().SearchFields())
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	result := pagination.Paginate(records, page)

	handlers.RespondJSON(w, http.StatusOK, listResponse{
		PageResult: result,
		Status:     mgr.Status(),
	})
}

func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	mgr, ok := h.manager(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrUnknownResource)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, mgr.Schema())
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	mgr, ok := h.manager(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrUnknownResource)
		return
	}

	record, err := h.findRecord(r, mgr)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, recordResponse{Record: record})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mgr, ok := h.manager(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrUnknownResource)
		return
	}

	var values map[string]any
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	// The draft belongs to this request; the manager's own draft state
	// is never touched, so interleaved creates stay independent.
	draft := resource.NewCreateDraft(mgr.Schema())
	for field, value := range values {
		draft.Set(field, value)
	}

	record, err := mgr.SubmitDraft(r.Context(), draft)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, recordResponse{Record: record, Status: mgr.Status()})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mgr, ok := h.manager(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrUnknownResource)
		return
	}

	existing, err := h.findRecord(r, mgr)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	var values map[string]any
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	draft := resource.NewEditDraft(mgr.Schema(), *existing)
	for field, value := range values {
		draft.Set(field, value)
	}

	record, err := mgr.SubmitDraft(r.Context(), draft)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, recordResponse{Record: record, Status: mgr.Status()})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	mgr, ok := h.manager(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrUnknownResource)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"
	ctx := withConfirmation(r.Context(), confirmed)

	if err := mgr.Remove(ctx, id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, statusResponse{Status: mgr.Status()})
}

func (h *Handler) manager(r *http.Request) (*resource.Manager, bool) {
	mgr, ok := h.managers[r.PathValue("resource")]
	return mgr, ok
}

func (h *Handler) findRecord(r *http.Request, mgr *resource.Manager) (*resource.Record, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return nil, resource.ErrNotFound
	}

	for _, record := range mgr.Load(r.Context()) {
		if record.ID == id {
			return &record, nil
		}
	}

	return nil, resource.ErrNotFound
}
