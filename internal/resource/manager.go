package resource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Manager orchestrates list, create, update, and delete for one resource
// type, decoupled from any particular table or form layout. It owns a
// read-through cache of the record list, at most one open draft, and the
// transient status message of the last mutating action.
//
// A Manager serializes its operations internally; each instance mirrors
// the single screen that drives it.
type Manager struct {
	schema  Schema
	store   Store
	confirm Confirmer
	logger  *slog.Logger

	mu      sync.Mutex
	records []Record
	draft   *Draft
	status  *StatusMessage
}

// NewManager creates a manager for the given schema. The store and
// confirmer collaborators are injected so tests can substitute fakes.
func NewManager(schema Schema, store Store, confirm Confirmer, logger *slog.Logger) (*Manager, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("store required")
	}
	if confirm == nil {
		confirm = NeverConfirm
	}

	return &Manager{
		schema:  schema,
		store:   store,
		confirm: confirm,
		logger:  logger.With("system", "resource", "resource", schema.Name),
	}, nil
}

// Schema returns the schema the manager was built from.
func (m *Manager) Schema() Schema {
	return m.schema
}

// Load fetches all records from the store. On failure the previously
// cached list is left untouched and an error status is emitted; the
// failure never propagates to the caller.
func (m *Manager) Load(ctx context.Context) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = nil
	m.loadLocked(ctx)
	return m.recordsLocked()
}

// Records returns the cached list without contacting the store.
func (m *Manager) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recordsLocked()
}

// Search filters the cached list across the schema's searchable fields.
func (m *Manager) Search(query string) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Filter(m.recordsLocked(), query, m.schema.SearchFields())
}

// BeginCreate opens a draft with every field set to its schema-declared
// default. Any previously open draft is discarded.
func (m *Manager) BeginCreate() *Draft {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = nil
	m.draft = NewCreateDraft(m.schema)
	return m.draft
}

// BeginEdit opens a draft populated from the record's current values.
// Editing is refused while another draft is open, so a stale draft can
// never be submitted against a list that changed shape underneath it.
func (m *Manager) BeginEdit(record Record) (*Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft != nil {
		return nil, ErrDraftOpen
	}

	m.status = nil
	m.draft = NewEditDraft(m.schema, record)
	return m.draft, nil
}

// Cancel discards the open draft, if any.
func (m *Manager) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = nil
	m.draft = nil
}

// Submit validates and persists the open draft: an update when the draft
// references an existing record, an insert otherwise. On success the
// list is reloaded from the store and the draft cleared; on failure the
// draft stays open so the user can retry without re-entering data.
func (m *Manager) Submit(ctx context.Context) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = nil

	if m.draft == nil {
		return nil, ErrNoDraft
	}

	record, err := m.submitLocked(ctx, m.draft)
	if err != nil {
		return nil, err
	}

	m.draft = nil
	return record, nil
}

// SubmitDraft validates and persists a caller-owned draft built with
// NewCreateDraft or NewEditDraft. The manager's own open draft is never
// read or cleared, so concurrent submissions cannot observe or discard
// each other's form state.
func (m *Manager) SubmitDraft(ctx context.Context, draft *Draft) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = nil

	if draft == nil {
		return nil, ErrNoDraft
	}

	return m.submitLocked(ctx, draft)
}

func (m *Manager) submitLocked(ctx context.Context, draft *Draft) (*Record, error) {
	if field, err := m.validateDraft(draft); err != nil {
		m.status = &StatusMessage{Kind: StatusError, Text: fmt.Sprintf("Kolom %s wajib diisi", field)}
		return nil, err
	}

	values := m.coerceDraft(draft)

	var (
		record *Record
		err    error
	)
	if draft.Editing() {
		record, err = m.store.Update(ctx, m.schema, *draft.EditingID, values)
	} else {
		record, err = m.store.Insert(ctx, m.schema, values)
	}

	if err != nil {
		m.logger.Error("save failed", "editing", draft.Editing(), "error", err)
		m.status = &StatusMessage{Kind: StatusError, Text: "Gagal menyimpan data"}
		return nil, err
	}

	m.loadLocked(ctx)
	m.status = &StatusMessage{Kind: StatusSuccess, Text: "Data berhasil disimpan"}

	m.logger.Info("record saved", "id", record.ID)
	return record, nil
}

// Remove deletes the record with the given identifier after the
// confirmer approves. Without approval the store is never contacted and
// the cached list stays unchanged. Deletion is refused while a draft is
// open.
func (m *Manager) Remove(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = nil

	if m.draft != nil {
		return ErrDraftOpen
	}

	ok, err := m.confirm.Confirm(ctx, DeleteWarning)
	if err != nil {
		m.status = &StatusMessage{Kind: StatusError, Text: "Gagal menghapus data"}
		return err
	}
	if !ok {
		return ErrNotConfirmed
	}

	if err := m.store.Delete(ctx, m.schema, id); err != nil {
		m.logger.Error("delete failed", "id", id, "error", err)
		m.status = &StatusMessage{Kind: StatusError, Text: "Gagal menghapus data"}
		return err
	}

	m.loadLocked(ctx)
	m.status = &StatusMessage{Kind: StatusSuccess, Text: "Data berhasil dihapus"}

	m.logger.Info("record removed", "id", id)
	return nil
}

// Draft returns the open draft, or nil when none is open.
func (m *Manager) Draft() *Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// Status returns the transient outcome of the last mutating action, or
// nil when the last action cleared it.
func (m *Manager) Status() *StatusMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Manager) loadLocked(ctx context.Context) {
	records, err := m.store.Select(ctx, m.schema)
	if err != nil {
		m.logger.Error("load failed", "error", err)
		m.status = &StatusMessage{Kind: StatusError, Text: "Gagal memuat data"}
		return
	}
	m.records = records
}

func (m *Manager) recordsLocked() []Record {
	records := make([]Record, len(m.records))
	copy(records, m.records)
	return records
}

// validateDraft checks that every required schema field carries a
// non-empty draft value, returning the first missing field in
// declaration order.
func (m *Manager) validateDraft(draft *Draft) (string, error) {
	for _, f := range m.schema.Fields {
		if !f.Required {
			continue
		}
		if isEmpty(draft.Values[f.Name]) {
			return f.Name, &ValidationError{Field: f.Name}
		}
	}
	return "", nil
}

// coerceDraft converts the draft values into their canonical types,
// dropping any key outside the schema's field set.
func (m *Manager) coerceDraft(draft *Draft) map[string]any {
	values := make(map[string]any, len(m.schema.Fields))
	for _, f := range m.schema.Fields {
		raw, ok := draft.Values[f.Name]
		if !ok {
			raw = f.DefaultValue()
		}
		values[f.Name] = f.Coerce(raw)
	}
	return values
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}
