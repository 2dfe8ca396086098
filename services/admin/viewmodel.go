package admin

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Store is the slice of a catalog resource client one view-model drives.
// Implementations built on clients that degrade to an empty list on
// failure simply never return a List error.
type Store[R any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, draft *R) error
	Update(ctx context.Context, id int64, draft *R) error
	Delete(ctx context.Context, id int64) error
}

// ValidationError carries the field-scoped messages of a rejected draft.
// It never reaches the network.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "draft validation failed"
}

// Busy mirrors the per-action loading flags of the admin views.
type Busy struct {
	Listing  bool
	Saving   bool
	Deleting bool
}

type Config[R any] struct {
	// ID extracts the identity of an item.
	ID func(item *R) int64
	// Fresh seeds a create-mode draft. Zero value when nil.
	Fresh func() *R
	// Validate returns field errors for a draft. Always valid when nil.
	Validate func(draft *R) map[string]string
}

// ViewModel keeps one resource collection's CRUD state: the items as the
// catalog last returned them (server order, never re-sorted), the draft
// being edited, dialog flags and per-action busy flags. All mutation
// goes through its operations; handlers only read snapshots.
type ViewModel[R any] struct {
	mu    sync.Mutex
	store Store[R]
	cfg   Config[R]

	items             []R
	draft             *R
	draftErrors       map[string]string
	editingID         *int64
	dialogOpen        bool
	confirmDeleteOpen bool
	pendingDeleteID   *int64
	busy              Busy

	// gen fences overlapping refreshes: a completed listing whose
	// generation is stale must not overwrite newer state.
	gen uint64
}

func NewViewModel[R any](store Store[R], cfg Config[R]) *ViewModel[R] {
	if cfg.Fresh == nil {
		cfg.Fresh = func() *R {
			return new(R)
		}
	}
	if cfg.Validate == nil {
		cfg.Validate = func(*R) map[string]string {
			return nil
		}
	}
	return &ViewModel[R]{
		store: store,
		cfg:   cfg,
	}
}

// Refresh reloads the whole collection. The listing flag is cleared
// whether or not the load succeeds, so a failed load never leaves the
// view stuck in a loading state.
func (vm *ViewModel[R]) Refresh(ctx context.Context) error {
	vm.mu.Lock()
	vm.busy.Listing = true
	vm.gen++
	gen := vm.gen
	store := vm.store
	vm.mu.Unlock()

	items, err := store.List(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.busy.Listing = false
	if gen != vm.gen {
		// overtaken by a newer refresh or a local clear
		return nil
	}
	if err != nil {
		return err
	}
	vm.items = items
	return nil
}

// Clear drops the collection locally without a network call and
// invalidates any in-flight listing.
func (vm *ViewModel[R]) Clear() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.items = nil
	vm.gen++
	vm.busy.Listing = false
}

func (vm *ViewModel[R]) BeginCreate() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.draft = vm.cfg.Fresh()
	vm.editingID = nil
	vm.draftErrors = map[string]string{}
	vm.dialogOpen = true
}

// BeginEdit seeds the draft from a copy of the listed item; the items
// themselves are never mutated. Returns false when the id is unknown.
func (vm *ViewModel[R]) BeginEdit(id int64) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	for i := range vm.items {
		if vm.cfg.ID(&vm.items[i]) != id {
			continue
		}
		item := vm.items[i]
		vm.draft = &item
		vm.editingID = &id
		vm.draftErrors = map[string]string{}
		vm.dialogOpen = true
		return true
	}
	return false
}

// UpdateDraft applies one field mutation to the draft and clears that
// field's previously recorded validation error.
func (vm *ViewModel[R]) UpdateDraft(field string, mutate func(draft *R)) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.draft == nil {
		return
	}
	mutate(vm.draft)
	delete(vm.draftErrors, field)
}

// CloseDialog discards the draft regardless of save outcome.
func (vm *ViewModel[R]) CloseDialog() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.closeDialogLocked()
}

func (vm *ViewModel[R]) closeDialogLocked() {
	vm.dialogOpen = false
	vm.draft = nil
	vm.editingID = nil
	vm.draftErrors = nil
}

// Save submits the draft. A validation failure records field errors,
// keeps the dialog open and performs no network call. On success the
// dialog closes and the collection is reloaded wholesale so
// server-assigned fields come back; on failure the dialog stays open
// with the draft preserved so the admin does not lose input.
func (vm *ViewModel[R]) Save(ctx context.Context) error {
	vm.mu.Lock()
	if vm.draft == nil || !vm.dialogOpen {
		vm.mu.Unlock()
		return errors.New("no draft to save")
	}
	if fields := vm.cfg.Validate(vm.draft); len(fields) > 0 {
		vm.draftErrors = fields
		vm.mu.Unlock()
		return &ValidationError{Fields: fields}
	}
	vm.busy.Saving = true
	draft := *vm.draft
	editingID := vm.editingID
	store := vm.store
	vm.mu.Unlock()

	var err error
	if editingID != nil {
		err = store.Update(ctx, *editingID, &draft)
	} else {
		err = store.Create(ctx, &draft)
	}

	vm.mu.Lock()
	vm.busy.Saving = false
	if err != nil {
		vm.mu.Unlock()
		return err
	}
	vm.closeDialogLocked()
	vm.mu.Unlock()

	return vm.Refresh(ctx)
}

func (vm *ViewModel[R]) RequestDelete(id int64) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.pendingDeleteID = &id
	vm.confirmDeleteOpen = true
}

func (vm *ViewModel[R]) CancelDelete() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.pendingDeleteID = nil
	vm.confirmDeleteOpen = false
}

// ConfirmDelete removes the pending entity. The confirmation closes and
// the collection reloads whether or not the remote delete succeeded;
// nothing was optimistically removed, so there is no state to roll back.
func (vm *ViewModel[R]) ConfirmDelete(ctx context.Context) error {
	vm.mu.Lock()
	if vm.pendingDeleteID == nil {
		vm.mu.Unlock()
		return errors.New("no delete pending")
	}
	id := *vm.pendingDeleteID
	vm.busy.Deleting = true
	store := vm.store
	vm.mu.Unlock()

	err := store.Delete(ctx, id)

	vm.mu.Lock()
	vm.busy.Deleting = false
	vm.pendingDeleteID = nil
	vm.confirmDeleteOpen = false
	vm.mu.Unlock()

	if rerr := vm.Refresh(ctx); rerr != nil && err == nil {
		err = rerr
	}
	return err
}

// Snapshot is a copy of the view state handed to rendering.
type Snapshot[R any] struct {
	Items             []R
	Draft             *R
	DraftErrors       map[string]string
	EditingID         *int64
	DialogOpen        bool
	ConfirmDeleteOpen bool
	PendingDeleteID   *int64
	Busy              Busy
}

func (vm *ViewModel[R]) Snapshot() Snapshot[R] {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	s := Snapshot[R]{
		Items:             append([]R(nil), vm.items...),
		EditingID:         vm.editingID,
		DialogOpen:        vm.dialogOpen,
		ConfirmDeleteOpen: vm.confirmDeleteOpen,
		PendingDeleteID:   vm.pendingDeleteID,
		Busy:              vm.busy,
	}
	if vm.draft != nil {
		draft := *vm.draft
		s.Draft = &draft
	}
	if len(vm.draftErrors) > 0 {
		s.DraftErrors = make(map[string]string, len(vm.draftErrors))
		for k, v := range vm.draftErrors {
			s.DraftErrors[k] = v
		}
	}
	return s
}
