package admin

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64
	Name string
}

// fakeStore is a scriptable in-memory backend. Errors are injected per
// call; listBlock lets a test hold a listing open to race it against
// newer state.
type fakeStore struct {
	mu          sync.Mutex
	items       []item
	nextID      int64
	listErr     error
	createErr   error
	updateErr   error
	deleteErr   error
	listBlock   chan struct{}
	listStarted chan struct{}
	listCalls   int
}

func newFakeStore(items ...item) *fakeStore {
	s := &fakeStore{items: items, nextID: 100}
	return s
}

func (s *fakeStore) List(_ context.Context) ([]item, error) {
	s.mu.Lock()
	block := s.listBlock
	s.listBlock = nil
	s.listCalls++
	items := append([]item(nil), s.items...)
	err := s.listErr
	started := s.listStarted
	s.listStarted = nil
	s.mu.Unlock()
	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *fakeStore) Create(_ context.Context, draft *item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	it := *draft
	it.ID = s.nextID
	s.nextID++
	s.items = append(s.items, it)
	return nil
}

func (s *fakeStore) Update(_ context.Context, id int64, draft *item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	for i := range s.items {
		if s.items[i].ID == id {
			it := *draft
			it.ID = id
			s.items[i] = it
			return nil
		}
	}
	return errors.New("not found")
}

func (s *fakeStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestVM(s *fakeStore) *ViewModel[item] {
	return NewViewModel[item](s, Config[item]{
		ID: func(it *item) int64 {
			return it.ID
		},
		Validate: func(draft *item) map[string]string {
			if draft.Name == "" {
				return map[string]string{"name": "name is required"}
			}
			return nil
		},
	})
}

func TestViewModelSave(t *testing.T) {
	ctx := context.Background()

	t.Run("create refreshes and picks up the server id", func(t *testing.T) {
		st := newFakeStore()
		vm := newTestVM(st)

		vm.BeginCreate()
		vm.UpdateDraft("name", func(it *item) { it.Name = "Action" })
		require.NoError(t, vm.Save(ctx))

		snap := vm.Snapshot()
		assert.False(t, snap.DialogOpen)
		assert.Nil(t, snap.Draft)
		require.Len(t, snap.Items, 1)
		assert.Equal(t, int64(100), snap.Items[0].ID)
		assert.Equal(t, "Action", snap.Items[0].Name)
	})

	t.Run("validation failure never reaches the store", func(t *testing.T) {
		st := newFakeStore()
		vm := newTestVM(st)

		vm.BeginCreate()
		err := vm.Save(ctx)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name is required", verr.Fields["name"])

		snap := vm.Snapshot()
		assert.True(t, snap.DialogOpen)
		assert.Equal(t, "name is required", snap.DraftErrors["name"])
		assert.Zero(t, st.listCalls)
	})

	t.Run("editing a field clears its recorded error", func(t *testing.T) {
		st := newFakeStore()
		vm := newTestVM(st)

		vm.BeginCreate()
		_ = vm.Save(ctx)
		vm.UpdateDraft("name", func(it *item) { it.Name = "Drama" })

		snap := vm.Snapshot()
		assert.Empty(t, snap.DraftErrors["name"])
	})

	t.Run("remote failure keeps the draft and the dialog", func(t *testing.T) {
		st := newFakeStore()
		st.createErr = errors.New("boom")
		vm := newTestVM(st)

		vm.BeginCreate()
		vm.UpdateDraft("name", func(it *item) { it.Name = "Action" })
		err := vm.Save(ctx)

		require.Error(t, err)
		snap := vm.Snapshot()
		assert.True(t, snap.DialogOpen)
		require.NotNil(t, snap.Draft)
		assert.Equal(t, "Action", snap.Draft.Name)
		assert.False(t, snap.Busy.Saving)
	})

	t.Run("edit saves against the original id", func(t *testing.T) {
		st := newFakeStore(item{ID: 7, Name: "Old"})
		vm := newTestVM(st)
		require.NoError(t, vm.Refresh(ctx))

		require.True(t, vm.BeginEdit(7))
		vm.UpdateDraft("name", func(it *item) { it.Name = "New" })
		require.NoError(t, vm.Save(ctx))

		snap := vm.Snapshot()
		require.Len(t, snap.Items, 1)
		assert.Equal(t, int64(7), snap.Items[0].ID)
		assert.Equal(t, "New", snap.Items[0].Name)
	})

	t.Run("editing an unknown id is rejected", func(t *testing.T) {
		vm := newTestVM(newFakeStore())
		assert.False(t, vm.BeginEdit(42))
		assert.False(t, vm.Snapshot().DialogOpen)
	})
}

func TestViewModelRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("failure clears the listing flag and keeps old items", func(t *testing.T) {
		st := newFakeStore(item{ID: 1, Name: "A"})
		vm := newTestVM(st)
		require.NoError(t, vm.Refresh(ctx))

		st.mu.Lock()
		st.listErr = errors.New("boom")
		st.mu.Unlock()

		require.Error(t, vm.Refresh(ctx))
		snap := vm.Snapshot()
		assert.False(t, snap.Busy.Listing)
		require.Len(t, snap.Items, 1)
	})

	t.Run("stale listing is discarded", func(t *testing.T) {
		st := newFakeStore(item{ID: 1, Name: "stale"})
		vm := newTestVM(st)

		release := make(chan struct{})
		started := make(chan struct{})
		st.mu.Lock()
		st.listBlock = release
		st.listStarted = started
		st.mu.Unlock()

		done := make(chan error, 1)
		go func() {
			done <- vm.Refresh(ctx)
		}()
		<-started

		st.mu.Lock()
		st.items = []item{{ID: 2, Name: "fresh"}}
		st.mu.Unlock()
		require.NoError(t, vm.Refresh(ctx))

		close(release)
		require.NoError(t, <-done)

		snap := vm.Snapshot()
		require.Len(t, snap.Items, 1)
		assert.Equal(t, "fresh", snap.Items[0].Name)
	})

	t.Run("clear drops items without a network call", func(t *testing.T) {
		st := newFakeStore(item{ID: 1, Name: "A"})
		vm := newTestVM(st)
		require.NoError(t, vm.Refresh(ctx))

		before := st.listCalls
		vm.Clear()

		assert.Empty(t, vm.Snapshot().Items)
		assert.Equal(t, before, st.listCalls)
	})
}

func TestViewModelDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("confirm removes and reloads", func(t *testing.T) {
		st := newFakeStore(item{ID: 1, Name: "A"}, item{ID: 2, Name: "B"})
		vm := newTestVM(st)
		require.NoError(t, vm.Refresh(ctx))

		vm.RequestDelete(1)
		assert.True(t, vm.Snapshot().ConfirmDeleteOpen)

		require.NoError(t, vm.ConfirmDelete(ctx))
		snap := vm.Snapshot()
		assert.False(t, snap.ConfirmDeleteOpen)
		require.Len(t, snap.Items, 1)
		assert.Equal(t, int64(2), snap.Items[0].ID)
	})

	t.Run("cancel leaves the collection alone", func(t *testing.T) {
		st := newFakeStore(item{ID: 1, Name: "A"})
		vm := newTestVM(st)
		require.NoError(t, vm.Refresh(ctx))

		vm.RequestDelete(1)
		vm.CancelDelete()

		snap := vm.Snapshot()
		assert.False(t, snap.ConfirmDeleteOpen)
		require.Len(t, snap.Items, 1)
	})

	t.Run("deleting an id the server no longer has reconverges", func(t *testing.T) {
		st := newFakeStore(item{ID: 1, Name: "A"})
		vm := newTestVM(st)
		require.NoError(t, vm.Refresh(ctx))

		vm.RequestDelete(99)
		require.NoError(t, vm.ConfirmDelete(ctx))

		snap := vm.Snapshot()
		assert.False(t, snap.ConfirmDeleteOpen)
		require.Len(t, snap.Items, 1)
	})

	t.Run("failure still closes the confirmation and reloads", func(t *testing.T) {
		st := newFakeStore(item{ID: 1, Name: "A"})
		st.deleteErr = errors.New("boom")
		vm := newTestVM(st)
		require.NoError(t, vm.Refresh(ctx))
		before := st.listCalls

		vm.RequestDelete(1)
		require.Error(t, vm.ConfirmDelete(ctx))

		snap := vm.Snapshot()
		assert.False(t, snap.ConfirmDeleteOpen)
		assert.False(t, snap.Busy.Deleting)
		require.Len(t, snap.Items, 1)
		assert.Equal(t, before+1, st.listCalls)
	})
}
