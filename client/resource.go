package client

import (
	"sync"

	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// listEnvelope is the server's paginated list response shape.
type listEnvelope[T any] struct {
	Success    bool             `json:"success"`
	Data       []T              `json:"data"`
	Pagination store.Pagination `json:"pagination"`
}

// resource is the shared state container behind every per-resource store.
// Last fetch wins; mutations merge single items back by ID.
type resource[T any] struct {
	client   *Client
	basePath string
	id       func(T) uuid.UUID

	mu         sync.Mutex
	items      []T
	selected   *T
	loading    bool
	lastErr    string
	pagination store.Pagination
}

// Items returns a copy of the last fetched items.
func (r *resource[T]) Items() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.items...)
}

// Selected returns a copy of the currently selected item, or nil.
func (r *resource[T]) Selected() *T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selected == nil {
		return nil
	}
	v := *r.selected
	return &v
}

// IsLoading reports whether an operation is in flight.
func (r *resource[T]) IsLoading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// Err returns the message of the last failed operation, empty when the
// last operation succeeded or the error was cleared.
func (r *resource[T]) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// Pagination returns the pagination metadata from the last fetch.
func (r *resource[T]) Pagination() store.Pagination {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pagination
}

// ClearError resets the recorded error.
func (r *resource[T]) ClearError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastErr = ""
}

// Select marks the item with the given ID as selected. Selecting an ID
// that is not in the container clears the selection and reports false.
func (r *resource[T]) Select(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.id(r.items[i]) == id {
			v := r.items[i]
			r.selected = &v
			return true
		}
	}
	r.selected = nil
	return false
}

func (r *resource[T]) begin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = true
	r.lastErr = ""
}

func (r *resource[T]) finishFetch(items []T, pagination store.Pagination, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		r.lastErr = err.Error()
		return
	}
	r.items = items
	r.pagination = pagination
}

func (r *resource[T]) finishMutation(err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		r.lastErr = err.Error()
	}
	return err
}

func (r *resource[T]) upsert(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.id(item)
	for i := range r.items {
		if r.id(r.items[i]) == id {
			r.items[i] = item
			if r.selected != nil && r.id(*r.selected) == id {
				v := item
				r.selected = &v
			}
			return
		}
	}
	r.items = append(r.items, item)
}

func (r *resource[T]) remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for i := range r.items {
		if r.id(r.items[i]) != id {
			kept = append(kept, r.items[i])
		}
	}
	r.items = kept
	if r.selected != nil && r.id(*r.selected) == id {
		r.selected = nil
	}
}
