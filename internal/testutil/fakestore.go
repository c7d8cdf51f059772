// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"todo/internal/state"
)

// FakeStore is an in-memory implementation of state.Store for testing.
// Collections are copied on the way in and out, so callers cannot alias the
// stored data.
type FakeStore struct {
	mu          sync.RWMutex
	items       state.Collection
	initialized bool
	saves       int

	// Error injection for testing
	LoadErr error
	SaveErr error
	InitErr error
}

// NewFakeStore creates an initialised FakeStore holding an empty collection.
func NewFakeStore() *FakeStore {
	return &FakeStore{items: state.Collection{}, initialized: true}
}

// NewUninitializedFakeStore creates a FakeStore whose Load reports
// state.ErrNotFound until Init or Save is called.
func NewUninitializedFakeStore() *FakeStore {
	return &FakeStore{}
}

// Put records a raw status token for title without counting a save.
func (f *FakeStore) Put(title, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.items == nil {
		f.items = state.Collection{}
	}
	f.items[title] = token
	f.initialized = true
}

// Token returns the stored token for title.
func (f *FakeStore) Token(title string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	token, ok := f.items[title]
	return token, ok
}

// Saves returns how many times Save succeeded.
func (f *FakeStore) Saves() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.saves
}

// Document returns the stored collection rendered as a JSON object.
func (f *FakeStore) Document() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	data, err := json.Marshal(f.items)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(data)
}

// Load implements state.Store.
func (f *FakeStore) Load(ctx context.Context) (state.Collection, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.initialized {
		return nil, state.ErrNotFound
	}
	return f.items.Clone(), nil
}

// Save implements state.Store.
func (f *FakeStore) Save(ctx context.Context, c state.Collection) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = c.Clone()
	f.initialized = true
	f.saves++
	return nil
}

// Init implements state.Initializer.
func (f *FakeStore) Init(ctx context.Context) (bool, error) {
	if f.InitErr != nil {
		return false, f.InitErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.initialized {
		return false, nil
	}
	f.items = state.Collection{}
	f.initialized = true
	return true, nil
}
