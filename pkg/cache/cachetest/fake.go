// Package cachetest provides an in-process cache.Cache for tests.
package cachetest

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"library-lite/pkg/cache"
)

// Fake stores JSON-encoded values in a map. Setting Err makes every
// call fail with it.
type Fake struct {
	mu      sync.Mutex
	entries map[string][]byte

	Err  error
	Gets int
	Hits int

	// BeforeSet, when set, runs at the start of every Set, outside the
	// fake's lock.
	BeforeSet func(key string)
}

var _ cache.Cache = (*Fake)(nil)

func New() *Fake {
	return &Fake{entries: make(map[string][]byte)}
}

func (f *Fake) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Gets++
	if f.Err != nil {
		return false, f.Err
	}
	data, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	f.Hits++
	return true, nil
}

func (f *Fake) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if f.BeforeSet != nil {
		f.BeforeSet(key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *Fake) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}
	for _, k := range keys {
		delete(f.entries, k)
	}
	return nil
}

func (f *Fake) Ping(context.Context) error {
	return f.Err
}

// Has reports whether key is currently cached.
func (f *Fake) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.entries[key]
	return ok
}
