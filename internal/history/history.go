// Package history tracks which question ids have been issued for each
// piece of content, so regenerating a quiz from the same text avoids
// reissuing the same id slots.
package history

import (
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// DefaultCapacity is the number of fingerprints kept before the oldest
// is evicted.
const DefaultCapacity = 10

// Tracker maps content fingerprints to the ordered ids issued for them.
// Eviction is first-in first-out by insertion: reading or appending to an
// entry never refreshes it. Safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	entries *simplelru.LRU
}

type entry struct {
	ids []int
}

// Option configures a Tracker.
type Option func(*trackerOptions)

type trackerOptions struct {
	onEvict func(fingerprint string, ids []int)
}

// WithEvictHook registers fn to be called when an entry is evicted.
// fn runs with the tracker lock held and must not call back into it.
func WithEvictHook(fn func(fingerprint string, ids []int)) Option {
	return func(o *trackerOptions) { o.onEvict = fn }
}

// New creates an empty Tracker holding at most capacity fingerprints.
// A non-positive capacity falls back to DefaultCapacity.
func New(capacity int, opts ...Option) *Tracker {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	var o trackerOptions
	for _, opt := range opts {
		opt(&o)
	}

	var onEvict simplelru.EvictCallback
	if o.onEvict != nil {
		onEvict = func(key, value interface{}) {
			o.onEvict(key.(string), value.(*entry).ids)
		}
	}

	// NewLRU only fails for non-positive sizes.
	entries, _ := simplelru.NewLRU(capacity, onEvict)
	return &Tracker{entries: entries}
}

// IsUsed reports whether id was already recorded for fingerprint.
func (t *Tracker) IsUsed(fingerprint string, id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.peek(fingerprint)
	if !ok {
		return false
	}
	for _, v := range e.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Record appends id to fingerprint's entry, creating the entry if needed.
// Creating an entry beyond capacity evicts the oldest-inserted one.
func (t *Tracker) Record(fingerprint string, id int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.peek(fingerprint); ok {
		e.ids = append(e.ids, id)
		return
	}
	t.entries.Add(fingerprint, &entry{ids: []int{id}})
}

// Has reports whether fingerprint has an entry.
func (t *Tracker) Has(fingerprint string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries.Contains(fingerprint)
}

// IDs returns a copy of the ids recorded for fingerprint, oldest first.
func (t *Tracker) IDs(fingerprint string) []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.peek(fingerprint)
	if !ok {
		return nil
	}
	return append([]int(nil), e.ids...)
}

// Len returns the number of tracked fingerprints.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries.Len()
}

// Fingerprints returns the tracked fingerprints from oldest to newest.
func (t *Tracker) Fingerprints() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	keys := t.entries.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.(string))
	}
	return out
}

// peek looks up an entry without touching its position in the eviction order.
func (t *Tracker) peek(fingerprint string) (*entry, bool) {
	v, ok := t.entries.Peek(fingerprint)
	if !ok {
		return nil, false
	}
	return v.(*entry), true
}
