package service

import "sync"

const maxViews = 10000

// viewStore keeps a private, mutable copy of a seeded list per session.
// Opening a view reseeds it, so changes never outlive a navigation.
type viewStore[T any] struct {
	seed func() []T

	mu    sync.Mutex
	views map[string][]T
}

func newViewStore[T any](seed func() []T) *viewStore[T] {
	return &viewStore[T]{seed: seed, views: make(map[string][]T)}
}

// reset reseeds the session's view and returns a copy of it.
func (v *viewStore[T]) reset(sid string) []T {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.views[sid]; !ok && len(v.views) >= maxViews {
		for k := range v.views {
			delete(v.views, k)
			break
		}
	}
	items := v.seed()
	v.views[sid] = items
	return clone(items)
}

// find returns the first item matching, seeding the view if needed.
func (v *viewStore[T]) find(sid string, match func(T) bool) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, item := range v.current(sid) {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// update applies fn to the first item matching and returns the result.
func (v *viewStore[T]) update(sid string, match func(T) bool, fn func(*T)) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	items := v.current(sid)
	for i := range items {
		if match(items[i]) {
			fn(&items[i])
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// current must be called with v.mu held.
func (v *viewStore[T]) current(sid string) []T {
	items, ok := v.views[sid]
	if !ok {
		items = v.seed()
		v.views[sid] = items
	}
	return items
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
