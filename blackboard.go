package bt

import "sync"

// Blackboard is the shared key-value state visible to every node in a tree.
// The engine never inspects or restructures its contents; keys and values
// are entirely the embedding application's business.
//
// Create with new(Blackboard). The internal map is lazily initialized on
// the first write. All methods are safe for concurrent use; an AsyncLeaf
// worker may write from its own goroutine while the tree is ticked.
type Blackboard struct {
	mu   sync.RWMutex
	data map[string]any
}

// Get returns the value stored under key, or nil if the key is absent.
func (b *Blackboard) Get(key string) any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.data == nil {
		return nil
	}
	return b.data[key]
}

// Set stores value under key.
func (b *Blackboard) Set(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		b.data = make(map[string]any)
	}
	b.data[key] = value
}

// Has reports whether key is present.
func (b *Blackboard) Has(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.data == nil {
		return false
	}
	_, ok := b.data[key]
	return ok
}

// Delete removes key, if present.
func (b *Blackboard) Delete(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return
	}
	delete(b.data, key)
}

// Keys returns the stored keys in no particular order.
func (b *Blackboard) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.data == nil {
		return nil
	}
	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of stored keys.
func (b *Blackboard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

// Clear removes all entries.
func (b *Blackboard) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
}

// Snapshot returns a shallow copy of the current contents. Mutable values
// (slices, maps, pointers) are shared with the blackboard; callers needing
// isolation must deep-copy themselves.
func (b *Blackboard) Snapshot() map[string]any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.data == nil {
		return nil
	}
	out := make(map[string]any, len(b.data))
	for k, v := range b.data {
		out[k] = v
	}
	return out
}
