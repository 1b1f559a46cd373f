package btexpr

import (
	"container/list"
	"sync"

	"github.com/expr-lang/expr/vm"
)

// DefaultCacheSize is the default maximum number of compiled programs kept
// by the package-level cache. Bounding the cache limits memory growth for
// long-running hosts that build conditions from dynamic expressions.
const DefaultCacheSize = 1000

// programCache is a bounded LRU cache of compiled expr-lang programs keyed
// by expression source. Thread-safe.
type programCache struct {
	mu      sync.Mutex
	byExpr  map[string]*list.Element
	lru     *list.List
	maxSize int
}

type cacheEntry struct {
	source  string
	program *vm.Program
}

func newProgramCache(maxSize int) *programCache {
	if maxSize < 1 {
		maxSize = DefaultCacheSize
	}
	return &programCache{
		byExpr:  make(map[string]*list.Element, maxSize),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

// get returns the cached program for source, updating LRU order on a hit.
func (c *programCache) get(source string) (*vm.Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.byExpr[source]
	if !ok {
		return nil, false
	}
	if elem != c.lru.Front() {
		c.lru.MoveToFront(elem)
	}
	return elem.Value.(*cacheEntry).program, true
}

// put stores a compiled program, evicting the least recently used entries
// once over capacity. An existing entry is replaced and refreshed.
func (c *programCache) put(source string, program *vm.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.byExpr[source]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).program = program
		return
	}
	c.byExpr[source] = c.lru.PushFront(&cacheEntry{source: source, program: program})
	c.evict()
}

// resize changes the capacity, evicting immediately if shrinking.
func (c *programCache) resize(maxSize int) {
	if maxSize < 1 {
		maxSize = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxSize = maxSize
	c.evict()
}

// evict drops LRU entries until at capacity. Callers hold c.mu.
func (c *programCache) evict() {
	for c.lru.Len() > c.maxSize {
		elem := c.lru.Back()
		if elem == nil {
			break
		}
		delete(c.byExpr, elem.Value.(*cacheEntry).source)
		c.lru.Remove(elem)
	}
}

func (c *programCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byExpr = make(map[string]*list.Element, c.maxSize)
	c.lru.Init()
}

func (c *programCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

var cache = newProgramCache(DefaultCacheSize)

// SetCacheSize sets the maximum size of the package-level program cache.
// If the new size is smaller than the current contents, the cache is
// truncated immediately. Safe to call at runtime.
func SetCacheSize(size int) { cache.resize(size) }

// ClearCache empties the package-level program cache. Useful in tests.
func ClearCache() { cache.clear() }
