package template

import (
	"strings"
	"sync"

	"github.com/aescanero/dago-collection-helpers/internal/collection"
)

// Funcs is a table of named caller-supplied functions.
// Templates cannot carry Go functions as values, so map and sortBy look them up by name here.
type Funcs struct {
	mappers     map[string]collection.Mapper
	comparators map[string]collection.Comparator
	mu          sync.RWMutex
}

// NewFuncs creates a function table holding the built-in mappers
func NewFuncs() *Funcs {
	f := &Funcs{
		mappers:     make(map[string]collection.Mapper),
		comparators: make(map[string]collection.Comparator),
	}

	// uppercase mapper
	f.mappers["uppercase"] = func(item interface{}) interface{} {
		return strings.ToUpper(collection.Str(item))
	}

	// lowercase mapper
	f.mappers["lowercase"] = func(item interface{}) interface{} {
		return strings.ToLower(collection.Str(item))
	}

	// trim mapper
	f.mappers["trim"] = func(item interface{}) interface{} {
		return strings.TrimSpace(collection.Str(item))
	}

	return f
}

// RegisterMapper adds or replaces a named mapper
func (f *Funcs) RegisterMapper(name string, fn collection.Mapper) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mappers[name] = fn
}

// RegisterComparator adds or replaces a named comparator
func (f *Funcs) RegisterComparator(name string, fn collection.Comparator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comparators[name] = fn
}

// Mapper returns the mapper registered under name
func (f *Funcs) Mapper(name string) (collection.Mapper, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fn, ok := f.mappers[name]
	return fn, ok
}

// Comparator returns the comparator registered under name
func (f *Funcs) Comparator(name string) (collection.Comparator, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fn, ok := f.comparators[name]
	return fn, ok
}
