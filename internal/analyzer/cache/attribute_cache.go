// Package cache provides the caller-side cache for the derived attribute
// maps class.Attributes computes: an attribute map is lazy and expensive
// enough to merge (explicit assigns, implicit constructor assigns, property
// getter/setter pairs) that repeat callers shouldn't each recompute it, so
// this factors that caching out once rather than reimplementing it at every
// call site.
package cache

import (
	"sync"

	"github.com/google/uuid"

	"github.com/starling-lang/starling/internal/analyzer/ast"
)

type key struct {
	unit          uuid.UUID
	qualifiedName string
}

// AttributeCache is a concurrency-safe cache of class attribute maps,
// keyed by a compilation-unit id plus the class's qualified name so that
// two classes named the same thing in different units never collide.
type AttributeCache struct {
	mu      sync.RWMutex
	entries map[key]ast.AttributeMap
}

// NewAttributeCache returns an empty cache.
func NewAttributeCache() *AttributeCache {
	return &AttributeCache{entries: make(map[key]ast.AttributeMap)}
}

// Get returns the cached attribute map for (unit, class), if present.
func (c *AttributeCache) Get(unit uuid.UUID, class *ast.Class) (ast.AttributeMap, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	attrs, ok := c.entries[key{unit: unit, qualifiedName: class.QualifiedName()}]
	return attrs, ok
}

// GetOrCompute returns the cached attribute map for (unit, class),
// computing and storing it via compute on a miss. compute runs outside the
// cache's lock, so concurrent misses on the same (unit, class) pair may
// each call it; the first result stored wins and is returned to all of
// them.
func (c *AttributeCache) GetOrCompute(unit uuid.UUID, class *ast.Class, compute func() ast.AttributeMap) ast.AttributeMap {
	k := key{unit: unit, qualifiedName: class.QualifiedName()}

	c.mu.RLock()
	attrs, ok := c.entries[k]
	c.mu.RUnlock()
	if ok {
		return attrs
	}

	attrs = compute()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[k]; ok {
		return existing
	}
	c.entries[k] = attrs
	return attrs
}

// Invalidate drops the cached entry for a single class within a unit, if
// any is present.
func (c *AttributeCache) Invalidate(unit uuid.UUID, class *ast.Class) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key{unit: unit, qualifiedName: class.QualifiedName()})
}

// InvalidateUnit drops every cached entry belonging to unit, e.g. after
// that compilation unit is reparsed.
func (c *AttributeCache) InvalidateUnit(unit uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.unit == unit {
			delete(c.entries, k)
		}
	}
}
