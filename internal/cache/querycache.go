// Package cache holds the gateway's query cache: an explicit guarded map
// keyed by (task, parameters), invalidated manually on every mutating call to
// the same resource.
package cache

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

type entry struct {
	task  string
	value any
}

type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func New() *QueryCache {
	return &QueryCache{entries: map[string]entry{}}
}

// Key canonicalizes (task, params) into a stable cache key: parameter names
// are sorted so equivalent requests collide regardless of field order.
func Key(task string, params map[string]any) string {
	if len(params) == 0 {
		return task
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(task)
	for _, name := range names {
		fmt.Fprintf(&b, "|%s=%v", name, params[name])
	}
	return b.String()
}

func (c *QueryCache) Get(task string, params map[string]any) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[Key(task, params)]
	if !ok {
		return nil, false
	}
	return e.value, true
}

func (c *QueryCache) Set(task string, params map[string]any, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[Key(task, params)] = entry{task: task, value: value}
}

// InvalidateTask drops every cached result of the given task, whatever the
// parameters were.
func (c *QueryCache) InvalidateTask(task string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if e.task == task {
			delete(c.entries, k)
		}
	}
}

func (c *QueryCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string]entry{}
}

func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
