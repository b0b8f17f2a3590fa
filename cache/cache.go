// Package cache keeps objects that are expensive to build and shared
// between players, such as weight tables per board size.
package cache

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

type cache struct {
	sync.Mutex
	objects map[string]any
}

// GlobalObjectCache is shared by every package that loads through Load.
var GlobalObjectCache = newCache()

func newCache() *cache {
	return &cache{objects: make(map[string]any)}
}

func (c *cache) get(key string, loadFunc func() (any, error)) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := loadFunc()
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func (c *cache) len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.objects)
}

// Load returns the object stored under key, building it with loadFunc the
// first time. Callers must not modify what they get back.
func Load[T any](key string, loadFunc func() (T, error)) (T, error) {
	obj, err := GlobalObjectCache.get(key, func() (any, error) { return loadFunc() })
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := obj.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache: object at %q has type %T", key, obj)
	}
	return t, nil
}
