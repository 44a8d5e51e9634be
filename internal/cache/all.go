package cache

import "slices"

// registry maps backend names to their factory functions.
var registry = map[string]Factory{
	"flush":         NewFlush,
	"otter":         NewOtter,
	"theine":        NewTheine,
	"ttlcache":      NewTTLCache,
	"ristretto":     NewRistretto,
	"tinylfu":       NewTinyLFU,
	"sieve":         NewSieve,
	"s3-fifo":       NewS3FIFO,
	"freelru-shard": NewFreeLRUSharded,
	"freelru-sync":  NewFreeLRUSynced,
	"freecache":     NewFreecache,
	"2q":            NewTwoQueue,
	"s4lru":         NewS4LRU,
	"clock":         NewClock,
	"lru":           NewLRU,
}

// defaultOrder defines the display order for backends.
var defaultOrder = []string{
	"flush",
	"otter", "theine", "ttlcache", "ristretto", "tinylfu", "sieve", "s3-fifo",
	"freelru-shard", "freelru-sync", "freecache", "2q", "s4lru", "clock", "lru",
}

// Filter holds the current backend filter (nil = all backends).
var Filter map[string]bool

// SetFilter sets which backends to include in benchmarks.
func SetFilter(names []string) {
	if len(names) == 0 {
		Filter = nil
		return
	}
	Filter = make(map[string]bool)
	for _, name := range names {
		Filter[name] = true
	}
}

// All returns factories for all (or filtered) backends.
func All() []Factory {
	var factories []Factory
	for _, name := range defaultOrder {
		if Filter != nil && !Filter[name] {
			continue
		}
		if f, ok := registry[name]; ok {
			factories = append(factories, f)
		}
	}
	return factories
}

// AllNames returns the names of all (or filtered) backends.
func AllNames() []string {
	if Filter == nil {
		return slices.Clone(defaultOrder)
	}
	var names []string
	for _, name := range defaultOrder {
		if Filter[name] {
			names = append(names, name)
		}
	}
	return names
}

// AvailableNames returns all backend names, ignoring the filter.
func AvailableNames() []string {
	return slices.Clone(defaultOrder)
}

// ByName returns the factory registered under name.
func ByName(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}
