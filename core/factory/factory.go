package factory

import (
	"fmt"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// ModuleConfig names a module type and carries its raw settings.
type ModuleConfig struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// Builder constructs an implementation of T from raw settings.
type Builder[T any] func(map[string]any) (T, error)

// Registry stores builders keyed by module type. Safe for concurrent use.
type Registry[T any] struct {
	mu       sync.RWMutex
	builders map[string]Builder[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{builders: make(map[string]Builder[T])}
}

// Register adds a builder under the given type name. Registering the same
// name twice or a nil builder is an error.
func (r *Registry[T]) Register(name string, b Builder[T]) error {
	if b == nil {
		return fmt.Errorf("nil builder for %s", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.builders[name]; ok {
		return fmt.Errorf("builder already registered for %s", name)
	}
	r.builders[name] = b
	return nil
}

// Create builds the module described by cfg.
func (r *Registry[T]) Create(cfg ModuleConfig) (T, error) {
	r.mu.RLock()
	b, ok := r.builders[cfg.Type]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown module type %s", cfg.Type)
	}
	return b(cfg.Conf)
}

// Decode fills out the provided struct from raw settings using json tags.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
