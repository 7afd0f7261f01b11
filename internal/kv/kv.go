// Package kv persists named values in a pluggable storage backend.
//
// Backends store raw bytes under a key, Codec turns values into bytes and Value
// glues both together, falling back to in-memory state whenever storage misbehaves.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Backend when nothing is stored under the key
var ErrNotFound = errors.New("kv: key not found")

// Backend is durable key-value storage
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type namespacedBackend struct {
	backend   Backend
	namespace string
}

// WithNamespace scopes all keys of backend with namespace, so several profiles may share single storage
func WithNamespace(backend Backend, namespace string) Backend {
	if namespace == "" {
		return backend
	}
	return &namespacedBackend{backend: backend, namespace: namespace}
}

func (b *namespacedBackend) Get(ctx context.Context, key string) ([]byte, error) {
	return b.backend.Get(ctx, b.key(key))
}

func (b *namespacedBackend) Set(ctx context.Context, key string, value []byte) error {
	return b.backend.Set(ctx, b.key(key), value)
}

func (b *namespacedBackend) key(key string) string {
	return b.namespace + ":" + key
}
