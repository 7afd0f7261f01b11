package kv

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// Value is single named value persisted in backend.
// Storage failures never reach the caller: reads fall back to default, writes keep in-memory state.
// Value is not safe for concurrent use.
type Value[T any] struct {
	backend Backend
	codec   Codec
	key     string
	current T
	loaded  bool
}

// NewValue builds value stored under key
func NewValue[T any](backend Backend, codec Codec, key string) *Value[T] {
	return &Value[T]{backend: backend, codec: codec, key: key}
}

// Read returns current value, loading it from backend on first access.
// def becomes current value if nothing usable is stored.
func (v *Value[T]) Read(ctx context.Context, def T) T {
	if v.loaded {
		return v.current
	}

	v.current = v.load(ctx, def)
	v.loaded = true
	return v.current
}

// Write replaces current value and persists it
func (v *Value[T]) Write(ctx context.Context, val T) {
	v.current = val
	v.loaded = true

	data, err := v.codec.Marshal(val)
	if err != nil {
		v.logger().WithError(err).Warn("failed to encode value, keeping it in memory only")
		return
	}

	if err := v.backend.Set(ctx, v.key, data); err != nil {
		v.logger().WithError(err).Warn("failed to persist value, keeping it in memory only")
	}
}

func (v *Value[T]) load(ctx context.Context, def T) T {
	data, err := v.backend.Get(ctx, v.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			v.logger().WithError(err).Warn("failed to read value, default is used")
		}
		return def
	}

	var val T
	if err := v.codec.Unmarshal(data, &val); err != nil {
		v.logger().WithError(err).Warn("stored value is corrupted, default is used")
		return def
	}
	return val
}

func (v *Value[T]) logger() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{"key": v.key, "codec": v.codec.Name()})
}
