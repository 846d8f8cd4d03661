// Package session owns the administrator identity and credential for one
// dashboard session, backed by a durable string key/value medium.
package session

import (
	"context"
	"errors"
)

// ErrNotFound reports that a key is absent from the storage medium.
var ErrNotFound = errors.New("session: key not found")

// Storage is the durable key/value medium behind a Store. Implementations
// exist for redis, postgres and an in-memory fake used by tests.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Namespaced wraps a Storage so all keys carry the given prefix. The web
// layer uses it to scope one browser session's keys by its cookie id.
func Namespaced(storage Storage, prefix string) Storage {
	return &namespacedStorage{inner: storage, prefix: prefix}
}

type namespacedStorage struct {
	inner  Storage
	prefix string
}

func (n *namespacedStorage) Get(ctx context.Context, key string) (string, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespacedStorage) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespacedStorage) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}
