package session

import "context"

type contextKey struct{}

// NewContext attaches the store to a request context so collaborators that
// only see the context (the upstream client's unauthorized hook) can reach it.
func NewContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, store)
}

// FromContext retrieves the store attached by NewContext.
func FromContext(ctx context.Context) (*Store, bool) {
	store, ok := ctx.Value(contextKey{}).(*Store)
	return store, ok
}
