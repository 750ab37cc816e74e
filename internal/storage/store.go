package storage

import "context"

// Store persists uploaded assets under caller-chosen names and serves the
// bytes back. Put returns the public URL path for the stored asset; Open
// returns mascot_errors.ErrNotFound when no asset exists under the name.
type Store interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
	Open(ctx context.Context, name string) ([]byte, error)
}
