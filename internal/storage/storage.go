package storage

import "context"

// Storage issues presigned URLs for exercise images. Uploads go straight to
// the object store; the API only ever handles keys and URLs.
type Storage interface {
	// PresignPut returns an upload URL and the key it writes to.
	PresignPut(ctx context.Context) (url string, key string, err error)
	// PresignGet returns a download URL for an existing key.
	PresignGet(ctx context.Context, key string) (string, error)
}

type FakeStorage struct {
	PresignPutFn func(ctx context.Context) (string, string, error)
	PresignGetFn func(ctx context.Context, key string) (string, error)
}

func (f *FakeStorage) PresignPut(ctx context.Context) (string, string, error) {
	if f.PresignPutFn != nil {
		return f.PresignPutFn(ctx)
	}
	panic("unexpected PresignPut")
}

func (f *FakeStorage) PresignGet(ctx context.Context, key string) (string, error) {
	if f.PresignGetFn != nil {
		return f.PresignGetFn(ctx, key)
	}
	panic("unexpected PresignGet")
}
