package gcs

import (
	"context"
	"errors"
	"io"
)

var ErrKeyNotFound = errors.New("object not found")

type BasicClient interface {
	Lister
	Getter
	Putter
	BufferPutter
	Deleter
}

type Client interface {
	BasicClient
	Mover
}

type Lister interface {
	List(ctx context.Context, key string) (keys []string, err error)
}

type Getter interface {
	// Get returns ErrKeyNotFound if the given object doesn't exist.
	Get(ctx context.Context, key string) (data []byte, err error)
}

type Putter interface {
	Put(ctx context.Context, key string, data []byte) (err error)
}

// BufferPutter can be used to put a file to GCS since File implements Read.
type BufferPutter interface {
	BufferPut(ctx context.Context, key string, buf io.Reader) (err error)
}

type Deleter interface {
	Delete(ctx context.Context, key string) error
}

type Mover interface {
	// Move returns ErrKeyNotFound if the src object doesn't exist.
	Move(ctx context.Context, src, dst string) error
}
