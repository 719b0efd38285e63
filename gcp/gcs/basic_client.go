package gcs

import (
	"context"
	"errors"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

func NewBasicClient(ctx context.Context, bucket, prefix string) (BasicClient, error) {
	api, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	return &basicClient{
		bucket: strings.TrimPrefix(bucket, "gs://"),
		prefix: prefix,
		api:    api,
	}, nil
}

type basicClient struct {
	bucket string
	prefix string
	api    *storage.Client
}

func (s *basicClient) List(ctx context.Context, key string) (keys []string, err error) {
	keys = make([]string, 0, 1000)
	it := s.api.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: s.getKeyWithPrefix(key)})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		keys = append(keys, attrs.Name)
	}
	return keys, nil
}

func (s *basicClient) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := s.api.Bucket(s.bucket).Object(s.getKeyWithPrefix(key)).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}

	defer r.Close()

	return io.ReadAll(r)
}

func (s *basicClient) Put(ctx context.Context, key string, data []byte) error {
	w := s.api.Bucket(s.bucket).Object(s.getKeyWithPrefix(key)).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (s *basicClient) BufferPut(ctx context.Context, key string, buf io.Reader) error {
	w := s.api.Bucket(s.bucket).Object(s.getKeyWithPrefix(key)).NewWriter(ctx)
	if _, err := io.Copy(w, buf); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (s *basicClient) Delete(ctx context.Context, key string) error {
	err := s.api.Bucket(s.bucket).Object(s.getKeyWithPrefix(key)).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return ErrKeyNotFound
	}
	return err
}

func (s *basicClient) getKeyWithPrefix(key string) string {
	if s.prefix != "" {
		return strings.TrimRight(s.prefix, "/") + "/" + key // ensure single slash after prefix.
	}
	return key
}
