package gcs

import "context"

func NewClient(ctx context.Context, bucket, prefix string) (Client, error) {
	basicClient, err := NewBasicClient(ctx, bucket, prefix)
	if err != nil {
		return nil, err
	}
	return NewClientFromBasic(basicClient), nil
}

func NewClientFromBasic(basicClient BasicClient) Client {
	return &client{
		BasicClient: basicClient,
	}
}

type client struct {
	BasicClient
}

func (s *client) Move(ctx context.Context, src, dst string) error {
	data, err := s.Get(ctx, src)
	if err != nil {
		return err
	}

	err = s.Put(ctx, dst, data)
	if err != nil {
		return err
	}

	return s.Delete(ctx, src)
}
