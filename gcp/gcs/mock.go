package gcs

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
)

// MockBasicClient is an in-memory BasicClient for tests.
// Error fields, when set, are returned by the matching method.
type MockBasicClient struct {
	Objects   map[string][]byte
	GetCalls  map[string]int
	PutCalls  map[string]int
	ListErr   error
	GetErr    error
	PutErr    error
	DeleteErr error
	mu        sync.Mutex
}

func NewMockBasicClient() *MockBasicClient {
	return &MockBasicClient{
		Objects:  make(map[string][]byte),
		GetCalls: make(map[string]int),
		PutCalls: make(map[string]int),
	}
}

func (m *MockBasicClient) List(ctx context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	keys := make([]string, 0, len(m.Objects))
	for k := range m.Objects {
		if strings.HasPrefix(k, key) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MockBasicClient) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls[key]++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	data, ok := m.Objects[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return data, nil
}

func (m *MockBasicClient) Put(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls[key]++
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Objects[key] = data
	return nil
}

func (m *MockBasicClient) BufferPut(ctx context.Context, key string, buf io.Reader) error {
	data, err := io.ReadAll(buf)
	if err != nil {
		return err
	}
	return m.Put(ctx, key, data)
}

func (m *MockBasicClient) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.Objects[key]; !ok {
		return ErrKeyNotFound
	}
	delete(m.Objects, key)
	return nil
}
