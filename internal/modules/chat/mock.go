package chat

import (
	"context"
	"sync"
)

type MockProvider struct {
	mu       sync.Mutex
	Requests []Request
	Result   Image
	Err      error
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return Image{}, m.Err
	}
	return m.Result, nil
}
