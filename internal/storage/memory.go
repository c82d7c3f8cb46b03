package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory keeps uploads in process memory, matching the rest of this
// demo: nothing is persisted across restarts.
type Memory struct {
	URLPrefix string
	MaxBytes  int64

	mu      sync.RWMutex
	objects map[string]Object
}

func NewMemory(urlPrefix string, maxBytes int64) *Memory {
	return &Memory{
		URLPrefix: urlPrefix,
		MaxBytes:  maxBytes,
		objects:   make(map[string]Object),
	}
}

func (m *Memory) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	_ = ctx

	limit := m.MaxBytes
	if limit <= 0 {
		limit = 10 << 20
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return PutResult{}, err
	}
	if int64(len(data)) > limit {
		return PutResult{}, fmt.Errorf("upload exceeds %d bytes", limit)
	}

	key := uuid.NewString() + safeExt(in.Filename)

	m.mu.Lock()
	m.objects[key] = Object{
		Data:        data,
		ContentType: in.ContentType,
		Filename:    in.Filename,
	}
	m.mu.Unlock()

	url := strings.TrimRight(m.URLPrefix, "/") + "/" + key
	return PutResult{Key: key, URL: url}, nil
}

func (m *Memory) Get(ctx context.Context, key string) (Object, bool, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	return obj, ok, nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext
	default:
		return ""
	}
}
