package ports_test

import (
	"context"
	"testing"

	"github.com/aretw0/quickstart/pkg/document"
	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/ports"
)

// MockStore is an in-memory implementation of DocumentStore for testing purposes.
type MockStore struct {
	data map[string]map[string]any
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: make(map[string]map[string]any),
	}
}

func (m *MockStore) Save(ctx context.Context, key string, content map[string]any) error {
	// Deep copy to simulate serialization
	m.data[key] = document.Normalize(content).(map[string]any)
	return nil
}

func (m *MockStore) Load(ctx context.Context, key string) (map[string]any, error) {
	content, ok := m.data[key]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return document.Normalize(content).(map[string]any), nil
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockStore) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func TestMockStore_Contract(t *testing.T) {
	ports.RunDocumentStoreContract(t, NewMockStore())
}
