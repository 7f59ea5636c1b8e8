package docindex

import (
	"context"
	"strconv"
	"sync"
)

type memoryCollection struct {
	schema Schema
	docs   []Doc
	byID   map[string]int
}

type memoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
	nextID      int
}

// NewMemory is an in-process Store used by the service tests and as the
// zero-configuration fallback when no database is reachable.
func NewMemory() Store {
	return &memoryStore{collections: make(map[string]*memoryCollection), nextID: 1}
}

func (s *memoryStore) CollectionExists(_ context.Context, collection string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.collections[collection]
	return ok, nil
}

func (s *memoryStore) CreateCollection(_ context.Context, collection string, schema Schema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[collection]; !ok {
		s.collections[collection] = &memoryCollection{schema: schema, byID: make(map[string]int)}
	}
	return nil
}

func (s *memoryStore) Insert(_ context.Context, collection, id string, body map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[collection]
	if !ok {
		col = &memoryCollection{byID: make(map[string]int)}
		s.collections[collection] = col
	}
	if id == "" {
		// Skip ids already taken by explicit inserts.
		for {
			id = strconv.Itoa(s.nextID)
			s.nextID++
			if _, taken := col.byID[id]; !taken {
				break
			}
		}
	}
	copied := make(map[string]interface{}, len(body))
	for k, v := range body {
		copied[k] = v
	}
	col.byID[id] = len(col.docs)
	col.docs = append(col.docs, Doc{ID: id, Body: copied})
	return id, nil
}

func (s *memoryStore) Search(_ context.Context, collection, field, value string, limit int) ([]Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	col, ok := s.collections[collection]
	if !ok {
		return nil, nil
	}
	var out []Doc
	for _, doc := range col.docs {
		if v, ok := doc.Body[field].(string); ok && v == value {
			out = append(out, doc)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (s *memoryStore) SearchAll(_ context.Context, collection string) ([]Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	col, ok := s.collections[collection]
	if !ok {
		return nil, nil
	}
	out := make([]Doc, len(col.docs))
	copy(out, col.docs)
	return out, nil
}

func (s *memoryStore) Exists(_ context.Context, collection, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	col, ok := s.collections[collection]
	if !ok {
		return false, nil
	}
	_, ok = col.byID[id]
	return ok, nil
}

func (s *memoryStore) Get(_ context.Context, collection, id string) (*Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	col, ok := s.collections[collection]
	if !ok {
		return nil, nil
	}
	idx, ok := col.byID[id]
	if !ok {
		return nil, nil
	}
	doc := col.docs[idx]
	return &doc, nil
}
