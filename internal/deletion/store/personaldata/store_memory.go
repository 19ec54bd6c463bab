package personaldata

import (
	"context"
	"sync"

	"custodia/internal/deletion"
	"custodia/pkg/platform/sentinel"
)

// InMemoryStore keeps identifying records in a map keyed by subject ID.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*deletion.PersonalData
}

func NewMemory() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]*deletion.PersonalData)}
}

func (s *InMemoryStore) Save(_ context.Context, data *deletion.PersonalData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *data
	s.records[data.SubjectID] = &cp
	return nil
}

func (s *InMemoryStore) FindBySubject(_ context.Context, subjectID string) (*deletion.PersonalData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if data, ok := s.records[subjectID]; ok {
		cp := *data
		return &cp, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) DeleteBySubject(_ context.Context, subjectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, subjectID)
	return nil
}
