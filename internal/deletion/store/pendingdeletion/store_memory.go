package pendingdeletion

import (
	"context"
	"sync"

	"custodia/internal/deletion"
	"custodia/pkg/platform/sentinel"
)

// InMemoryStore keeps open deletion requests in a map keyed by subject ID,
// which makes the one-open-request-per-subject invariant a plain key check.
type InMemoryStore struct {
	mu       sync.RWMutex
	requests map[string]*deletion.PendingDeletion
}

func NewMemory() *InMemoryStore {
	return &InMemoryStore{requests: make(map[string]*deletion.PendingDeletion)}
}

func (s *InMemoryStore) Insert(_ context.Context, pd *deletion.PendingDeletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[pd.SubjectID]; ok {
		return sentinel.ErrConflict
	}
	cp := *pd
	s.requests[pd.SubjectID] = &cp
	return nil
}

func (s *InMemoryStore) FindBySubject(_ context.Context, subjectID string) (*deletion.PendingDeletion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pd, ok := s.requests[subjectID]; ok {
		cp := *pd
		return &cp, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByStudy(_ context.Context, studyName string) ([]*deletion.PendingDeletion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*deletion.PendingDeletion
	for _, pd := range s.requests {
		if pd.StudyName == studyName {
			cp := *pd
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *InMemoryStore) DeleteBySubject(_ context.Context, subjectID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, existed := s.requests[subjectID]
	delete(s.requests, subjectID)
	return existed, nil
}
