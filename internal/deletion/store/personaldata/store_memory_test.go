package personaldata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"custodia/internal/deletion"
	"custodia/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func strptr(v string) *string { return &v }

func (s *InMemoryStoreSuite) TestSaveAndLookup() {
	ctx := context.Background()
	record := &deletion.PersonalData{
		SubjectID: "s1-001",
		StudyName: "S1",
		FirstName: strptr("Jane"),
		LastName:  strptr("Doe"),
		Email:     strptr("jane.doe@example.com"),
	}
	s.Require().NoError(s.store.Save(ctx, record))

	found, err := s.store.FindBySubject(ctx, "s1-001")
	s.Require().NoError(err)
	s.Equal(record, found)

	s.Run("absent subject is ErrNotFound", func() {
		_, err := s.store.FindBySubject(ctx, "missing")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestPurgeSemantics() {
	ctx := context.Background()
	s.Require().NoError(s.store.Save(ctx, &deletion.PersonalData{SubjectID: "s1-002", StudyName: "S1"}))

	s.Require().NoError(s.store.DeleteBySubject(ctx, "s1-002"))
	_, err := s.store.FindBySubject(ctx, "s1-002")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	// Purging an already-purged subject succeeds.
	s.Require().NoError(s.store.DeleteBySubject(ctx, "s1-002"))
}
