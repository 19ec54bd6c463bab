package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"custodia/internal/deletion"
	"custodia/internal/platform/logger"
	"custodia/pkg/platform/sentinel"
)

func TestPolicyClientStudyPolicy(t *testing.T) {
	t.Run("decodes the policy flags", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/studies/alpine-cohort", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"allowsOpposition":true,"requiresFourEyes":true}`))
		}))
		defer srv.Close()

		policy, err := NewPolicyClient(srv.URL, time.Second).StudyPolicy(context.Background(), "alpine-cohort")
		require.NoError(t, err)
		assert.True(t, policy.AllowsOpposition)
		assert.True(t, policy.RequiresFourEyes)
	})

	t.Run("maps an unknown study to not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewPolicyClient(srv.URL, time.Second).StudyPolicy(context.Background(), "ghost")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("maps server failures to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewPolicyClient(srv.URL, time.Second).StudyPolicy(context.Background(), "alpine-cohort")
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})

	t.Run("maps a dead registry to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := NewPolicyClient(srv.URL, time.Second).StudyPolicy(context.Background(), "alpine-cohort")
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})
}

func TestSubjectClientStudyOf(t *testing.T) {
	t.Run("resolves the study", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/subjects/subj-1", r.URL.Path)
			_, _ = w.Write([]byte(`{"studyName":"alpine-cohort"}`))
		}))
		defer srv.Close()

		study, err := NewSubjectClient(srv.URL, time.Second).StudyOf(context.Background(), "subj-1")
		require.NoError(t, err)
		assert.Equal(t, "alpine-cohort", study)
	})

	t.Run("maps an unknown subject to not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewSubjectClient(srv.URL, time.Second).StudyOf(context.Background(), "ghost")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}

type staticSource struct {
	calls  int
	policy deletion.StudyPolicy
}

func (s *staticSource) StudyPolicy(context.Context, string) (deletion.StudyPolicy, error) {
	s.calls++
	return s.policy, nil
}

// Without Redis the cache is a plain passthrough.
func TestCachedPolicySourceWithoutRedis(t *testing.T) {
	source := &staticSource{policy: deletion.StudyPolicy{AllowsOpposition: true}}
	cached := NewCachedPolicySource(source, nil, time.Minute, logger.New())

	for range 2 {
		policy, err := cached.StudyPolicy(context.Background(), "alpine-cohort")
		require.NoError(t, err)
		assert.True(t, policy.AllowsOpposition)
	}
	assert.Equal(t, 2, source.calls)
}

func TestSubjectClientSubjectsFor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/actors/dp@clinic.example/subjects", r.URL.Path)
		_, _ = w.Write([]byte(`{"subjectIds":["subj-1","subj-2"]}`))
	}))
	defer srv.Close()

	ids, err := NewSubjectClient(srv.URL, time.Second).SubjectsFor(context.Background(), "dp@clinic.example")
	require.NoError(t, err)
	assert.Equal(t, []string{"subj-1", "subj-2"}, ids)
}
