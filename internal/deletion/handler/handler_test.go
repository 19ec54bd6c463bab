package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"custodia/internal/deletion"
	"custodia/internal/deletion/handler/mocks"
	"custodia/internal/platform/logger"
	"custodia/internal/platform/middleware"
	"custodia/internal/transport/http/shared"
	dErrors "custodia/pkg/domain-errors"
)

type HandlerSuite struct {
	suite.Suite

	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)

	s.router = chi.NewRouter()
	New(s.service, logger.New()).Register(s.router)
}

func (s *HandlerSuite) actor() deletion.Actor {
	return deletion.Actor{
		Email:   "dp@clinic.example",
		Studies: []string{"alpine-cohort"},
		Role:    deletion.RoleDataProtection,
	}
}

// request runs an HTTP request with actor claims already in context, the way
// RequireAuth leaves them.
func (s *HandlerSuite) request(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	a := s.actor()
	claims := &middleware.Claims{Email: a.Email, Studies: a.Studies, Role: a.Role}
	req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyClaims, claims))

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decodeError(rec *httptest.ResponseRecorder) shared.ErrorResponse {
	var resp shared.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *HandlerSuite) TestGet() {
	s.Run("returns the pending deletion", func() {
		s.service.EXPECT().
			Get(gomock.Any(), s.actor(), "subj-1").
			Return(&deletion.PendingDeletion{SubjectID: "subj-1", StudyName: "alpine-cohort"}, nil)

		rec := s.request(http.MethodGet, "/pendingdeletions/subj-1", "")
		s.Equal(http.StatusOK, rec.Code)

		var pd deletion.PendingDeletion
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &pd))
		s.Equal("subj-1", pd.SubjectID)
	})

	s.Run("maps not found to 404", func() {
		s.service.EXPECT().
			Get(gomock.Any(), s.actor(), "ghost").
			Return(nil, dErrors.New(dErrors.CodeNotFound, "no pending deletion exists for this subject"))

		rec := s.request(http.MethodGet, "/pendingdeletions/ghost", "")
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("not_found", s.decodeError(rec).Error)
	})

	s.Run("maps forbidden to 403", func() {
		s.service.EXPECT().
			Get(gomock.Any(), s.actor(), "subj-1").
			Return(nil, dErrors.New(dErrors.CodeForbidden, "actor is not a party to this deletion request"))

		rec := s.request(http.MethodGet, "/pendingdeletions/subj-1", "")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *HandlerSuite) TestListByStudy() {
	s.service.EXPECT().
		ListByStudy(gomock.Any(), s.actor(), "alpine-cohort").
		Return(nil, nil)

	rec := s.request(http.MethodGet, "/studies/alpine-cohort/pendingdeletions", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("[]\n", rec.Body.String(), "an empty study lists as an empty array")
}

func (s *HandlerSuite) TestCreate() {
	s.Run("creates a pending deletion", func() {
		req := deletion.CreateRequest{SubjectID: "subj-1", RequestedFor: "confirmer@clinic.example"}
		s.service.EXPECT().
			Create(gomock.Any(), s.actor(), req).
			Return(&deletion.PendingDeletion{SubjectID: "subj-1", RequestedFor: req.RequestedFor}, nil)

		rec := s.request(http.MethodPost, "/pendingdeletions",
			`{"subjectId":"subj-1","requestedFor":"confirmer@clinic.example"}`)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("rejects a malformed body", func() {
		rec := s.request(http.MethodPost, "/pendingdeletions", `{not json`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejects missing fields", func() {
		rec := s.request(http.MethodPost, "/pendingdeletions", `{"subjectId":"subj-1"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("maps conflict to 409", func() {
		s.service.EXPECT().
			Create(gomock.Any(), s.actor(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeConflict, "a pending deletion already exists for this subject"))

		rec := s.request(http.MethodPost, "/pendingdeletions",
			`{"subjectId":"subj-1","requestedFor":"confirmer@clinic.example"}`)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("maps an undeliverable confirmer to 422", func() {
		s.service.EXPECT().
			Create(gomock.Any(), s.actor(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeUnprocessable, "confirming party address is not deliverable"))

		rec := s.request(http.MethodPost, "/pendingdeletions",
			`{"subjectId":"subj-1","requestedFor":"nope"}`)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("maps a failed mail relay to 503", func() {
		s.service.EXPECT().
			Create(gomock.Any(), s.actor(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeUnavailable, "confirmation notification could not be delivered"))

		rec := s.request(http.MethodPost, "/pendingdeletions",
			`{"subjectId":"subj-1","requestedFor":"confirmer@clinic.example"}`)
		s.Equal(http.StatusServiceUnavailable, rec.Code)
		s.Equal("dependency_unavailable", s.decodeError(rec).Error)
	})
}

func (s *HandlerSuite) TestExecute() {
	s.service.EXPECT().
		Execute(gomock.Any(), s.actor(), "subj-1").
		Return(&deletion.PendingDeletion{SubjectID: "subj-1"}, nil)

	rec := s.request(http.MethodPut, "/pendingdeletions/subj-1", "")
	s.Equal(http.StatusOK, rec.Code)

	var pd deletion.PendingDeletion
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &pd))
	s.Equal("subj-1", pd.SubjectID)
}

func (s *HandlerSuite) TestCancel() {
	s.service.EXPECT().
		Cancel(gomock.Any(), s.actor(), "subj-1").
		Return(nil)

	rec := s.request(http.MethodDelete, "/pendingdeletions/subj-1", "")
	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *HandlerSuite) TestPersonalData() {
	name := "Ada"
	s.service.EXPECT().
		PersonalData(gomock.Any(), s.actor(), "subj-1").
		Return(&deletion.PersonalData{SubjectID: "subj-1", FirstName: &name}, nil)

	rec := s.request(http.MethodGet, "/personaldata/subj-1", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"firstName":"Ada"`)
}

func (s *HandlerSuite) TestMissingClaims() {
	req := httptest.NewRequest(http.MethodGet, "/pendingdeletions/subj-1", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
