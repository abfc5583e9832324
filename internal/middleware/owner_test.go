package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-analytics/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestOwnerMiddleware(t *testing.T) {
	suite.Run(t, new(OwnerMiddlewareSuite))
}

type OwnerMiddlewareSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *OwnerMiddlewareSuite) SetupTest() {
	s.e = echo.New()
}

func (s *OwnerMiddlewareSuite) serve(header string) (*httptest.ResponseRecorder, uuid.UUID) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/summary", nil)
	if header != "" {
		req.Header.Set(OwnerIDHeader, header)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	var seen uuid.UUID
	handler := RequireOwner()(func(c echo.Context) error {
		seen, _ = c.Get(handlers.OwnerIDContextKey).(uuid.UUID)
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return rec, seen
}

func (s *OwnerMiddlewareSuite) TestRequireOwner_ValidHeader() {
	ownerID := uuid.New()

	rec, seen := s.serve(ownerID.String())

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(ownerID, seen)
}

func (s *OwnerMiddlewareSuite) TestRequireOwner_MissingHeader() {
	rec, seen := s.serve("")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(uuid.Nil, seen)

	var body handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("OWNER_001", body.Error.Code)
}

func (s *OwnerMiddlewareSuite) TestRequireOwner_InvalidHeader() {
	testCases := []string{"not-a-uuid", uuid.Nil.String(), "1234"}

	for _, header := range testCases {
		s.Run(header, func() {
			rec, seen := s.serve(header)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(uuid.Nil, seen)
			s.Contains(rec.Body.String(), "OWNER_002")
		})
	}
}
