package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/ashermunn/portfolio-backend/internal/rest/middleware"
	"github.com/ashermunn/portfolio-backend/internal/session"
)

type stubEngagementUsecase struct {
	toggleRes domain.ToggleResult
	statusRes bool
	err       error
	lastRec   domain.Engagement
}

func (s *stubEngagementUsecase) Toggle(_ context.Context, rec domain.Engagement) (domain.ToggleResult, error) {
	s.lastRec = rec
	return s.toggleRes, s.err
}

func (s *stubEngagementUsecase) Status(_ context.Context, rec domain.Engagement) (bool, error) {
	s.lastRec = rec
	return s.statusRes, s.err
}

func newEngagementRouter(svc domain.EngagementUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store, _ := session.NewStore(session.StoreTypeMemory)
	provider := session.NewProvider(store)

	r := gin.New()
	h := NewEngagementHandler(svc)
	g := r.Group("", middleware.Session(provider))
	g.POST("/posts/:id/engagements/:kind/toggle", h.Toggle)
	g.GET("/posts/:id/engagements/:kind", h.Status)
	return r
}

func TestToggleHandler(t *testing.T) {
	svc := &stubEngagementUsecase{toggleRes: domain.ToggleResult{Active: true, Count: 3}}
	router := newEngagementRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/posts/12/engagements/like/toggle", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Active bool  `json:"active"`
		Count  int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Active)
	assert.Equal(t, int64(3), body.Count)

	assert.Equal(t, int64(12), svc.lastRec.PostID)
	assert.Equal(t, domain.KindLike, svc.lastRec.Kind)
	assert.NotEmpty(t, svc.lastRec.SessionID)

	// a fresh identity is echoed back for the client to persist
	assert.NotEmpty(t, w.Header().Get(middleware.SessionHeader))
}

func TestToggleHandlerKeepsKnownSession(t *testing.T) {
	svc := &stubEngagementUsecase{toggleRes: domain.ToggleResult{Active: true, Count: 1}}
	router := newEngagementRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/posts/1/engagements/like/toggle", nil))
	issued := w.Header().Get(middleware.SessionHeader)
	require.NotEmpty(t, issued)

	req := httptest.NewRequest(http.MethodPost, "/posts/1/engagements/like/toggle", nil)
	req.Header.Set(middleware.SessionHeader, issued)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, issued, w.Header().Get(middleware.SessionHeader))
	assert.Equal(t, issued, svc.lastRec.SessionID)
}

func TestToggleHandlerRejectsUnknownKind(t *testing.T) {
	svc := &stubEngagementUsecase{}
	router := newEngagementRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/posts/12/engagements/applause/toggle", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatusHandler(t *testing.T) {
	svc := &stubEngagementUsecase{statusRes: true}
	router := newEngagementRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/posts/12/engagements/bookmark", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Active bool `json:"active"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Active)
	assert.Equal(t, domain.KindBookmark, svc.lastRec.Kind)
}

func TestGetStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrConflict, http.StatusConflict},
		{domain.ErrBadParamInput, http.StatusBadRequest},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrInternalServerError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, getStatusCode(tc.err), "err=%v", tc.err)
	}
}
