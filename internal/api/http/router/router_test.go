package router

import (
	"net/http"
	"strings"
	"net/http/httptest"
	"testing"

	apicontext "github.com/dtroode/statementbox/internal/api/http/context"
	"github.com/dtroode/statementbox/internal/mocks"
	"github.com/dtroode/statementbox/internal/model"
	"github.com/dtroode/statementbox/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerDeps struct {
	sessions *mocks.SessionService
	auth     *mocks.AuthService
	files    *mocks.FileService
	tokens   *mocks.TokenParser
	db       *mocks.Pinger
}

func newTestEngine(t *testing.T, opts ...Option) (*gin.Engine, routerDeps) {
	deps := routerDeps{
		sessions: mocks.NewSessionService(t),
		auth:     mocks.NewAuthService(t),
		files:    mocks.NewFileService(t),
		tokens:   mocks.NewTokenParser(t),
		db:       mocks.NewPinger(t),
	}
	opts = append([]Option{WithUploadLimits(10, 1<<20)}, opts...)
	r := New(deps.sessions, deps.auth, deps.files, deps.tokens, deps.db, apicontext.NewManager(), testutil.MakeNoopLogger(), opts...)
	engine, err := r.Register()
	require.NoError(t, err)
	return engine, deps
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	engine, _ := newTestEngine(t)

	registered := map[string]bool{}
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /healthz",
		"POST /sessions",
		"GET /sessions",
		"GET /sessions/:id",
		"PATCH /sessions/:id/settings",
		"DELETE /sessions/:id",
		"POST /auth/request-link",
		"POST /auth/request-sessions",
		"POST /auth/verify",
		"POST /sessions/:id/files",
		"POST /sessions/:id/files/detect",
		"GET /sessions/:id/files",
		"PATCH /sessions/:id/files/category",
		"PATCH /files/:id",
		"DELETE /files/:id",
		"GET /files/:id/raw",
	} {
		assert.True(t, registered[want], "route %s not registered", want)
	}
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	engine, _ := newTestEngine(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/sessions"},
		{http.MethodGet, "/sessions/ABCD2345"},
		{http.MethodDelete, "/sessions/ABCD2345"},
		{http.MethodGet, "/sessions/ABCD2345/files"},
		{http.MethodGet, "/files/8f14e45f-ceea-467f-a0e6-7c9d2b5e1a11/raw"},
	} {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_AuthenticatedRequestReachesHandler(t *testing.T) {
	t.Parallel()

	engine, deps := newTestEngine(t)

	principal := model.AccessTokenPayload{Email: "owner@example.com", Type: model.AccessTypeFindSessions}
	deps.tokens.On("ParseAccessToken", "good").Return(principal, nil)
	deps.sessions.On("List", mock.Anything, principal).Return([]model.SessionSummary{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sessions":[]}`, rec.Body.String())
}

func TestRouter_HealthIsPublic(t *testing.T) {
	t.Parallel()

	engine, deps := newTestEngine(t)
	deps.db.On("Ping", mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ClientIPIgnoresUntrustedForwardedFor(t *testing.T) {
	t.Parallel()

	engine, deps := newTestEngine(t)

	var seen []string
	deps.auth.On("RequestSessions", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { seen = append(seen, args.Get(1).(model.LinkRequest).IP) }).
		Return(nil).Times(3)

	for _, forwarded := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		req := httptest.NewRequest(http.MethodPost, "/auth/request-sessions", strings.NewReader(`{"email":"owner@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", forwarded)
		req.RemoteAddr = "10.0.0.9:51234"
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, []string{"10.0.0.9", "10.0.0.9", "10.0.0.9"}, seen)
}

func TestRouter_ClientIPFromTrustedProxy(t *testing.T) {
	t.Parallel()

	engine, deps := newTestEngine(t, WithTrustedProxies([]string{"10.0.0.0/8"}))

	var seen string
	deps.auth.On("RequestSessions", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { seen = args.Get(1).(model.LinkRequest).IP }).
		Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/request-sessions", strings.NewReader(`{"email":"owner@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	req.RemoteAddr = "10.0.0.9:51234"
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "203.0.113.7", seen)
}

func TestRouter_InvalidTrustedProxy(t *testing.T) {
	t.Parallel()

	r := New(nil, nil, nil, nil, nil, apicontext.NewManager(), testutil.MakeNoopLogger(), WithTrustedProxies([]string{"not-an-ip"}))
	_, err := r.Register()
	assert.Error(t, err)
}
