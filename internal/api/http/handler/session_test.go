package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dtroode/statementbox/internal/apperrors"
	"github.com/dtroode/statementbox/internal/mocks"
	"github.com/dtroode/statementbox/internal/model"
	"github.com/dtroode/statementbox/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSessionRouter(svc SessionService, cm model.ContextManager) *gin.Engine {
	h := NewSession(svc, cm, testutil.MakeNoopLogger())
	r := gin.New()
	r.POST("/sessions", h.Create)
	r.GET("/sessions", h.List)
	r.GET("/sessions/:id", h.Get)
	r.PATCH("/sessions/:id/settings", h.UpdateSettings)
	r.DELETE("/sessions/:id", h.Delete)
	return r
}

func testSummary(count int) model.SessionSummary {
	return model.SessionSummary{
		Session: model.Session{
			ID:                     "ABCD2345",
			Email:                  "owner@example.com",
			Status:                 model.SessionStatusActive,
			ExpiresAt:              testNow.Add(model.DefaultSessionTTL),
			CreatedAt:              testNow,
			AutoCategorizeOnUpload: true,
		},
		FileCount: count,
	}
}

func TestSession_Create(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	created := model.CreatedSession{
		Session:     testSummary(0).Session,
		AccessToken: "jwt",
		ExpiresIn:   time.Hour,
	}
	svc.On("Create", mock.Anything, "Owner@Example.com").Return(created, nil)

	r := newSessionRouter(svc, mocks.NewContextManager(t))
	rec := doJSONRequest(t, r, http.MethodPost, "/sessions", map[string]string{"email": "Owner@Example.com"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeJSON[createSessionResponse](t, rec)
	assert.Equal(t, "ABCD2345", resp.SessionID)
	assert.Equal(t, "owner@example.com", resp.Email)
	assert.Equal(t, "jwt", resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.True(t, resp.ExpiresAt.Equal(testNow.Add(model.DefaultSessionTTL)))
}

func TestSession_Create_Errors(t *testing.T) {
	t.Parallel()

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		r := newSessionRouter(mocks.NewSessionService(t), mocks.NewContextManager(t))
		rec := doJSONRequest(t, r, http.MethodPost, "/sessions", "{")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid request body."}`, rec.Body.String())
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewSessionService(t)
		svc.On("Create", mock.Anything, "").Return(model.CreatedSession{}, apperrors.NewErrValidation("Email is required."))

		r := newSessionRouter(svc, mocks.NewContextManager(t))
		rec := doJSONRequest(t, r, http.MethodPost, "/sessions", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Email is required."}`, rec.Body.String())
	})

	t.Run("unable to allocate", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewSessionService(t)
		svc.On("Create", mock.Anything, "a@example.com").Return(model.CreatedSession{}, model.ErrUnableToAllocateID)

		r := newSessionRouter(svc, mocks.NewContextManager(t))
		rec := doJSONRequest(t, r, http.MethodPost, "/sessions", map[string]string{"email": "a@example.com"})

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestSession_List(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("List", mock.Anything, owner()).Return([]model.SessionSummary{testSummary(3)}, nil)

	r := newSessionRouter(svc, authenticatedAs(t, owner()))
	rec := doJSONRequest(t, r, http.MethodGet, "/sessions", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[struct {
		Sessions []sessionResponse `json:"sessions"`
	}](t, rec)
	if assert.Len(t, resp.Sessions, 1) {
		assert.Equal(t, "ABCD2345", resp.Sessions[0].SessionID)
		assert.Equal(t, 3, resp.Sessions[0].FileCount)
		assert.Equal(t, "active", resp.Sessions[0].Status)
	}
}

func TestSession_List_EmptyIsArray(t *testing.T) {
	t.Parallel()

	svc := mocks.NewSessionService(t)
	svc.On("List", mock.Anything, owner()).Return(nil, nil)

	r := newSessionRouter(svc, authenticatedAs(t, owner()))
	rec := doJSONRequest(t, r, http.MethodGet, "/sessions", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sessions":[]}`, rec.Body.String())
}

func TestSession_List_Unauthenticated(t *testing.T) {
	t.Parallel()

	r := newSessionRouter(mocks.NewSessionService(t), anonymous(t))
	rec := doJSONRequest(t, r, http.MethodGet, "/sessions", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSession_Get(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewSessionService(t)
		svc.On("Get", mock.Anything, "ABCD2345", owner()).Return(testSummary(1), nil)

		r := newSessionRouter(svc, authenticatedAs(t, owner()))
		rec := doJSONRequest(t, r, http.MethodGet, "/sessions/ABCD2345", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeJSON[sessionResponse](t, rec)
		assert.Equal(t, 1, resp.FileCount)
		assert.True(t, resp.AutoCategorizeOnUpload)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewSessionService(t)
		svc.On("Get", mock.Anything, "ZZZZ2345", owner()).Return(model.SessionSummary{}, apperrors.NewErrSessionNotFound())

		r := newSessionRouter(svc, authenticatedAs(t, owner()))
		rec := doJSONRequest(t, r, http.MethodGet, "/sessions/ZZZZ2345", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Session not found."}`, rec.Body.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewSessionService(t)
		svc.On("Get", mock.Anything, "ABCD2345", owner()).Return(model.SessionSummary{}, apperrors.NewErrForbidden())

		r := newSessionRouter(svc, authenticatedAs(t, owner()))
		rec := doJSONRequest(t, r, http.MethodGet, "/sessions/ABCD2345", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestSession_UpdateSettings(t *testing.T) {
	t.Parallel()

	t.Run("updates flag", func(t *testing.T) {
		t.Parallel()

		updated := testSummary(0).Session
		updated.AutoCategorizeOnUpload = false

		svc := mocks.NewSessionService(t)
		svc.On("UpdateSettings", mock.Anything, "ABCD2345", owner(), model.SessionSettings{AutoCategorizeOnUpload: false}).
			Return(updated, nil)

		r := newSessionRouter(svc, authenticatedAs(t, owner()))
		rec := doJSONRequest(t, r, http.MethodPatch, "/sessions/ABCD2345/settings", map[string]bool{"autoCategorizeOnUpload": false})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sessionId":"ABCD2345","autoCategorizeOnUpload":false}`, rec.Body.String())
	})

	t.Run("missing flag", func(t *testing.T) {
		t.Parallel()

		r := newSessionRouter(mocks.NewSessionService(t), authenticatedAs(t, owner()))
		rec := doJSONRequest(t, r, http.MethodPatch, "/sessions/ABCD2345/settings", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"autoCategorizeOnUpload must be a boolean."}`, rec.Body.String())
	})
}

func TestSession_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewSessionService(t)
		svc.On("Delete", mock.Anything, "ABCD2345", owner()).Return(nil)

		r := newSessionRouter(svc, authenticatedAs(t, owner()))
		rec := doJSONRequest(t, r, http.MethodDelete, "/sessions/ABCD2345", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewSessionService(t)
		svc.On("Delete", mock.Anything, "ABCD2345", owner()).Return(errors.New("connection refused"))

		r := newSessionRouter(svc, authenticatedAs(t, owner()))
		rec := doJSONRequest(t, r, http.MethodDelete, "/sessions/ABCD2345", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error."}`, rec.Body.String())
	})
}
