package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/dtroode/statementbox/internal/mocks"
	"github.com/dtroode/statementbox/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func owner() model.AccessTokenPayload {
	return model.AccessTokenPayload{Email: "owner@example.com", SessionID: "ABCD2345", Type: model.AccessTypeContinueSession}
}

func authenticatedAs(t *testing.T, p model.AccessTokenPayload) *mocks.ContextManager {
	cm := mocks.NewContextManager(t)
	cm.On("GetPrincipalFromContext", mock.Anything).Return(p, true)
	return cm
}

func anonymous(t *testing.T) *mocks.ContextManager {
	cm := mocks.NewContextManager(t)
	cm.On("GetPrincipalFromContext", mock.Anything).Return(model.AccessTokenPayload{}, false)
	return cm
}

func doJSONRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type part struct {
	name        string
	contentType string
	data        []byte
}

func doMultipartRequest(t *testing.T, router http.Handler, path string, parts []part, hints []string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+p.name+`"`)
		header.Set("Content-Type", p.contentType)
		pw, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = pw.Write(p.data)
		require.NoError(t, err)
	}
	for _, h := range hints {
		require.NoError(t, w.WriteField("statementTypes", h))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
