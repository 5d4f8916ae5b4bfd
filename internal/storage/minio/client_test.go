package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/cenkalti/backoff/v4"
	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/statementbox/internal/model"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeRegion      string

	putInfo  minioLib.UploadInfo
	putErrs  []error
	putCalls int
	putBody  []byte
	putType  string

	getRC  io.ReadCloser
	getErr error

	removeErrs  []error
	removeCalls int
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) MakeBucket(_ context.Context, _ string, opts minioLib.MakeBucketOptions) error {
	f.madeRegion = opts.Region
	return f.makeBucketErr
}
func (f *fakeMinio) PutObject(_ context.Context, _ string, _ string, r io.Reader, _ int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putCalls++
	f.putBody, _ = io.ReadAll(r)
	f.putType = opts.ContentType
	return f.putInfo, nextErr(f.putErrs, f.putCalls)
}
func (f *fakeMinio) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	f.removeCalls++
	return nextErr(f.removeErrs, f.removeCalls)
}

// nextErr returns the error scripted for the n-th call, or nil once the script runs out.
func nextErr(errs []error, n int) error {
	if n-1 < len(errs) {
		return errs[n-1]
	}
	return nil
}

func newTestClient(api minioAPI) *Client {
	return &Client{
		api:        api,
		bucket:     "b",
		maxRetries: 2,
		newBackOff: func() backoff.BackOff { return &backoff.ZeroBackOff{} },
	}
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "b")
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, "b", c.Bucket())
}

func TestNewClientWithAPI_CreateBucket(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: false}
	c, err := NewClientWithAPI(ctx, api, "bucket", WithRegion("eu-west-1"), WithRetry(1))
	require.NoError(t, err)
	assert.Equal(t, "bucket", c.bucket)
	assert.Equal(t, "eu-west-1", api.madeRegion)
	assert.Equal(t, uint64(1), c.maxRetries)
}

func TestNewClientWithAPI_BucketExistsError(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExistsErr: minioLib.ErrorResponse{Code: "InvalidAccessKeyId", StatusCode: http.StatusForbidden}}
	c, err := NewClientWithAPI(ctx, api, "bucket")
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ensure bucket exists")

	var se *model.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, model.StorageErrCredentialsInvalid, se.Kind)
}

func TestNewClientWithAPI_MakeBucketError(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: false, makeBucketErr: errors.New("fail")}
	c, err := NewClientWithAPI(ctx, api, "bucket")
	assert.Nil(t, c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ensure bucket exists")
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		c := newTestClient(api)
		err := c.Upload(ctx, "k", []byte("data"), model.PDFMimeType)
		assert.NoError(t, err)
		assert.Equal(t, []byte("data"), api.putBody)
		assert.Equal(t, model.PDFMimeType, api.putType)
	})

	t.Run("retries transient failure and resends the full body", func(t *testing.T) {
		api := &fakeMinio{putErrs: []error{minioLib.ErrorResponse{Code: "InternalError", StatusCode: http.StatusInternalServerError}}}
		c := newTestClient(api)
		err := c.Upload(ctx, "k", []byte("data"), model.PDFMimeType)
		assert.NoError(t, err)
		assert.Equal(t, 2, api.putCalls)
		assert.Equal(t, []byte("data"), api.putBody)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		throttled := minioLib.ErrorResponse{Code: "SlowDown", StatusCode: http.StatusTooManyRequests}
		api := &fakeMinio{putErrs: []error{throttled, throttled, throttled, throttled}}
		c := newTestClient(api)
		err := c.Upload(ctx, "k", []byte("data"), model.PDFMimeType)
		assert.Error(t, err)
		assert.Equal(t, 3, api.putCalls)
	})

	t.Run("permanent error is not retried", func(t *testing.T) {
		api := &fakeMinio{putErrs: []error{minioLib.ErrorResponse{Code: "NoSuchBucket", StatusCode: http.StatusNotFound}}}
		c := newTestClient(api)
		err := c.Upload(ctx, "k", []byte("data"), model.PDFMimeType)
		require.Error(t, err)
		assert.Equal(t, 1, api.putCalls)
		assert.Contains(t, err.Error(), "failed to upload object")

		var se *model.StorageError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, model.StorageErrBucketNotFound, se.Kind)
		assert.Equal(t, "Storage bucket not found.", se.Reason())
	})
}

func TestClient_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{getRC: io.NopCloser(bytes.NewReader([]byte("abc")))}
		c := newTestClient(api)
		rc, err := c.Download(ctx, "k")
		require.NoError(t, err)
		defer rc.Close()
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got)
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{getErr: errors.New("get-fail")}
		c := newTestClient(api)
		rc, err := c.Download(ctx, "k")
		assert.Nil(t, rc)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get object")
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		c := newTestClient(api)
		err := c.Delete(ctx, "k")
		assert.NoError(t, err)
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{removeErrs: []error{errors.New("remove-fail")}}
		c := newTestClient(api)
		err := c.Delete(ctx, "k")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete object")
		assert.Equal(t, 1, api.removeCalls)
	})
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want model.StorageErrorKind
	}{
		{"missing bucket", minioLib.ErrorResponse{Code: "NoSuchBucket"}, model.StorageErrBucketNotFound},
		{"bad signature", minioLib.ErrorResponse{Code: "SignatureDoesNotMatch"}, model.StorageErrCredentialsInvalid},
		{"wrong region", minioLib.ErrorResponse{Code: "AuthorizationHeaderMalformed", Region: "us-east-1"}, model.StorageErrRegionMismatch},
		{"connection refused", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, model.StorageErrNetwork},
		{"deadline", context.DeadlineExceeded, model.StorageErrNetwork},
		{"anything else", errors.New("boom"), model.StorageErrGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kindOf(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(minioLib.ErrorResponse{StatusCode: http.StatusServiceUnavailable}))
	assert.True(t, isRetryable(minioLib.ErrorResponse{StatusCode: http.StatusTooManyRequests}))
	assert.True(t, isRetryable(context.DeadlineExceeded))
	assert.False(t, isRetryable(context.Canceled))
	assert.False(t, isRetryable(minioLib.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}))
}
