package minio

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/minio/minio-go/v7"

	"github.com/dtroode/statementbox/internal/model"
)

func classify(op string, err error) error {
	var se *model.StorageError
	if errors.As(err, &se) {
		return err
	}
	return &model.StorageError{Kind: kindOf(err), Op: op, Err: err}
}

func kindOf(err error) model.StorageErrorKind {
	if isNetworkError(err) || errors.Is(err, context.DeadlineExceeded) {
		return model.StorageErrNetwork
	}

	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		return model.StorageErrBucketNotFound
	case "InvalidAccessKeyId", "SignatureDoesNotMatch", "AccessDenied", "InvalidToken", "ExpiredToken":
		return model.StorageErrCredentialsInvalid
	case "AuthorizationHeaderMalformed", "PermanentRedirect", "InvalidRegion", "IllegalLocationConstraintException":
		return model.StorageErrRegionMismatch
	}
	if resp.Region != "" && strings.Contains(strings.ToLower(resp.Message), "region") {
		return model.StorageErrRegionMismatch
	}
	return model.StorageErrGeneric
}

func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EHOSTUNREACH)
}
