package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/statementbox/internal/apperrors"
	"github.com/dtroode/statementbox/internal/logger"
	"github.com/dtroode/statementbox/internal/model"
)

const (
	DefaultMaxFiles    = 10
	DefaultMaxFileSize = 15 << 20

	maxStoredNameLength = 120
)

const (
	reasonDuplicateName   = "A file with this name already exists in this session."
	reasonNotPDF          = "Only application/pdf files are accepted."
	reasonEmptyPayload    = "File payload is empty."
	reasonSaveFailed      = "Failed to save file."
	warningNotAStatement  = "File does not appear to be a bank statement."
	reasonStorageFallback = "Failed to store file."
)

// FileLimits bounds a single upload batch.
type FileLimits struct {
	MaxFiles    int
	MaxFileSize int64
}

type File struct {
	sessionStore model.SessionStore
	fileStore    model.FileStore
	storage      model.Storage
	classifier   model.StatementClassifier
	extractor    model.TextExtractor
	limits       FileLimits
	logger       *logger.Logger

	now func() time.Time
}

func NewFile(
	sessionStore model.SessionStore,
	fileStore model.FileStore,
	storage model.Storage,
	classifier model.StatementClassifier,
	extractor model.TextExtractor,
	limits FileLimits,
	logger *logger.Logger,
) *File {
	if limits.MaxFiles <= 0 {
		limits.MaxFiles = DefaultMaxFiles
	}
	if limits.MaxFileSize <= 0 {
		limits.MaxFileSize = DefaultMaxFileSize
	}
	return &File{
		sessionStore: sessionStore,
		fileStore:    fileStore,
		storage:      storage,
		classifier:   classifier,
		extractor:    extractor,
		limits:       limits,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *File) tooManyReason() string {
	return fmt.Sprintf("Too many files in one upload; maximum is %d.", s.limits.MaxFiles)
}

func (s *File) tooLargeReason() string {
	if s.limits.MaxFileSize%(1<<20) == 0 {
		return fmt.Sprintf("File exceeds the maximum size of %dMB.", s.limits.MaxFileSize>>20)
	}
	return fmt.Sprintf("File exceeds the maximum size of %d bytes.", s.limits.MaxFileSize)
}

// Upload validates, classifies and stores a batch of files. Each file
// succeeds or fails on its own.
func (s *File) Upload(ctx context.Context, params model.UploadParams) (model.UploadResult, error) {
	session, err := activeSession(ctx, s.sessionStore, params.SessionID, params.Requester, s.now())
	if err != nil {
		return model.UploadResult{}, err
	}

	result := model.UploadResult{
		Uploaded: []model.FileRecord{},
		Rejected: []model.RejectedFile{},
		Warnings: []model.UploadWarning{},
	}

	files := params.Files
	if len(files) > s.limits.MaxFiles {
		for _, f := range files[s.limits.MaxFiles:] {
			result.Rejected = append(result.Rejected, model.RejectedFile{
				OriginalName: f.Name,
				Reason:       s.tooManyReason(),
			})
		}
		files = files[:s.limits.MaxFiles]
	}

	for i, f := range files {
		var hint model.StatementType
		if i < len(params.TypeHints) {
			hint = params.TypeHints[i]
		}

		record, reason := s.uploadOne(ctx, session, f, hint)
		if reason != "" {
			result.Rejected = append(result.Rejected, model.RejectedFile{
				OriginalName: f.Name,
				Reason:       reason,
			})
			continue
		}

		result.Uploaded = append(result.Uploaded, record)
		if !record.IsLikelyStatement {
			result.Warnings = append(result.Warnings, model.UploadWarning{
				OriginalName: record.OriginalName,
				FileID:       record.ID,
				Message:      warningNotAStatement,
			})
		}
	}

	s.logger.Info("File service: upload processed",
		"session_id", session.ID,
		"uploaded", len(result.Uploaded),
		"rejected", len(result.Rejected),
		"warnings", len(result.Warnings))

	return result, nil
}

// validate returns a rejection reason, or "" if f may be stored.
func (s *File) validate(ctx context.Context, sessionID string, f model.IncomingFile) string {
	exists, err := s.fileStore.NameExists(ctx, sessionID, f.Name)
	if err != nil {
		s.logger.Error("File service: failed to check file name",
			"session_id", sessionID,
			"file_name", f.Name,
			"error", err.Error())
		return reasonSaveFailed
	}
	if exists {
		return reasonDuplicateName
	}
	if f.MimeType != model.PDFMimeType {
		return reasonNotPDF
	}
	if f.Size > s.limits.MaxFileSize || int64(len(f.Data)) > s.limits.MaxFileSize {
		return s.tooLargeReason()
	}
	if len(f.Data) == 0 {
		return reasonEmptyPayload
	}
	return ""
}

func (s *File) detect(f model.IncomingFile) model.Detection {
	text, err := s.extractor.Extract(f.Data)
	if err != nil {
		s.logger.Warn("File service: failed to extract pdf text",
			"file_name", f.Name,
			"error", err.Error())
		text = ""
	}
	return s.classifier.Classify(text)
}

// uploadOne returns the stored record, or a rejection reason. Failures never
// escape the file they belong to.
func (s *File) uploadOne(ctx context.Context, session model.Session, f model.IncomingFile, hint model.StatementType) (model.FileRecord, string) {
	if reason := s.validate(ctx, session.ID, f); reason != "" {
		s.logger.Info("File service: file rejected",
			"session_id", session.ID,
			"file_name", f.Name,
			"reason", reason)
		return model.FileRecord{}, reason
	}

	detection := s.detect(f)

	statementType := detection.Type
	confirmed := false
	if hint.Valid() && hint != model.StatementTypeUnknown {
		statementType = hint
		confirmed = true
	}

	category := model.CategoryFor(statementType)
	if !session.AutoCategorizeOnUpload {
		category = model.CategoryUnfiled
	}

	id := uuid.New()
	record := model.FileRecord{
		ID:                  id,
		SessionID:           session.ID,
		OriginalName:        f.Name,
		MimeType:            f.MimeType,
		Size:                int64(len(f.Data)),
		StatementType:       statementType,
		Category:            category,
		AutoDetectedType:    detection.Type,
		DetectionConfidence: detection.Confidence,
		IsLikelyStatement:   detection.IsLikelyStatement,
		ConfirmedByUser:     confirmed,
		Status:              model.FileStatusPending,
		StorageBucket:       s.storage.Bucket(),
		StorageKey:          StorageKey(session.ID, category, id, f.Name),
		CreatedAt:           s.now(),
	}

	if err := s.fileStore.Create(ctx, record); err != nil {
		s.logger.Error("File service: failed to create file record",
			"session_id", session.ID,
			"file_name", f.Name,
			"error", err.Error())
		return model.FileRecord{}, reasonSaveFailed
	}

	if err := s.storage.Upload(ctx, record.StorageKey, f.Data, f.MimeType); err != nil {
		s.logger.Error("File service: failed to store file",
			"session_id", session.ID,
			"file_id", record.ID,
			"storage_key", record.StorageKey,
			"error", err.Error())
		if markErr := s.fileStore.MarkRejected(ctx, record.ID); markErr != nil {
			s.logger.Error("File service: failed to mark file rejected",
				"file_id", record.ID,
				"error", markErr.Error())
		}
		return model.FileRecord{}, storageReason(err)
	}

	uploadedAt := s.now()
	if err := s.fileStore.MarkUploaded(ctx, record.ID, uploadedAt); err != nil {
		s.logger.Error("File service: failed to mark file uploaded",
			"file_id", record.ID,
			"error", err.Error())
		if delErr := s.storage.Delete(ctx, record.StorageKey); delErr != nil {
			s.logger.Warn("File service: failed to remove orphaned object",
				"storage_key", record.StorageKey,
				"error", delErr.Error())
		}
		if markErr := s.fileStore.MarkRejected(ctx, record.ID); markErr != nil {
			s.logger.Error("File service: failed to mark file rejected",
				"file_id", record.ID,
				"error", markErr.Error())
		}
		return model.FileRecord{}, reasonSaveFailed
	}

	record.Status = model.FileStatusUploaded
	record.UploadedAt = &uploadedAt

	return record, ""
}

func storageReason(err error) string {
	var storageErr *model.StorageError
	if errors.As(err, &storageErr) {
		return storageErr.Reason()
	}
	return reasonStorageFallback
}

// DetectPreview classifies files without persisting or storing anything.
func (s *File) DetectPreview(ctx context.Context, sessionID string, requester model.AccessTokenPayload, files []model.IncomingFile) ([]model.DetectionPreview, error) {
	if _, err := activeSession(ctx, s.sessionStore, sessionID, requester, s.now()); err != nil {
		return nil, err
	}

	unknown := model.Detection{Type: model.StatementTypeUnknown}
	previews := make([]model.DetectionPreview, 0, len(files))
	for i, f := range files {
		preview := model.DetectionPreview{OriginalName: f.Name, Detection: unknown}
		switch {
		case i >= s.limits.MaxFiles:
			preview.Reason = s.tooManyReason()
		case f.MimeType != model.PDFMimeType:
			preview.Reason = reasonNotPDF
		case f.Size > s.limits.MaxFileSize || int64(len(f.Data)) > s.limits.MaxFileSize:
			preview.Reason = s.tooLargeReason()
		case len(f.Data) == 0:
			preview.Reason = reasonEmptyPayload
		default:
			preview.Detection = s.detect(f)
		}
		previews = append(previews, preview)
	}

	return previews, nil
}

// List returns the uploaded files of a session.
func (s *File) List(ctx context.Context, sessionID string, requester model.AccessTokenPayload) ([]model.FileRecord, error) {
	session, err := activeSession(ctx, s.sessionStore, sessionID, requester, s.now())
	if err != nil {
		return nil, err
	}

	files, err := s.fileStore.ListUploadedBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	if files == nil {
		files = []model.FileRecord{}
	}

	return files, nil
}

// getAuthorized loads a file and authorizes requester against its session.
func (s *File) getAuthorized(ctx context.Context, fileID uuid.UUID, requester model.AccessTokenPayload) (model.FileRecord, error) {
	file, err := s.fileStore.GetByID(ctx, fileID)
	if errors.Is(err, model.ErrNotFound) {
		return model.FileRecord{}, apperrors.NewErrFileNotFound()
	}
	if err != nil {
		return model.FileRecord{}, fmt.Errorf("failed to get file: %w", err)
	}

	_, err = activeSession(ctx, s.sessionStore, file.SessionID, requester, s.now())
	if apiErr, ok := apperrors.As(err); ok && apiErr.HTTPCode != http.StatusForbidden {
		return model.FileRecord{}, apperrors.NewErrFileNotFound()
	}
	if err != nil {
		return model.FileRecord{}, err
	}

	return file, nil
}

// UpdateStatementType records a user-confirmed statement type. Filed
// documents follow their type into the matching category; unfiled ones stay.
func (s *File) UpdateStatementType(ctx context.Context, fileID uuid.UUID, statementType model.StatementType, requester model.AccessTokenPayload) (model.FileRecord, error) {
	if !statementType.Valid() {
		return model.FileRecord{}, apperrors.NewErrValidation("Unsupported statement type.")
	}

	file, err := s.getAuthorized(ctx, fileID, requester)
	if err != nil {
		return model.FileRecord{}, err
	}

	category := file.Category
	if category != model.CategoryUnfiled {
		category = model.CategoryFor(statementType)
	}

	updated, err := s.fileStore.UpdateStatementType(ctx, fileID, statementType, category)
	if errors.Is(err, model.ErrNotFound) {
		return model.FileRecord{}, apperrors.NewErrFileNotFound()
	}
	if err != nil {
		return model.FileRecord{}, fmt.Errorf("failed to update statement type: %w", err)
	}

	s.logger.Info("File service: statement type updated",
		"file_id", fileID,
		"statement_type", statementType,
		"category", category)

	return updated, nil
}

// MoveToCategory refiles files of a session. Moving to unfiled keeps each
// file's statement type.
func (s *File) MoveToCategory(ctx context.Context, sessionID string, fileIDs []uuid.UUID, category model.Category, requester model.AccessTokenPayload) (model.MoveResult, error) {
	if len(fileIDs) == 0 {
		return model.MoveResult{}, apperrors.NewErrValidation("fileIds must not be empty.")
	}
	if !category.Valid() {
		return model.MoveResult{}, apperrors.NewErrValidation("Unsupported category.")
	}

	session, err := activeSession(ctx, s.sessionStore, sessionID, requester, s.now())
	if err != nil {
		return model.MoveResult{}, err
	}
	sessionID = session.ID

	var statementType *model.StatementType
	if category != model.CategoryUnfiled {
		t := model.StatementType(category)
		statementType = &t
	}

	moved, err := s.fileStore.MoveToCategory(ctx, sessionID, fileIDs, category, statementType)
	if err != nil {
		return model.MoveResult{}, fmt.Errorf("failed to move files: %w", err)
	}

	s.logger.Info("File service: files moved",
		"session_id", sessionID,
		"category", category,
		"moved", moved)

	return model.MoveResult{MovedCount: moved, Category: category}, nil
}

// Delete removes a file's stored object and marks the record deleted. A
// storage failure aborts the delete.
func (s *File) Delete(ctx context.Context, fileID uuid.UUID, requester model.AccessTokenPayload) error {
	file, err := s.getAuthorized(ctx, fileID, requester)
	if err != nil {
		return err
	}

	if file.Status == model.FileStatusUploaded {
		if err := s.storage.Delete(ctx, file.StorageKey); err != nil {
			s.logger.Error("File service: failed to delete stored file",
				"file_id", fileID,
				"storage_key", file.StorageKey,
				"error", err.Error())
			return apperrors.NewErrStorage(storageReason(err))
		}
	}

	err = s.fileStore.MarkDeleted(ctx, fileID, s.now())
	if errors.Is(err, model.ErrNotFound) {
		return apperrors.NewErrFileNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to mark file deleted: %w", err)
	}

	s.logger.Info("File service: file deleted",
		"file_id", fileID,
		"session_id", file.SessionID)

	return nil
}

// GetRaw returns the stored bytes of an uploaded file.
func (s *File) GetRaw(ctx context.Context, fileID uuid.UUID, requester model.AccessTokenPayload) (model.RawFile, error) {
	file, err := s.getAuthorized(ctx, fileID, requester)
	if err != nil {
		return model.RawFile{}, err
	}
	if file.Status != model.FileStatusUploaded {
		return model.RawFile{}, apperrors.NewErrFileNotFound()
	}

	reader, err := s.storage.Download(ctx, file.StorageKey)
	if err != nil {
		s.logger.Error("File service: failed to download file",
			"file_id", fileID,
			"storage_key", file.StorageKey,
			"error", err.Error())
		return model.RawFile{}, apperrors.NewErrStorage(storageReason(err))
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return model.RawFile{}, fmt.Errorf("failed to read file: %w", err)
	}

	return model.RawFile{
		Name:     file.OriginalName,
		MimeType: file.MimeType,
		Data:     data,
	}, nil
}

// StorageKey derives the object key of a file. The file id keeps keys unique.
func StorageKey(sessionID string, category model.Category, id uuid.UUID, originalName string) string {
	return fmt.Sprintf("sessions/%s/%s/%s-%s", sessionID, category, id, sanitizeName(originalName))
}

func sanitizeName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)

	cleaned = strings.TrimLeft(cleaned, ".")
	if len(cleaned) > maxStoredNameLength {
		cleaned = cleaned[len(cleaned)-maxStoredNameLength:]
	}
	if cleaned == "" {
		return "file.pdf"
	}
	return cleaned
}
