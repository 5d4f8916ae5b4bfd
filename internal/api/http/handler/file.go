package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dtroode/statementbox/internal/apperrors"
	"github.com/dtroode/statementbox/internal/logger"
	"github.com/dtroode/statementbox/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	filesField          = "files"
	statementTypesField = "statementTypes"
	defaultMaxFiles     = 10
	defaultMaxFileSize  = 15 << 20
	// multipartOverhead covers part headers, boundaries and form values.
	multipartOverhead = 1 << 20
	maxFieldSize      = 1 << 10
)

// FileService defines business operations for statement files.
type FileService interface {
	Upload(ctx context.Context, params model.UploadParams) (model.UploadResult, error)
	DetectPreview(ctx context.Context, sessionID string, requester model.AccessTokenPayload, files []model.IncomingFile) ([]model.DetectionPreview, error)
	List(ctx context.Context, sessionID string, requester model.AccessTokenPayload) ([]model.FileRecord, error)
	UpdateStatementType(ctx context.Context, fileID uuid.UUID, statementType model.StatementType, requester model.AccessTokenPayload) (model.FileRecord, error)
	MoveToCategory(ctx context.Context, sessionID string, fileIDs []uuid.UUID, category model.Category, requester model.AccessTokenPayload) (model.MoveResult, error)
	Delete(ctx context.Context, fileID uuid.UUID, requester model.AccessTokenPayload) error
	GetRaw(ctx context.Context, fileID uuid.UUID, requester model.AccessTokenPayload) (model.RawFile, error)
}

// File handles HTTP endpoints for statement files.
type File struct {
	fileService    FileService
	contextManager model.ContextManager
	maxFiles       int
	maxFileSize    int64
	logger         *logger.Logger
}

// NewFile creates a new File handler. The first maxFiles parts are read up to
// maxFileSize+1 bytes each; later parts keep only their names.
func NewFile(fileService FileService, contextManager model.ContextManager, maxFiles int, maxFileSize int64, logger *logger.Logger) *File {
	if maxFiles <= 0 {
		maxFiles = defaultMaxFiles
	}
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	return &File{
		fileService:    fileService,
		contextManager: contextManager,
		maxFiles:       maxFiles,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// maxBodySize leaves room for one full-size part past the file limit.
func (h *File) maxBodySize() int64 {
	return int64(h.maxFiles+1)*(h.maxFileSize+1) + multipartOverhead
}

// Upload stores a multipart batch of statement files.
func (h *File) Upload(c *gin.Context) {
	requester, ok := principal(c, h.contextManager)
	if !ok {
		return
	}

	files, hints, err := h.readMultipart(c)
	if err != nil {
		handleError(c, err)
		return
	}

	result, err := h.fileService.Upload(c.Request.Context(), model.UploadParams{
		SessionID: c.Param("id"),
		Requester: requester,
		Files:     files,
		TypeHints: hints,
	})
	if err != nil {
		h.logger.Error("File handler: upload failed",
			"session_id", c.Param("id"),
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUploadResponse(result))
}

// Detect classifies a multipart batch without storing it.
func (h *File) Detect(c *gin.Context) {
	requester, ok := principal(c, h.contextManager)
	if !ok {
		return
	}

	files, _, err := h.readMultipart(c)
	if err != nil {
		handleError(c, err)
		return
	}

	previews, err := h.fileService.DetectPreview(c.Request.Context(), c.Param("id"), requester, files)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": toPreviewResponses(previews)})
}

// List returns a session's uploaded files.
func (h *File) List(c *gin.Context) {
	requester, ok := principal(c, h.contextManager)
	if !ok {
		return
	}

	files, err := h.fileService.List(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": toFileResponses(files)})
}

// UpdateStatementType confirms a file's statement type.
func (h *File) UpdateStatementType(c *gin.Context) {
	requester, ok := principal(c, h.contextManager)
	if !ok {
		return
	}

	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	var req updateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperrors.NewErrValidation("Invalid request body."))
		return
	}

	file, err := h.fileService.UpdateStatementType(c.Request.Context(), fileID, model.StatementType(req.StatementType), requester)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFileResponse(file))
}

// MoveToCategory refiles several files of a session at once.
func (h *File) MoveToCategory(c *gin.Context) {
	requester, ok := principal(c, h.contextManager)
	if !ok {
		return
	}

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperrors.NewErrValidation("Invalid request body."))
		return
	}

	ids := make([]uuid.UUID, 0, len(req.FileIDs))
	for _, raw := range req.FileIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(c, apperrors.NewErrValidation(fmt.Sprintf("Invalid file id %q.", raw)))
			return
		}
		ids = append(ids, id)
	}

	result, err := h.fileService.MoveToCategory(c.Request.Context(), c.Param("id"), ids, model.Category(req.Category), requester)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, moveResponse{MovedCount: result.MovedCount, Category: string(result.Category)})
}

// Delete removes a single file and its stored object.
func (h *File) Delete(c *gin.Context) {
	requester, ok := principal(c, h.contextManager)
	if !ok {
		return
	}

	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	if err := h.fileService.Delete(c.Request.Context(), fileID, requester); err != nil {
		h.logger.Error("File handler: delete failed",
			"file_id", fileID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleteFileResponse{Deleted: true, FileID: fileID})
}

// Raw streams the stored file for inline viewing.
func (h *File) Raw(c *gin.Context) {
	requester, ok := principal(c, h.contextManager)
	if !ok {
		return
	}

	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	raw, err := h.fileService.GetRaw(c.Request.Context(), fileID, requester)
	if err != nil {
		handleError(c, err)
		return
	}

	contentType := raw.MimeType
	if contentType == "" {
		contentType = model.PDFMimeType
	}

	c.Header("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": raw.Name}))
	c.Header("Cache-Control", "private, no-store")
	c.Data(http.StatusOK, contentType, raw.Data)
}

func fileIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handleError(c, apperrors.NewErrFileNotFound())
		return uuid.Nil, false
	}
	return id, true
}

func (h *File) readMultipart(c *gin.Context) ([]model.IncomingFile, []model.StatementType, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodySize())

	reader, err := c.Request.MultipartReader()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, nil, apperrors.NewErrValidation("Expected a multipart/form-data body.")
		}
		return nil, nil, fmt.Errorf("failed to open multipart body: %w", err)
	}

	var (
		files []model.IncomingFile
		hints []model.StatementType
	)
	for {
		p, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, multipartError(err)
		}

		switch p.FormName() {
		case filesField:
			if p.FileName() == "" {
				continue
			}
			if len(files) >= h.maxFiles {
				// the service rejects overflow parts by name only
				files = append(files, model.IncomingFile{Name: p.FileName()})
				continue
			}
			f, err := h.readPart(p)
			if err != nil {
				return nil, nil, err
			}
			files = append(files, f)
		case statementTypesField:
			v, err := io.ReadAll(io.LimitReader(p, maxFieldSize))
			if err != nil {
				return nil, nil, multipartError(err)
			}
			hints = append(hints, model.StatementType(strings.ToLower(strings.TrimSpace(string(v)))))
		}
	}

	if len(files) == 0 {
		return nil, nil, apperrors.NewErrValidation("No files were uploaded.")
	}

	return files, hints, nil
}

func (h *File) readPart(p *multipart.Part) (model.IncomingFile, error) {
	data, err := io.ReadAll(io.LimitReader(p, h.maxFileSize+1))
	if err != nil {
		return model.IncomingFile{}, multipartError(err)
	}

	return model.IncomingFile{
		Name:     p.FileName(),
		MimeType: p.Header.Get("Content-Type"),
		Size:     int64(len(data)),
		Data:     data,
	}, nil
}

func multipartError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return apperrors.NewErrRequestTooLarge()
	}
	return fmt.Errorf("failed to read multipart body: %w", err)
}
