package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FileStore defines persistence operations for uploaded files.
type FileStore interface {
	Create(ctx context.Context, file FileRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (FileRecord, error)
	ListUploadedBySession(ctx context.Context, sessionID string) ([]FileRecord, error)
	NameExists(ctx context.Context, sessionID string, originalName string) (bool, error)
	MarkUploaded(ctx context.Context, id uuid.UUID, uploadedAt time.Time) error
	MarkRejected(ctx context.Context, id uuid.UUID) error
	MarkDeleted(ctx context.Context, id uuid.UUID, deletedAt time.Time) error
	UpdateStatementType(ctx context.Context, id uuid.UUID, statementType StatementType, category Category) (FileRecord, error)
	MoveToCategory(ctx context.Context, sessionID string, ids []uuid.UUID, category Category, statementType *StatementType) (int64, error)
	CountUploadedBySessions(ctx context.Context, sessionIDs []string) (map[string]int, error)
}

// StatementType is the financial account kind a file is believed to represent.
type StatementType string

const (
	StatementTypeCredit   StatementType = "credit"
	StatementTypeChecking StatementType = "checking"
	StatementTypeSavings  StatementType = "savings"
	StatementTypeUnknown  StatementType = "unknown"
)

// Valid reports whether t is a known statement type.
func (t StatementType) Valid() bool {
	switch t {
	case StatementTypeCredit, StatementTypeChecking, StatementTypeSavings, StatementTypeUnknown:
		return true
	}
	return false
}

// Category is the folder a file is filed under.
type Category string

const (
	CategoryCredit   Category = "credit"
	CategoryChecking Category = "checking"
	CategorySavings  Category = "savings"
	CategoryUnknown  Category = "unknown"
	CategoryUnfiled  Category = "unfiled"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryCredit, CategoryChecking, CategorySavings, CategoryUnknown, CategoryUnfiled:
		return true
	}
	return false
}

// CategoryFor returns the folder implied by a statement type.
func CategoryFor(t StatementType) Category {
	switch t {
	case StatementTypeCredit:
		return CategoryCredit
	case StatementTypeChecking:
		return CategoryChecking
	case StatementTypeSavings:
		return CategorySavings
	default:
		return CategoryUnknown
	}
}

// FileStatus enumerates file record states.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusDeleted  FileStatus = "deleted"
	FileStatusRejected FileStatus = "rejected"
)

// PDFMimeType is the only accepted upload content type.
const PDFMimeType = "application/pdf"

// FileRecord represents a stored statement file.
type FileRecord struct {
	ID                  uuid.UUID
	SessionID           string
	OriginalName        string
	MimeType            string
	Size                int64
	StatementType       StatementType
	Category            Category
	AutoDetectedType    StatementType
	DetectionConfidence float64
	IsLikelyStatement   bool
	ConfirmedByUser     bool
	Status              FileStatus
	StorageBucket       string
	StorageKey          string
	UploadedAt          *time.Time
	DeletedAt           *time.Time
	CreatedAt           time.Time
}

// Detection is the keyword classifier verdict for one document.
type Detection struct {
	Type              StatementType
	Confidence        float64
	IsLikelyStatement bool
}

// IncomingFile is one part of a multipart upload.
type IncomingFile struct {
	Name     string
	MimeType string
	Size     int64
	Data     []byte
}

// UploadParams contains parameters of a batch upload.
type UploadParams struct {
	SessionID string
	Requester AccessTokenPayload
	Files     []IncomingFile
	TypeHints []StatementType
}

// RejectedFile describes a file that was not stored.
type RejectedFile struct {
	OriginalName string
	Reason       string
}

// UploadWarning flags a stored file that needs the user's attention.
type UploadWarning struct {
	OriginalName string
	FileID       uuid.UUID
	Message      string
}

// UploadResult is the outcome of a batch upload.
type UploadResult struct {
	Uploaded []FileRecord
	Rejected []RejectedFile
	Warnings []UploadWarning
}

// DetectionPreview is the detected type of a file that was not persisted.
type DetectionPreview struct {
	OriginalName string
	Detection    Detection
	Reason       string
}

// RawFile is the stored content of a file.
type RawFile struct {
	Name     string
	MimeType string
	Data     []byte
}

// StatementClassifier detects the statement type of extracted document text.
type StatementClassifier interface {
	Classify(text string) Detection
}

// TextExtractor extracts lowercase plain text from a document.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// MoveResult is the outcome of a bulk category change.
type MoveResult struct {
	MovedCount int64
	Category   Category
}
