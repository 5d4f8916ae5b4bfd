package handler

import (
	"time"

	"github.com/dtroode/statementbox/internal/model"
	"github.com/google/uuid"
)

type createSessionRequest struct {
	Email string `json:"email"`
}

type createSessionResponse struct {
	SessionID              string    `json:"sessionId"`
	Email                  string    `json:"email"`
	ExpiresAt              time.Time `json:"expiresAt"`
	AutoCategorizeOnUpload bool      `json:"autoCategorizeOnUpload"`
	AccessToken            string    `json:"accessToken"`
	ExpiresIn              int64     `json:"expiresIn"`
}

type sessionResponse struct {
	SessionID              string    `json:"sessionId"`
	Email                  string    `json:"email"`
	Status                 string    `json:"status"`
	ExpiresAt              time.Time `json:"expiresAt"`
	CreatedAt              time.Time `json:"createdAt"`
	AutoCategorizeOnUpload bool      `json:"autoCategorizeOnUpload"`
	FileCount              int       `json:"fileCount"`
}

type updateSettingsRequest struct {
	AutoCategorizeOnUpload *bool `json:"autoCategorizeOnUpload"`
}

type settingsResponse struct {
	SessionID              string `json:"sessionId"`
	AutoCategorizeOnUpload bool   `json:"autoCategorizeOnUpload"`
}

type requestLinkRequest struct {
	Email     string `json:"email"`
	SessionID string `json:"sessionId"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	OK          bool              `json:"ok"`
	AccessToken string            `json:"accessToken"`
	ExpiresIn   int64             `json:"expiresIn"`
	Sessions    []sessionResponse `json:"sessions"`
}

type fileResponse struct {
	ID                  uuid.UUID  `json:"id"`
	SessionID           string     `json:"sessionId"`
	OriginalName        string     `json:"originalName"`
	MimeType            string     `json:"mimeType"`
	Size                int64      `json:"size"`
	StatementType       string     `json:"statementType"`
	Category            string     `json:"category"`
	AutoDetectedType    string     `json:"autoDetectedType"`
	DetectionConfidence float64    `json:"detectionConfidence"`
	IsLikelyStatement   bool       `json:"isLikelyStatement"`
	ConfirmedByUser     bool       `json:"confirmedByUser"`
	Status              string     `json:"status"`
	UploadedAt          *time.Time `json:"uploadedAt,omitempty"`
}

type rejectedResponse struct {
	OriginalName string `json:"originalName"`
	Reason       string `json:"reason"`
}

type warningResponse struct {
	OriginalName string    `json:"originalName"`
	FileID       uuid.UUID `json:"fileId"`
	Message      string    `json:"message"`
}

type uploadResponse struct {
	Uploaded []fileResponse     `json:"uploaded"`
	Rejected []rejectedResponse `json:"rejected"`
	Warnings []warningResponse  `json:"warnings"`
}

type previewResponse struct {
	OriginalName        string  `json:"originalName"`
	AutoDetectedType    string  `json:"autoDetectedType"`
	DetectionConfidence float64 `json:"detectionConfidence"`
	IsLikelyStatement   bool    `json:"isLikelyStatement"`
	Reason              string  `json:"reason,omitempty"`
}

type updateFileRequest struct {
	StatementType string `json:"statementType"`
}

type moveRequest struct {
	FileIDs  []string `json:"fileIds"`
	Category string   `json:"category"`
}

type moveResponse struct {
	MovedCount int64  `json:"movedCount"`
	Category   string `json:"category"`
}

type deleteFileResponse struct {
	Deleted bool      `json:"deleted"`
	FileID  uuid.UUID `json:"fileId"`
}

func toSessionResponse(s model.SessionSummary) sessionResponse {
	return sessionResponse{
		SessionID:              s.ID,
		Email:                  s.Email,
		Status:                 string(s.Status),
		ExpiresAt:              s.ExpiresAt,
		CreatedAt:              s.CreatedAt,
		AutoCategorizeOnUpload: s.AutoCategorizeOnUpload,
		FileCount:              s.FileCount,
	}
}

func toSessionResponses(summaries []model.SessionSummary) []sessionResponse {
	out := make([]sessionResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toSessionResponse(s))
	}
	return out
}

func toFileResponse(f model.FileRecord) fileResponse {
	return fileResponse{
		ID:                  f.ID,
		SessionID:           f.SessionID,
		OriginalName:        f.OriginalName,
		MimeType:            f.MimeType,
		Size:                f.Size,
		StatementType:       string(f.StatementType),
		Category:            string(f.Category),
		AutoDetectedType:    string(f.AutoDetectedType),
		DetectionConfidence: f.DetectionConfidence,
		IsLikelyStatement:   f.IsLikelyStatement,
		ConfirmedByUser:     f.ConfirmedByUser,
		Status:              string(f.Status),
		UploadedAt:          f.UploadedAt,
	}
}

func toFileResponses(files []model.FileRecord) []fileResponse {
	out := make([]fileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, toFileResponse(f))
	}
	return out
}

func toUploadResponse(r model.UploadResult) uploadResponse {
	resp := uploadResponse{
		Uploaded: toFileResponses(r.Uploaded),
		Rejected: make([]rejectedResponse, 0, len(r.Rejected)),
		Warnings: make([]warningResponse, 0, len(r.Warnings)),
	}
	for _, rej := range r.Rejected {
		resp.Rejected = append(resp.Rejected, rejectedResponse{OriginalName: rej.OriginalName, Reason: rej.Reason})
	}
	for _, w := range r.Warnings {
		resp.Warnings = append(resp.Warnings, warningResponse{OriginalName: w.OriginalName, FileID: w.FileID, Message: w.Message})
	}
	return resp
}

func toPreviewResponses(previews []model.DetectionPreview) []previewResponse {
	out := make([]previewResponse, 0, len(previews))
	for _, p := range previews {
		out = append(out, previewResponse{
			OriginalName:        p.OriginalName,
			AutoDetectedType:    string(p.Detection.Type),
			DetectionConfidence: p.Detection.Confidence,
			IsLikelyStatement:   p.Detection.IsLikelyStatement,
			Reason:              p.Reason,
		})
	}
	return out
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
