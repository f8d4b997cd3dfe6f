package domain

import (
	"time"

	"github.com/google/uuid"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat accepts "pdf" and "docx"; anything else is rejected.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatPDF, FormatDOCX:
		return Format(s), true
	}
	return "", false
}

func (f Format) ContentType() string {
	if f == FormatDOCX {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/pdf"
}

func (f Format) Ext() string { return "." + string(f) }

const (
	StatusPending   = "pending"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

type ExportJob struct {
	ID          uuid.UUID `json:"id"`
	ResumeID    string    `json:"resume_id,omitempty"`
	TemplateID  string    `json:"template_id"`
	Format      Format    `json:"format"`
	Status      string    `json:"status"`
	FileName    string    `json:"file_name"`
	ArtifactKey string    `json:"artifact_key,omitempty"`
	SizeBytes   int       `json:"size_bytes"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
