package models

import (
	"time"

	"github.com/google/uuid"
)

// ContractType identifies which analysis prompt applies to a contract
type ContractType string

const (
	ContractTypeEmployment ContractType = "employment"
	ContractTypeLease      ContractType = "lease"
	ContractTypeFreelance  ContractType = "freelance"
	ContractTypeOther      ContractType = "other"
)

// AnalysisStatus tracks a contract through the analysis pipeline
type AnalysisStatus string

const (
	AnalysisPending    AnalysisStatus = "pending"
	AnalysisExtracting AnalysisStatus = "extracting"
	AnalysisExtracted  AnalysisStatus = "extracted"
	AnalysisAnalyzing  AnalysisStatus = "analyzing"
	AnalysisParsed     AnalysisStatus = "parsed"
	AnalysisCompleted  AnalysisStatus = "completed"
	AnalysisFailed     AnalysisStatus = "failed"
)

// Contract represents an uploaded contract document and its analysis state
type Contract struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	ContractType   ContractType    `json:"contract_type"`
	Filename       string          `json:"filename"`
	MimeType       string          `json:"mime_type"`
	StoragePath    string          `json:"storage_path"`
	Status         AnalysisStatus  `json:"status"`
	ErrorMessage   *string         `json:"error_message,omitempty"`
	ExtractedText  *string         `json:"extracted_text,omitempty"`
	RiskLevel      *RiskLevel      `json:"risk_level,omitempty"`
	AnalysisResult *AnalysisResult `json:"analysis_result,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
