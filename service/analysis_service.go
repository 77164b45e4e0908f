package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"lexichat-backend/extraction"
	"lexichat-backend/llm"
	"lexichat-backend/models"
	"lexichat-backend/repository"
	"lexichat-backend/storage"

	"github.com/google/uuid"
)

// Completer is the LLM collaborator: single-shot, synchronous, text in and
// text out
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, messages []llm.Message, temperature float32, maxTokens int32) (string, error)
}

// TextExtractor is the document text extraction collaborator
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, mimeType string) (string, error)
}

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrTextExtraction   = errors.New("insufficient text extracted from document")
	ErrResponseParse    = errors.New("failed to parse analysis response")
)

// Extracted text shorter than this (in runes, after trimming) fails the
// quality gate before any model call is made
const minExtractedTextLen = 50

// AnalysisService runs the contract analysis pipeline: text extraction,
// model analysis, response parsing and result persistence
type AnalysisService struct {
	contractRepo *repository.ContractRepository
	fileStorage  storage.Storage
	extractor    TextExtractor
	llm          Completer
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// AnalysisWithContractRepository sets the contract repository
func AnalysisWithContractRepository(repo *repository.ContractRepository) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.contractRepo = repo
	}
}

// AnalysisWithStorage sets the file storage backend
func AnalysisWithStorage(fileStorage storage.Storage) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.fileStorage = fileStorage
	}
}

// AnalysisWithExtractor sets the text extraction collaborator
func AnalysisWithExtractor(extractor TextExtractor) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.extractor = extractor
	}
}

// AnalysisWithCompleter sets the LLM collaborator
func AnalysisWithCompleter(completer Completer) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.llm = completer
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// analysisPrompts are the category-specific system instructions for the
// analysis model call
var analysisPrompts = map[models.ContractType]string{
	models.ContractTypeEmployment: `당신은 한국 근로기준법 전문가입니다. 다음 근로계약서를 분석하여 사회초년생에게 불리할 수 있는 조항을 찾아주세요.

중점 검토 사항:
- 최저임금 위반 여부
- 근로시간 및 휴게시간 규정
- 부당한 손해배상 조항
- 퇴직금 및 4대 보험 관련
- 해고 조건 및 절차
- 급여 지급 조건

각 조항에 대해 위험도(safe/caution/danger)를 판단하고, 쉬운 용어로 설명해주세요.`,

	models.ContractTypeLease: `당신은 한국 주택임대차보호법 전문가입니다. 다음 임대차계약서를 분석하여 임차인에게 불리할 수 있는 조항을 찾아주세요.

중점 검토 사항:
- 보증금 반환 조건
- 수선유지 의무 및 비용 부담
- 계약 해지 조건 및 위약금
- 선순위 근저당권 여부
- 관리비 및 공과금 부담
- 특약사항의 법적 유효성

각 조항에 대해 위험도(safe/caution/danger)를 판단하고, 쉬운 용어로 설명해주세요.`,

	models.ContractTypeFreelance: `당신은 한국 계약법 전문가입니다. 다음 용역계약서를 분석하여 프리랜서에게 불리할 수 있는 조항을 찾아주세요.

중점 검토 사항:
- 대금 지급 조건 및 시기
- 저작권 및 지식재산권 귀속
- 계약 해지 조건
- 손해배상 및 배상책임 범위
- '가짜 프리랜서' 관련 조항
- 계약 기간 및 연장 조건

각 조항에 대해 위험도(safe/caution/danger)를 판단하고, 쉬운 용어로 설명해주세요.`,

	models.ContractTypeOther: `당신은 한국 계약법 전문가입니다. 다음 계약서를 분석하여 계약 당사자에게 불리할 수 있는 조항을 찾아주세요.

중점 검토 사항:
- 일방적으로 불리한 조건
- 과도한 손해배상 조항
- 계약 해지 조건
- 법적 위반 소지

각 조항에 대해 위험도(safe/caution/danger)를 판단하고, 쉬운 용어로 설명해주세요.`,
}

// analysisPrompt returns the system prompt for a contract type, falling back
// to the generic prompt for unknown types
func analysisPrompt(contractType models.ContractType) string {
	if prompt, ok := analysisPrompts[contractType]; ok {
		return prompt
	}
	return analysisPrompts[models.ContractTypeOther]
}

// AnalyzeDocument runs extraction and analysis on raw document bytes and
// returns the extracted text alongside the structured result. It does not
// touch persistence; ProcessContract wraps it for the API path.
//
// The overall risk in the returned result is always recomputed from the
// clause risk levels, never taken from the model's self-report.
func (s *AnalysisService) AnalyzeDocument(ctx context.Context, data []byte, mimeType string, contractType models.ContractType) (string, *models.AnalysisResult, error) {
	if s.extractor == nil {
		return "", nil, errors.New("text extractor not set")
	}
	if s.llm == nil {
		return "", nil, errors.New("llm client not set")
	}

	text, err := s.extractor.ExtractText(ctx, data, mimeType)
	if err != nil {
		if errors.Is(err, extraction.ErrUnsupportedFormat) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("%w: %v", ErrTextExtraction, err)
	}

	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minExtractedTextLen {
		return "", nil, ErrTextExtraction
	}

	result, err := s.analyzeText(ctx, text, contractType)
	if err != nil {
		return "", nil, err
	}

	return text, result, nil
}

// analyzeText sends the extracted contract text to the model and parses the
// structured risk report out of its response
func (s *AnalysisService) analyzeText(ctx context.Context, text string, contractType models.ContractType) (*models.AnalysisResult, error) {
	userMessage := fmt.Sprintf(`다음 계약서를 분석해주세요. 반드시 JSON 형식으로만 응답하세요.

계약서 내용:
%s

응답 형식:
{
  "contractType": "계약서 종류",
  "overallRisk": "safe | caution | danger",
  "summary": "전체적인 분석 요약 (2-3문장)",
  "clauses": [
    {
      "id": "clause_1",
      "originalText": "원본 조항 내용",
      "riskLevel": "safe | caution | danger",
      "explanation": "쉬운 용어로 설명",
      "recommendation": "권장사항 (있는 경우)",
      "legalBasis": "관련 법적 근거 (있는 경우)"
    }
  ]
}`, text)

	response, err := s.llm.Complete(ctx, analysisPrompt(contractType),
		[]llm.Message{{Role: "user", Content: userMessage}}, 0.3, 4096)
	if err != nil {
		return nil, err
	}

	result, err := parseAnalysisResponse(response)
	if err != nil {
		// Keep the raw text out of user-visible errors
		log.Printf("Failed to parse analysis response: %v", err)
		return nil, ErrResponseParse
	}

	result.OverallRisk = models.DeriveOverallRisk(result.Clauses)
	return result, nil
}

// codeFencePattern matches an optional json-tagged markdown code fence
// around the model's JSON output
var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\n?(.*?)\n?```")

// parseAnalysisResponse strips an optional code fence and decodes the
// structured analysis result
func parseAnalysisResponse(response string) (*models.AnalysisResult, error) {
	jsonText := strings.TrimSpace(response)
	if match := codeFencePattern.FindStringSubmatch(jsonText); match != nil {
		jsonText = match[1]
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(jsonText), &result); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if result.Clauses == nil {
		return nil, errors.New("response missing clauses")
	}

	return &result, nil
}

// ProcessContract runs the full pipeline for a stored contract: download,
// extraction, analysis and persistence, advancing the contract's status at
// each step. There is no automatic retry; calling this again re-enters the
// pipeline from pending.
func (s *AnalysisService) ProcessContract(ctx context.Context, contractID uuid.UUID) (*models.AnalysisResult, error) {
	if s.contractRepo == nil {
		return nil, errors.New("contract repository not set")
	}
	if s.fileStorage == nil {
		return nil, errors.New("file storage not set")
	}

	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, ErrContractNotFound
	}

	if err := s.contractRepo.UpdateStatus(ctx, contractID, models.AnalysisExtracting); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	file, err := s.fileStorage.Download(ctx, contract.StoragePath)
	if err != nil {
		s.markFailed(ctx, contractID, "failed to download file: "+err.Error())
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.markFailed(ctx, contractID, "failed to read file: "+err.Error())
		return nil, err
	}

	text, err := s.extractor.ExtractText(ctx, data, contract.MimeType)
	if err != nil {
		if errors.Is(err, extraction.ErrUnsupportedFormat) {
			s.markFailed(ctx, contractID, err.Error())
			return nil, err
		}
		s.markFailed(ctx, contractID, "text extraction failed: "+err.Error())
		return nil, fmt.Errorf("%w: %v", ErrTextExtraction, err)
	}

	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minExtractedTextLen {
		s.markFailed(ctx, contractID, "extracted text below quality threshold")
		return nil, ErrTextExtraction
	}

	if err := s.contractRepo.UpdateStatus(ctx, contractID, models.AnalysisExtracted); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	if err := s.contractRepo.UpdateStatus(ctx, contractID, models.AnalysisAnalyzing); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	result, err := s.analyzeText(ctx, text, contract.ContractType)
	if err != nil {
		s.markFailed(ctx, contractID, err.Error())
		return nil, err
	}

	if err := s.contractRepo.UpdateStatus(ctx, contractID, models.AnalysisParsed); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	if err := s.contractRepo.UpdateAnalysis(ctx, contractID, text, result); err != nil {
		s.markFailed(ctx, contractID, "failed to store analysis: "+err.Error())
		return nil, err
	}

	return result, nil
}

// markFailed marks a contract's analysis as failed with an error message
func (s *AnalysisService) markFailed(ctx context.Context, contractID uuid.UUID, errorMessage string) {
	if err := s.contractRepo.Fail(ctx, contractID, errorMessage); err != nil {
		log.Printf("Warning: Failed to mark contract %s as failed: %v", contractID, err)
	}
}
