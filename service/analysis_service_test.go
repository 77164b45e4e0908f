package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lexichat-backend/extraction"
	"lexichat-backend/llm"
	"lexichat-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter records calls and plays back a canned response.
type fakeCompleter struct {
	response string
	err      error

	calls         int
	systemPrompts []string
	messages      [][]llm.Message
}

func (f *fakeCompleter) Complete(_ context.Context, systemPrompt string, messages []llm.Message, _ float32, _ int32) (string, error) {
	f.calls++
	f.systemPrompts = append(f.systemPrompts, systemPrompt)
	f.messages = append(f.messages, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// fakeExtractor returns fixed text regardless of input.
type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText(_ context.Context, _ []byte, _ string) (string, error) {
	return f.text, f.err
}

// Long enough to pass the extraction quality gate.
var sampleContractText = strings.Repeat("제1조 근로계약 기간은 2026년 1월 1일부터로 한다. ", 5)

const validAnalysisJSON = `{
  "contractType": "근로계약서",
  "overallRisk": "safe",
  "summary": "전반적으로 표준적인 계약서입니다.",
  "clauses": [
    {
      "id": "clause_1",
      "originalText": "손해 발생 시 근로자가 전액 배상한다.",
      "riskLevel": "danger",
      "explanation": "과도한 손해배상 조항입니다.",
      "recommendation": "해당 조항의 수정을 요구하세요.",
      "legalBasis": "근로기준법 제20조"
    },
    {
      "id": "clause_2",
      "originalText": "주 40시간 근무한다.",
      "riskLevel": "safe",
      "explanation": "법정 근로시간을 준수합니다."
    }
  ]
}`

func TestAnalyzeDocument_ShortTextFailsBeforeModelCall(t *testing.T) {
	completer := &fakeCompleter{response: validAnalysisJSON}
	svc := NewAnalysisService(
		AnalysisWithExtractor(&fakeExtractor{text: "계약서 일부만 읽힘"}),
		AnalysisWithCompleter(completer),
	)

	_, _, err := svc.AnalyzeDocument(context.Background(), []byte("data"), "application/pdf", models.ContractTypeEmployment)

	require.ErrorIs(t, err, ErrTextExtraction)
	assert.Zero(t, completer.calls, "model must not be called when extraction fails the quality gate")
}

func TestAnalyzeDocument_UnsupportedFormatPropagates(t *testing.T) {
	svc := NewAnalysisService(
		AnalysisWithExtractor(&fakeExtractor{err: extraction.ErrUnsupportedFormat}),
		AnalysisWithCompleter(&fakeCompleter{}),
	)

	_, _, err := svc.AnalyzeDocument(context.Background(), []byte("data"), "text/plain", models.ContractTypeOther)

	assert.ErrorIs(t, err, extraction.ErrUnsupportedFormat)
}

func TestAnalyzeDocument_ParsesPlainJSON(t *testing.T) {
	svc := NewAnalysisService(
		AnalysisWithExtractor(&fakeExtractor{text: sampleContractText}),
		AnalysisWithCompleter(&fakeCompleter{response: validAnalysisJSON}),
	)

	text, result, err := svc.AnalyzeDocument(context.Background(), []byte("data"), "application/pdf", models.ContractTypeEmployment)

	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(sampleContractText), text)
	require.NotNil(t, result)
	require.Len(t, result.Clauses, 2)
	assert.Equal(t, "근로계약서", result.ContractType)
}

func TestAnalyzeDocument_StripsCodeFence(t *testing.T) {
	fenced := "```json\n" + validAnalysisJSON + "\n```"
	svc := NewAnalysisService(
		AnalysisWithExtractor(&fakeExtractor{text: sampleContractText}),
		AnalysisWithCompleter(&fakeCompleter{response: fenced}),
	)

	_, result, err := svc.AnalyzeDocument(context.Background(), []byte("data"), "application/pdf", models.ContractTypeLease)

	require.NoError(t, err)
	require.Len(t, result.Clauses, 2)
}

func TestAnalyzeDocument_OverallRiskRecomputedFromClauses(t *testing.T) {
	// The model self-reports "safe" but one clause is danger; the clause
	// levels win.
	svc := NewAnalysisService(
		AnalysisWithExtractor(&fakeExtractor{text: sampleContractText}),
		AnalysisWithCompleter(&fakeCompleter{response: validAnalysisJSON}),
	)

	_, result, err := svc.AnalyzeDocument(context.Background(), []byte("data"), "application/pdf", models.ContractTypeEmployment)

	require.NoError(t, err)
	assert.Equal(t, models.RiskDanger, result.OverallRisk)
}

func TestAnalyzeDocument_InvalidJSONIsParseError(t *testing.T) {
	svc := NewAnalysisService(
		AnalysisWithExtractor(&fakeExtractor{text: sampleContractText}),
		AnalysisWithCompleter(&fakeCompleter{response: "죄송합니다, 분석할 수 없습니다."}),
	)

	_, _, err := svc.AnalyzeDocument(context.Background(), []byte("data"), "application/pdf", models.ContractTypeOther)

	assert.ErrorIs(t, err, ErrResponseParse)
}

func TestAnalyzeDocument_MissingClausesIsParseError(t *testing.T) {
	svc := NewAnalysisService(
		AnalysisWithExtractor(&fakeExtractor{text: sampleContractText}),
		AnalysisWithCompleter(&fakeCompleter{response: `{"contractType": "기타", "overallRisk": "safe", "summary": "요약"}`}),
	)

	_, _, err := svc.AnalyzeDocument(context.Background(), []byte("data"), "application/pdf", models.ContractTypeOther)

	assert.ErrorIs(t, err, ErrResponseParse)
}

func TestAnalyzeDocument_ModelErrorPropagates(t *testing.T) {
	modelErr := errors.New("quota exceeded")
	svc := NewAnalysisService(
		AnalysisWithExtractor(&fakeExtractor{text: sampleContractText}),
		AnalysisWithCompleter(&fakeCompleter{err: modelErr}),
	)

	_, _, err := svc.AnalyzeDocument(context.Background(), []byte("data"), "application/pdf", models.ContractTypeOther)

	assert.ErrorIs(t, err, modelErr)
}

func TestAnalyzeDocument_SystemPromptFollowsContractType(t *testing.T) {
	completer := &fakeCompleter{response: validAnalysisJSON}
	svc := NewAnalysisService(
		AnalysisWithExtractor(&fakeExtractor{text: sampleContractText}),
		AnalysisWithCompleter(completer),
	)

	_, _, err := svc.AnalyzeDocument(context.Background(), []byte("data"), "application/pdf", models.ContractTypeLease)

	require.NoError(t, err)
	require.Len(t, completer.systemPrompts, 1)
	assert.Contains(t, completer.systemPrompts[0], "주택임대차보호법")
}

func TestParseAnalysisResponse_FenceWithoutLanguageTag(t *testing.T) {
	fenced := "```\n" + validAnalysisJSON + "\n```"

	result, err := parseAnalysisResponse(fenced)

	require.NoError(t, err)
	assert.Len(t, result.Clauses, 2)
}
