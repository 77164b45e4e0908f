package service

import (
	"context"
	"testing"

	"lexichat-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContract_UnsupportedType(t *testing.T) {
	svc := NewGenerationService(&fakeCompleter{response: "계약서"})

	_, err := svc.GenerateContract(context.Background(), GenerateContractRequest{
		ContractType: models.ContractTypeOther,
	})

	assert.ErrorIs(t, err, ErrUnsupportedContractType)
}

func TestGenerateContract_EmploymentPromptCarriesFormFields(t *testing.T) {
	completer := &fakeCompleter{response: "근로계약서 ..."}
	svc := NewGenerationService(completer)

	out, err := svc.GenerateContract(context.Background(), GenerateContractRequest{
		ContractType: models.ContractTypeEmployment,
		PartyA:       "주식회사 렉시",
		PartyB:       "김철수",
		Position:     "백엔드 개발자",
		StartDate:    "2026-01-01",
		EndDate:      "2026-12-31",
		Salary:       "월 300만원",
		WorkHours:    "09:00-18:00",
		WorkDays:     "주 5일",
	})

	require.NoError(t, err)
	assert.Equal(t, "근로계약서 ...", out)

	require.Len(t, completer.messages, 1)
	prompt := completer.messages[0][0].Content
	assert.Contains(t, prompt, "주식회사 렉시")
	assert.Contains(t, prompt, "김철수")
	assert.Contains(t, prompt, "백엔드 개발자")
	assert.Contains(t, prompt, "월 300만원")
	assert.Contains(t, prompt, "근로기준법")
}

func TestGenerateContract_LeaseMaintenanceFeeDefault(t *testing.T) {
	completer := &fakeCompleter{response: "부동산 임대차계약서 ..."}
	svc := NewGenerationService(completer)

	_, err := svc.GenerateContract(context.Background(), GenerateContractRequest{
		ContractType:    models.ContractTypeLease,
		PartyA:          "박영희",
		PartyB:          "이민수",
		PropertyAddress: "서울시 마포구",
		Deposit:         "1000만원",
		MonthlyRent:     "월 60만원",
		StartDate:       "2026-03-01",
		EndDate:         "2028-02-29",
	})

	require.NoError(t, err)
	prompt := completer.messages[0][0].Content
	// Omitted maintenance fee falls back to "to be agreed".
	assert.Contains(t, prompt, "관리비: 별도 협의")
}

func TestGenerateContract_FreelancePromptCarriesFormFields(t *testing.T) {
	completer := &fakeCompleter{response: "용역(프리랜서)계약서 ..."}
	svc := NewGenerationService(completer)

	_, err := svc.GenerateContract(context.Background(), GenerateContractRequest{
		ContractType:       models.ContractTypeFreelance,
		PartyA:             "디자인스튜디오",
		PartyB:             "홍길동",
		ProjectDescription: "웹사이트 리뉴얼",
		ProjectAmount:      "500만원",
		Deliverables:       "메인 페이지 5종",
		PaymentTerms:       "착수금 50%, 잔금 50%",
		StartDate:          "2026-02-01",
		EndDate:            "2026-04-30",
	})

	require.NoError(t, err)
	prompt := completer.messages[0][0].Content
	assert.Contains(t, prompt, "웹사이트 리뉴얼")
	assert.Contains(t, prompt, "3.3%")
	assert.Contains(t, prompt, "착수금 50%, 잔금 50%")
}
