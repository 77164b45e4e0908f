package models

import (
	"database/sql/driver"
	"encoding/json"
)

// RiskLevel grades a contract or a single clause
type RiskLevel string

const (
	RiskSafe    RiskLevel = "safe"
	RiskCaution RiskLevel = "caution"
	RiskDanger  RiskLevel = "danger"
)

// Clause is one analyzed segment of a contract
type Clause struct {
	ID             string    `json:"id"`
	OriginalText   string    `json:"originalText"`
	RiskLevel      RiskLevel `json:"riskLevel"`
	Explanation    string    `json:"explanation"`
	Recommendation string    `json:"recommendation,omitempty"`
	LegalBasis     string    `json:"legalBasis,omitempty"`
}

// AnalysisResult is the structured clause-by-clause risk report produced by
// the analysis pipeline
type AnalysisResult struct {
	ContractType string    `json:"contractType"`
	OverallRisk  RiskLevel `json:"overallRisk"`
	Summary      string    `json:"summary"`
	Clauses      []Clause  `json:"clauses"`
}

// Value implements driver.Valuer for JSONB
func (a AnalysisResult) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB
func (a *AnalysisResult) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// DeriveOverallRisk computes the overall risk from the clause risk levels:
// danger if any clause is danger, else caution if any clause is caution,
// else safe.
func DeriveOverallRisk(clauses []Clause) RiskLevel {
	risk := RiskSafe
	for _, clause := range clauses {
		switch clause.RiskLevel {
		case RiskDanger:
			return RiskDanger
		case RiskCaution:
			risk = RiskCaution
		}
	}
	return risk
}
