package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveOverallRisk(t *testing.T) {
	tests := []struct {
		name    string
		clauses []Clause
		want    RiskLevel
	}{
		{
			name:    "no clauses",
			clauses: nil,
			want:    RiskSafe,
		},
		{
			name:    "all safe",
			clauses: []Clause{{RiskLevel: RiskSafe}, {RiskLevel: RiskSafe}},
			want:    RiskSafe,
		},
		{
			name:    "caution outranks safe",
			clauses: []Clause{{RiskLevel: RiskSafe}, {RiskLevel: RiskCaution}},
			want:    RiskCaution,
		},
		{
			name:    "single danger dominates",
			clauses: []Clause{{RiskLevel: RiskSafe}, {RiskLevel: RiskCaution}, {RiskLevel: RiskDanger}},
			want:    RiskDanger,
		},
		{
			name:    "danger first",
			clauses: []Clause{{RiskLevel: RiskDanger}, {RiskLevel: RiskSafe}},
			want:    RiskDanger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveOverallRisk(tt.clauses))
		})
	}
}
