package models

import (
	"errors"
	"testing"
)

func TestRecommendationConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RecommendationConfig)
		wantErr bool
	}{
		{
			name:   "default é válido",
			mutate: func(*RecommendationConfig) {},
		},
		{
			name:   "temperatura zero é válida",
			mutate: func(c *RecommendationConfig) { c.Temperature = 0 },
		},
		{
			name:   "temperatura no teto é válida",
			mutate: func(c *RecommendationConfig) { c.Temperature = 2 },
		},
		{
			name:   "retry zero é válido",
			mutate: func(c *RecommendationConfig) { c.RetryCount = 0 },
		},
		{
			name:    "max_results zero",
			mutate:  func(c *RecommendationConfig) { c.MaxResults = 0 },
			wantErr: true,
		},
		{
			name:    "max_results negativo",
			mutate:  func(c *RecommendationConfig) { c.MaxResults = -1 },
			wantErr: true,
		},
		{
			name:    "temperatura negativa",
			mutate:  func(c *RecommendationConfig) { c.Temperature = -0.1 },
			wantErr: true,
		},
		{
			name:    "temperatura acima do teto",
			mutate:  func(c *RecommendationConfig) { c.Temperature = 2.1 },
			wantErr: true,
		},
		{
			name:    "timeout zero",
			mutate:  func(c *RecommendationConfig) { c.TimeoutMs = 0 },
			wantErr: true,
		},
		{
			name:    "retry negativo",
			mutate:  func(c *RecommendationConfig) { c.RetryCount = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRecommendationConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() deveria falhar")
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("Validate() erro = %v, esperado ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() erro inesperado: %v", err)
			}
		})
	}
}

func TestRankedListClone(t *testing.T) {
	original := RankedList{
		{ItemID: "A", Rank: 1, Score: 0.9},
		{ItemID: "B", Rank: 2, Score: 0.5},
	}

	clone := original.Clone()
	clone[0].ItemID = "MUTADO"

	if original[0].ItemID != "A" {
		t.Error("Clone() compartilhou memória com a lista original")
	}

	if RankedList(nil).Clone() != nil {
		t.Error("Clone() de lista nula deveria retornar nil")
	}
}
