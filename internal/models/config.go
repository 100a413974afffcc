package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New()

// RecommendationConfig controla uma chamada de recomendação.
// Validada na borda da chamada; valores inválidos falham imediatamente.
type RecommendationConfig struct {
	// Máximo de itens na lista final (obrigatório, > 0)
	MaxResults int `json:"max_results" validate:"required,gt=0" example:"5"`
	// Temperatura do modelo. Acima do teto configurado a chamada não usa cache.
	Temperature float64 `json:"temperature" validate:"gte=0,lte=2" example:"0.2"`
	// Incluir justificativa textual por item
	Rationale bool `json:"rationale" example:"true"`
	// Timeout por tentativa de invocação do modelo, em milissegundos (> 0)
	TimeoutMs int `json:"timeout_ms" validate:"required,gt=0" example:"15000"`
	// Tentativas extras para falhas transientes (>= 0)
	RetryCount int `json:"retry_count" validate:"gte=0" example:"2"`
}

// DefaultRecommendationConfig retorna configuração padrão de chamada
func DefaultRecommendationConfig() RecommendationConfig {
	return RecommendationConfig{
		MaxResults:  5,
		Temperature: 0.2,
		Rationale:   true,
		TimeoutMs:   15000,
		RetryCount:  2,
	}
}

// Validate valida a configuração da chamada
func (c RecommendationConfig) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
