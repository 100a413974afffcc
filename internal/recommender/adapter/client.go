package adapter

import (
	"context"
	"errors"

	"github.com/prefeitura-rio/app-recomendacao/internal/models"
)

// Falhas do provedor de modelo. O adapter classifica; a política de
// retentativa mora no orquestrador.
var (
	// Tentativa excedeu o timeout configurado (transiente)
	ErrTimeout = errors.New("timeout na invocação do modelo")
	// Provedor limitou a taxa de chamadas (transiente)
	ErrRateLimited = errors.New("provedor limitou a taxa de chamadas")
	// Falha genérica do provedor (transiente)
	ErrProvider = errors.New("falha do provedor do modelo")
	// Credenciais rejeitadas (permanente, nunca retentada)
	ErrAuth = errors.New("autenticação rejeitada pelo provedor")
)

// ModelClient é a fronteira com o LLM: uma única operação. Qualquer
// provedor concreto é plugado atrás desta interface sem mudanças no motor.
// Invoke respeita config.TimeoutMs como teto por tentativa e é cancelável
// pelo contexto.
type ModelClient interface {
	Invoke(ctx context.Context, prompt string, cfg models.RecommendationConfig) (string, error)
}

// IsTransient informa se a falha pode ser retentada
func IsTransient(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrRateLimited) || errors.Is(err, ErrProvider)
}
