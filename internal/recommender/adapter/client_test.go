package adapter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prefeitura-rio/app-recomendacao/internal/models"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout", fmt.Errorf("%w: tentativa excedeu 15s", ErrTimeout), true},
		{"rate limit", fmt.Errorf("%w: 429", ErrRateLimited), true},
		{"falha do provedor", fmt.Errorf("%w: 500", ErrProvider), true},
		{"autenticação", fmt.Errorf("%w: chave inválida", ErrAuth), false},
		{"erro genérico", errors.New("outra coisa"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, esperado %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyByMessage(t *testing.T) {
	g := NewGeminiAdapter(nil, DefaultGeminiConfig())
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"rate limit", errors.New("429: rate limit exceeded"), ErrRateLimited},
		{"quota", errors.New("quota exceeded for project"), ErrRateLimited},
		{"api key", errors.New("API key not valid"), ErrAuth},
		{"permission", errors.New("permission denied"), ErrAuth},
		{"deadline", errors.New("context deadline exceeded"), ErrTimeout},
		{"genérico", errors.New("internal server error"), ErrProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.classify(ctx, tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("classify(%v) = %v, esperado %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyCancellationPassesThrough(t *testing.T) {
	g := NewGeminiAdapter(nil, DefaultGeminiConfig())

	got := g.classify(context.Background(), context.Canceled)
	if !errors.Is(got, context.Canceled) {
		t.Errorf("classify(Canceled) = %v, esperado context.Canceled intacto", got)
	}
	if IsTransient(got) {
		t.Error("cancelamento não pode ser classificado como transiente")
	}
}

func TestInvokeWithoutClient(t *testing.T) {
	g := NewGeminiAdapter(nil, DefaultGeminiConfig())

	_, err := g.Invoke(context.Background(), "prompt", models.DefaultRecommendationConfig())
	if err == nil {
		t.Fatal("Invoke() sem cliente deveria falhar")
	}
	if !errors.Is(err, ErrProvider) {
		t.Errorf("erro = %v, esperado ErrProvider", err)
	}
}
