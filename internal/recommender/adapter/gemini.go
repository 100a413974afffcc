package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"

	"github.com/prefeitura-rio/app-recomendacao/internal/models"
)

// GeminiConfig configuração para o adapter Gemini
type GeminiConfig struct {
	ChatModel       string
	MaxOutputTokens int
}

// DefaultGeminiConfig retorna configuração padrão
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		ChatModel:       "gemini-2.0-flash",
		MaxOutputTokens: 2048,
	}
}

// GeminiAdapter implementa ModelClient sobre a API Gemini.
// As chamadas passam por um circuit breaker: depois de falhas consecutivas
// o provedor é considerado fora do ar sem gastar quota em novas chamadas.
type GeminiAdapter struct {
	client  *genai.Client
	config  GeminiConfig
	breaker *gobreaker.CircuitBreaker
}

// NewGeminiAdapter cria um novo adapter para Gemini
func NewGeminiAdapter(client *genai.Client, cfg GeminiConfig) *GeminiAdapter {
	if cfg.ChatModel == "" {
		cfg.ChatModel = DefaultGeminiConfig().ChatModel
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = DefaultGeminiConfig().MaxOutputTokens
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "gemini",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// Falha de credencial não indica provedor fora do ar
			return err == nil || errors.Is(err, ErrAuth)
		},
	})

	return &GeminiAdapter{
		client:  client,
		config:  cfg,
		breaker: breaker,
	}
}

// IsAvailable verifica se o cliente está disponível
func (g *GeminiAdapter) IsAvailable() bool {
	return g.client != nil
}

// BreakerState expõe o estado atual do circuit breaker
func (g *GeminiAdapter) BreakerState() gobreaker.State {
	return g.breaker.State()
}

// getResponseSchema retorna o schema JSON para saída estruturada
func getResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendations": {
				Type:        genai.TypeArray,
				Description: "Itens recomendados em ordem de relevância",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"item_id":   {Type: genai.TypeString, Description: "ID de um item candidato"},
						"score":     {Type: genai.TypeNumber, Description: "Relevância (0-1, maior = mais relevante)"},
						"rationale": {Type: genai.TypeString, Description: "Justificativa curta da recomendação"},
					},
					Required: []string{"item_id", "score"},
				},
			},
		},
		Required: []string{"recommendations"},
	}
}

// Invoke envia o prompt renderizado e retorna o texto bruto da resposta
func (g *GeminiAdapter) Invoke(ctx context.Context, prompt string, cfg models.RecommendationConfig) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("%w: cliente Gemini não inicializado", ErrProvider)
	}

	// Teto por tentativa; a política de retentativa fica no orquestrador
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	content := genai.NewContentFromText(prompt, genai.RoleUser)

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(cfg.Temperature)),
		MaxOutputTokens:  int32(g.config.MaxOutputTokens),
		ResponseMIMEType: "application/json",
		ResponseSchema:   getResponseSchema(),
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		resp, err := g.client.Models.GenerateContent(ctx, g.config.ChatModel, []*genai.Content{content}, genConfig)
		if err != nil {
			return nil, g.classify(ctx, err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("%w: resposta sem candidates", ErrProvider)
		}
		return resp.Candidates[0].Content.Parts[0].Text, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: circuit breaker aberto", ErrProvider)
		}
		return "", err
	}

	return result.(string), nil
}

// classify mapeia erros do provedor para a taxonomia do adapter
func (g *GeminiAdapter) classify(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case apiErr.Code == 401 || apiErr.Code == 403:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		}
		return fmt.Errorf("%w: %v", ErrProvider, err)
	}

	// Fallback por mensagem quando o provedor não retorna erro tipado
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "too many requests"), strings.Contains(msg, "quota"):
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case strings.Contains(msg, "api key"), strings.Contains(msg, "unauthorized"), strings.Contains(msg, "permission"):
		return fmt.Errorf("%w: %v", ErrAuth, err)
	case strings.Contains(msg, "deadline"), strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrProvider, err)
}
