// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta do servidor HTTP (default: 8080)
//
// ## Gemini
//   - GEMINI_API_KEY: Chave da API Google Gemini (obrigatória para servir)
//   - GEMINI_CHAT_MODEL: Modelo de chat para recomendações (default: gemini-2.0-flash)
//   - GEMINI_MAX_OUTPUT_TOKENS: Teto de tokens da resposta (default: 2048)
//
// ## Motor de recomendação
//   - RECOMMEND_MAX_PROMPT_ITEMS: Teto de candidatos por prompt (default: 50)
//   - RECOMMEND_CACHE_TTL_MINUTES: TTL do cache de resultados em minutos (default: 5)
//   - RECOMMEND_CACHE_MAX_SIZE: Capacidade do cache de resultados (default: 500)
//   - RECOMMEND_CACHE_TEMP_CEILING: Temperatura acima da qual o cache é ignorado (default: 0.3)
//   - RECOMMEND_BACKOFF_BASE_MS: Delay base do backoff entre retentativas (default: 500)
//   - RECOMMEND_BACKOFF_MAX_MS: Teto do delay de backoff (default: 8000)
//   - RECOMMEND_DEFAULT_MAX_RESULTS: Default de max_results por chamada (default: 5)
//   - RECOMMEND_DEFAULT_TIMEOUT_MS: Default de timeout por tentativa (default: 15000)
//   - RECOMMEND_DEFAULT_RETRY_COUNT: Default de retentativas transientes (default: 2)
//
// ## Catálogo
//   - CATALOG_PATH: Arquivo JSON de catálogo; vazio usa o catálogo embutido
//   - TYPESENSE_URL: URL do Typesense para catálogo remoto (opcional)
//   - TYPESENSE_API_KEY: Chave de API do Typesense
//   - TYPESENSE_COLLECTION: Collection com os itens do catálogo
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config reúne toda a configuração da aplicação
type Config struct {
	ServerPort string

	// Gemini
	GeminiAPIKey          string
	GeminiChatModel       string
	GeminiMaxOutputTokens int

	// Motor de recomendação
	Recommend RecommendConfig

	// Catálogo
	CatalogPath         string
	TypesenseURL        string
	TypesenseAPIKey     string
	TypesenseCollection string

	// Tracing
	TracingEnabled  bool
	TracingEndpoint string
}

// RecommendConfig agrupa os parâmetros do motor
type RecommendConfig struct {
	MaxPromptItems    int
	CacheTTLMinutes   int
	CacheMaxSize      int
	CacheTempCeiling  float64
	BackoffBaseMs     int
	BackoffMaxMs      int
	DefaultMaxResults int
	DefaultTimeoutMs  int
	DefaultRetryCount int
}

// LoadConfig carrega a configuração do ambiente (e de um .env, se existir)
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		GeminiAPIKey:          getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel:       getEnv("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),
		GeminiMaxOutputTokens: getEnvInt("GEMINI_MAX_OUTPUT_TOKENS", 2048),

		Recommend: RecommendConfig{
			MaxPromptItems:    getEnvInt("RECOMMEND_MAX_PROMPT_ITEMS", 50),
			CacheTTLMinutes:   getEnvInt("RECOMMEND_CACHE_TTL_MINUTES", 5),
			CacheMaxSize:      getEnvInt("RECOMMEND_CACHE_MAX_SIZE", 500),
			CacheTempCeiling:  getEnvFloat("RECOMMEND_CACHE_TEMP_CEILING", 0.3),
			BackoffBaseMs:     getEnvInt("RECOMMEND_BACKOFF_BASE_MS", 500),
			BackoffMaxMs:      getEnvInt("RECOMMEND_BACKOFF_MAX_MS", 8000),
			DefaultMaxResults: getEnvInt("RECOMMEND_DEFAULT_MAX_RESULTS", 5),
			DefaultTimeoutMs:  getEnvInt("RECOMMEND_DEFAULT_TIMEOUT_MS", 15000),
			DefaultRetryCount: getEnvInt("RECOMMEND_DEFAULT_RETRY_COUNT", 2),
		},

		CatalogPath:         getEnv("CATALOG_PATH", ""),
		TypesenseURL:        getEnv("TYPESENSE_URL", ""),
		TypesenseAPIKey:     getEnv("TYPESENSE_API_KEY", ""),
		TypesenseCollection: getEnv("TYPESENSE_COLLECTION", ""),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	return cfg
}

// RequireGemini falha rápido quando a chave do provedor não foi configurada
func (c *Config) RequireGemini() {
	if c.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required but not set")
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
