// Recomendador de linha de comando: monta o motor completo (prompt, Gemini,
// parser, cache) e imprime a lista ranqueada para um usuário descrito por
// flags. Útil para testar prompts e catálogos sem subir o servidor HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/prefeitura-rio/app-recomendacao/internal/catalog"
	"github.com/prefeitura-rio/app-recomendacao/internal/config"
	"github.com/prefeitura-rio/app-recomendacao/internal/models"
	"github.com/prefeitura-rio/app-recomendacao/internal/recommender"
	"github.com/prefeitura-rio/app-recomendacao/internal/recommender/adapter"
)

func main() {
	// Flags
	userID := flag.String("usuario", "cli", "Identificador do usuário")
	interesse := flag.String("interesse", "", "Interesse do usuário (obrigatório)")
	extra := flag.String("atributos", "", "Atributos extras no formato k=v,k=v")
	catalogPath := flag.String("catalogo", "", "Arquivo JSON de catálogo; vazio usa o embutido")
	maxResults := flag.Int("max", 5, "Máximo de recomendações")
	temperature := flag.Float64("temperatura", 0.2, "Temperatura do modelo (0-2)")
	timeoutMs := flag.Int("timeout", 15000, "Timeout por tentativa em ms")
	retries := flag.Int("retries", 2, "Retentativas para falhas transientes")

	flag.Parse()

	if *interesse == "" {
		fmt.Fprintln(os.Stderr, "Uso: recomendar -interesse \"fotografia de paisagem\" [-catalogo itens.json]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Carrega .env
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	cfg.RequireGemini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		log.Fatalf("Erro ao criar cliente Gemini: %v", err)
	}

	gemini := adapter.NewGeminiAdapter(client, adapter.GeminiConfig{
		ChatModel:       cfg.GeminiChatModel,
		MaxOutputTokens: cfg.GeminiMaxOutputTokens,
	})
	engine := recommender.NewEngine(gemini, nil, nil, recommender.DefaultOptions())

	candidates, err := loadCandidates(*catalogPath)
	if err != nil {
		log.Fatalf("Erro ao carregar catálogo: %v", err)
	}

	user := models.UserContext{
		ID:         *userID,
		Attributes: buildAttributes(*interesse, *extra),
	}
	recCfg := models.RecommendationConfig{
		MaxResults:  *maxResults,
		Temperature: *temperature,
		Rationale:   true,
		TimeoutMs:   *timeoutMs,
		RetryCount:  *retries,
	}

	start := time.Now()
	result, err := engine.Recommend(ctx, user, candidates, recCfg)
	if err != nil {
		log.Fatalf("Erro na recomendação: %v", err)
	}

	fmt.Printf("Recomendações para %q (%d candidatos, %.0fms, %d chamadas ao modelo):\n\n",
		*interesse, len(candidates), float64(time.Since(start).Milliseconds()), result.Meta.ModelCalls)
	for _, rec := range result.Recommendations {
		fmt.Printf("%2d. %-8s score=%.3f\n", rec.Rank, rec.ItemID, rec.Score)
		if rec.Rationale != "" {
			fmt.Printf("    %s\n", rec.Rationale)
		}
	}
}

// loadCandidates resolve a fonte de candidatos da CLI
func loadCandidates(path string) ([]models.CandidateItem, error) {
	if path == "" {
		return catalog.Default().Candidates(), nil
	}
	c, err := catalog.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return c.Candidates(), nil
}

// buildAttributes monta os atributos do usuário a partir das flags
func buildAttributes(interesse, extra string) map[string]string {
	attrs := map[string]string{"interesse": interesse}
	for _, pair := range strings.Split(extra, ",") {
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			continue
		}
		attrs[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return attrs
}
