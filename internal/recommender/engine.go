package recommender

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/prefeitura-rio/app-recomendacao/internal/models"
	"github.com/prefeitura-rio/app-recomendacao/internal/observability"
	"github.com/prefeitura-rio/app-recomendacao/internal/recommender/adapter"
	"github.com/prefeitura-rio/app-recomendacao/internal/recommender/parser"
	"github.com/prefeitura-rio/app-recomendacao/internal/recommender/prompt"
)

// Options configura o motor de recomendação
type Options struct {
	// Teto de candidatos renderizáveis em um prompt
	MaxPromptItems int
	// TTL das entradas do cache de resultados
	CacheTTL time.Duration
	// Capacidade do cache de resultados
	CacheMaxSize int
	// Acima desta temperatura a chamada não consulta nem grava o cache:
	// memoizar uma chamada intencionalmente estocástica congelaria a
	// variabilidade que o chamador pediu
	CacheTemperatureCeiling float64
	// Delay base do backoff exponencial entre retentativas
	BackoffBase time.Duration
	// Teto do delay de backoff
	BackoffMax time.Duration
}

// DefaultOptions retorna as opções padrão do motor
func DefaultOptions() Options {
	return Options{
		MaxPromptItems:          50,
		CacheTTL:                5 * time.Minute,
		CacheMaxSize:            500,
		CacheTemperatureCeiling: 0.3,
		BackoffBase:             500 * time.Millisecond,
		BackoffMax:              8 * time.Second,
	}
}

// Engine é o orquestrador de recomendações: compõe builder de prompt,
// cliente de modelo, parser e cache na única operação pública Recommend.
// Não guarda estado mutável entre chamadas além do cache compartilhado;
// chamadas independentes executam em paralelo.
type Engine struct {
	client    adapter.ModelClient
	builder   *prompt.Builder
	store     ResultStore
	collector observability.Collector
	opts      Options
}

// NewEngine cria um novo motor. O cache e o coletor são dependências
// explícitas (nada de singleton de processo): testes injetam instâncias
// isoladas. store e collector nulos recebem implementações padrão.
func NewEngine(client adapter.ModelClient, store ResultStore, collector observability.Collector, opts Options) *Engine {
	def := DefaultOptions()
	if opts.MaxPromptItems <= 0 {
		opts.MaxPromptItems = def.MaxPromptItems
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = def.CacheTTL
	}
	if opts.CacheMaxSize <= 0 {
		opts.CacheMaxSize = def.CacheMaxSize
	}
	if opts.CacheTemperatureCeiling <= 0 {
		opts.CacheTemperatureCeiling = def.CacheTemperatureCeiling
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = def.BackoffBase
	}
	if opts.BackoffMax <= 0 {
		opts.BackoffMax = def.BackoffMax
	}

	if store == nil {
		store = NewResultCache(opts.CacheTTL, opts.CacheMaxSize)
	}
	if collector == nil {
		collector = observability.NewLogCollector()
	}

	return &Engine{
		client:    client,
		builder:   prompt.NewBuilder(opts.MaxPromptItems),
		store:     store,
		collector: collector,
		opts:      opts,
	}
}

// Recommend executa a recomendação: validação → cache → prompt → invocação
// (com retentativas e backoff) → parse (com uma retentativa corretiva) →
// cache → retorno. Toda falha embrulha exatamente um sentinela da taxonomia
// de models; nunca retorna lista parcial junto com erro.
func (e *Engine) Recommend(ctx context.Context, user models.UserContext, candidates []models.CandidateItem, cfg models.RecommendationConfig) (*models.RecommendationResult, error) {
	startTime := time.Now()
	corrID := observability.CorrelationIDFrom(ctx)

	// Validating
	if err := cfg.Validate(); err != nil {
		return nil, e.fail(ctx, corrID, err)
	}
	if len(candidates) == 0 {
		return nil, e.fail(ctx, corrID, fmt.Errorf("%w: conjunto de candidatos vazio", models.ErrInvalidInput))
	}
	if err := e.checkCancel(ctx); err != nil {
		return nil, e.fail(ctx, corrID, err)
	}

	// Chamadas estocásticas não passam pelo cache
	cacheable := cfg.Temperature <= e.opts.CacheTemperatureCeiling

	// CacheLookup
	var fingerprint string
	if cacheable {
		fingerprint = Fingerprint(user, candidates, cfg)
		cached, hit, err := e.store.Get(fingerprint)
		if err != nil {
			// Falha de leitura do store degrada para miss
			log.Printf("[%s] falha ao ler cache: %v", corrID, err)
		} else if hit {
			e.emit(ctx, corrID, "recommend.cache_hit", map[string]any{"fingerprint": fingerprint})
			return &models.RecommendationResult{
				UserID:          user.ID,
				Recommendations: cached,
				Meta: models.ResultMeta{
					CacheHit: true,
					TotalMs:  float64(time.Since(startTime).Microseconds()) / 1000,
				},
			}, nil
		}
		e.emit(ctx, corrID, "recommend.cache_miss", map[string]any{"fingerprint": fingerprint})
	} else {
		e.emit(ctx, corrID, "recommend.cache_bypass", map[string]any{"temperature": cfg.Temperature})
	}
	if err := e.checkCancel(ctx); err != nil {
		return nil, e.fail(ctx, corrID, err)
	}

	// Building
	promptText, err := e.builder.Build(user, candidates, cfg)
	if err != nil {
		return nil, e.fail(ctx, corrID, err)
	}
	if err := e.checkCancel(ctx); err != nil {
		return nil, e.fail(ctx, corrID, err)
	}

	// Invoking
	raw, calls, err := e.invokeWithRetry(ctx, corrID, promptText, cfg)
	if err != nil {
		return nil, e.fail(ctx, corrID, err)
	}

	// Parsing, com uma única retentativa corretiva em caso de falha
	// estrutural (loop ilimitado de reprompt seria indeterminístico)
	list, parseErr := parser.Parse(raw, candidates, cfg)
	if parseErr != nil {
		e.emit(ctx, corrID, "recommend.corrective_retry", map[string]any{"cause": parseErr.Error()})

		corrective := e.builder.BuildCorrective(promptText, parseErr)
		raw, moreCalls, invErr := e.invokeWithRetry(ctx, corrID, corrective, cfg)
		calls += moreCalls
		if invErr != nil {
			return nil, e.fail(ctx, corrID, invErr)
		}

		list, parseErr = parser.Parse(raw, candidates, cfg)
		if parseErr != nil {
			return nil, e.fail(ctx, corrID, fmt.Errorf("%w: %v", models.ErrUnparsableResponse, parseErr))
		}
	}

	// Caching: melhor esforço, falha de escrita não derruba a chamada
	if cacheable {
		if err := e.store.Set(fingerprint, list); err != nil {
			log.Printf("[%s] falha ao gravar cache: %v", corrID, err)
		}
	}

	// Done
	e.emit(ctx, corrID, "recommend.done", map[string]any{
		"results":     len(list),
		"model_calls": calls,
	})

	return &models.RecommendationResult{
		UserID:          user.ID,
		Recommendations: list,
		Meta: models.ResultMeta{
			CacheHit:   false,
			ModelCalls: calls,
			TotalMs:    float64(time.Since(startTime).Microseconds()) / 1000,
		},
	}, nil
}

// invokeWithRetry chama o modelo com até cfg.RetryCount retentativas para
// falhas transientes, com backoff exponencial (delay base dobrando a cada
// tentativa, com teto). Falha de credencial nunca é retentada. O timeout é
// por tentativa, não acumulado.
func (e *Engine) invokeWithRetry(ctx context.Context, corrID, promptText string, cfg models.RecommendationConfig) (string, int, error) {
	attempts := cfg.RetryCount + 1
	delay := e.opts.BackoffBase

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			e.emit(ctx, corrID, "recommend.retry", map[string]any{
				"attempt":  attempt,
				"delay_ms": delay.Milliseconds(),
				"cause":    lastErr.Error(),
			})
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", attempt, fmt.Errorf("%w: %v", models.ErrCancelled, ctx.Err())
			}
			delay *= 2
			if delay > e.opts.BackoffMax {
				delay = e.opts.BackoffMax
			}
		}

		raw, err := e.client.Invoke(ctx, promptText, cfg)
		if err == nil {
			return raw, attempt + 1, nil
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, models.ErrCancelled) {
			return "", attempt + 1, fmt.Errorf("%w: invocação abortada", models.ErrCancelled)
		}
		if errors.Is(err, adapter.ErrAuth) {
			return "", attempt + 1, fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
		}
		if !adapter.IsTransient(err) {
			return "", attempt + 1, fmt.Errorf("%w: %v", models.ErrModelUnavailable, err)
		}
		lastErr = err
	}

	return "", attempts, fmt.Errorf("%w: retentativas esgotadas: %v", models.ErrModelUnavailable, lastErr)
}

// checkCancel traduz cancelamento externo nas fronteiras de estado
func (e *Engine) checkCancel(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrCancelled, err)
	}
	return nil
}

// fail emite o evento de falha e repassa o erro tipado ao chamador
func (e *Engine) fail(ctx context.Context, corrID string, err error) error {
	e.emit(ctx, corrID, "recommend.failed", map[string]any{"error": err.Error()})
	return err
}

func (e *Engine) emit(ctx context.Context, corrID, event string, detail map[string]any) {
	e.collector.Emit(ctx, observability.Event{
		Timestamp:     time.Now(),
		CorrelationID: corrID,
		Event:         event,
		Detail:        detail,
	})
}
