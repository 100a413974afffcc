package observability

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// Event é o evento estruturado emitido pelo motor de recomendação:
// transições de estado, falhas, cache hit/miss e retentativas.
type Event struct {
	Timestamp     time.Time      `json:"timestamp"`
	CorrelationID string         `json:"correlation_id"`
	Event         string         `json:"event"`
	Detail        map[string]any `json:"detail,omitempty"`
}

// Collector recebe eventos do motor. O motor não prescreve armazenamento
// nem formatação; qualquer coletor externo implementa esta interface.
type Collector interface {
	Emit(ctx context.Context, event Event)
}

// WithCorrelationID retorna um contexto carregando o correlation ID
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFrom extrai o correlation ID do contexto, gerando um novo
// UUID quando a chamada não veio por uma borda que o injetou
func CorrelationIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// LogCollector emite eventos no log padrão e, quando existe um span
// ativo no contexto, anexa o evento ao span.
type LogCollector struct{}

// NewLogCollector cria o coletor padrão
func NewLogCollector() *LogCollector {
	return &LogCollector{}
}

// Emit registra o evento
func (c *LogCollector) Emit(ctx context.Context, event Event) {
	log.Printf("[%s] %s detail=%v", event.CorrelationID, event.Event, event.Detail)

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := make([]attribute.KeyValue, 0, len(event.Detail)+1)
	attrs = append(attrs, attribute.String("correlation_id", event.CorrelationID))
	for k, v := range event.Detail {
		attrs = append(attrs, attribute.String(k, fmt.Sprintf("%v", v)))
	}
	span.AddEvent(event.Event, trace.WithAttributes(attrs...))
}

// NopCollector descarta todos os eventos (útil em testes)
type NopCollector struct{}

// Emit descarta o evento
func (NopCollector) Emit(context.Context, Event) {}
