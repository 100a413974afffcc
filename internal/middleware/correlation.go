package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/prefeitura-rio/app-recomendacao/internal/observability"
)

// Header de correlação aceito na borda HTTP
const CorrelationHeader = "X-Correlation-ID"

// CorrelationID propaga o correlation ID do header para o contexto da
// requisição, gerando um UUID novo quando o chamador não enviou nenhum.
// Todos os eventos do motor e a resposta HTTP carregam o mesmo ID.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := observability.WithCorrelationID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(CorrelationHeader, id)

		c.Next()
	}
}
