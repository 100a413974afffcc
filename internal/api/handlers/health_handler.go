package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sony/gobreaker"

	"github.com/prefeitura-rio/app-recomendacao/internal/recommender/adapter"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	gemini *adapter.GeminiAdapter
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(gemini *adapter.GeminiAdapter) *HealthHandler {
	return &HealthHandler{
		gemini: gemini,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	// Liveness apenas confirma que o app está rodando
	// Sem checagens de dependências externas
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (valida o provedor LLM)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.checkGemini(&response) != "ok" {
		response.Status = "not_ready"
		response.Error = "Gemini not available"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação (para monitoramento externo de uptime)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.checkGemini(&response) != "ok" {
		response.Status = "unhealthy"
		response.Error = "Gemini availability check failed"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// checkGemini inspeciona o adapter sem gastar quota do provedor: cliente
// inicializado e circuit breaker fora do estado aberto.
func (h *HealthHandler) checkGemini(response *HealthResponse) string {
	status := "ok"
	switch {
	case h.gemini == nil || !h.gemini.IsAvailable():
		status = "not_configured"
	case h.gemini.BreakerState() == gobreaker.StateOpen:
		status = "circuit_open"
	}
	response.Checks["gemini"] = status
	return status
}
