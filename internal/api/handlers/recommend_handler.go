package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-recomendacao/internal/config"
	"github.com/prefeitura-rio/app-recomendacao/internal/models"
	"github.com/prefeitura-rio/app-recomendacao/internal/recommender"
)

// CandidateSource fornece candidatos quando a requisição não os traz inline
type CandidateSource interface {
	Candidates(ctx context.Context) ([]models.CandidateItem, error)
}

// RecommendHandler gerencia o endpoint de recomendação
type RecommendHandler struct {
	engine   *recommender.Engine
	source   CandidateSource
	defaults config.RecommendConfig
}

// NewRecommendHandler cria um novo handler de recomendação
func NewRecommendHandler(engine *recommender.Engine, source CandidateSource, defaults config.RecommendConfig) *RecommendHandler {
	return &RecommendHandler{
		engine:   engine,
		source:   source,
		defaults: defaults,
	}
}

// RecommendRequest é o corpo da requisição de recomendação
// @Description Contexto do usuário, candidatos opcionais e configuração da chamada.
type RecommendRequest struct {
	// Contexto do usuário (obrigatório)
	User models.UserContext `json:"user" binding:"required"`
	// Candidatos inline. Vazio usa o catálogo configurado no servidor.
	Candidates []models.CandidateItem `json:"candidates,omitempty"`
	// Configuração da chamada. Campos omitidos recebem os defaults do servidor.
	Config *RecommendRequestConfig `json:"config,omitempty"`
}

// RecommendRequestConfig espelha RecommendationConfig com campos opcionais
type RecommendRequestConfig struct {
	MaxResults  *int     `json:"max_results,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Rationale   *bool    `json:"rationale,omitempty"`
	TimeoutMs   *int     `json:"timeout_ms,omitempty"`
	RetryCount  *int     `json:"retry_count,omitempty"`
}

// ErrorResponse é o corpo de erro padrão da API
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Recommend godoc
// @Summary Recomendação de itens
// @Description Gera uma lista ranqueada de recomendações para o usuário a partir
// @Description dos candidatos informados (ou do catálogo configurado), usando LLM.
// @Description
// @Description Toda recomendação retornada referencia um item do conjunto de
// @Description candidatos; ranks são contíguos (1..n) e os scores decrescentes.
// @Description Chamadas idênticas com temperatura baixa são servidas do cache.
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Requisição de recomendação"
// @Success 200 {object} models.RecommendationResult "Lista ranqueada"
// @Failure 400 {object} ErrorResponse "Entrada inválida"
// @Failure 401 {object} ErrorResponse "Credenciais do provedor rejeitadas"
// @Failure 413 {object} ErrorResponse "Candidatos excedem o limite do prompt"
// @Failure 502 {object} ErrorResponse "Resposta do modelo não parseável"
// @Failure 503 {object} ErrorResponse "Modelo indisponível; tente novamente"
// @Router /api/v1/recomendacoes [post]
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Parâmetros inválidos",
			Details: err.Error(),
		})
		return
	}

	candidates := req.Candidates
	if len(candidates) == 0 {
		if h.source == nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Nenhum candidato informado e nenhum catálogo configurado",
			})
			return
		}
		var err error
		candidates, err = h.source.Candidates(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error:   "Falha ao carregar catálogo",
				Details: err.Error(),
			})
			return
		}
	}

	cfg := h.resolveConfig(req.Config)

	result, err := h.engine.Recommend(c.Request.Context(), req.User, candidates, cfg)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// resolveConfig aplica os defaults do servidor aos campos omitidos
func (h *RecommendHandler) resolveConfig(rc *RecommendRequestConfig) models.RecommendationConfig {
	cfg := models.RecommendationConfig{
		MaxResults:  h.defaults.DefaultMaxResults,
		Temperature: 0.2,
		Rationale:   true,
		TimeoutMs:   h.defaults.DefaultTimeoutMs,
		RetryCount:  h.defaults.DefaultRetryCount,
	}
	if rc == nil {
		return cfg
	}
	if rc.MaxResults != nil {
		cfg.MaxResults = *rc.MaxResults
	}
	if rc.Temperature != nil {
		cfg.Temperature = *rc.Temperature
	}
	if rc.Rationale != nil {
		cfg.Rationale = *rc.Rationale
	}
	if rc.TimeoutMs != nil {
		cfg.TimeoutMs = *rc.TimeoutMs
	}
	if rc.RetryCount != nil {
		cfg.RetryCount = *rc.RetryCount
	}
	return cfg
}

// statusFor mapeia a taxonomia de falhas do motor para HTTP
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrPromptTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrUnparsableResponse):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrModelUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrCancelled):
		// 499: cliente encerrou a requisição (convenção nginx)
		return 499
	}
	return http.StatusInternalServerError
}
