package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-recomendacao/internal/models"
)

// CatalogHandler expõe o catálogo de candidatos configurado no servidor
type CatalogHandler struct {
	source CandidateSource
}

// NewCatalogHandler cria um novo handler de catálogo
func NewCatalogHandler(source CandidateSource) *CatalogHandler {
	return &CatalogHandler{source: source}
}

// CatalogResponse lista os itens candidatos disponíveis
type CatalogResponse struct {
	Total int                    `json:"total"`
	Items []models.CandidateItem `json:"items"`
}

// List godoc
// @Summary Lista o catálogo de candidatos
// @Description Retorna os itens que o servidor usa como candidatos quando a
// @Description requisição de recomendação não traz candidatos inline.
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Failure 503 {object} ErrorResponse "Catálogo indisponível"
// @Router /api/v1/catalogo [get]
func (h *CatalogHandler) List(c *gin.Context) {
	if h.source == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Nenhum catálogo configurado"})
		return
	}

	items, err := h.source.Candidates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "Falha ao carregar catálogo",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, CatalogResponse{
		Total: len(items),
		Items: items,
	})
}
