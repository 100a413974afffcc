package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-recomendacao/internal/config"
	"github.com/prefeitura-rio/app-recomendacao/internal/models"
	"github.com/prefeitura-rio/app-recomendacao/internal/observability"
	"github.com/prefeitura-rio/app-recomendacao/internal/recommender"
	"github.com/prefeitura-rio/app-recomendacao/internal/recommender/adapter"
)

type stubModel struct {
	response string
	err      error
}

func (s *stubModel) Invoke(context.Context, string, models.RecommendationConfig) (string, error) {
	return s.response, s.err
}

type stubSource struct {
	items []models.CandidateItem
	err   error
}

func (s *stubSource) Candidates(context.Context) ([]models.CandidateItem, error) {
	return s.items, s.err
}

func testDefaults() config.RecommendConfig {
	return config.RecommendConfig{
		DefaultMaxResults: 5,
		DefaultTimeoutMs:  1000,
		DefaultRetryCount: 0,
	}
}

func newTestRouter(client adapter.ModelClient, source CandidateSource) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := recommender.NewEngine(client, nil, observability.NopCollector{}, recommender.Options{
		BackoffBase: time.Millisecond,
		BackoffMax:  2 * time.Millisecond,
	})
	handler := NewRecommendHandler(engine, source, testDefaults())

	r := gin.New()
	r.POST("/api/v1/recomendacoes", handler.Recommend)
	return r
}

func postRecommend(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recomendacoes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const handlerResponse = `{"recommendations": [{"item_id": "P001", "score": 0.9, "rationale": "ok"}]}`

func TestRecommendEndpointSuccess(t *testing.T) {
	r := newTestRouter(&stubModel{response: handlerResponse}, nil)

	body := `{
		"user": {"id": "u_1", "attributes": {"interesse": "fotografia"}},
		"candidates": [{"id": "P001", "name": "Câmera"}]
	}`
	w := postRecommend(t, r, body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}

	var result models.RecommendationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("resposta não é JSON válido: %v", err)
	}
	if result.UserID != "u_1" {
		t.Errorf("UserID = %q, esperado u_1", result.UserID)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0].ItemID != "P001" {
		t.Errorf("recomendações = %+v", result.Recommendations)
	}
}

func TestRecommendEndpointUsesServerCatalog(t *testing.T) {
	source := &stubSource{items: []models.CandidateItem{{ID: "P001", Name: "Câmera"}}}
	r := newTestRouter(&stubModel{response: handlerResponse}, source)

	// Sem candidatos inline: o handler cai para a fonte configurada
	w := postRecommend(t, r, `{"user": {"id": "u_1"}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}
}

func TestRecommendEndpointErrors(t *testing.T) {
	tests := []struct {
		name       string
		client     adapter.ModelClient
		source     CandidateSource
		body       string
		wantStatus int
	}{
		{
			name:       "corpo inválido",
			client:     &stubModel{response: handlerResponse},
			body:       `{nope`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "sem usuário",
			client:     &stubModel{response: handlerResponse},
			body:       `{"candidates": [{"id": "P001"}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "sem candidatos e sem catálogo",
			client:     &stubModel{response: handlerResponse},
			body:       `{"user": {"id": "u_1"}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "config inválida",
			client:     &stubModel{response: handlerResponse},
			body:       `{"user": {"id": "u_1"}, "candidates": [{"id": "P001"}], "config": {"max_results": -1}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "provedor indisponível",
			client:     &stubModel{err: fmt.Errorf("%w: 503", adapter.ErrProvider)},
			body:       `{"user": {"id": "u_1"}, "candidates": [{"id": "P001"}]}`,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "credencial rejeitada",
			client:     &stubModel{err: fmt.Errorf("%w: chave inválida", adapter.ErrAuth)},
			body:       `{"user": {"id": "u_1"}, "candidates": [{"id": "P001"}]}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "resposta não parseável",
			client:     &stubModel{response: "lixo sem JSON"},
			body:       `{"user": {"id": "u_1"}, "candidates": [{"id": "P001"}]}`,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "falha ao carregar catálogo",
			client:     &stubModel{response: handlerResponse},
			source:     &stubSource{err: fmt.Errorf("collection indisponível")},
			body:       `{"user": {"id": "u_1"}}`,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(tt.client, tt.source)
			w := postRecommend(t, r, tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, esperado %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestResolveConfigDefaults(t *testing.T) {
	h := NewRecommendHandler(nil, nil, testDefaults())

	t.Run("config omitida", func(t *testing.T) {
		cfg := h.resolveConfig(nil)
		if cfg.MaxResults != 5 || cfg.TimeoutMs != 1000 || cfg.RetryCount != 0 {
			t.Errorf("defaults não aplicados: %+v", cfg)
		}
		if cfg.Temperature != 0.2 || !cfg.Rationale {
			t.Errorf("defaults fixos errados: %+v", cfg)
		}
	})

	t.Run("override parcial", func(t *testing.T) {
		max := 2
		temp := 0.8
		cfg := h.resolveConfig(&RecommendRequestConfig{MaxResults: &max, Temperature: &temp})
		if cfg.MaxResults != 2 || cfg.Temperature != 0.8 {
			t.Errorf("overrides não aplicados: %+v", cfg)
		}
		if cfg.TimeoutMs != 1000 {
			t.Errorf("campo omitido perdeu o default: %+v", cfg)
		}
	})
}
