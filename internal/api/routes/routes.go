package routes

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"google.golang.org/genai"

	"github.com/prefeitura-rio/app-recomendacao/internal/api/handlers"
	"github.com/prefeitura-rio/app-recomendacao/internal/catalog"
	"github.com/prefeitura-rio/app-recomendacao/internal/config"
	middlewares "github.com/prefeitura-rio/app-recomendacao/internal/middleware"
	"github.com/prefeitura-rio/app-recomendacao/internal/recommender"
	"github.com/prefeitura-rio/app-recomendacao/internal/recommender/adapter"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.CorrelationID())
	r.Use(middlewares.RequestTiming())

	gemini := newGeminiAdapter(cfg)
	engine := recommender.NewEngine(gemini, nil, nil, recommender.Options{
		MaxPromptItems:          cfg.Recommend.MaxPromptItems,
		CacheTTL:                time.Duration(cfg.Recommend.CacheTTLMinutes) * time.Minute,
		CacheMaxSize:            cfg.Recommend.CacheMaxSize,
		CacheTemperatureCeiling: cfg.Recommend.CacheTempCeiling,
		BackoffBase:             time.Duration(cfg.Recommend.BackoffBaseMs) * time.Millisecond,
		BackoffMax:              time.Duration(cfg.Recommend.BackoffMaxMs) * time.Millisecond,
	})
	source := newCandidateSource(cfg)

	recommendHandler := handlers.NewRecommendHandler(engine, source, cfg.Recommend)
	catalogHandler := handlers.NewCatalogHandler(source)
	healthHandler := handlers.NewHealthHandler(gemini)

	api := r.Group("/api/v1")
	{
		api.POST("/recomendacoes", recommendHandler.Recommend)
		api.GET("/catalogo", catalogHandler.List)
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// newGeminiAdapter inicializa o cliente Gemini e o adapter do motor
func newGeminiAdapter(cfg *config.Config) *adapter.GeminiAdapter {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		log.Printf("Erro ao inicializar cliente Gemini: %v", err)
		client = nil
	}

	return adapter.NewGeminiAdapter(client, adapter.GeminiConfig{
		ChatModel:       cfg.GeminiChatModel,
		MaxOutputTokens: cfg.GeminiMaxOutputTokens,
	})
}

// newCandidateSource escolhe a fonte de candidatos: Typesense quando
// configurado, arquivo JSON local, ou o catálogo embutido de demonstração
func newCandidateSource(cfg *config.Config) handlers.CandidateSource {
	if cfg.TypesenseURL != "" && cfg.TypesenseCollection != "" {
		log.Printf("Catálogo: Typesense collection %s", cfg.TypesenseCollection)
		return catalog.NewTypesenseProvider(cfg.TypesenseURL, cfg.TypesenseAPIKey, cfg.TypesenseCollection)
	}

	if cfg.CatalogPath != "" {
		c, err := catalog.LoadFromFile(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("Erro ao carregar catálogo: %v", err)
		}
		log.Printf("Catálogo: %s (%d categorias)", cfg.CatalogPath, len(c))
		return catalog.NewStaticSource(c)
	}

	log.Printf("Catálogo: embutido de demonstração")
	return catalog.NewStaticSource(catalog.Default())
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Correlation-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
