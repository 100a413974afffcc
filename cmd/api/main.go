package main

import (
	"log"

	_ "github.com/prefeitura-rio/app-recomendacao/docs"
	"github.com/prefeitura-rio/app-recomendacao/internal/api/routes"
	"github.com/prefeitura-rio/app-recomendacao/internal/config"
	"github.com/prefeitura-rio/app-recomendacao/internal/observability"
)

// @title           API de Recomendação
// @version         1.0
// @description     API de recomendação de itens: gera listas ranqueadas a partir do contexto do usuário e de um catálogo de candidatos, usando Google Gemini com saída estruturada, cache de resultados e retentativas com backoff
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      services.staging.app.dados.rio/app-recomendacao

func main() {

	cfg := config.LoadConfig()
	cfg.RequireGemini()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	r := routes.SetupRouter(cfg)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	err := r.Run(":" + cfg.ServerPort)
	if err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
