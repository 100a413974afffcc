// Package catalog fornece os itens candidatos para a camada de apresentação.
// O motor de recomendação recebe candidatos em memória; este pacote é a cola
// que os carrega de um arquivo JSON local ou de uma collection Typesense.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/prefeitura-rio/app-recomendacao/internal/models"
)

// Item é um produto do catálogo
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image,omitempty"`
}

// Catalog agrupa itens por categoria
type Catalog map[string][]Item

// LoadFromFile carrega um catálogo de um arquivo JSON
// (objeto categoria → lista de itens)
func LoadFromFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler catálogo %s: %w", path, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("erro ao parsear catálogo %s: %w", path, err)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("catálogo %s vazio", path)
	}
	return c, nil
}

// Default retorna o catálogo embutido de demonstração
func Default() Catalog {
	return Catalog{
		"Esportes e Fitness": {
			{ID: "S001", Name: "Nike Air Zoom Pegasus", Price: 4500, Description: "Tênis de corrida premium"},
			{ID: "S002", Name: "Fitbit Charge 5", Price: 6900, Description: "Smartwatch para treinos"},
			{ID: "S003", Name: "Yoga Mat Premium", Price: 1200, Description: "Tapete de yoga de alta qualidade"},
		},
		"Fotografia": {
			{ID: "P001", Name: "Sony A7 III", Price: 59900, Description: "Câmera mirrorless profissional"},
			{ID: "P002", Name: "DJI Mini 3 Pro", Price: 29900, Description: "Drone compacto para fotografia"},
			{ID: "P003", Name: "Peak Design Backpack", Price: 8900, Description: "Mochila premium para equipamento fotográfico"},
		},
		"Cozinha": {
			{ID: "C001", Name: "Instant Pot Duo", Price: 3900, Description: "Panela multifuncional"},
			{ID: "C002", Name: "Vitamix Blender", Price: 15900, Description: "Liquidificador profissional"},
			{ID: "C003", Name: "Kitchen Scale Digital", Price: 890, Description: "Balança digital de alta precisão"},
		},
	}
}

// Candidates converte o catálogo na sequência de candidatos do motor.
// Categorias saem em ordem alfabética e itens na ordem do arquivo: a
// sequência precisa ser estável porque participa do fingerprint do cache.
func (c Catalog) Candidates() []models.CandidateItem {
	categories := make([]string, 0, len(c))
	for name := range c {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var out []models.CandidateItem
	for _, category := range categories {
		for _, item := range c[category] {
			price := item.Price
			out = append(out, models.CandidateItem{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				Tags: map[string]string{
					"categoria": category,
					"preco":     fmt.Sprintf("%.2f", price),
				},
			})
		}
	}
	return out
}

// StaticSource expõe um catálogo em memória como fonte de candidatos.
// A conversão acontece uma vez na construção; toda chamada devolve a
// mesma sequência estável.
type StaticSource struct {
	items []models.CandidateItem
}

// NewStaticSource cria uma fonte de candidatos a partir de um catálogo
func NewStaticSource(c Catalog) *StaticSource {
	return &StaticSource{items: c.Candidates()}
}

// Candidates retorna os candidatos do catálogo
func (s *StaticSource) Candidates(_ context.Context) ([]models.CandidateItem, error) {
	return s.items, nil
}

// Categories retorna os nomes de categoria em ordem alfabética
func (c Catalog) Categories() []string {
	categories := make([]string, 0, len(c))
	for name := range c {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	return categories
}
