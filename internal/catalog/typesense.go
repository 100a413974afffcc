package catalog

import (
	"context"
	"fmt"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"

	"github.com/prefeitura-rio/app-recomendacao/internal/models"
)

// TypesenseProvider carrega candidatos de uma collection Typesense.
// Fonte remota opcional de catálogo; o motor continua recebendo a lista em
// memória.
type TypesenseProvider struct {
	client     *typesense.Client
	collection string
}

// NewTypesenseProvider cria um provider apontando para uma collection
func NewTypesenseProvider(serverURL, apiKey, collection string) *TypesenseProvider {
	client := typesense.NewClient(
		typesense.WithServer(serverURL),
		typesense.WithAPIKey(apiKey),
	)
	return &TypesenseProvider{
		client:     client,
		collection: collection,
	}
}

// Candidates busca todos os documentos da collection e os converte em
// candidatos, paginando até esgotar (250 é o máximo por página do Typesense)
func (p *TypesenseProvider) Candidates(ctx context.Context) ([]models.CandidateItem, error) {
	var out []models.CandidateItem

	page := 1
	perPage := 250
	for {
		searchParams := &api.SearchCollectionParams{
			Q:       stringPtr("*"),
			Page:    intPtr(page),
			PerPage: intPtr(perPage),
		}

		result, err := p.client.Collection(p.collection).Documents().Search(ctx, searchParams)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar collection %s: %w", p.collection, err)
		}
		if result.Hits == nil || len(*result.Hits) == 0 {
			break
		}

		for _, hit := range *result.Hits {
			if hit.Document == nil {
				continue
			}
			item := documentToCandidate(*hit.Document)
			if item.ID != "" {
				out = append(out, item)
			}
		}

		if len(*result.Hits) < perPage {
			break
		}
		page++
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("collection %s sem documentos", p.collection)
	}
	return out, nil
}

// documentToCandidate mapeia um documento Typesense para um candidato.
// Campos reconhecidos: id, name/nome, description/descricao; o resto vira tag.
func documentToCandidate(doc map[string]interface{}) models.CandidateItem {
	item := models.CandidateItem{
		ID:          getString(doc, "id"),
		Name:        getString(doc, "name"),
		Description: getString(doc, "description"),
	}
	if item.Name == "" {
		item.Name = getString(doc, "nome")
	}
	if item.Description == "" {
		item.Description = getString(doc, "descricao")
	}

	tags := make(map[string]string)
	for key, value := range doc {
		switch key {
		case "id", "name", "nome", "description", "descricao", "embedding":
			continue
		}
		if s, ok := value.(string); ok {
			tags[key] = s
		}
	}
	if len(tags) > 0 {
		item.Tags = tags
	}
	return item
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }
