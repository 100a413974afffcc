package models

// CandidateItem representa um item candidato à recomendação.
// A ordem da sequência de candidatos não carrega semântica, mas precisa ser
// estável: ela participa do fingerprint e do desempate de ranking.
type CandidateItem struct {
	// Identificador único do item dentro do catálogo
	ID string `json:"id" binding:"required" example:"P001"`
	// Nome de exibição
	Name string `json:"name" example:"Sony A7 III"`
	// Descrição de exibição
	Description string `json:"description" example:"Câmera mirrorless profissional"`
	// Metadados livres (categoria, preço, etc)
	Tags map[string]string `json:"tags,omitempty"`
	// Score prévio opcional (popularidade, relevância editorial)
	PriorScore *float64 `json:"prior_score,omitempty" example:"0.42"`
}
