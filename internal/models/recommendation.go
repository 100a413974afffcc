package models

// RankedRecommendation é um item recomendado com posição e score.
// O identificador sempre referencia um candidato do conjunto de entrada.
type RankedRecommendation struct {
	// Identificador do item (membro do conjunto de candidatos da chamada)
	ItemID string `json:"item_id" example:"P001"`
	// Posição 1-based, única e contígua dentro da lista
	Rank int `json:"rank" example:"1"`
	// Score de relevância (maior = mais relevante)
	Score float64 `json:"score" example:"0.91"`
	// Justificativa opcional em texto livre
	Rationale string `json:"rationale,omitempty" example:"Combina com o interesse em fotografia"`
}

// RankedList é a lista ordenada de recomendações (score decrescente,
// ranks exatamente 1..len sem lacunas).
type RankedList []RankedRecommendation

// Clone retorna uma cópia independente da lista.
// O cache devolve sempre cópias para que chamadores não compartilhem estado.
func (l RankedList) Clone() RankedList {
	if l == nil {
		return nil
	}
	out := make(RankedList, len(l))
	copy(out, l)
	return out
}

// ResultMeta carrega metadados de execução de uma recomendação
type ResultMeta struct {
	// Resultado veio do cache
	CacheHit bool `json:"cache_hit" example:"false"`
	// Total de invocações do modelo nesta chamada
	ModelCalls int `json:"model_calls" example:"1"`
	// Tempo total em milissegundos
	TotalMs float64 `json:"total_ms" example:"812.4"`
}

// RecommendationResult é o retorno completo da operação de recomendação
type RecommendationResult struct {
	UserID          string     `json:"user_id"`
	Recommendations RankedList `json:"recommendations"`
	Meta            ResultMeta `json:"meta"`
}
