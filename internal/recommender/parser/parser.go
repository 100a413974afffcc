package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/prefeitura-rio/app-recomendacao/internal/models"
)

// Falhas de parsing. Qualquer uma aborta o parse inteiro: resultado parcial
// nunca é exposto, para não apresentar recomendações sem fundamento no
// conjunto de candidatos.
var (
	ErrMalformedOutput        = errors.New("saída do modelo malformada")
	ErrUnknownItemReference   = errors.New("referência a item fora do conjunto de candidatos")
	ErrDuplicateItemReference = errors.New("referência duplicada a item")
)

// rawRecommendation é o bloco estruturado esperado na resposta do modelo
type rawRecommendation struct {
	ItemID    string   `json:"item_id"`
	Score     *float64 `json:"score"`
	Rationale string   `json:"rationale"`
}

type rawResponse struct {
	Recommendations []rawRecommendation `json:"recommendations"`
}

// Parse converte o texto bruto do modelo em uma RankedList validada.
//
// O rank eventualmente emitido pelo modelo é apenas consultivo: a ordenação
// canônica é re-derivada aqui por score decrescente, com desempate estável
// pela ordem original dos candidatos, e ranks contíguos 1..n.
func Parse(raw string, candidates []models.CandidateItem, cfg models.RecommendationConfig) (models.RankedList, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, fmt.Errorf("%w: nenhum JSON encontrado na resposta", ErrMalformedOutput)
	}

	var resp rawResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(resp.Recommendations) == 0 {
		return nil, fmt.Errorf("%w: lista de recomendações vazia", ErrMalformedOutput)
	}

	// Posição original de cada candidato, para o desempate estável
	position := make(map[string]int, len(candidates))
	for i, item := range candidates {
		position[item.ID] = i
	}

	type entry struct {
		rec models.RankedRecommendation
		pos int
	}

	seen := make(map[string]bool, len(resp.Recommendations))
	entries := make([]entry, 0, len(resp.Recommendations))

	for _, rec := range resp.Recommendations {
		if rec.ItemID == "" || rec.Score == nil {
			return nil, fmt.Errorf("%w: recomendação sem item_id ou score", ErrMalformedOutput)
		}
		if math.IsNaN(*rec.Score) || math.IsInf(*rec.Score, 0) {
			return nil, fmt.Errorf("%w: score inválido para %q", ErrMalformedOutput, rec.ItemID)
		}

		pos, ok := position[rec.ItemID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownItemReference, rec.ItemID)
		}
		if seen[rec.ItemID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateItemReference, rec.ItemID)
		}
		seen[rec.ItemID] = true

		ranked := models.RankedRecommendation{
			ItemID: rec.ItemID,
			Score:  *rec.Score,
		}
		if cfg.Rationale {
			ranked.Rationale = strings.TrimSpace(rec.Rationale)
		}
		entries = append(entries, entry{rec: ranked, pos: pos})
	}

	// Score decrescente; empates quebrados pela ordem original do candidato
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].rec.Score != entries[j].rec.Score {
			return entries[i].rec.Score > entries[j].rec.Score
		}
		return entries[i].pos < entries[j].pos
	})

	if len(entries) > cfg.MaxResults {
		entries = entries[:cfg.MaxResults]
	}

	list := make(models.RankedList, len(entries))
	for i, e := range entries {
		e.rec.Rank = i + 1
		list[i] = e.rec
	}

	return list, nil
}

// extractJSON extrai JSON de uma resposta que pode vir cercada de markdown
func extractJSON(s string) string {
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	}

	if idx := strings.Index(s, "{"); idx != -1 {
		s = s[idx:]
	} else {
		return ""
	}

	return strings.TrimSpace(s)
}
