package recommender

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/prefeitura-rio/app-recomendacao/internal/models"
)

// Delimitadores da forma canônica escapados dentro dos valores: sem isso,
// metadados contendo "|" ou "=" poderiam colidir entradas distintas na
// mesma chave de cache
var fieldEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`, "=", `\=`, "\n", `\n`)

// Fingerprint deriva a chave de cache de uma chamada. Função pura de
// (contexto do usuário, sequência de candidatos, configuração): entradas
// idênticas produzem o mesmo fingerprint, inclusive entre reinícios do
// processo. Mapas entram em ordem de chave para não depender da ordem de
// iteração do runtime.
func Fingerprint(user models.UserContext, candidates []models.CandidateItem, cfg models.RecommendationConfig) string {
	var sb strings.Builder

	sb.WriteString("u|")
	sb.WriteString(fieldEscaper.Replace(user.ID))
	for _, key := range sortedKeys(user.Attributes) {
		fmt.Fprintf(&sb, "|%s=%s", fieldEscaper.Replace(key), fieldEscaper.Replace(user.Attributes[key]))
	}

	for _, item := range candidates {
		fmt.Fprintf(&sb, "\nc|%s|%s|%s",
			fieldEscaper.Replace(item.ID), fieldEscaper.Replace(item.Name), fieldEscaper.Replace(item.Description))
		for _, key := range sortedKeys(item.Tags) {
			fmt.Fprintf(&sb, "|%s=%s", fieldEscaper.Replace(key), fieldEscaper.Replace(item.Tags[key]))
		}
		if item.PriorScore != nil {
			fmt.Fprintf(&sb, "|p=%.6f", *item.PriorScore)
		}
	}

	fmt.Fprintf(&sb, "\nk|%d|%.4f|%v|%d|%d",
		cfg.MaxResults, cfg.Temperature, cfg.Rationale, cfg.TimeoutMs, cfg.RetryCount)

	hash := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(hash[:16])
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
