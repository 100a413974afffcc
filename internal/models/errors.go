package models

import "errors"

// Taxonomia de falhas da operação de recomendação. Toda falha retornada
// pelo motor embrulha exatamente um destes sentinelas (errors.Is).
var (
	// Argumentos inválidos do chamador; nunca retentada
	ErrInvalidInput = errors.New("entrada inválida")
	// Conjunto de candidatos excede o limite de renderização; chamador deve paginar
	ErrPromptTooLarge = errors.New("conjunto de candidatos excede o limite do prompt")
	// Falha transiente do provedor após esgotar as retentativas
	ErrModelUnavailable = errors.New("modelo indisponível")
	// Falha de credencial; nunca retentada
	ErrUnauthorized = errors.New("credenciais inválidas para o provedor do modelo")
	// Saída do modelo estruturalmente inválida mesmo após a retentativa corretiva
	ErrUnparsableResponse = errors.New("resposta do modelo não parseável")
	// Cancelamento iniciado pelo chamador
	ErrCancelled = errors.New("recomendação cancelada")
)
