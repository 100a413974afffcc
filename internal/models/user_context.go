package models

// UserContext representa o contexto do usuário para uma recomendação.
// Imutável após construído; fornecido fresco a cada chamada.
type UserContext struct {
	// Identificador opaco do usuário
	ID string `json:"id" binding:"required" example:"u_8842"`
	// Atributos livres: preferências, resumo de histórico, query em texto livre
	Attributes map[string]string `json:"attributes" example:"interesse:fotografia de paisagens"`
}
