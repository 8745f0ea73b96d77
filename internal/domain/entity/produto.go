package entity

// Produto é a unidade de estoque identificável por um código único de
// negócio. O ID é identidade atribuída pelo servidor; a busca é sempre
// pelo Codigo, nunca pelo ID.
type Produto struct {
	ID     int    `json:"id,omitempty"`
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}
