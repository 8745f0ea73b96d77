package dto

// CriarProdutoRequest corpo de POST /produtos. Os campos chegam já aparados
// pelo caso de uso.
type CriarProdutoRequest struct {
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}
