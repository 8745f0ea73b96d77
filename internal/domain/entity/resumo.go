package entity

// ResumoProduto é uma linha do resumo: soma das quantidades de todas as
// contagens de um produto.
type ResumoProduto struct {
	Codigo          string `json:"codigo"`
	Nome            string `json:"nome"`
	TotalQuantidade int    `json:"total_quantidade"`
}

// Resumo agrega o total por produto (apenas produtos com ao menos uma
// contagem) e o total geral. Derivado sob demanda; nunca mantido além de
// uma renderização.
type Resumo struct {
	Produtos   []ResumoProduto `json:"produtos"`
	TotalGeral int             `json:"total_geral"`
}
