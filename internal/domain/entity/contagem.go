package entity

// Contagem é uma observação física de estoque: lote, validade (mês/ano) e
// quantidade. Na listagem o servidor embute o produto correspondente com
// código e nome (sem ID).
type Contagem struct {
	ID          int     `json:"id"`
	Lote        string  `json:"lote"`
	ValidadeMes int     `json:"validade_mes"`
	ValidadeAno int     `json:"validade_ano"`
	Quantidade  int     `json:"quantidade"`
	Produto     Produto `json:"produto"`
}
