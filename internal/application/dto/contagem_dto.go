package dto

import "encoding/json"

// CriarContagemRequest corpo de POST /contagens.
type CriarContagemRequest struct {
	ProdutoCodigo string `json:"produto_codigo"`
	Lote          string `json:"lote"`
	ValidadeMes   int    `json:"validade_mes"`
	ValidadeAno   int    `json:"validade_ano"`
	Quantidade    int    `json:"quantidade"`
}

// CriarContagemResponse resposta de POST /contagens. A loja pode criar uma
// contagem nova ou somar a um lote existente; a Mensagem descreve qual dos
// dois aconteceu e é apresentada ao operador sem reformulação. O payload da
// contagem fica opaco: o cliente não depende do formato.
type CriarContagemResponse struct {
	Mensagem string          `json:"mensagem"`
	Contagem json.RawMessage `json:"contagem,omitempty"`
}
