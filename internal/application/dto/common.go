package dto

// MensagemResponse resposta de sucesso genérica da loja.
type MensagemResponse struct {
	Mensagem string `json:"mensagem"`
}

// ErroResponse corpo de erro da loja em respostas não-2xx.
type ErroResponse struct {
	Erro string `json:"erro"`
}
