package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	// ErrCamposObrigatorios cobre campo vazio após o trim ou valor numérico
	// ausente; detectado antes de qualquer requisição à loja.
	ErrCamposObrigatorios = errors.New("preencha todos os campos obrigatórios")
	// ErrBusqueProdutoPrimeiro é a pré-condição do registro de contagem:
	// só existe contagem com um produto resolvido no contexto da sessão.
	ErrBusqueProdutoPrimeiro = errors.New("busque um produto primeiro")
)

// ErroAPI é uma falha devolvida pela loja externa: não encontrado, conflito
// ou erro de validação do servidor. A mensagem vem do campo "erro" da
// resposta; quando ausente, o fallback é a mensagem genérica de status.
type ErroAPI struct {
	Status   int
	Mensagem string
}

func (e *ErroAPI) Error() string {
	if e.Mensagem != "" {
		return e.Mensagem
	}
	return fmt.Sprintf("Erro HTTP: %d", e.Status)
}

// NaoEncontrado informa se a loja respondeu 404 para a operação.
func (e *ErroAPI) NaoEncontrado() bool { return e.Status == 404 }
