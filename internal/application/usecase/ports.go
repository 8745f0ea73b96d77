package usecase

import (
	"context"

	"github.com/jhoicas/contagem-estoque/internal/application/dto"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// Loja é a porta para a loja externa de produtos e contagens (contrato
// fixo de requisição/resposta; implementada por infrastructure/api).
type Loja interface {
	ListarProdutos(ctx context.Context) ([]entity.Produto, error)
	CriarProduto(ctx context.Context, in dto.CriarProdutoRequest) (*entity.Produto, error)
	ExcluirProduto(ctx context.Context, id int) error
	BuscarProduto(ctx context.Context, codigo string) (*entity.Produto, error)
	ListarContagens(ctx context.Context) ([]entity.Contagem, error)
	CriarContagem(ctx context.Context, in dto.CriarContagemRequest) (*dto.CriarContagemResponse, error)
	ExcluirContagem(ctx context.Context, id int) error
	ObterResumo(ctx context.Context) (*entity.Resumo, error)
	RelatorioPDF(ctx context.Context) ([]byte, error)
	RelatorioExcel(ctx context.Context) ([]byte, error)
}

// TipoMensagem estilo da mensagem apresentada ao operador.
type TipoMensagem int

const (
	MsgInfo TipoMensagem = iota
	MsgSucesso
	MsgErro
)

// Visao é a porta de apresentação consumida pelos casos de uso. As falhas
// de validação e de requisição chegam aqui como mensagens; a renderização
// das listagens só acontece em recargas bem-sucedidas.
type Visao interface {
	MostrarMensagem(texto string, tipo TipoMensagem)
	Confirmar(pergunta string) bool

	RenderizarProdutos(produtos []entity.Produto)
	RenderizarContagens(contagens []entity.Contagem)
	RenderizarResumo(resumo entity.Resumo)

	// MostrarProdutoResolvido revela a entrada de contagem para o produto
	// e zera o formulário em andamento; OcultarEntradaContagem a esconde
	// quando a busca falha.
	MostrarProdutoResolvido(produto entity.Produto)
	OcultarEntradaContagem()

	LimparFormularioProduto()
	LimparFormularioContagem()
}
