package usecase_test

import (
	"context"

	"github.com/jhoicas/contagem-estoque/internal/application/dto"
	"github.com/jhoicas/contagem-estoque/internal/application/usecase"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// ── Dublês de teste: loja com contadores e visão que grava tudo ───────────────

type chamadasLoja struct {
	ListarProdutos  int
	CriarProduto    int
	ExcluirProduto  int
	BuscarProduto   int
	ListarContagens int
	CriarContagem   int
	ExcluirContagem int
	ObterResumo     int
	RelatorioPDF    int
	RelatorioExcel  int
}

func (c chamadasLoja) Total() int {
	return c.ListarProdutos + c.CriarProduto + c.ExcluirProduto + c.BuscarProduto +
		c.ListarContagens + c.CriarContagem + c.ExcluirContagem +
		c.ObterResumo + c.RelatorioPDF + c.RelatorioExcel
}

type fakeLoja struct {
	chamadas chamadasLoja

	produtos  []entity.Produto
	contagens []entity.Contagem
	resumo    entity.Resumo
	relatorio []byte

	mensagemContagem string
	ultimaContagem   dto.CriarContagemRequest
	ultimoProduto    dto.CriarProdutoRequest

	errCriarProduto  error
	errListar        error
	errBuscar        error
	errCriarContagem error
	errExcluir       error
	errResumo        error
	errRelatorio     error
}

var _ usecase.Loja = (*fakeLoja)(nil)

func (f *fakeLoja) ListarProdutos(context.Context) ([]entity.Produto, error) {
	f.chamadas.ListarProdutos++
	if f.errListar != nil {
		return nil, f.errListar
	}
	return f.produtos, nil
}

func (f *fakeLoja) CriarProduto(_ context.Context, in dto.CriarProdutoRequest) (*entity.Produto, error) {
	f.chamadas.CriarProduto++
	f.ultimoProduto = in
	if f.errCriarProduto != nil {
		return nil, f.errCriarProduto
	}
	return &entity.Produto{ID: 1, Codigo: in.Codigo, Nome: in.Nome}, nil
}

func (f *fakeLoja) ExcluirProduto(context.Context, int) error {
	f.chamadas.ExcluirProduto++
	return f.errExcluir
}

func (f *fakeLoja) BuscarProduto(_ context.Context, codigo string) (*entity.Produto, error) {
	f.chamadas.BuscarProduto++
	if f.errBuscar != nil {
		return nil, f.errBuscar
	}
	for _, p := range f.produtos {
		if p.Codigo == codigo {
			produto := p
			return &produto, nil
		}
	}
	return &entity.Produto{ID: 99, Codigo: codigo, Nome: "Produto " + codigo}, nil
}

func (f *fakeLoja) ListarContagens(context.Context) ([]entity.Contagem, error) {
	f.chamadas.ListarContagens++
	if f.errListar != nil {
		return nil, f.errListar
	}
	return f.contagens, nil
}

func (f *fakeLoja) CriarContagem(_ context.Context, in dto.CriarContagemRequest) (*dto.CriarContagemResponse, error) {
	f.chamadas.CriarContagem++
	f.ultimaContagem = in
	if f.errCriarContagem != nil {
		return nil, f.errCriarContagem
	}
	return &dto.CriarContagemResponse{Mensagem: f.mensagemContagem}, nil
}

func (f *fakeLoja) ExcluirContagem(context.Context, int) error {
	f.chamadas.ExcluirContagem++
	return f.errExcluir
}

func (f *fakeLoja) ObterResumo(context.Context) (*entity.Resumo, error) {
	f.chamadas.ObterResumo++
	if f.errResumo != nil {
		return nil, f.errResumo
	}
	resumo := f.resumo
	return &resumo, nil
}

func (f *fakeLoja) RelatorioPDF(context.Context) ([]byte, error) {
	f.chamadas.RelatorioPDF++
	if f.errRelatorio != nil {
		return nil, f.errRelatorio
	}
	return f.relatorio, nil
}

func (f *fakeLoja) RelatorioExcel(context.Context) ([]byte, error) {
	f.chamadas.RelatorioExcel++
	if f.errRelatorio != nil {
		return nil, f.errRelatorio
	}
	return f.relatorio, nil
}

type mensagemGravada struct {
	Texto string
	Tipo  usecase.TipoMensagem
}

type fakeVisao struct {
	confirmar bool

	mensagens     []mensagemGravada
	confirmacoes  int
	rendersProd   [][]entity.Produto
	rendersCont   [][]entity.Contagem
	rendersResumo []entity.Resumo

	produtoResolvido   *entity.Produto
	entradaOcultada    int
	formProdutoLimpo   int
	formContagemLimpo  int
	carregandoAtivo    int
	carregandoLiberado int
}

var _ usecase.Visao = (*fakeVisao)(nil)

func (f *fakeVisao) MostrarMensagem(texto string, tipo usecase.TipoMensagem) {
	f.mensagens = append(f.mensagens, mensagemGravada{Texto: texto, Tipo: tipo})
}

func (f *fakeVisao) Confirmar(string) bool {
	f.confirmacoes++
	return f.confirmar
}

func (f *fakeVisao) RenderizarProdutos(produtos []entity.Produto) {
	f.rendersProd = append(f.rendersProd, produtos)
}

func (f *fakeVisao) RenderizarContagens(contagens []entity.Contagem) {
	f.rendersCont = append(f.rendersCont, contagens)
}

func (f *fakeVisao) RenderizarResumo(resumo entity.Resumo) {
	f.rendersResumo = append(f.rendersResumo, resumo)
}

func (f *fakeVisao) MostrarProdutoResolvido(produto entity.Produto) {
	copia := produto
	f.produtoResolvido = &copia
}

func (f *fakeVisao) OcultarEntradaContagem() {
	f.produtoResolvido = nil
	f.entradaOcultada++
}

func (f *fakeVisao) LimparFormularioProduto()  { f.formProdutoLimpo++ }
func (f *fakeVisao) LimparFormularioContagem() { f.formContagemLimpo++ }

// Carregando permite usar a visão falsa como Carregador no teste de fluxo.
func (f *fakeVisao) Carregando() func() {
	f.carregandoAtivo++
	return func() { f.carregandoLiberado++ }
}

func (f *fakeVisao) ultimaMensagem() mensagemGravada {
	if len(f.mensagens) == 0 {
		return mensagemGravada{}
	}
	return f.mensagens[len(f.mensagens)-1]
}
