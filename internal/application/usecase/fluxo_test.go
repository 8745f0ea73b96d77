package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contagem-estoque/internal/application/usecase"
	"github.com/jhoicas/contagem-estoque/internal/domain/session"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/api"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/stubstore"
	"github.com/jhoicas/contagem-estoque/pkg/config"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// transporteFiber encaminha as requisições do cliente resty direto para o
// app Fiber do stub, sem abrir porta.
type transporteFiber struct {
	app *fiber.App
}

func (t transporteFiber) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.app.Test(req, -1)
}

type ambienteFluxo struct {
	visao     *fakeVisao
	contexto  *session.Contexto
	produtos  *usecase.ProdutoUseCase
	busca     *usecase.BuscaUseCase
	contagens *usecase.ContagemUseCase
	resumo    *usecase.ResumoUseCase
}

// novoFluxo liga os casos de uso reais ao stub da loja pelo cliente HTTP
// real: o caminho completo do fluxo do operador.
func novoFluxo(t *testing.T) *ambienteFluxo {
	t.Helper()

	app := stubstore.NewApp(stubstore.NewMemoria(), logger.Nop())
	visao := &fakeVisao{confirmar: true}
	log := logger.Nop()

	loja := api.New(
		config.APIConfig{BaseURL: "http://loja.local/api", TimeoutSeconds: 5},
		visao, log,
		api.ComTransporte(transporteFiber{app: app}),
	)

	contexto := session.NewContexto()
	resumoUC := usecase.NewResumoUseCase(loja, visao, log, t.TempDir())
	contagemUC := usecase.NewContagemUseCase(loja, visao, contexto, resumoUC, log)
	produtoUC := usecase.NewProdutoUseCase(loja, visao, contagemUC, resumoUC, log)
	buscaUC := usecase.NewBuscaUseCase(loja, visao, contexto, log)

	return &ambienteFluxo{
		visao:     visao,
		contexto:  contexto,
		produtos:  produtoUC,
		busca:     buscaUC,
		contagens: contagemUC,
		resumo:    resumoUC,
	}
}

func TestFluxo_BuscarRegistrarEVerNoResumo(t *testing.T) {
	f := novoFluxo(t)
	ctx := context.Background()

	require.NoError(t, f.produtos.Cadastrar(ctx, "X1", "Widget"))

	_, err := f.busca.Buscar(ctx, "X1")
	require.NoError(t, err)
	resolvido, ok := f.contexto.Atual()
	require.True(t, ok)
	assert.Equal(t, "Widget", resolvido.Nome)

	require.NoError(t, f.contagens.Registrar(ctx, "B1", 6, 2025, 10))

	// A mensagem da loja chega sem reformulação.
	assert.Equal(t, stubstore.MsgContagemNova, f.visao.ultimaMensagem().Texto)

	require.NotEmpty(t, f.visao.rendersCont, "o sucesso recarrega a listagem de contagens")
	contagens := f.visao.rendersCont[len(f.visao.rendersCont)-1]
	require.Len(t, contagens, 1)
	assert.Equal(t, "B1", contagens[0].Lote)
	assert.Equal(t, 10, contagens[0].Quantidade)

	require.NotEmpty(t, f.visao.rendersResumo, "o sucesso recarrega o resumo")
	resumo := f.visao.rendersResumo[len(f.visao.rendersResumo)-1]
	require.Len(t, resumo.Produtos, 1)
	assert.Equal(t, 10, resumo.Produtos[0].TotalQuantidade)
	assert.Equal(t, 10, resumo.TotalGeral)
}

func TestFluxo_DoisLotesDoMesmoProdutoSomamNoResumo(t *testing.T) {
	f := novoFluxo(t)
	ctx := context.Background()

	require.NoError(t, f.produtos.Cadastrar(ctx, "X1", "Widget"))
	_, err := f.busca.Buscar(ctx, "X1")
	require.NoError(t, err)

	require.NoError(t, f.contagens.Registrar(ctx, "B1", 6, 2025, 5))
	require.NoError(t, f.contagens.Registrar(ctx, "B2", 7, 2026, 7))

	resumo := f.visao.rendersResumo[len(f.visao.rendersResumo)-1]
	require.Len(t, resumo.Produtos, 1)
	assert.Equal(t, 12, resumo.Produtos[0].TotalQuantidade)
	assert.Equal(t, 12, resumo.TotalGeral)
}

func TestFluxo_BuscaInexistenteEsvaziaOContexto(t *testing.T) {
	f := novoFluxo(t)
	ctx := context.Background()

	require.NoError(t, f.produtos.Cadastrar(ctx, "X1", "Widget"))
	_, err := f.busca.Buscar(ctx, "X1")
	require.NoError(t, err)

	_, err = f.busca.Buscar(ctx, "ZZZ")
	require.Error(t, err)

	_, ok := f.contexto.Atual()
	assert.False(t, ok, "a falha de busca esvazia o contexto")
	assert.Equal(t, 1, f.visao.entradaOcultada)
	assert.Contains(t, f.visao.ultimaMensagem().Texto, "Produto não encontrado")

	// Sem produto resolvido, registrar volta a falhar na pré-condição.
	err = f.contagens.Registrar(ctx, "B1", 6, 2025, 10)
	assert.Error(t, err)
}

func TestFluxo_ExcluirProdutoLimpaContagensEResumo(t *testing.T) {
	f := novoFluxo(t)
	ctx := context.Background()

	require.NoError(t, f.produtos.Cadastrar(ctx, "X1", "Widget"))
	_, err := f.busca.Buscar(ctx, "X1")
	require.NoError(t, err)
	require.NoError(t, f.contagens.Registrar(ctx, "B1", 6, 2025, 10))

	produtos := f.visao.rendersProd[len(f.visao.rendersProd)-1]
	require.Len(t, produtos, 1)

	require.NoError(t, f.produtos.Excluir(ctx, produtos[0].ID))

	assert.Empty(t, f.visao.rendersProd[len(f.visao.rendersProd)-1], "o produto some da listagem")
	assert.Empty(t, f.visao.rendersCont[len(f.visao.rendersCont)-1], "as contagens somem em cascata")
	resumo := f.visao.rendersResumo[len(f.visao.rendersResumo)-1]
	assert.Zero(t, resumo.TotalGeral)
}

func TestFluxo_CadastroAparaceNaProximaListagem(t *testing.T) {
	f := novoFluxo(t)
	ctx := context.Background()

	require.NoError(t, f.produtos.Cadastrar(ctx, "X1", "Widget"))

	produtos := f.visao.rendersProd[len(f.visao.rendersProd)-1]
	require.Len(t, produtos, 1)
	assert.Equal(t, "X1", produtos[0].Codigo)
	assert.NotZero(t, produtos[0].ID, "o ID é atribuído pelo servidor")
}

func TestFluxo_IndicadorDeCarregamentoLiberadoEmTodaRequisicao(t *testing.T) {
	f := novoFluxo(t)
	ctx := context.Background()

	require.NoError(t, f.produtos.Cadastrar(ctx, "X1", "Widget"))
	_, _ = f.busca.Buscar(ctx, "ZZZ")

	assert.Equal(t, f.visao.carregandoAtivo, f.visao.carregandoLiberado,
		"toda aquisição do indicador deve ter a liberação correspondente, no sucesso e na falha")
	assert.Positive(t, f.visao.carregandoAtivo)
}

func TestFluxo_ImportacaoContinuaComoAvisoExplicito(t *testing.T) {
	f := novoFluxo(t)
	importacao := usecase.NewImportacaoUseCase(f.visao)

	importacao.BaixarTemplate()
	importacao.ImportarProdutos()

	require.Len(t, f.visao.mensagens, 2)
	for _, m := range f.visao.mensagens {
		assert.Equal(t, "Funcionalidade ainda não implementada.", m.Texto)
		assert.Equal(t, usecase.MsgInfo, m.Tipo)
	}
}
