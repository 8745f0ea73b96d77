package term_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/contagem-estoque/internal/application/usecase"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/interfaces/term"
)

func novaView(entrada string) (*term.View, *bytes.Buffer) {
	saida := &bytes.Buffer{}
	view := term.NewView(bufio.NewReader(strings.NewReader(entrada)), saida)
	return view, saida
}

func TestView_ConfirmarAceitaSESim(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado bool
	}{
		{"s\n", true},
		{"S\n", true},
		{"sim\n", true},
		{"n\n", false},
		{"\n", false},
		{"qualquer coisa\n", false},
	}
	for _, caso := range casos {
		view, _ := novaView(caso.entrada)
		assert.Equal(t, caso.esperado, view.Confirmar("Tem certeza?"), "entrada %q", caso.entrada)
	}
}

func TestView_RenderizarContagensAbreviaValidade(t *testing.T) {
	view, saida := novaView("")

	view.RenderizarContagens([]entity.Contagem{{
		ID: 1, Lote: "B1", ValidadeMes: 6, ValidadeAno: 2025, Quantidade: 10,
		Produto: entity.Produto{Codigo: "X1", Nome: "Widget"},
	}})

	assert.Contains(t, saida.String(), "Jun/2025")
	assert.Contains(t, saida.String(), "Widget")
}

func TestView_RenderizarResumoMostraTotalGeral(t *testing.T) {
	view, saida := novaView("")

	view.RenderizarResumo(entity.Resumo{
		Produtos:   []entity.ResumoProduto{{Codigo: "X1", Nome: "Widget", TotalQuantidade: 12}},
		TotalGeral: 12,
	})

	assert.Contains(t, saida.String(), "TOTAL GERAL")
	assert.Contains(t, saida.String(), "12")
}

func TestView_EntradaContagemSegueABusca(t *testing.T) {
	view, saida := novaView("")

	assert.False(t, view.EntradaContagemVisivel(), "começa oculta")

	view.MostrarProdutoResolvido(entity.Produto{Codigo: "X1", Nome: "Widget"})
	assert.True(t, view.EntradaContagemVisivel())
	assert.Contains(t, saida.String(), "X1")

	view.OcultarEntradaContagem()
	assert.False(t, view.EntradaContagemVisivel())
}

func TestView_MensagensPorTipo(t *testing.T) {
	view, saida := novaView("")

	view.MostrarMensagem("deu certo", usecase.MsgSucesso)
	view.MostrarMensagem("deu errado", usecase.MsgErro)
	view.MostrarMensagem("aviso", usecase.MsgInfo)

	texto := saida.String()
	assert.Contains(t, texto, "✔ deu certo")
	assert.Contains(t, texto, "✖ deu errado")
	assert.Contains(t, texto, "ℹ aviso")
}

func TestEstadoCarregamento_ContadorComLiberacaoGarantida(t *testing.T) {
	saida := &bytes.Buffer{}
	estado := term.NewEstadoCarregamento(saida)

	liberar1 := estado.Carregando()
	liberar2 := estado.Carregando()
	assert.True(t, estado.EmAndamento(), "duas requisições em voo")

	liberar1()
	assert.True(t, estado.EmAndamento(), "ainda há uma em voo")

	liberar2()
	liberar2() // liberar duas vezes é inofensivo
	assert.False(t, estado.EmAndamento())

	assert.Equal(t, 1, strings.Count(saida.String(), "Carregando..."),
		"o indicador só aparece na transição para a primeira requisição")
}
