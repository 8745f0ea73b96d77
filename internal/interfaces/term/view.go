// Package term é a interface de terminal do cliente de contagem: tabelas,
// mensagens de status e prompts de confirmação.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jhoicas/contagem-estoque/internal/application/usecase"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

// Abreviações de mês para a coluna de validade (índice 1–12).
var meses = [...]string{"", "Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// View implementa usecase.Visao sobre um terminal.
type View struct {
	saida   io.Writer
	entrada *bufio.Reader
	estado  *EstadoCarregamento

	// entradaContagemVisivel controla o formulário de contagem: fica
	// visível entre uma busca com sucesso e a próxima falha.
	entradaContagemVisivel bool
}

// NewView constrói a view lendo confirmações de entrada e escrevendo em
// saida. O leitor é compartilhado com o console para não disputar stdin.
func NewView(entrada *bufio.Reader, saida io.Writer) *View {
	return &View{
		saida:   saida,
		entrada: entrada,
		estado:  NewEstadoCarregamento(saida),
	}
}

// Estado expõe o indicador de carregamento para o cliente da loja.
func (v *View) Estado() *EstadoCarregamento { return v.estado }

// MostrarMensagem apresenta o equivalente ao modal: prefixo por tipo e a
// mensagem como veio.
func (v *View) MostrarMensagem(texto string, tipo usecase.TipoMensagem) {
	switch tipo {
	case usecase.MsgSucesso:
		fmt.Fprintf(v.saida, "✔ %s\n", texto)
	case usecase.MsgErro:
		fmt.Fprintf(v.saida, "✖ %s\n", texto)
	default:
		fmt.Fprintf(v.saida, "ℹ %s\n", texto)
	}
}

// Confirmar pergunta e lê s/n. Qualquer coisa diferente de "s"/"sim" nega;
// exclusões são irreversíveis, então o padrão é não.
func (v *View) Confirmar(pergunta string) bool {
	fmt.Fprintf(v.saida, "%s [s/N] ", pergunta)
	linha, err := v.entrada.ReadString('\n')
	if err != nil {
		return false
	}
	resposta := strings.ToLower(strings.TrimSpace(linha))
	return resposta == "s" || resposta == "sim"
}

// RenderizarProdutos desenha a tabela de produtos.
func (v *View) RenderizarProdutos(produtos []entity.Produto) {
	t := table.NewWriter()
	t.SetOutputMirror(v.saida)
	t.SetTitle("Produtos")
	t.AppendHeader(table.Row{"ID", "Código", "Nome"})
	for _, p := range produtos {
		t.AppendRow(table.Row{p.ID, p.Codigo, p.Nome})
	}
	t.Render()
}

// RenderizarContagens desenha a tabela de contagens com o produto embutido
// e a validade abreviada (Jun/2025).
func (v *View) RenderizarContagens(contagens []entity.Contagem) {
	t := table.NewWriter()
	t.SetOutputMirror(v.saida)
	t.SetTitle("Contagens")
	t.AppendHeader(table.Row{"ID", "Código", "Produto", "Lote", "Validade", "Quantidade"})
	for _, c := range contagens {
		t.AppendRow(table.Row{c.ID, c.Produto.Codigo, c.Produto.Nome, c.Lote, validade(c.ValidadeMes, c.ValidadeAno), c.Quantidade})
	}
	t.Render()
}

// RenderizarResumo desenha o resumo por produto com o total geral no rodapé.
func (v *View) RenderizarResumo(resumo entity.Resumo) {
	t := table.NewWriter()
	t.SetOutputMirror(v.saida)
	t.SetTitle("Resumo do Estoque")
	t.AppendHeader(table.Row{"Código", "Nome", "Total"})
	for _, p := range resumo.Produtos {
		t.AppendRow(table.Row{p.Codigo, p.Nome, p.TotalQuantidade})
	}
	t.AppendFooter(table.Row{"", "Total Geral", resumo.TotalGeral})
	t.Render()
}

// MostrarProdutoResolvido revela a entrada de contagem para o produto. O
// formulário em andamento é descartado: no console cada comando traz os
// campos de novo, então basta sinalizar.
func (v *View) MostrarProdutoResolvido(produto entity.Produto) {
	v.entradaContagemVisivel = true
	fmt.Fprintf(v.saida, "Produto encontrado: %s - %s\n", produto.Codigo, produto.Nome)
	fmt.Fprintln(v.saida, "Use: contar <lote> <mês> <ano> <quantidade>")
}

// OcultarEntradaContagem esconde a entrada de contagem (busca falhou).
func (v *View) OcultarEntradaContagem() {
	v.entradaContagemVisivel = false
}

// EntradaContagemVisivel informa se a entrada de contagem está revelada.
func (v *View) EntradaContagemVisivel() bool { return v.entradaContagemVisivel }

// LimparFormularioProduto é o reset do formulário de cadastro. No console
// não há campos persistentes entre comandos; nada a fazer além do contrato.
func (v *View) LimparFormularioProduto() {}

// LimparFormularioContagem idem para os campos de contagem.
func (v *View) LimparFormularioContagem() {}

func validade(mes, ano int) string {
	if mes >= 1 && mes < len(meses) {
		return fmt.Sprintf("%s/%d", meses[mes], ano)
	}
	return fmt.Sprintf("%d/%d", mes, ano)
}
