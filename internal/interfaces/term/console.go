package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/contagem-estoque/internal/application/usecase"
	"github.com/jhoicas/contagem-estoque/internal/domain/session"
)

// Console é a sessão interativa do operador: um comando por ação.
type Console struct {
	leitor   *bufio.Reader
	saida    io.Writer
	visao    *View
	contexto *session.Contexto

	produtos   *usecase.ProdutoUseCase
	busca      *usecase.BuscaUseCase
	contagens  *usecase.ContagemUseCase
	resumo     *usecase.ResumoUseCase
	importacao *usecase.ImportacaoUseCase
}

// ConsoleDeps dependências do console.
type ConsoleDeps struct {
	Leitor   *bufio.Reader
	Saida    io.Writer
	Visao    *View
	Contexto *session.Contexto

	Produtos   *usecase.ProdutoUseCase
	Busca      *usecase.BuscaUseCase
	Contagens  *usecase.ContagemUseCase
	Resumo     *usecase.ResumoUseCase
	Importacao *usecase.ImportacaoUseCase
}

// NewConsole constrói o console.
func NewConsole(deps ConsoleDeps) *Console {
	return &Console{
		leitor:     deps.Leitor,
		saida:      deps.Saida,
		visao:      deps.Visao,
		contexto:   deps.Contexto,
		produtos:   deps.Produtos,
		busca:      deps.Busca,
		contagens:  deps.Contagens,
		resumo:     deps.Resumo,
		importacao: deps.Importacao,
	}
}

// Executar roda a sessão: carrega as três visões na abertura e depois
// despacha um comando por linha até "sair" ou EOF.
func (c *Console) Executar(ctx context.Context) error {
	fmt.Fprintln(c.saida, "Contagem de Estoque - digite \"ajuda\" para os comandos.")

	c.produtos.Listar(ctx)
	c.contagens.Listar(ctx)
	c.resumo.Atualizar(ctx)

	for {
		c.prompt()
		linha, err := c.leitor.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		campos := strings.Fields(linha)
		if len(campos) == 0 {
			continue
		}
		if campos[0] == "sair" {
			return nil
		}
		c.despachar(ctx, campos[0], campos[1:])
	}
}

// prompt mostra o produto resolvido, quando houver, para o operador saber
// que a entrada de contagem está liberada.
func (c *Console) prompt() {
	if produto, ok := c.contexto.Atual(); ok {
		fmt.Fprintf(c.saida, "[%s] > ", produto.Codigo)
		return
	}
	fmt.Fprint(c.saida, "> ")
}

func (c *Console) despachar(ctx context.Context, comando string, args []string) {
	switch comando {
	case "ajuda":
		c.ajuda()
	case "cadastrar":
		if len(args) < 2 {
			c.produtos.Cadastrar(ctx, "", "")
			return
		}
		c.produtos.Cadastrar(ctx, args[0], strings.Join(args[1:], " "))
	case "produtos":
		c.produtos.Listar(ctx)
	case "excluir-produto":
		if id, ok := c.id(args); ok {
			c.produtos.Excluir(ctx, id)
		}
	case "buscar":
		c.busca.Buscar(ctx, strings.Join(args, " "))
	case "contar":
		// Campos não numéricos valem zero e caem na validação de campo
		// ausente.
		var lote string
		var mes, ano, qtd int
		if len(args) > 0 {
			lote = args[0]
		}
		if len(args) > 1 {
			mes, _ = strconv.Atoi(args[1])
		}
		if len(args) > 2 {
			ano, _ = strconv.Atoi(args[2])
		}
		if len(args) > 3 {
			qtd, _ = strconv.Atoi(args[3])
		}
		c.contagens.Registrar(ctx, lote, mes, ano, qtd)
	case "contagens":
		c.contagens.Listar(ctx)
	case "excluir-contagem":
		if id, ok := c.id(args); ok {
			c.contagens.Excluir(ctx, id)
		}
	case "resumo":
		c.resumo.Atualizar(ctx)
	case "pdf":
		c.resumo.ExportarPDF(ctx)
	case "excel":
		c.resumo.ExportarExcel(ctx)
	case "template":
		c.importacao.BaixarTemplate()
	case "importar":
		c.importacao.ImportarProdutos()
	default:
		fmt.Fprintf(c.saida, "Comando desconhecido: %s (digite \"ajuda\")\n", comando)
	}
}

func (c *Console) id(args []string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintln(c.saida, "Informe o ID.")
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(c.saida, "ID inválido: %s\n", args[0])
		return 0, false
	}
	return id, true
}

func (c *Console) ajuda() {
	fmt.Fprint(c.saida, `Comandos:
  cadastrar <código> <nome>            cadastra um produto
  produtos                             lista os produtos
  excluir-produto <id>                 exclui produto e suas contagens
  buscar <código>                      resolve o produto para contagem
  contar <lote> <mês> <ano> <qtd>      registra contagem do produto resolvido
  contagens                            lista as contagens
  excluir-contagem <id>                exclui uma contagem
  resumo                               atualiza o resumo por produto
  pdf | excel                          exporta o relatório
  template | importar                  (ainda não implementado)
  sair                                 encerra a sessão
`)
}
