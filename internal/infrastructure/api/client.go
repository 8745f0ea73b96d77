// Package api implementa o cliente HTTP da loja externa de produtos e
// contagens, sobre o contrato fixo de rotas /api.
//
// Toda requisição roda dentro do escopo de carregamento da interface:
// o indicador liga antes do envio e a liberação é adiada (defer), garantida
// em todo caminho de saída. Não há retry nem deduplicação de requisições
// em voo; cada falha é terminal para a ação que a disparou.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/contagem-estoque/internal/application/dto"
	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/pkg/config"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// Carregador é o estado de carregamento da interface. Carregando liga o
// indicador e devolve a função que o desliga.
type Carregador interface {
	Carregando() (liberar func())
}

// Opcao ajusta o cliente na construção.
type Opcao func(*resty.Client)

// ComTransporte troca o transporte HTTP (testes usam o app Fiber do stub).
func ComTransporte(rt http.RoundTripper) Opcao {
	return func(c *resty.Client) { c.SetTransport(rt) }
}

// Client fala com a loja sobre HTTP/JSON.
type Client struct {
	http *resty.Client
	ui   Carregador
	log  *logger.Logger
}

// New constrói o cliente com a base e o timeout configurados.
func New(cfg config.APIConfig, ui Carregador, log *logger.Logger, opcoes ...Opcao) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout())
	for _, op := range opcoes {
		op(rc)
	}
	return &Client{http: rc, ui: ui, log: log}
}

// ListarProdutos devolve todos os produtos cadastrados.
func (c *Client) ListarProdutos(ctx context.Context) ([]entity.Produto, error) {
	var produtos []entity.Produto
	if err := c.executar(ctx, &produtos, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/produtos")
	}); err != nil {
		return nil, err
	}
	return produtos, nil
}

// CriarProduto cadastra um produto e devolve o registro criado.
func (c *Client) CriarProduto(ctx context.Context, in dto.CriarProdutoRequest) (*entity.Produto, error) {
	produto := new(entity.Produto)
	if err := c.executar(ctx, produto, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(in).Post("/produtos")
	}); err != nil {
		return nil, err
	}
	return produto, nil
}

// ExcluirProduto remove um produto pelo ID; a loja cascateia as contagens.
func (c *Client) ExcluirProduto(ctx context.Context, id int) error {
	return c.executar(ctx, nil, func(r *resty.Request) (*resty.Response, error) {
		return r.Delete(fmt.Sprintf("/produtos/%d", id))
	})
}

// BuscarProduto resolve um produto pelo código de negócio. O código entra
// na rota como um único segmento; caracteres reservados são escapados.
func (c *Client) BuscarProduto(ctx context.Context, codigo string) (*entity.Produto, error) {
	produto := new(entity.Produto)
	if err := c.executar(ctx, produto, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/produtos/" + url.PathEscape(codigo))
	}); err != nil {
		return nil, err
	}
	return produto, nil
}

// ListarContagens devolve todas as contagens, cada uma com o produto embutido.
func (c *Client) ListarContagens(ctx context.Context) ([]entity.Contagem, error) {
	var contagens []entity.Contagem
	if err := c.executar(ctx, &contagens, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/contagens")
	}); err != nil {
		return nil, err
	}
	return contagens, nil
}

// CriarContagem registra uma contagem. A mensagem devolvida pela loja
// distingue contagem nova de soma a lote existente.
func (c *Client) CriarContagem(ctx context.Context, in dto.CriarContagemRequest) (*dto.CriarContagemResponse, error) {
	out := new(dto.CriarContagemResponse)
	if err := c.executar(ctx, out, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(in).Post("/contagens")
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// ExcluirContagem remove uma contagem pelo ID.
func (c *Client) ExcluirContagem(ctx context.Context, id int) error {
	return c.executar(ctx, nil, func(r *resty.Request) (*resty.Response, error) {
		return r.Delete(fmt.Sprintf("/contagens/%d", id))
	})
}

// ObterResumo devolve a agregação por produto mais o total geral. A
// computação é responsabilidade da loja; o cliente só consome a forma.
func (c *Client) ObterResumo(ctx context.Context) (*entity.Resumo, error) {
	resumo := new(entity.Resumo)
	if err := c.executar(ctx, resumo, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/relatorio/resumo")
	}); err != nil {
		return nil, err
	}
	return resumo, nil
}

// RelatorioPDF baixa o relatório renderizado em PDF como bytes opacos.
func (c *Client) RelatorioPDF(ctx context.Context) ([]byte, error) {
	return c.baixar(ctx, "/relatorio/pdf_novo")
}

// RelatorioExcel baixa o relatório renderizado em planilha como bytes opacos.
func (c *Client) RelatorioExcel(ctx context.Context) ([]byte, error) {
	return c.baixar(ctx, "/relatorio/excel_novo")
}

// executar roda uma requisição JSON dentro do escopo de carregamento,
// decodifica o sucesso em resultado e mapeia não-2xx para ErroAPI com o
// campo "erro" da resposta.
func (c *Client) executar(ctx context.Context, resultado any, enviar func(*resty.Request) (*resty.Response, error)) error {
	liberar := c.ui.Carregando()
	defer liberar()

	falha := new(dto.ErroResponse)
	req := c.http.R().SetContext(ctx).SetError(falha)
	if resultado != nil {
		req.SetResult(resultado)
	}

	resp, err := enviar(req)
	if err != nil {
		c.log.Error().Err(err).Msg("falha de transporte na loja")
		return fmt.Errorf("requisição à loja: %w", err)
	}
	if resp.IsError() {
		apiErr := &domain.ErroAPI{Status: resp.StatusCode(), Mensagem: falha.Erro}
		c.log.Error().Int("status", resp.StatusCode()).Str("erro", falha.Erro).Msg("erro da loja")
		return apiErr
	}
	return nil
}

// baixar busca um corpo binário (relatórios). Em caso de erro a loja ainda
// pode responder JSON com "erro"; tentamos aproveitá-lo como mensagem.
func (c *Client) baixar(ctx context.Context, rota string) ([]byte, error) {
	liberar := c.ui.Carregando()
	defer liberar()

	resp, err := c.http.R().SetContext(ctx).Get(rota)
	if err != nil {
		c.log.Error().Err(err).Str("rota", rota).Msg("falha de transporte na loja")
		return nil, fmt.Errorf("requisição à loja: %w", err)
	}
	if resp.IsError() {
		falha := dto.ErroResponse{}
		_ = json.Unmarshal(resp.Body(), &falha)
		apiErr := &domain.ErroAPI{Status: resp.StatusCode(), Mensagem: falha.Erro}
		c.log.Error().Int("status", resp.StatusCode()).Str("rota", rota).Msg("erro da loja")
		return nil, apiErr
	}
	return resp.Body(), nil
}
