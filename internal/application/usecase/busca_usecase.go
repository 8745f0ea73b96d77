package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
	"github.com/jhoicas/contagem-estoque/internal/domain/session"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// BuscaUseCase resolve um produto pelo código e mantém o contexto da
// sessão, que libera a entrada de contagem.
type BuscaUseCase struct {
	loja     Loja
	visao    Visao
	contexto *session.Contexto
	log      *logger.Logger
}

// NewBuscaUseCase constrói o caso de uso.
func NewBuscaUseCase(loja Loja, visao Visao, contexto *session.Contexto, log *logger.Logger) *BuscaUseCase {
	return &BuscaUseCase{loja: loja, visao: visao, contexto: contexto, log: log}
}

// Buscar resolve o produto pelo código e o coloca no contexto.
//
// Sucesso: contexto Resolvido (substitui qualquer produto anterior), a
// entrada de contagem é revelada e o formulário em andamento é zerado.
// Falha (não encontrado ou transporte): contexto Vazio, entrada de
// contagem oculta, mensagem de erro apresentada.
func (uc *BuscaUseCase) Buscar(ctx context.Context, codigo string) (*entity.Produto, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		uc.visao.MostrarMensagem("Por favor, digite um código de produto.", MsgErro)
		return nil, domain.ErrCamposObrigatorios
	}

	produto, err := uc.loja.BuscarProduto(ctx, codigo)
	if err != nil {
		uc.contexto.Limpar()
		uc.visao.OcultarEntradaContagem()
		uc.visao.MostrarMensagem("Produto não encontrado: "+err.Error(), MsgErro)
		return nil, err
	}

	uc.contexto.Resolver(*produto)
	uc.visao.MostrarProdutoResolvido(*produto)
	uc.log.Debug().Str("codigo", produto.Codigo).Msg("produto resolvido na sessão")
	return produto, nil
}
