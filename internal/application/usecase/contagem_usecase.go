package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/contagem-estoque/internal/application/dto"
	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/internal/domain/session"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// ContagemUseCase valida e registra contagens para o produto resolvido no
// contexto da sessão, e mantém a listagem de contagens.
type ContagemUseCase struct {
	loja        Loja
	visao       Visao
	contexto    *session.Contexto
	resumo      *ResumoUseCase
	log         *logger.Logger
	atualizador Atualizador
}

// NewContagemUseCase constrói o caso de uso. O contexto é o slot único da
// sessão; resumo é recarregado junto com a listagem após cada mutação.
func NewContagemUseCase(loja Loja, visao Visao, contexto *session.Contexto, resumo *ResumoUseCase, log *logger.Logger) *ContagemUseCase {
	return &ContagemUseCase{loja: loja, visao: visao, contexto: contexto, resumo: resumo, log: log}
}

// Registrar valida e envia uma contagem.
//
// Pré-condição: o contexto precisa estar Resolvido; sem isso nada é
// enviado. Validação: lote não-vazio após o trim; mês, ano e quantidade
// presentes. Zero conta como ausente, não é um valor legal aqui.
//
// No sucesso a mensagem da loja é apresentada sem reformulação, o
// formulário é limpo e listagem e resumo são recarregados. Na falha o
// formulário e o contexto ficam como estavam.
func (uc *ContagemUseCase) Registrar(ctx context.Context, lote string, mes, ano, quantidade int) error {
	produto, ok := uc.contexto.Atual()
	if !ok {
		uc.visao.MostrarMensagem("Por favor, busque um produto primeiro.", MsgErro)
		return domain.ErrBusqueProdutoPrimeiro
	}

	lote = strings.TrimSpace(lote)
	if lote == "" || mes == 0 || ano == 0 || quantidade == 0 {
		uc.visao.MostrarMensagem("Por favor, preencha todos os campos da contagem.", MsgErro)
		return domain.ErrCamposObrigatorios
	}

	resp, err := uc.loja.CriarContagem(ctx, dto.CriarContagemRequest{
		ProdutoCodigo: produto.Codigo,
		Lote:          lote,
		ValidadeMes:   mes,
		ValidadeAno:   ano,
		Quantidade:    quantidade,
	})
	if err != nil {
		uc.visao.MostrarMensagem("Erro ao registrar contagem: "+err.Error(), MsgErro)
		return err
	}

	uc.visao.MostrarMensagem(resp.Mensagem, MsgSucesso)
	uc.visao.LimparFormularioContagem()
	uc.Listar(ctx)
	uc.resumo.Atualizar(ctx)
	return nil
}

// Listar recarrega a listagem de contagens. Falhas são apenas logadas; a
// renderização anterior permanece.
func (uc *ContagemUseCase) Listar(ctx context.Context) {
	v := uc.atualizador.Iniciar()
	contagens, err := uc.loja.ListarContagens(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("carregar contagens")
		return
	}
	if !uc.atualizador.Atual(v) {
		return
	}
	uc.visao.RenderizarContagens(contagens)
}

// Excluir remove uma contagem após confirmação. Recarrega contagens e
// resumo; produtos não, porque excluir uma contagem nunca invalida um
// produto.
func (uc *ContagemUseCase) Excluir(ctx context.Context, id int) error {
	if !uc.visao.Confirmar("Tem certeza que deseja excluir esta contagem?") {
		return nil
	}
	if err := uc.loja.ExcluirContagem(ctx, id); err != nil {
		uc.visao.MostrarMensagem("Erro ao excluir contagem: "+err.Error(), MsgErro)
		return err
	}
	uc.visao.MostrarMensagem("Contagem excluída com sucesso!", MsgSucesso)
	uc.Listar(ctx)
	uc.resumo.Atualizar(ctx)
	return nil
}
