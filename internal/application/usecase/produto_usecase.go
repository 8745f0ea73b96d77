package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/contagem-estoque/internal/application/dto"
	"github.com/jhoicas/contagem-estoque/internal/domain"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// ProdutoUseCase cadastro, listagem e exclusão de produtos.
type ProdutoUseCase struct {
	loja        Loja
	visao       Visao
	contagens   *ContagemUseCase
	resumo      *ResumoUseCase
	log         *logger.Logger
	atualizador Atualizador
}

// NewProdutoUseCase constrói o caso de uso. Contagens e resumo são
// necessários porque excluir um produto invalida as duas visões.
func NewProdutoUseCase(loja Loja, visao Visao, contagens *ContagemUseCase, resumo *ResumoUseCase, log *logger.Logger) *ProdutoUseCase {
	return &ProdutoUseCase{loja: loja, visao: visao, contagens: contagens, resumo: resumo, log: log}
}

// Cadastrar registra um produto novo. Código e nome são aparados; vazios
// após o trim falham antes de qualquer requisição. No sucesso o formulário
// é limpo e a listagem de produtos é recarregada.
func (uc *ProdutoUseCase) Cadastrar(ctx context.Context, codigo, nome string) error {
	codigo = strings.TrimSpace(codigo)
	nome = strings.TrimSpace(nome)
	if codigo == "" || nome == "" {
		uc.visao.MostrarMensagem("Por favor, preencha todos os campos.", MsgErro)
		return domain.ErrCamposObrigatorios
	}

	if _, err := uc.loja.CriarProduto(ctx, dto.CriarProdutoRequest{Codigo: codigo, Nome: nome}); err != nil {
		uc.visao.MostrarMensagem("Erro ao cadastrar produto: "+err.Error(), MsgErro)
		return err
	}

	uc.visao.MostrarMensagem("Produto cadastrado com sucesso!", MsgSucesso)
	uc.visao.LimparFormularioProduto()
	uc.Listar(ctx)
	return nil
}

// Listar recarrega a listagem de produtos. Falhas são apenas logadas e a
// renderização anterior permanece; listagens nunca interrompem o operador.
func (uc *ProdutoUseCase) Listar(ctx context.Context) {
	v := uc.atualizador.Iniciar()
	produtos, err := uc.loja.ListarProdutos(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("carregar produtos")
		return
	}
	if !uc.atualizador.Atual(v) {
		return
	}
	uc.visao.RenderizarProdutos(produtos)
}

// Excluir remove um produto após confirmação explícita: a exclusão é
// irreversível e cascateia para todas as contagens do produto. Por isso o
// sucesso recarrega as três visões dependentes: produtos, contagens e
// resumo.
func (uc *ProdutoUseCase) Excluir(ctx context.Context, id int) error {
	if !uc.visao.Confirmar("Tem certeza que deseja excluir este produto? Todas as contagens relacionadas também serão excluídas.") {
		return nil
	}
	if err := uc.loja.ExcluirProduto(ctx, id); err != nil {
		uc.visao.MostrarMensagem("Erro ao excluir produto: "+err.Error(), MsgErro)
		return err
	}

	uc.visao.MostrarMensagem("Produto excluído com sucesso!", MsgSucesso)
	uc.Listar(ctx)
	uc.contagens.Listar(ctx)
	uc.resumo.Atualizar(ctx)
	return nil
}
