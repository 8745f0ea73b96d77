package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// ResumoUseCase consulta e apresenta a agregação por produto e exporta os
// relatórios renderizados pela loja.
type ResumoUseCase struct {
	loja        Loja
	visao       Visao
	log         *logger.Logger
	downloadDir string
	agora       func() time.Time
	atualizador Atualizador
}

// NewResumoUseCase constrói o caso de uso. Os relatórios exportados são
// gravados em downloadDir.
func NewResumoUseCase(loja Loja, visao Visao, log *logger.Logger, downloadDir string) *ResumoUseCase {
	return &ResumoUseCase{
		loja:        loja,
		visao:       visao,
		log:         log,
		downloadDir: downloadDir,
		agora:       time.Now,
	}
}

// Atualizar recarrega o resumo. Falhas são apenas logadas: a renderização
// anterior permanece e o operador não é interrompido. O indicador de
// carregamento fica visível durante a requisição e é ocultado ao final em
// qualquer desfecho (escopo no cliente da loja).
func (uc *ResumoUseCase) Atualizar(ctx context.Context) {
	v := uc.atualizador.Iniciar()
	resumo, err := uc.loja.ObterResumo(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("carregar resumo")
		return
	}
	if !uc.atualizador.Atual(v) {
		return
	}
	uc.visao.RenderizarResumo(*resumo)
}

// ExportarPDF baixa o relatório em PDF e o grava como
// relatorio_estoque_<data>.pdf. Devolve o caminho gravado.
func (uc *ResumoUseCase) ExportarPDF(ctx context.Context) (string, error) {
	return uc.exportar(ctx, uc.loja.RelatorioPDF, "pdf", "PDF")
}

// ExportarExcel baixa o relatório em planilha e o grava como
// relatorio_estoque_<data>.xlsx. Devolve o caminho gravado.
func (uc *ResumoUseCase) ExportarExcel(ctx context.Context) (string, error) {
	return uc.exportar(ctx, uc.loja.RelatorioExcel, "xlsx", "Excel")
}

// exportar baixa os bytes opacos do relatório e grava o arquivo. O nome usa
// a data de conclusão da requisição, não qualquer data embutida nos dados.
// Nenhum estado do núcleo é alterado; repetir a exportação é inofensivo.
func (uc *ResumoUseCase) exportar(ctx context.Context, baixar func(context.Context) ([]byte, error), ext, rotulo string) (string, error) {
	conteudo, err := baixar(ctx)
	if err != nil {
		uc.visao.MostrarMensagem(fmt.Sprintf("Erro ao gerar relatório %s: %s", rotulo, err.Error()), MsgErro)
		return "", err
	}

	nome := fmt.Sprintf("relatorio_estoque_%s.%s", uc.agora().Format("2006-01-02"), ext)
	caminho := filepath.Join(uc.downloadDir, nome)
	if err := os.WriteFile(caminho, conteudo, 0o644); err != nil {
		uc.log.Error().Err(err).Str("caminho", caminho).Msg("gravar relatório")
		uc.visao.MostrarMensagem(fmt.Sprintf("Erro ao gerar relatório %s: %s", rotulo, err.Error()), MsgErro)
		return "", err
	}

	uc.log.Info().Str("caminho", caminho).Msg("relatório exportado")
	uc.visao.MostrarMensagem(fmt.Sprintf("Relatório %s gerado com sucesso!", rotulo), MsgSucesso)
	return caminho, nil
}
