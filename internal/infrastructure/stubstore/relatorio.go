package stubstore

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

var (
	corPrimaria = &props.Color{Red: 0, Green: 70, Blue: 127}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// gerarPDF renderiza o resumo em PDF com Maroto: título, data de geração,
// tabela código/nome/total e total geral.
func gerarPDF(resumo entity.Resumo) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Relatório de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(text.NewRow(10, "Relatório de Estoque", props.Text{
		Size: 15, Style: fontstyle.Bold, Align: align.Center, Color: corPrimaria,
	}))
	m.AddRows(text.NewRow(6, "Gerado em "+time.Now().Format("02/01/2006 15:04"), props.Text{
		Size: 9, Align: align.Center, Color: corCinza,
	}))
	m.AddRows(line.NewRow(4, props.Line{Color: corPrimaria, Thickness: 0.5}))

	m.AddRows(cabecalhoTabela())
	for _, p := range resumo.Produtos {
		m.AddRows(linhaProduto(p))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: corCinza, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		col.New(9).Add(text.New("Total Geral", props.Text{Style: fontstyle.Bold, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", resumo.TotalGeral), props.Text{Style: fontstyle.Bold, Align: align.Center, Top: 1})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func cabecalhoTabela() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 10, Color: corPrimaria, Top: 1}
	return row.New(8).Add(
		col.New(3).Add(text.New("Código", estilo)),
		col.New(6).Add(text.New("Nome", estilo)),
		col.New(3).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 10, Color: corPrimaria, Align: align.Center, Top: 1})),
	)
}

func linhaProduto(p entity.ResumoProduto) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New(p.Codigo, props.Text{Size: 9, Top: 1})),
		col.New(6).Add(text.New(p.Nome, props.Text{Size: 9, Top: 1})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", p.TotalQuantidade), props.Text{Size: 9, Align: align.Center, Top: 1})),
	)
}

// gerarExcel renderiza o resumo em planilha com excelize: uma aba "Resumo"
// com cabeçalho, uma linha por produto e o total geral ao final.
func gerarExcel(resumo entity.Resumo) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const aba = "Resumo"
	if err := f.SetSheetName("Sheet1", aba); err != nil {
		return nil, fmt.Errorf("excel: renomear aba: %w", err)
	}

	cabecalho := []string{"Código", "Nome", "Total Quantidade"}
	for i, titulo := range cabecalho {
		celula, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(aba, celula, titulo); err != nil {
			return nil, fmt.Errorf("excel: cabeçalho: %w", err)
		}
	}

	linha := 2
	for _, p := range resumo.Produtos {
		valores := []any{p.Codigo, p.Nome, p.TotalQuantidade}
		for i, valor := range valores {
			celula, _ := excelize.CoordinatesToCellName(i+1, linha)
			if err := f.SetCellValue(aba, celula, valor); err != nil {
				return nil, fmt.Errorf("excel: linha %d: %w", linha, err)
			}
		}
		linha++
	}

	totalRotulo, _ := excelize.CoordinatesToCellName(2, linha)
	totalValor, _ := excelize.CoordinatesToCellName(3, linha)
	_ = f.SetCellValue(aba, totalRotulo, "Total Geral")
	_ = f.SetCellValue(aba, totalValor, resumo.TotalGeral)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: gravar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
