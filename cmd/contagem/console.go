package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/contagem-estoque/internal/application/usecase"
	"github.com/jhoicas/contagem-estoque/internal/domain/session"
	"github.com/jhoicas/contagem-estoque/internal/infrastructure/api"
	"github.com/jhoicas/contagem-estoque/internal/interfaces/term"
	"github.com/jhoicas/contagem-estoque/pkg/config"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

func newConsoleCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Sessão interativa do operador",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.API.BaseURL = baseURL
			}

			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
			log.Info().Str("base_url", cfg.API.BaseURL).Msg("iniciando sessão de contagem")

			leitor := bufio.NewReader(os.Stdin)
			visao := term.NewView(leitor, os.Stdout)
			loja := api.New(cfg.API, visao.Estado(), log)
			contexto := session.NewContexto()

			resumoUC := usecase.NewResumoUseCase(loja, visao, log, cfg.Download.Dir)
			contagemUC := usecase.NewContagemUseCase(loja, visao, contexto, resumoUC, log)
			produtoUC := usecase.NewProdutoUseCase(loja, visao, contagemUC, resumoUC, log)
			buscaUC := usecase.NewBuscaUseCase(loja, visao, contexto, log)
			importacaoUC := usecase.NewImportacaoUseCase(visao)

			console := term.NewConsole(term.ConsoleDeps{
				Leitor:     leitor,
				Saida:      os.Stdout,
				Visao:      visao,
				Contexto:   contexto,
				Produtos:   produtoUC,
				Busca:      buscaUC,
				Contagens:  contagemUC,
				Resumo:     resumoUC,
				Importacao: importacaoUC,
			})
			return console.Executar(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "endereço da loja (sobrepõe API_BASE_URL)")
	return cmd
}
