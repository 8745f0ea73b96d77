package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/contagem-estoque/internal/infrastructure/stubstore"
	"github.com/jhoicas/contagem-estoque/pkg/config"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

func newServidorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "servidor",
		Short: "Sobe o stub em memória da loja (desenvolvimento e testes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
			log.Info().Str("addr", cfg.Stub.Addr()).Msg("iniciando stub da loja")

			app := stubstore.NewApp(stubstore.NewMemoria(), log)

			go func() {
				if err := app.Listen(cfg.Stub.Addr()); err != nil {
					log.Error().Err(err).Msg("servidor HTTP finalizado")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("desligamento do servidor")
			}

			log.Info().Msg("stub encerrado")
			return nil
		},
	}
}
