package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "contagem",
		Short:         "Cliente de contagem de estoque",
		Long:          "Fluxo de contagem de estoque: cadastro de produtos, registro de contagens por lote/validade e resumo agregado com exportação de relatórios.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newConsoleCmd(), newServidorCmd())
	return cmd
}
