package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zerodividas/zerodividas/internal/cli"
)

func boletosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boletos",
		Short: "Search for registered boletos",
		Long: `Search for boletos registered against your CPF. The lookup is a
simulation and always comes back empty; there is no real registry
integration yet.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireAuth(s); err != nil {
				return err
			}

			cli.Wait("Buscando boletos em seu CPF", 3*time.Second)
			fmt.Println(cli.Warning("Nenhum boleto encontrado."))
			return nil
		},
	}
}
