package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zerodividas/zerodividas/internal/auth"
	"github.com/zerodividas/zerodividas/internal/cli"
	"github.com/zerodividas/zerodividas/internal/common"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a session",
		Long: `Log in with a registered account, or with the demo account
(demo@zerodividas.com / password) for a pre-populated dataset.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			cli.Wait("Entrando", time.Second)

			if !s.Login(email, password) {
				return common.NewUserError("E-mail ou senha inválidos", common.ErrInvalidCredentials)
			}

			fmt.Println(cli.Success(fmt.Sprintf("Bem-vindo, %s!", s.User().Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", auth.DemoEmail, "account email")
	cmd.Flags().StringVarP(&password, "password", "p", auth.DemoPassword, "account password")

	return cmd
}

func signupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup <name> <email> <password>",
		Short: "Register a new account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			name, email, password := args[0], args[1], args[2]
			if !s.Signup(name, email, password) {
				return common.NewUserError("E-mail já cadastrado", common.ErrDuplicateEmail)
			}

			fmt.Println(cli.Success("Conta criada. Use 'zerodividas login' para entrar."))
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			s.Logout()
			fmt.Println(cli.Success("Sessão encerrada."))
			return nil
		},
	}
}
