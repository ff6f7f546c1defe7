package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geniastudio/genia/internal/common"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in on this device",
	Long:  "Creates a local account for the given email, or resumes the account previously used on this device.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			exitErr("failed to start", err)
		}
		defer app.Close()

		var email string
		if len(args) > 0 {
			email = args[0]
		} else {
			email, err = promptIfTerminal("Email")
			if err != nil {
				exitErr("failed to read email", err)
			}
		}

		s, err := app.accounts.Login(cmd.Context(), email)
		if errors.Is(err, common.ErrInvalidEmail) {
			exitErr("invalid email address", err)
		}
		if err != nil {
			exitErr("login failed", err)
		}

		fmt.Printf("Connecté en tant que %s (compte %s)\n", s.Email, s.UID)
		fmt.Printf("Plan: %s, crédits restants: %d\n", s.Plan, s.Quota)
	},
}

func init() {
	RootCmd.AddCommand(loginCmd)
}
