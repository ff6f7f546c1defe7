package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geniastudio/genia/internal/common"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current account and remaining credits",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			exitErr("failed to start", err)
		}
		defer app.Close()

		s, err := app.accounts.Current(cmd.Context())
		if errors.Is(err, common.ErrNotLoggedIn) {
			fmt.Println("Aucune session active. Lancez `genia login` pour commencer.")
			return
		}
		if err != nil {
			exitErr("failed to load session", err)
		}

		fmt.Printf("Compte:    %s\n", s.Email)
		fmt.Printf("ID:        %s\n", s.UID)
		fmt.Printf("Plan:      %s\n", s.Plan)
		fmt.Printf("Crédits:   %d\n", s.Quota)
		fmt.Printf("Ebooks:    %d\n", s.EbookCount)
		fmt.Printf("Slides:    %d\n", s.PPTCount)
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
