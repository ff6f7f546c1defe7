package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out on this device",
	Long:  "Deactivates the current session. The account record stays on disk and a later login with the same device resumes it.",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			exitErr("failed to start", err)
		}
		defer app.Close()

		if err := app.accounts.Logout(cmd.Context()); err != nil {
			exitErr("logout failed", err)
		}
		fmt.Println("Déconnecté.")
	},
}

func init() {
	RootCmd.AddCommand(logoutCmd)
}
