package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geniastudio/genia/internal/common"
	"github.com/geniastudio/genia/internal/license"
)

var activateRequest bool

var activateCmd = &cobra.Command{
	Use:   "activate [code]",
	Short: "Redeem an activation code or request one",
	Long: "Verifies a 4-digit activation code against the current transaction. " +
		"A valid code upgrades the account to the pro plan and adds credits. " +
		"With --request, prints the transaction id to send when asking for a code.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			exitErr("failed to start", err)
		}
		defer app.Close()

		s, err := app.accounts.Current(cmd.Context())
		if errors.Is(err, common.ErrNotLoggedIn) {
			exitErr("not logged in", errors.New("run `genia login` first"))
		}
		if err != nil {
			exitErr("failed to load session", err)
		}

		if activateRequest {
			txID := app.ledger.TransactionID(s)
			fmt.Printf("ID de transaction: %s\n", txID)
			fmt.Printf("Message à envoyer: Bonjour, je souhaite activer Genia Studio. Mon ID de transaction est %s.\n", txID)
			return
		}

		var code string
		if len(args) > 0 {
			code = args[0]
		} else {
			code, err = promptIfTerminal("Code à 4 chiffres")
			if err != nil {
				exitErr("failed to read code", err)
			}
		}

		err = app.ledger.Activate(s, code)
		if errors.Is(err, common.ErrCodeMismatch) {
			fmt.Println("Code incorrect pour cette transaction. Vérifiez le code et réessayez dans l'heure.")
			return
		}
		if err != nil {
			exitErr("activation failed", err)
		}

		app.accounts.Persist(cmd.Context(), s)
		fmt.Printf("Activation réussie ! Plan %s, %d crédits ajoutés, %d crédits disponibles.\n", s.Plan, license.ProCredits, s.Quota)
	},
}

func init() {
	activateCmd.Flags().BoolVar(&activateRequest, "request", false, "Print the transaction id for requesting a code")
	RootCmd.AddCommand(activateCmd)
}
