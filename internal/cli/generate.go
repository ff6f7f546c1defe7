package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geniastudio/genia/internal/common"
	"github.com/geniastudio/genia/internal/models"
	"github.com/geniastudio/genia/internal/pipeline"
	"github.com/geniastudio/genia/internal/provider/gemini"
	"github.com/geniastudio/genia/internal/render"
)

var (
	generateKind  string
	generateCount int
	generateDepth string
	generateStyle string
	generateLang  string
)

var generateCmd = &cobra.Command{
	Use:   "generate [subject]",
	Short: "Generate an ebook or a slide deck",
	Long: "Runs the full generation sequence for a subject: outline, one chapter " +
		"and illustration per section, then assembly into a file in the output " +
		"directory. Each completed file costs one credit.",
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

		var subject string
		if len(args) > 0 {
			subject = args[0]
		} else {
			subject, err = promptIfTerminal("Sujet")
			if err != nil {
				exitErr("failed to read subject", err)
			}
		}

		lang := app.cfg.Language
		if generateLang != "" {
			lang = generateLang
		}

		req, err := models.NewGenerationRequest(s, subject, models.Kind(generateKind), lang, generateCount, models.Depth(generateDepth), generateStyle)
		if err != nil {
			exitErr("invalid request", err)
		}

		provider := gemini.NewClient(app.cfg.ProviderEndpoint, app.cfg.ProviderAPIKey, app.cfg.ProviderTimeout)
		factory := render.NewFactory(app.cfg.OutputDir)

		orch := pipeline.NewOrchestrator(provider, factory, app.ledger, app.accounts, app.log, func(p pipeline.Progress) {
			switch p.State {
			case pipeline.StateOutlining:
				fmt.Println("Architecture du document...")
			case pipeline.StateWriting:
				fmt.Printf("Rédaction de la section %d/%d...\n", p.Section, p.Total)
			case pipeline.StateAssembling:
				fmt.Println("Assemblage du fichier...")
			}
		})

		res, err := orch.Generate(cmd.Context(), s, req)
		if errors.Is(err, common.ErrQuotaExhausted) {
			fmt.Println("Quota épuisé ! Lancez `genia activate --request` pour demander un code d'activation.")
			return
		}
		if err != nil {
			exitErr("generation failed", err)
		}

		fmt.Printf("Terminé: %d sections générées (run %s). Crédits restants: %d\n", res.Sections, res.RunID, s.Quota)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateKind, "kind", "k", string(models.KindEbook), "Output kind: ebook or ppt")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", models.DefaultSectionCount, "Number of sections (pro plan only)")
	generateCmd.Flags().StringVarP(&generateDepth, "depth", "d", string(models.DepthStandard), "Prose depth: standard, detailed or expert (pro plan only)")
	generateCmd.Flags().StringVarP(&generateStyle, "style", "s", "", "Writing style (pro plan only)")
	generateCmd.Flags().StringVarP(&generateLang, "lang", "l", "", "Content language (default from config)")
	RootCmd.AddCommand(generateCmd)
}
