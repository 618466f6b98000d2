package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nbarden/edict/internal/cli/formatter"
)

func newRulesCmd(app *App) *cobra.Command {
	var showSizes bool

	cmd := &cobra.Command{
		Use:   "rules [file ...]",
		Short: "Convert directive text into flat deontic rules",
		Long: `Convert natural-language directive text into a flat list of deontic
rules (obligations, prohibitions, permissions) and print them as
imperative bullets. Arguments are file paths or glob patterns; with no
arguments, text is read interactively or from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, app, args, showSizes, "Extracting rules from", func(ctx context.Context, text string) (string, error) {
				rules, err := app.Rules.Convert(ctx, text)
				if err != nil {
					return "", err
				}
				return formatter.RenderRules(rules), nil
			})
		},
	}

	addSizesFlag(cmd.Flags(), &showSizes)
	return cmd
}
