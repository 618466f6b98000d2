package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nbarden/edict/internal/cli/formatter"
)

func newTasksCmd(app *App) *cobra.Command {
	var showSizes bool

	cmd := &cobra.Command{
		Use:   "tasks [file ...]",
		Short: "Convert directive text into a hierarchical task tree",
		Long: `Convert natural-language directive text into a hierarchy of tasks
with targets, constraints, and context, rendered as a numbered
connector tree. Arguments are file paths or glob patterns; with no
arguments, text is read interactively or from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, app, args, showSizes, "Decomposing tasks in", func(ctx context.Context, text string) (string, error) {
				prompt, err := app.Tasks.Convert(ctx, text)
				if err != nil {
					return "", err
				}
				return formatter.RenderPrompt(*prompt), nil
			})
		},
	}

	addSizesFlag(cmd.Flags(), &showSizes)
	return cmd
}
