package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nbarden/edict/internal/conversion"
	"github.com/nbarden/edict/internal/history"
)

// App holds the service interfaces and environment hooks CLI commands
// depend on.
type App struct {
	Rules   conversion.RuleService
	Tasks   conversion.TaskService
	History *history.Store

	// IsInteractive reports whether stdin is attached to a terminal;
	// with no file arguments it decides between a form and piped input.
	IsInteractive func() bool

	// ShowSpinner enables the in-flight spinner (stdout is a terminal).
	ShowSpinner bool
}

// NewRootCmd creates the top-level "edict" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "edict",
		Short:         "Convert natural-language directives into rules and task trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRulesCmd(app),
		newTasksCmd(app),
		newHistoryCmd(app),
	)

	return root
}

// addSizesFlag registers the shared --sizes flag on a command flag set.
func addSizesFlag(fs *pflag.FlagSet, p *bool) {
	fs.BoolVar(p, "sizes", false, "print a byte-size comparison table after converting")
}
