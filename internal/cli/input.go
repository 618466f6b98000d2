package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nbarden/edict/internal/input"
)

// gatherInput resolves the records a conversion command will process:
// file arguments when given, an interactive form on a terminal, piped
// stdin otherwise.
func gatherInput(cmd *cobra.Command, app *App, args []string) ([]input.Record, error) {
	if len(args) > 0 {
		return input.Discover(args)
	}

	if app.IsInteractive != nil && app.IsInteractive() {
		text, err := promptDirectiveText()
		if err != nil {
			return nil, err
		}
		return []input.Record{{Path: "(interactive)", Content: text}}, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return []input.Record{{Path: "(stdin)", Content: string(data)}}, nil
}
