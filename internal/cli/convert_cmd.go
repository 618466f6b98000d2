package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbarden/edict/internal/cli/formatter"
)

// runConvert drives one conversion pipeline over all gathered inputs.
// Records are processed strictly one at a time — each conversion owns a
// single oracle conversation — and cancellation is checked between
// items, never mid-retry. A record carrying a read error aborts before
// any oracle call for it.
func runConvert(cmd *cobra.Command, app *App, args []string, showSizes bool, spinnerMsg string, convert func(ctx context.Context, text string) (string, error)) error {
	records, err := gatherInput(cmd, app, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	var sizes []formatter.SizeEntry

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if rec.Err != nil {
			return fmt.Errorf("reading %s: %w", rec.Path, rec.Err)
		}

		var spin *formatter.Spinner
		if app.ShowSpinner {
			spin = formatter.NewSpinner(fmt.Sprintf("%s %s", spinnerMsg, rec.Path))
			spin.Start()
		}
		rendered, err := convert(ctx, rec.Content)
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", rec.Path, err)
		}

		if len(records) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, formatter.StyleHeader.Render(rec.Path))
		}
		fmt.Fprintln(out, rendered)

		sizes = append(sizes, formatter.SizeEntry{
			Path:           rec.Path,
			OriginalBytes:  len(rec.Content),
			ConvertedBytes: len(rendered),
		})
	}

	if showSizes && len(sizes) > 0 {
		fmt.Fprintln(out)
		fmt.Fprint(out, formatter.RenderSizeTable(sizes))
	}
	return nil
}
