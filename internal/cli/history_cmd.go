package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nbarden/edict/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent oracle conversions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.History == nil {
				fmt.Fprintln(out, formatter.Dim("history is disabled"))
				return nil
			}

			entries, err := app.History.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, formatter.Dim("no conversions recorded yet"))
				return nil
			}

			headers := []string{"When", "Task", "Model", "Attempts", "Latency", "Status"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				status := formatter.StyleGreen.Render("ok")
				if !e.Success {
					status = formatter.StyleRed.Render(e.ErrorCode)
				}
				rows = append(rows, []string{
					e.CreatedAt.Local().Format("2006-01-02 15:04"),
					e.Task,
					e.Model,
					strconv.Itoa(e.Attempts),
					fmt.Sprintf("%dms", e.LatencyMs),
					status,
				})
			}
			fmt.Fprint(out, formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum entries to show")
	return cmd
}
