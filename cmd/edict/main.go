package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nbarden/edict/internal/cli"
	"github.com/nbarden/edict/internal/config"
	"github.com/nbarden/edict/internal/conversion"
	"github.com/nbarden/edict/internal/history"
	"github.com/nbarden/edict/internal/llm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var observers llm.MultiObserver
	if cfg.LLM.LogCalls {
		observers = append(observers, llm.NewLogObserver(os.Stderr))
	}

	var store *history.Store
	if !cfg.HistoryDisabled && cfg.HistoryPath != "" {
		db, err := history.OpenDB(cfg.HistoryPath)
		if err != nil {
			// History is best effort; conversions still work without it.
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		} else {
			defer db.Close()
			store = history.NewStore(db)
			observers = append(observers, history.NewRecorder(store))
		}
	}

	client := llm.NewOllamaClient(cfg.LLM)

	app := &cli.App{
		Rules:   conversion.NewRuleService(client, observers, cfg.LLM.MaxAttempts),
		Tasks:   conversion.NewTaskService(client, observers, cfg.LLM.MaxAttempts),
		History: store,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		ShowSpinner: isatty.IsTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
