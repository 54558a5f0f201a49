package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"ttresults/internal/config"
	"ttresults/internal/logging"
	"ttresults/internal/page"
	"ttresults/internal/results"
	"ttresults/internal/source"
)

func newRenderCommand(configFlag *string) *cobra.Command {
	var csvFlag string
	var stdoutFlag bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Classify, rank, and publish the results page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if csvFlag != "" {
				expanded, err := config.ExpandPath(csvFlag)
				if err != nil {
					return fmt.Errorf("resolve results path: %w", err)
				}
				cfg.Source.ResultsCSV = expanded
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			})
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			entries, err := source.LoadCSV(cfg.Source.ResultsCSV)
			if err != nil {
				return err
			}

			engine := results.NewEngine(cfg.Output.Header, logger)
			outcome, err := engine.Run(cmd.Context(), entries)
			if err != nil {
				if errors.Is(err, results.ErrProgressUndetermined) {
					return fmt.Errorf("no stage results in %s yet: %w", cfg.Source.ResultsCSV, err)
				}
				return err
			}

			for _, d := range outcome.Diagnostics {
				logger.Warn("record excluded", "component", "render", "diagnostic", d.String())
			}

			html, err := page.Assemble(outcome.Tables, page.Info{
				Title:        cfg.Output.Header,
				ContactName:  cfg.Contact.Name,
				ContactEmail: cfg.Contact.Email,
				Updated:      time.Now(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if stdoutFlag {
				fmt.Fprintln(out, html)
				return nil
			}

			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			if err := page.Publish(cfg.PagePath(), html); err != nil {
				return err
			}

			fmt.Fprintf(out, "Wrote stage %d results for %d cohorts to %s\n",
				outcome.Stage, len(outcome.Tables), cfg.PagePath())
			if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				fmt.Fprintln(out, renderSummary(outcome))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvFlag, "results", "", "Results export path (overrides source.results_csv)")
	cmd.Flags().BoolVar(&stdoutFlag, "stdout", false, "Print the page to stdout instead of publishing")
	return cmd
}
