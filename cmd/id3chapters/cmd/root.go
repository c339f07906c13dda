package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3chapters"
)

// config holds the flag values for one invocation.
type config struct {
	Format     string
	LogFormat  string
	SeekPoints bool
	Strict     bool
	Verbose    bool
}

// NewRootCmd builds the id3chapters command.
func NewRootCmd() *cobra.Command {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:   "id3chapters [flags] FILE...",
		Short: "List the chapters stored in ID3v2 tags",
		Long: `id3chapters reads the CHAP frames of the ID3v2 tag at the start of
each file and prints their start times and titles.

Files without an ID3v2 tag are listed with no chapters.`,
		Example: `  id3chapters episode.mp3
  id3chapters --format json *.mp3
  id3chapters --seekpoints --format yaml audiobook.mp3`,
		Version:       id3chapters.GetVersion(),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}

	rootCmd.SetVersionTemplate(id3chapters.GetBuildInfo().String() + "\n")

	flags := rootCmd.Flags()
	flags.StringVarP(&cfg.Format, "format", "f", "text", "Output format: text, json or yaml")
	flags.BoolVar(&cfg.SeekPoints, "seekpoints", false, "Print player seek points (microseconds) instead of chapters")
	flags.BoolVar(&cfg.Strict, "strict", false, "Fail on any parse warning")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log parse diagnostics to stderr")
	flags.StringVar(&cfg.LogFormat, "log-format", "text", "Diagnostic log format: text or json")

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg *config, paths []string) error {
	out, err := newPrinter(cfg.Format, cfg.SeekPoints)
	if err != nil {
		return err
	}

	opts := []id3chapters.Option{
		id3chapters.WithLogger(newLogger(cmd.ErrOrStderr(), cfg)),
	}
	if cfg.Strict {
		opts = append(opts, id3chapters.WithStrictParsing())
	}

	files, err := id3chapters.OpenMany(cmd.Context(), paths, opts...)
	if err != nil {
		return err
	}

	return out.print(cmd.OutOrStdout(), files)
}

func newLogger(w io.Writer, cfg *config) *slog.Logger {
	if !cfg.Verbose {
		return slog.New(slog.DiscardHandler)
	}

	hopts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
