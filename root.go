package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"shape-selector/internal/config"
	"shape-selector/internal/logging"
	"shape-selector/internal/stage"
	"shape-selector/internal/version"
	"shape-selector/internal/vision"
)

// rootOptions carries the global flags and the configuration they resolve to.
type rootOptions struct {
	configPath string
	verbose    bool
	logFormat  string

	cfg config.Config
}

func (o *rootOptions) classifier() *vision.Classifier {
	return vision.NewClassifier(o.cfg.Vision)
}

func (o *rootOptions) runner() *stage.Runner {
	return stage.NewRunner(o.classifier(), o.cfg.Workers)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "shape-selector",
		Short: "Classify geometric figures and select one by instruction",
		Long: "shape-selector segments a single figure from each image, labels its shape\n" +
			"and dominant color, and picks the figure an instruction such as\n" +
			"\"the smallest red triangle\" asks for.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logging.Init(level, opts.logFormat, cmd.ErrOrStderr())
			vision.SetLogger(logging.New("vision"))

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.cfg = cfg
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline decisions at debug level")
	f.StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(
		newClassifyCmd(opts),
		newSelectCmd(opts),
		newSolveCmd(opts),
		newRenderCmd(),
	)
	return cmd
}
