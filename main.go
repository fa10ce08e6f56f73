package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"writewise/internal/config"
	"writewise/internal/generator"
	"writewise/internal/llm"
	"writewise/internal/logging"
	"writewise/internal/tools"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd starts the interactive workspace.
var rootCmd = &cobra.Command{
	Use:   "writewise",
	Short: "Write Wise AI - prompt-powered writing tools in your terminal",
	Long: `Write Wise AI turns a piece of text into rewritten, expanded or SEO-ready
content using one of 42 writing tools backed by a hosted language model.

Run without arguments to open the interactive workspace.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := tools.Validate(); err != nil {
			return fmt.Errorf("tool catalog: %w", err)
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// The workspace owns the terminal, so only subcommands log to stderr.
		logger, err = logging.New(logging.Options{
			File:    cfg.LogFile,
			Stderr:  cmd.HasParent() && (verbose || cmd.Name() == "serve"),
			Verbose: verbose,
		})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWorkspace,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ~/.config/writewise/config.yaml)")
	rootCmd.Flags().StringVarP(&toolFlag, "tool", "t", "", "Open the workspace on this tool, e.g. article_rewriter")

	generateCmd.Flags().StringVarP(&generateTool, "tool", "t", tools.DefaultTool.String(), "Tool to run")
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "", "Rewrite mode for the article rewriter: seo, simple, professional")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newGenerator builds the configured provider and wraps it in a Generator.
func newGenerator() (*generator.Generator, error) {
	provider, err := llm.NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return generator.New(provider,
		generator.WithModel(cfg.Model),
		generator.WithLogger(logger),
	), nil
}
