package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"writewise/internal/config"
	"writewise/internal/db"
	"writewise/internal/generator"
	"writewise/internal/models"
	"writewise/internal/server"
	"writewise/internal/tools"
	"writewise/internal/ui"
)

var (
	toolFlag string

	generateTool string
	generateMode string

	serveAddr string
)

var generateCmd = &cobra.Command{
	Use:   "generate [text]",
	Short: "Run one tool over text and print the result",
	Long: `Runs a single generation and prints the output to stdout.

The text comes from the arguments, or from stdin when none are given:
  writewise generate --tool title_generator "how to brew cold coffee"
  cat draft.md | writewise generate --tool article_rewriter --mode seo`,
	RunE: runGenerate,
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available tools by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTools(cmd.OutOrStdout())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tools over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runWorkspace(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" && cfg.Provider != "custom" {
		if info := config.GetProvider(cfg.Provider); info != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: no API key configured; set %s or api_key in the config file\n", info.KeyEnv)
		}
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		// preferences are optional
		logger.Warn("open preferences database", zap.String("path", cfg.DBPath), zap.Error(err))
	} else {
		defer conn.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := ui.NewProgram(ui.Options{
		Ctx:       ctx,
		Generator: gen,
		DB:        conn,
		Logger:    logger,
		Tool:      toolFlag,
	})
	_, err = p.Run()
	return err
}

func runGenerate(cmd *cobra.Command, args []string) error {
	id, err := tools.Parse(generateTool)
	if err != nil {
		return err
	}
	mode, err := modeFor(id, generateMode)
	if err != nil {
		return err
	}

	input, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	gen, err := newGenerator()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := gen.Generate(ctx, generator.Request{Tool: id, Input: input, Mode: mode})
	if err != nil {
		var genErr *generator.Error
		if errors.As(err, &genErr) && genErr.Kind == generator.KindConfig {
			return fmt.Errorf("%w (check the API key for provider %q)", err, cfg.Provider)
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// modeFor parses raw for tools that take a mode. Other tools ignore it.
func modeFor(id models.ToolID, raw string) (models.Mode, error) {
	if !tools.SupportsMode(id) {
		return models.ModeDefault, nil
	}
	return models.ParseMode(raw)
}

// readInput joins args, or reads all of r when there are none.
func readInput(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func printTools(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, c := range tools.Categories() {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", strings.ToUpper(c.Name))
		for _, id := range c.Tools {
			d := tools.MustDescribe(id)
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", strings.ToLower(id.String()), d.Name, d.Description)
		}
	}
	return tw.Flush()
}

func runServe(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	srvCfg := cfg.Server
	if serveAddr != "" {
		srvCfg.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("serving",
		zap.String("provider", gen.ProviderName()),
		zap.String("model", gen.Model()),
		zap.Duration("session_ttl", srvCfg.SessionTTL),
	)
	h := server.NewHandler(gen, srvCfg.SessionTTL, logger)
	return server.Run(ctx, srvCfg, server.NewRouter(h), logger, nil)
}
