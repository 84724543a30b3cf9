package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/tugalex-backend/internal/app"
	"github.com/heartmarshall/tugalex-backend/internal/config"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// cli holds what every subcommand needs once the root flags are parsed.
type cli struct {
	cfg    *config.Config
	logger *slog.Logger
	output string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "tugalex",
		Short: "Portuguese dialect lexicon",
		Long: `tugalex looks up pronunciations and syllables of Portuguese words per
region, converts text between pre- and post-1990 spellings, and loads the
dataset into PostgreSQL.

Configuration comes from CONFIG_PATH (or ./config.yaml) and the environment;
the flags below override it.`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().String("data-dir", "", "Directory holding the CSV tables (overrides DATASET_DIR)")
	root.PersistentFlags().String("source", "", "Dataset source: csv or postgres (overrides DATASET_SOURCE)")
	root.PersistentFlags().String("dsn", "", "PostgreSQL DSN (overrides DATABASE_DSN)")
	root.PersistentFlags().StringP("output", "o", outputJSON, "Output format: json or yaml")
	root.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(getCmd(c))
	root.AddCommand(normalizeCmd(c))
	root.AddCommand(reverseCmd(c))
	root.AddCommand(wordlistCmd(c))
	root.AddCommand(ipaCmd(c))
	root.AddCommand(insightsCmd(c))
	root.AddCommand(regionsCmd(c))
	root.AddCommand(statsCmd(c))
	root.AddCommand(importCmd(c))
	root.AddCommand(migrateCmd(c))

	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if v, _ := flags.GetString("data-dir"); v != "" {
		cfg.Dataset.Dir = v
	}
	if v, _ := flags.GetString("source"); v != "" {
		cfg.Dataset.Source = v
	}
	if v, _ := flags.GetString("dsn"); v != "" {
		cfg.Database.DSN = v
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}

	output, _ := flags.GetString("output")
	output = strings.ToLower(output)
	if output != outputJSON && output != outputYAML {
		return fmt.Errorf("unknown output format %q (want json or yaml)", output)
	}

	level, _ := flags.GetString("log-level")
	logCfg := cfg.Log
	logCfg.Level = level
	logCfg.Format = "text"

	c.cfg = cfg
	c.output = output
	c.logger = app.NewLogger(logCfg)
	return nil
}

// render writes v to w in the selected output format.
func (c *cli) render(w io.Writer, v any) error {
	switch c.output {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
