package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Dataset.validate(); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	if c.Dataset.Source == SourcePostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required when dataset.source is %q", SourcePostgres)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (d *DatasetConfig) validate() error {
	d.Source = strings.ToLower(strings.TrimSpace(d.Source))

	switch d.Source {
	case SourceCSV:
		if strings.TrimSpace(d.Dir) == "" {
			return fmt.Errorf("dir is required for the csv source")
		}
		if d.LexiconFile == "" {
			return fmt.Errorf("lexicon_file is required")
		}
		if d.OrthographyPTFile == "" || d.OrthographyBRFile == "" {
			return fmt.Errorf("orthography_pt_file and orthography_br_file are required")
		}
	case SourcePostgres:
	default:
		return fmt.Errorf("source must be %q or %q (got %q)", SourceCSV, SourcePostgres, d.Source)
	}
	return nil
}
