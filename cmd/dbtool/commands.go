package main

import (
	"attractions-service/internal/adapters/repositories"
	"attractions-service/internal/config"
	"attractions-service/internal/domain"
	"attractions-service/internal/platform/db"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type historyRow struct {
	ID           string    `json:"id" yaml:"id"`
	Lat          float64   `json:"lat" yaml:"lat"`
	Lon          float64   `json:"lon" yaml:"lon"`
	RadiusMeters uint      `json:"radius_meters" yaml:"radius_meters"`
	PlaceType    string    `json:"place_type" yaml:"place_type"`
	Language     string    `json:"language" yaml:"language"`
	ResultCount  int       `json:"result_count" yaml:"result_count"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// openDB is replaced in tests.
var openDB = func(ctx context.Context) (*sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	return db.Open(ctx, cfg.DatabaseURL)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dbtool",
		Short:         "Manage the attractions search history database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newInitCmd(), newHistoryCmd())
	return root
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the search history schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := repositories.InitSchema(cmd.Context(), conn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema ready.")
			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent attraction searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}

			conn, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			entries, err := repositories.NewSQLSearchLog(conn).ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeHistory(cmd.OutOrStdout(), format, entries)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of searches to show")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json or yaml")
	return cmd
}

func writeHistory(w io.Writer, format string, entries []domain.SearchEntry) error {
	rows := make([]historyRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, historyRow{
			ID:           e.ID.String(),
			Lat:          e.Origin.Lat,
			Lon:          e.Origin.Lon,
			RadiusMeters: e.RadiusMeters,
			PlaceType:    e.PlaceType,
			Language:     e.Language,
			ResultCount:  e.ResultCount,
			CreatedAt:    e.CreatedAt.UTC(),
		})
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CREATED_AT\tLAT\tLON\tRADIUS\tTYPE\tLANG\tRESULTS")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%d\t%s\t%s\t%d\n",
				r.CreatedAt.Format(time.RFC3339), r.Lat, r.Lon,
				r.RadiusMeters, r.PlaceType, r.Language, r.ResultCount,
			)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
