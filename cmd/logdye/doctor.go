package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/logdye/internal/config"
	"github.com/Zuo-Peng/logdye/internal/palette"
	"github.com/Zuo-Peng/logdye/internal/parse"
	"github.com/Zuo-Peng/logdye/internal/render"
	"github.com/Zuo-Peng/logdye/internal/store"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, settings database and palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "=== Config ===")
			path, err := config.Path()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				fmt.Fprintf(out, "  File: %s (not found, using defaults)\n", path)
			} else {
				fmt.Fprintf(out, "  File: %s (OK)\n", path)
			}
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(out, "  Status: INVALID (%v)\n", err)
				return err
			}
			fmt.Fprintf(out, "  Palette: %s\n", cfg.Palette)
			fmt.Fprintf(out, "  Scheme:  %s\n", cfg.Scheme)
			fmt.Fprintf(out, "  Log:     %s %s\n", cfg.LogLevel, cfg.LogFile)

			fmt.Fprintln(out, "\n=== Palettes ===")
			for _, p := range palette.All() {
				light := 0
				for _, c := range p.Colors {
					if c.IsLight() {
						light++
					}
				}
				fmt.Fprintf(out, "  %-4s %2d colors (%d light)  %s\n", p.ID, len(p.Colors), light, p.Name)
			}

			fmt.Fprintln(out, "\n=== Formats ===")
			for _, g := range parse.Grammars() {
				fmt.Fprintf(out, "  %s\n", g.Name)
			}
			fmt.Fprintf(out, "  schemes: %v\n", render.SchemeIDs())

			fmt.Fprintln(out, "\n=== Database ===")
			fmt.Fprintf(out, "  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Fprintln(out, "  Status: NOT FOUND (created on first save)")
				return nil
			}

			db, err := store.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			ver, err := db.SchemaVersion()
			if err != nil {
				return fmt.Errorf("schema version: %w", err)
			}
			n, err := db.Count(cmd.Context())
			if err != nil {
				return fmt.Errorf("count settings: %w", err)
			}
			fmt.Fprintf(out, "  Schema:   v%s\n", ver)
			fmt.Fprintf(out, "  Speakers: %d\n", n)

			if info, err := os.Stat(cfg.DBPath); err == nil {
				fmt.Fprintf(out, "  Size:     %.1f KB\n", float64(info.Size())/1024)
			}
			return nil
		},
	}
}
