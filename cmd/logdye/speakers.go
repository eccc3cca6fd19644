package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/logdye/internal/group"
	"github.com/Zuo-Peng/logdye/internal/logger"
	"github.com/Zuo-Peng/logdye/internal/store"
)

type speakerRow struct {
	ID      string        `json:"id" yaml:"id"`
	Names   []string      `json:"names" yaml:"names"`
	New     bool          `json:"new" yaml:"new"`
	Setting store.Setting `json:"setting" yaml:"setting"`
}

func speakersCmd() *cobra.Command {
	var format, paletteID, grammar string
	var save, forget bool

	cmd := &cobra.Command{
		Use:   "speakers [file]",
		Short: "List the speakers of a chat log with their display settings",
		Long: `Groups the entries by speaker and matches them against the stored settings.
Speakers seen for the first time get the next unused palette color; --save stores them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if paletteID == "" {
				paletteID = cfg.Palette
			}
			p, err := lookupPalette(paletteID)
			if err != nil {
				return err
			}
			path, err := inputPath(args)
			if err != nil {
				return err
			}
			res, err := readLog(cmd.InOrStdin(), path, grammar)
			if err != nil {
				return err
			}
			g := group.Group(res)

			db, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			if forget {
				for _, ident := range g.Identities {
					if err := db.Delete(ctx, ident.ID); err != nil {
						return fmt.Errorf("forget %s: %w", ident.ID, err)
					}
				}
				logger.Infof("[Speakers] forgot stored settings of %d speakers", len(g.Identities))
			}
			rec, err := reconcileStored(ctx, db, g, p)
			if err != nil {
				return err
			}

			isNew := make(map[string]bool, len(rec.Created))
			for _, id := range rec.Created {
				isNew[id] = true
			}
			rows := make([]speakerRow, 0, len(g.Identities))
			for _, ident := range g.Identities {
				rows = append(rows, speakerRow{
					ID:      ident.ID,
					Names:   ident.Names,
					New:     isNew[ident.ID],
					Setting: rec.Settings[ident.ID],
				})
			}

			if save && len(rec.Created) > 0 {
				created := make(map[string]store.Setting, len(rec.Created))
				for _, id := range rec.Created {
					created[id] = rec.Settings[id]
				}
				if err := db.Save(ctx, created); err != nil {
					return fmt.Errorf("save settings: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			if format != "text" {
				return writeFormatted(out, format, rows)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCOLOR\tSHOWN\tSEEN AS\t")
			for _, r := range rows {
				mark := ""
				if r.New {
					mark = " *"
				}
				fmt.Fprintf(tw, "%s%s\t%s\t%s\t%t\t%s\t\n",
					r.ID, mark, r.Setting.DisplayName, r.Setting.Color, r.Setting.Enabled, strings.Join(r.Names, " / "))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if n := len(rec.Created); n > 0 {
				if save {
					fmt.Fprintf(out, "\nsaved %d new speakers\n", n)
				} else {
					fmt.Fprintf(out, "\n* %d new speakers, not saved (use --save)\n", n)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text/json/yaml)")
	cmd.Flags().StringVar(&paletteID, "palette", "", "Palette for new speakers (default from config)")
	cmd.Flags().StringVar(&grammar, "grammar", "", "Force a grammar instead of detecting it")
	cmd.Flags().BoolVar(&save, "save", false, "Store settings of new speakers")
	cmd.Flags().BoolVar(&forget, "forget", false, "Drop stored settings of this log's speakers first")

	return cmd
}
