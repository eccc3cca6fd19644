package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/logdye/internal/group"
	"github.com/Zuo-Peng/logdye/internal/postprocess"
	"github.com/Zuo-Peng/logdye/internal/store"
	"github.com/Zuo-Peng/logdye/internal/tui"
)

func configureCmd() *cobra.Command {
	var paletteID, grammar string

	cmd := &cobra.Command{
		Use:   "configure <file>",
		Short: "Interactively edit speaker names, colors and visibility",
		Long: `Opens a two-panel screen listing the speakers of the log next to a live preview.
Enter saves every speaker's settings; Esc discards the changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("configure needs a terminal; use \"logdye speakers --save\" in scripts")
			}
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
			res, err := readLog(cmd.InOrStdin(), args[0], grammar)
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
			rec, err := reconcileStored(ctx, db, g, p)
			if err != nil {
				return err
			}

			result, err := tui.Run(tui.Input{
				Identities: g.Identities,
				Lines:      postprocess.Apply(g.Lines, cfg.Postprocess()),
				Settings:   rec.Settings,
				Palette:    p,
			})
			if err != nil {
				return err
			}
			if !result.Saved {
				fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled, nothing saved.")
				return nil
			}

			// only this log's speakers were editable
			changed := make(map[string]store.Setting, len(rec.IDs))
			for _, id := range rec.IDs {
				changed[id] = result.Settings[id]
			}
			if err := db.Save(ctx, changed); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d speakers.\n", len(changed))
			return nil
		},
	}

	cmd.Flags().StringVar(&paletteID, "palette", "", "Palette for new speakers (default from config)")
	cmd.Flags().StringVar(&grammar, "grammar", "", "Force a grammar instead of detecting it")

	return cmd
}
