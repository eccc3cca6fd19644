package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	var format, grammar string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Split a chat log into speaker-attributed entries",
		Long: `Detects the export format from the first recognizable header line and prints
the entries. Reads stdin when no file is given; "@clipboard" reads the clipboard.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
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

			out := cmd.OutOrStdout()
			if format != "text" {
				return writeFormatted(out, format, res)
			}

			fmt.Fprintf(out, "# %s, %d entries\n", res.Grammar, len(res.Entries))
			for _, e := range res.Entries {
				head := e.Speaker.Name
				if e.Speaker.Title != "" {
					head = "【" + e.Speaker.Title + "】" + head
				}
				if e.Speaker.AccountID != "" {
					head += " (" + e.Speaker.AccountID + ")"
				}
				if e.Time != "" {
					head += "  " + e.Time
				}
				fmt.Fprintln(out, head)
				for _, c := range e.Content {
					fmt.Fprintln(out, "  "+strings.ReplaceAll(c, "\t", " "))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text/json/yaml)")
	cmd.Flags().StringVar(&grammar, "grammar", "", "Force a grammar instead of detecting it")

	return cmd
}
