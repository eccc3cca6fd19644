package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/logdye/internal/group"
	"github.com/Zuo-Peng/logdye/internal/logger"
	"github.com/Zuo-Peng/logdye/internal/parse"
	"github.com/Zuo-Peng/logdye/internal/source"
)

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <path>...",
		Short: "Report the detected export format of chat log files",
		Long:  `Directories are searched for .txt and .log files. Files without a recognizable format are listed with "-".`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			files, err := source.Collect(args)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FILE\tFORMAT\tENTRIES\tSPEAKERS\t")
			unknown := 0
			for _, f := range files {
				text, err := source.Read(f.Path)
				if err != nil {
					logger.Warnf("[Detect] %v", err)
					fmt.Fprintf(tw, "%s\terror\t-\t-\t\n", f.Path)
					continue
				}
				res := parse.Parse(text)
				if res.Empty() {
					unknown++
					fmt.Fprintf(tw, "%s\t-\t0\t0\t\n", f.Path)
					continue
				}
				g := group.Group(res)
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t\n", f.Path, res.Grammar, len(res.Entries), len(g.Identities))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if unknown > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d files not recognized\n", unknown, len(files))
			}
			return nil
		},
	}
}
