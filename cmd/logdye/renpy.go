package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/logdye/internal/ident"
	"github.com/Zuo-Peng/logdye/internal/render"
)

func renpyCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "renpy [file]",
		Short: "Export a chat log as a Ren'Py script",
		Long: `Same as "render --scheme renpy". Each shown speaker becomes a Character whose
identifier is the shortest unique prefix of the display name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.scheme = render.Renpy
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.palette, "palette", "", "Palette for new speakers (default from config)")
	cmd.Flags().StringVar(&opts.grammar, "grammar", "", "Force a grammar instead of detecting it")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the script to the clipboard")
	opts.bindFilters(cmd)

	cmd.AddCommand(renpyNamesCmd())
	return cmd
}

func renpyNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names <name>...",
		Short: "Print the identifier derived for each name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := ident.Derive(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, id := range ids {
				fmt.Fprintf(out, "%s\t%s\n", id, args[i])
			}
			return nil
		},
	}
}
