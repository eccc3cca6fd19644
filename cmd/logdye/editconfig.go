package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/logdye/internal/config"
	"github.com/Zuo-Peng/logdye/internal/open"
)

func editConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit-config",
		Short: "Open the config file in $EDITOR, creating it first if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			wrote, err := config.WriteDefault(path)
			if err != nil {
				return err
			}
			if wrote {
				fmt.Fprintf(cmd.ErrOrStderr(), "Created %s\n", path)
			}
			return open.File(path, 1)
		},
	}
}
