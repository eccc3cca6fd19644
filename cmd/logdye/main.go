package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "logdye",
		Short:         "logdye - turn pasted chat logs into colored, speaker-attributed scripts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(speakersCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(renpyCmd())
	rootCmd.AddCommand(configureCmd())
	rootCmd.AddCommand(detectCmd())
	rootCmd.AddCommand(doctorCmd())
	rootCmd.AddCommand(editConfigCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
