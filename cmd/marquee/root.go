package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var snapshotFlag string
	var outputFlag string

	ctx := newCommandContext(&configFlag, &snapshotFlag, &outputFlag)

	rootCmd := &cobra.Command{
		Use:           "marquee",
		Short:         "Marquee view-model renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&snapshotFlag, "snapshot", "", "Path to the resolved state snapshot")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: auto, json, or table")

	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newLibraryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
