package main

import (
	"fmt"

	"github.com/ochairo/gettor/internal/domain-adapters/gateways"
	"github.com/ochairo/gettor/internal/domain/interfaces"
	"github.com/spf13/cobra"
)

func createScanCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [DIR]",
		Short: "List signed bundles ready for upload",
		Long: `List every correctly named bundle in DIR that has a detached .asc signature,
each followed by its signature. DIR defaults to upload_dir from the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.uploadDir(args)

			files, err := gateways.NewUploadFinder().FindUploadable(dir)
			if err != nil {
				return err
			}
			a.logger.Info("Found uploadable files", interfaces.F("dir", dir), interfaces.F("count", len(files)))

			if a.output == "yaml" {
				return printYAML(cmd.OutOrStdout(), files)
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}
