package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ochairo/gettor/internal/domain-adapters/gateways"
	"github.com/ochairo/gettor/internal/domain/services"
	"github.com/spf13/cobra"
)

func createCoverageCommand(a *app) *cobra.Command {
	var (
		platforms []string
		locales   []string
	)

	cmd := &cobra.Command{
		Use:   "coverage [DIR]",
		Short: "Check that signed bundles cover every expected platform and locale",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Coverage
			if cmd.Flags().Changed("platforms") {
				cfg.Platforms = platforms
			}
			if cmd.Flags().Changed("locales") {
				cfg.Locales = locales
			}

			names, err := gateways.NewUploadFinder().FindUploadable(a.uploadDir(args))
			if err != nil {
				return err
			}

			report := services.NewCoverageService().Check(cfg, names)

			if a.output == "yaml" {
				if err := printYAML(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Status: %s\n", report.Status)
				fmt.Fprintf(out, "Available: %s\n", strings.Join(report.AvailableTargets, ", "))
			}

			if !report.IsReady() {
				return errors.New(report.ErrorMessage())
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&platforms, "platforms", nil, "Expected platforms (windows, linux, osx)")
	cmd.Flags().StringSliceVar(&locales, "locales", nil, "Expected 2-letter locales")
	return cmd
}
