package main

import (
	"fmt"

	"github.com/ochairo/gettor/internal/domain/entities"
	"github.com/ochairo/gettor/internal/domain/services"
	"github.com/spf13/cobra"
)

type classifiedBundle struct {
	Name string              `yaml:"name"`
	Info entities.BundleInfo `yaml:"info"`
}

func createClassifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify NAME...",
		Short: "Show the os, arch and locale of bundle filenames",
		Example: `  gettor classify tor-browser-linux64-12.5_en-US.tar.xz
  gettor classify -o yaml TorBrowser-12.5-osx64_fr.dmg torbrowser-install-12.5_de.exe`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]classifiedBundle, 0, len(args))
			for _, name := range args {
				info, err := services.ClassifyBundle(name)
				if err != nil {
					return err
				}
				results = append(results, classifiedBundle{Name: name, Info: info})
			}

			if a.output == "yaml" {
				return printYAML(cmd.OutOrStdout(), results)
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", r.Name, r.Info.OS, r.Info.Arch, r.Info.Locale)
			}
			return nil
		},
	}
}
