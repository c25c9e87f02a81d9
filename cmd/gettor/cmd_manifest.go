package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/gettor/internal/domain-adapters/gateways"
	"github.com/ochairo/gettor/internal/domain/interfaces"
	"github.com/spf13/cobra"
)

func createManifestCommand(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "manifest [DIR]",
		Short: "Write a sha256sums manifest of the signed bundles in DIR",
		Long: `Write "<sha256>  <name>" lines for every signed bundle in DIR.
The manifest is written to DIR/<manifest_name> unless --file is given;
use --file - to print it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.uploadDir(args)

			names, err := gateways.NewUploadFinder().FindUploadable(dir)
			if err != nil {
				return err
			}

			builder := gateways.NewManifestBuilder(gateways.NewChecksumVerifier())
			entries, err := builder.Build(dir, names)
			if err != nil {
				return err
			}

			if file == "-" {
				return builder.Write(cmd.OutOrStdout(), entries)
			}
			if file == "" {
				file = filepath.Join(dir, a.cfg.ManifestName)
			}

			//nolint:gosec // G304: manifest path is user-provided
			f, err := os.Create(file)
			if err != nil {
				return fmt.Errorf("failed to create manifest: %w", err)
			}
			if err := builder.Write(f, entries); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close manifest: %w", err)
			}

			a.logger.Info("Wrote manifest", interfaces.F("path", file), interfaces.F("bundles", len(entries)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Manifest path (- for stdout)")
	return cmd
}

func createCheckManifestCommand(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check-manifest [DIR]",
		Short: "Re-hash the files listed in a sha256sums manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.uploadDir(args)
			if file == "" {
				file = filepath.Join(dir, a.cfg.ManifestName)
			}

			builder := gateways.NewManifestBuilder(gateways.NewChecksumVerifier())
			mismatches, err := builder.Check(cmd.Context(), dir, file)
			if err != nil {
				return err
			}

			if a.output == "yaml" {
				if err := printYAML(cmd.OutOrStdout(), mismatches); err != nil {
					return err
				}
			} else {
				for _, m := range mismatches {
					if m.Err != "" {
						fmt.Fprintf(cmd.OutOrStdout(), "FAIL\t%s\t%s\n", m.Name, m.Err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL\t%s\texpected %s, got %s\n", m.Name, m.Expected, m.Actual)
				}
			}

			if len(mismatches) > 0 {
				return fmt.Errorf("%d manifest entries do not match", len(mismatches))
			}
			a.logger.Info("Manifest verified", interfaces.F("path", file))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Manifest path (default DIR/<manifest_name>)")
	return cmd
}
