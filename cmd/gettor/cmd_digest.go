package main

import (
	"fmt"

	"github.com/ochairo/gettor/internal/domain-adapters/gateways"
	"github.com/ochairo/gettor/internal/domain/interfaces"
	"github.com/spf13/cobra"
)

func createDigestCommand(a *app) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "digest [FILE...]",
		Short: "Print SHA256 digests of files or a string",
		Example: `  gettor digest tor-browser-linux64-12.5_en.tar.xz
  gettor digest --string "hello"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !cmd.Flags().Changed("string") {
				return fmt.Errorf("specify at least one FILE or --string")
			}

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("string") {
				fmt.Fprintf(out, "%s  -\n", gateways.DigestString(text))
			}

			verifier := gateways.NewChecksumVerifier()
			for _, path := range args {
				sum, err := verifier.CalculateChecksum(path)
				if err != nil {
					return err
				}
				a.logger.Debug("Hashed file", interfaces.F("path", path))
				fmt.Fprintf(out, "%s  %s\n", sum, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "string", "", "Hash this string (UTF-8) instead of a file")
	return cmd
}
