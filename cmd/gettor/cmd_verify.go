package main

import (
	"fmt"

	"github.com/ochairo/gettor/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/gettor/internal/domain-orchestrators"
	"github.com/ochairo/gettor/internal/external-adapters/gpg"
	"github.com/ochairo/gettor/internal/external-adapters/xz"
	"github.com/spf13/cobra"
)

func createVerifyCommand(a *app) *cobra.Command {
	var (
		keyring  string
		probe    bool
		noDigest bool
	)

	cmd := &cobra.Command{
		Use:   "verify [DIR]",
		Short: "Verify signatures of all signed bundles in an upload directory",
		Long: `Scan DIR for signed bundles, check every detached signature against the
keyring, optionally check that Linux .tar.xz bundles decode, and print the
SHA256 of each accepted bundle. Fails if any bundle is rejected.`,
		Example: `  gettor verify ./upload --keyring torbrowser.asc --probe`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyring == "" {
				keyring = a.cfg.Keyring
			}
			if keyring == "" {
				return fmt.Errorf("no keyring configured (use --keyring or set keyring in the config)")
			}

			verifier := gpg.NewVerifier()
			if err := verifier.ImportKeyFromFile(keyring); err != nil {
				return fmt.Errorf("failed to import keyring: %w", err)
			}

			orch := orchestrators.NewUploadOrchestrator(
				gateways.NewUploadFinder(),
				gateways.NewChecksumVerifier(),
				verifier,
				xz.NewProber(),
				orchestrators.UploadOrchestratorConfig{
					VerifySignatures: true,
					ProbeArchives:    probe,
					ComputeDigests:   !noDigest,
				},
				a.logger,
			)

			result, err := orch.Prepare(cmd.Context(), a.uploadDir(args))
			if err != nil {
				return err
			}

			if err := printUploadResult(cmd, a.output, result); err != nil {
				return err
			}
			if len(result.Rejected) > 0 {
				return fmt.Errorf("%d bundle(s) failed verification", len(result.Rejected))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keyring, "keyring", "", "Armored or binary public keyring used to check .asc signatures")
	cmd.Flags().BoolVar(&probe, "probe", false, "Check that Linux .tar.xz bundles are readable archives")
	cmd.Flags().BoolVar(&noDigest, "no-digest", false, "Skip computing SHA256 digests")
	return cmd
}

func printUploadResult(cmd *cobra.Command, format string, result *orchestrators.UploadResult) error {
	if format == "yaml" {
		return printYAML(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	for _, e := range result.Entries {
		sum := e.SHA256
		if sum == "" {
			sum = "-"
		}
		fmt.Fprintf(out, "OK\t%s\t%s\t%s\n", e.Name, e.Info.Target(), sum)
	}
	for _, r := range result.Rejected {
		fmt.Fprintf(out, "FAIL\t%s\t%s\n", r.Name, r.Reason)
	}
	return nil
}
