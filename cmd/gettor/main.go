package main

import (
	"fmt"
	"os"

	"github.com/ochairo/gettor/internal/domain/entities"
	"github.com/ochairo/gettor/internal/domain/interfaces"
	"github.com/ochairo/gettor/internal/domain/interfaces/repositories"
	yamladapter "github.com/ochairo/gettor/internal/external-adapters/yaml"
	"github.com/ochairo/gettor/internal/external-adapters/zaplog"
	"github.com/spf13/cobra"
)

func main() {
	a := newApp()
	if err := a.execute(a.rootCommand()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds state shared by all subcommands of one invocation
type app struct {
	configFile string
	logLevel   string
	output     string

	configs repositories.ConfigRepository
	cfg     *entities.Config
	logger  *zaplog.Logger
}

func newApp() *app {
	return &app{configs: yamladapter.NewConfigRepository()}
}

// execute runs cmd and closes the logger whether or not the command failed
func (a *app) execute(cmd *cobra.Command) error {
	defer a.close()
	return cmd.Execute()
}

// rootCommand creates the root cobra command with all subcommands
func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gettor",
		Short: "Bundle naming, checksum and upload tooling for Tor Browser releases",
		Long: `gettor recognizes Tor Browser bundle filenames, computes SHA256 digests
and finds signed bundles that are ready to be published.

Supported bundle names:
  torbrowser-install-<version>_<locale>.exe         (Windows)
  tor-browser-linux<arch>-<version>_<locale>.tar.xz (Linux)
  TorBrowser-<version>-osx<arch>_<locale>.dmg       (macOS)`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "",
		"Path to configuration file (default: ./gettor.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "text",
		"Output format (text, yaml)")

	rootCmd.AddCommand(createClassifyCommand(a))
	rootCmd.AddCommand(createDigestCommand(a))
	rootCmd.AddCommand(createScanCommand(a))
	rootCmd.AddCommand(createVerifyCommand(a))
	rootCmd.AddCommand(createManifestCommand(a))
	rootCmd.AddCommand(createCheckManifestCommand(a))
	rootCmd.AddCommand(createCoverageCommand(a))
	rootCmd.AddCommand(createVersionCommand())

	return rootCmd
}

// setup loads configuration and builds the logger before any subcommand runs
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.output != "text" && a.output != "yaml" {
		return fmt.Errorf("invalid output format %q (use text or yaml)", a.output)
	}

	cfg, err := a.configs.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	a.cfg = cfg

	logger, err := zaplog.NewWithOutput(zaplog.Config{Level: cfg.Log.Level, FilePath: cfg.Log.File}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger

	if a.logLevel != "" {
		logger.SetLevel(a.logLevel)
		cfg.Log.Level = a.logLevel
	}

	if a.configFile != "" {
		logger.Debug("Using configuration", interfaces.F("path", a.configFile))
	}
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Close()
		a.logger = nil
	}
}

// uploadDir returns the directory argument or the configured upload_dir
func (a *app) uploadDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.UploadDir
}
