package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/usedassets/internal/adapters/repository"
	"github.com/kamal-hamza/usedassets/internal/core/services"
	"github.com/kamal-hamza/usedassets/pkg/config"
	"github.com/kamal-hamza/usedassets/pkg/project"
	"github.com/kamal-hamza/usedassets/pkg/ui"
)

var (
	appConfig *config.Config
	appLayout *project.Layout

	// Services
	extractService *services.ExtractService
	syncService    *services.SyncService

	// Global flags
	flagRoot       string
	flagConfigPath string
	flagPage       string
	flagSource     string
	flagDest       string
	flagDryRun     bool
	flagPrune      bool
)

// rootCmd represents the base command when called without any subcommands.
// With no subcommand it runs a sync.
var rootCmd = &cobra.Command{
	Use:   "usedassets",
	Short: "Copy only the assets a page references into the static directory",
	Long: ui.StyleTitle.Render("usedassets") + " - static asset pruner\n\n" +
		"Scans a page source (default src/routes/+page.svelte) for image and video\n" +
		"paths, then copies just those files from the bulk asset directory\n" +
		"(static_all/) into the deployable one (static/).",
	PersistentPreRunE: initializeApp,
	RunE:              runSync,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagRoot, "root", "", "Project root (default: current directory)")
	pf.StringVarP(&flagConfigPath, "config", "c", "", "Config file (default: <root>/"+config.FileName+")")
	pf.StringVar(&flagPage, "page", "", "Page source to scan")
	pf.StringVar(&flagSource, "source", "", "Directory holding every available asset")
	pf.StringVar(&flagDest, "dest", "", "Directory that receives referenced assets")
	pf.BoolVarP(&flagDryRun, "dry-run", "n", false, "Show what would be copied without writing")
	pf.BoolVar(&flagPrune, "prune", false, "Remove destination files the page no longer references")
}

// initializeApp loads configuration and wires services
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for commands that don't touch a project
	if cmd.Name() == "init" || cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ui.SetTheme(cfg.ColorTheme)

	layout, err := project.New(flagRoot, cfg)
	if err != nil {
		return fmt.Errorf("failed to resolve project layout: %w", err)
	}

	appConfig = cfg
	appLayout = layout

	extractService = services.NewExtractService(repository.NewFileDocumentReader())
	syncService = services.NewSyncService(repository.NewFileAssetStore())

	return nil
}

// loadConfig reads the project config and applies flag overrides on top
func loadConfig() (*config.Config, error) {
	path := flagConfigPath
	if path == "" {
		root := flagRoot
		if root == "" {
			root = "."
		}
		path = project.ConfigPathFor(root)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flagPage != "" {
		cfg.Page = flagPage
	}
	if flagSource != "" {
		cfg.SourceRoot = flagSource
	}
	if flagDest != "" {
		cfg.DestRoot = flagDest
	}
	if flagPrune {
		cfg.Prune = true
	}

	return cfg, nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
