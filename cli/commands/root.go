// Package commands implements the CLI command structure using Cobra.
package commands

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/petal-labs/facet/cli/config"
	"github.com/petal-labs/facet/gemini"
	"github.com/petal-labs/facet/studio"
)

var (
	// Global flags
	cfgFile    string
	model      string
	apiKeyFlag string
	jsonOutput bool
	verbose    bool

	// Loaded configuration
	cfg *config.Config
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "facet",
	Short: "Facet - photo variation and restoration CLI",
	Long: `Facet generates stylistic variations and restorations of a reference
photo through the Gemini API, with prompt enhancement, captioning, and
background suggestions on the side.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.facet/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "image model ID (e.g. gemini-2.5-flash-image)")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Gemini API key (overrides env and key file)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log attempts and retries to stderr")
}

// initConfig reads the .env file and the config file.
func initConfig() error {
	// A missing .env is fine; an existing one feeds FACET_API_KEY.
	_ = godotenv.Load()

	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	var err error
	cfg, err = config.LoadConfig(path)
	if err != nil {
		return err
	}

	if model == "" && cfg.ImageModel != "" {
		model = cfg.ImageModel
	}

	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

// IsJSONOutput returns true if JSON output is enabled.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsVerbose returns true if verbose output is enabled.
func IsVerbose() bool {
	return verbose
}

// newStudio resolves the API key and assembles the client stack shared by
// all generation commands.
func newStudio() (*studio.Studio, error) {
	apiKey, err := resolveAPIKey()
	if err != nil {
		return nil, err
	}

	clientOpts := []gemini.Option{}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, gemini.WithBaseURL(cfg.BaseURL))
	}
	if cfg.TimeoutSeconds > 0 {
		clientOpts = append(clientOpts, gemini.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	if IsVerbose() {
		clientOpts = append(clientOpts, gemini.WithProgressHook(newStderrHook()))
	}

	client := gemini.New(apiKey, clientOpts...)

	studioOpts := []studio.Option{
		studio.WithImageModel(model),
		studio.WithTextModel(cfg.TextModel),
	}
	if IsVerbose() {
		studioOpts = append(studioOpts, studio.WithProgressHook(newStderrHook()))
	}

	return studio.New(client, studioOpts...), nil
}

// defaultCount returns the configured variation count, defaulting to 1.
func defaultCount() int {
	if cfg != nil && cfg.Count > 0 {
		return cfg.Count
	}
	return 1
}

var errNoAPIKey = fmt.Errorf("no API key: pass --api-key, set FACET_API_KEY, or run 'facet keys set'")
