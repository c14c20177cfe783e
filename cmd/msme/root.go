package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/manoharask/msme/internal/config"
	"github.com/manoharask/msme/internal/graph"
	"github.com/manoharask/msme/internal/store"
)

// Global flags
var (
	configFile string
	homeDir    string
	verbose    bool

	// cfg is loaded once in loadConfig and read by every subcommand.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "msme",
	Short: "MSME Matching Intelligence - classify, match and query the enterprise graph",
	Long: `msme is the intelligence layer for the MSME service network:
it classifies enterprises into ONDC categories, ranks service providers
for an enterprise, and answers free-form questions grounded in the
property graph.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig runs before any command to load configuration and set up
// logging. Version and help never need config.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	home := homeDir
	if home == "" {
		home = os.Getenv("MSME_HOME")
	}
	if home == "" {
		home = config.DefaultHomeDir()
	}

	path := configFile
	if path == "" {
		path = config.DefaultConfigPath(home)
	}

	loader := config.NewConfigLoader(config.NewValidator())
	loaded, err := loader.LoadWithDefaults(path)
	if err != nil {
		return err
	}
	cfg = loaded

	setupLogging(cfg)
	return nil
}

// setupLogging configures the process-wide slog default from the logging
// section.
func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose || cfg.Core.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// connectGraph builds and connects the Neo4j client from config. Callers
// own the returned client and must Close it.
func connectGraph(ctx context.Context) (*graph.Neo4jClient, error) {
	client, err := graph.NewNeo4jClient(cfg.GraphClientConfig())
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

// openStore connects the graph and wraps it in the typed store.
func openStore(ctx context.Context) (*store.GraphStore, *graph.Neo4jClient, error) {
	client, err := connectGraph(ctx)
	if err != nil {
		return nil, nil, err
	}
	return store.New(client, slog.Default()), client, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (default: $MSME_HOME/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "Application home directory (default: ~/.msme)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statusCmd)
}
