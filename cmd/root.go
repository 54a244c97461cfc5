package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/bizcheck/internal/app"
	"github.com/abhisek/bizcheck/internal/catalog"
	"github.com/abhisek/bizcheck/internal/config"
	"github.com/abhisek/bizcheck/internal/logging"
	"github.com/abhisek/bizcheck/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "bizcheck",
	Short: "Business growth self-assessment",
	Long: "Bizcheck: rate your business on a 1-5 scale across key areas and get " +
		"per-area scores and recommendations.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		sess := session.New(rt.Catalog, rt.Feedback, rt.Logger)
		return app.Run(app.Options{Session: sess, Logger: rt.Logger})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addGlobalFlags(rootCmd)

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("catalog", "", "Path to a catalog YAML file (overrides BIZCHECK_CATALOG)")
	cmd.PersistentFlags().String("log-file", "", "Path to the log file (overrides BIZCHECK_LOG_FILE)")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging (overrides BIZCHECK_VERBOSE)")
}

// resolveConfig applies flags that were set explicitly on top of the
// environment, which already sits on top of the defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	flags := cmd.Flags()

	if flags.Changed("catalog") {
		cfg.CatalogPath, _ = flags.GetString("catalog")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runtime is what every command needs: a logger and the catalog.
type runtime struct {
	Config   config.Config
	Logger   *zap.Logger
	Catalog  *catalog.Catalog
	Feedback *catalog.FeedbackTable
}

func newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}

	c, fb, err := loadCatalog(cfg)
	if err != nil {
		logger.Error("catalog load failed", zap.String("path", cfg.CatalogPath), zap.Error(err))
		_ = logger.Sync()
		return nil, err
	}
	logger.Debug("catalog loaded",
		zap.String("command", cmd.Name()),
		zap.String("path", cfg.CatalogPath),
		zap.Int("categories", c.Count()))

	return &runtime{Config: cfg, Logger: logger, Catalog: c, Feedback: fb}, nil
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, *catalog.FeedbackTable, error) {
	if cfg.CatalogPath == "" {
		c, fb := catalog.Default()
		return c, fb, nil
	}
	return catalog.LoadFile(cfg.CatalogPath)
}

// Close flushes the logger.
func (r *runtime) Close() {
	_ = r.Logger.Sync()
}
