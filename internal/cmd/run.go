package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yaralane/storefront/internal/catalog"
	"github.com/yaralane/storefront/internal/config"
	"github.com/yaralane/storefront/internal/copywriter"
	"github.com/yaralane/storefront/internal/logging"
	"github.com/yaralane/storefront/internal/server"
	"github.com/yaralane/storefront/internal/store"
)

var debugLogging bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the storefront server",
	Long: `Start the storefront server which provides:
- REST API over the session's commerce state
- Catalog browsing with category and search filters
- AI brand-voice product descriptions with local fallbacks`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&debugLogging, "debug", false, "Enable development logging")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := logging.Init(debugLogging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	provider, err := copywriter.NewProvider(&cfg.Copywriter)
	if err != nil {
		// Missing keys or unknown providers degrade to fallback copy
		// instead of blocking the storefront.
		zap.L().Warn("copywriter unavailable, using fallback copy", zap.Error(err))
		provider = nil
	} else {
		zap.L().Info("copywriter ready", zap.String("model", provider.Model()))
	}

	st := store.New(catalog.New(), store.WithToastDuration(cfg.Toast.Duration))
	srv := server.NewServer(st, copywriter.NewService(provider))

	zap.L().Info("starting server", zap.String("addr", cfg.Server.Addr))
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
