package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaralane/storefront/internal/catalog"
	"github.com/yaralane/storefront/internal/config"
	"github.com/yaralane/storefront/internal/copywriter"
	"github.com/yaralane/storefront/internal/logging"
)

var describeTimeout time.Duration

var describeCmd = &cobra.Command{
	Use:   "describe <product-id>",
	Short: "Generate AI brand-voice copy for a product",
	Long: `Generate a brand-voice product description through the configured
copywriter provider. Missing configuration or provider failures print the
storefront's fallback copy instead of erroring.`,
	Args: cobra.ExactArgs(1),
	RunE: describeProduct,
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().DurationVar(&describeTimeout, "timeout", 60*time.Second, "Generation timeout")
}

func describeProduct(cmd *cobra.Command, args []string) error {
	if err := logging.Init(false); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p, ok := catalog.New().ByID(args[0])
	if !ok {
		return fmt.Errorf("unknown product id: %s", args[0])
	}

	provider, err := copywriter.NewProvider(&cfg.Copywriter)
	if err != nil {
		provider = nil
	}
	writer := copywriter.NewService(provider)

	ctx, cancel := context.WithTimeout(context.Background(), describeTimeout)
	defer cancel()

	fmt.Printf("%s — %s\n\n", p.Name, p.Category)
	fmt.Println(writer.Describe(ctx, p))
	return nil
}
