package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Yara Lane Storefront - commerce state engine",
	Long: `The Yara Lane storefront engine keeps one shopping session's cart,
wishlist, address and payment books, view navigation and filters mutually
consistent, and serves them to a rendering layer over a REST API.

Run it as a server, or use the CLI commands to inspect the catalog and
generate AI brand-voice product descriptions.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
