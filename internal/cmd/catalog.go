package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaralane/storefront/internal/catalog"
)

var catalogCategory string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the product catalog",
	Long: `Print the seeded product catalog in catalog order, optionally
restricted to a single category.`,
	RunE: printCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVar(&catalogCategory, "category", catalog.CategoryAll, "Category filter (All|Skincare|Fragrance|Accessories|Sets)")
}

func printCatalog(cmd *cobra.Command, args []string) error {
	c := catalog.New()

	shown := 0
	for _, p := range c.Products() {
		if catalogCategory != catalog.CategoryAll && p.Category != catalogCategory {
			continue
		}
		shown++
		fmt.Printf("%-3s %-30s %-12s $%s  (%.1f★, %d reviews)\n",
			p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Rating, len(p.Reviews))
		fmt.Printf("    %s\n", p.ShortDescription)
		fmt.Printf("    %s\n", strings.Join(p.Ingredients, ", "))
	}

	if shown == 0 {
		fmt.Printf("No products in category %q.\n", catalogCategory)
		return nil
	}

	fmt.Printf("\n%d of %d products shown.\n", shown, c.Len())
	return nil
}
