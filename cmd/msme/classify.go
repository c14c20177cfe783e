package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/manoharask/msme/internal/taxonomy"
)

var classifyContext []string

var classifyCmd = &cobra.Command{
	Use:   "classify PRODUCT...",
	Short: "Classify products into an ONDC category",
	Long: `Classify maps a product list onto the ONDC category taxonomy using
keyword matching against the category keywords stored in the graph.
Hindi product names are supported.

Examples:
  # Classify a product list
  msme classify "leather belts" "wallets"

  # Include business context strings
  msme classify "tablets" --context "pharmaceutical unit in Hyderabad"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, client, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	classifier := taxonomy.NewClassifier(taxonomy.NewStoreRepository(st), slog.Default())
	code, name := classifier.Classify(ctx, args, classifyContext...)

	cmd.Printf("%s\t%s\n", code, name)
	return nil
}

func init() {
	classifyCmd.Flags().StringArrayVar(&classifyContext, "context", nil, "Additional business context strings")
}
