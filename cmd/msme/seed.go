package main

import (
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the graph with the built-in taxonomy and provider roster",
	Long: `Seed upserts the built-in ONDC category taxonomy and the default
service-provider roster into the graph. Safe to run repeatedly; existing
nodes are updated in place.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, client, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	if err := st.Seed(ctx); err != nil {
		return err
	}

	cmd.Println("Seeded categories and service providers.")
	return nil
}
