package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/manoharask/msme/internal/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show graph connectivity and network analytics",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, client, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	health := client.Health(ctx)
	cmd.Printf("Graph: %s (%s)\n", health.State, health.Message)
	if health.State != types.HealthStateHealthy {
		return nil
	}

	analytics, err := st.FetchAnalytics(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Enterprises\t%d\n", analytics.TotalEnterprises)
	fmt.Fprintf(w, "Service providers\t%d\n", analytics.TotalProviders)
	fmt.Fprintf(w, "Categories\t%d\n", analytics.TotalCategories)
	fmt.Fprintf(w, "Total capacity\t%d\n", analytics.TotalCapacity)
	fmt.Fprintf(w, "Average rating\t%.2f\n", analytics.AvgRating)
	fmt.Fprintf(w, "Export-capable providers\t%d\n", analytics.ExportProviders)
	fmt.Fprintf(w, "Cities\t%d\n", analytics.UniqueCities)
	fmt.Fprintf(w, "Relationships\t%d\n", analytics.TotalRelationships)
	return w.Flush()
}
