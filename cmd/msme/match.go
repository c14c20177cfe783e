package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/manoharask/msme/internal/match"
)

var (
	matchCity   string
	matchOutput string
)

var matchCmd = &cobra.Command{
	Use:   "match ENTERPRISE_ID",
	Short: "Rank service providers for a registered enterprise",
	Long: `Match ranks the service providers that serve the enterprise's category
by geography, quality, capacity, category focus and certifications, and
returns the top three.

Examples:
  # Match providers for an enterprise
  msme match MSE143022

  # Override the enterprise's city for the geography factor
  msme match MSE143022 --city Chennai

  # JSON output for scripting
  msme match MSE143022 --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	enterpriseID := args[0]

	client, err := connectGraph(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	engine := match.NewEngine(client, slog.Default())
	matches, err := engine.Match(ctx, enterpriseID, matchCity)
	if err != nil {
		return err
	}

	if matchOutput == "json" {
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if len(matches) == 0 {
		cmd.Println("No matching providers found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tPROVIDER\tCITY\tSCORE\tGEO\tQUALITY\tCAPACITY\tEXPORT")
	for i, m := range matches {
		export := "no"
		if m.ExportCapable {
			export = "yes"
		}
		fmt.Fprintf(w, "%d\t%s (%s)\t%s\t%d%%\t%d%%\t%d%%\t%d%%\t%s\n",
			i+1, m.Name, m.ProviderID, m.City, m.Score,
			m.GeoPct, m.QualityPct, m.CapacityPct, export)
	}
	return w.Flush()
}

func init() {
	matchCmd.Flags().StringVar(&matchCity, "city", "", "City override for the geography factor")
	matchCmd.Flags().StringVarP(&matchOutput, "output", "o", "text", "Output format: text or json")
}
