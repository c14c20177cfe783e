package main

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manoharask/msme/internal/graphrag"
	"github.com/manoharask/msme/internal/llm/providers"
)

var (
	askShowCypher bool
	askOutput     string
)

var askCmd = &cobra.Command{
	Use:   "ask QUESTION",
	Short: "Ask a free-form question about the enterprise graph",
	Long: `Ask answers natural-language questions grounded in the property graph.
The question is translated into a graph query, executed, and the results
are summarized into a factual answer.

Examples:
  # Basic question
  msme ask "Which service providers in Chennai handle leather goods?"

  # Show the generated query alongside the answer
  msme ask "How many enterprises are registered per city?" --show-cypher

  # JSON output for scripting
  msme ask "List export-capable providers" --output json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	question := strings.Join(args, " ")

	provider, err := providers.NewProvider(cfg.ProviderConfig())
	if err != nil {
		return err
	}

	client, err := connectGraph(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	pipeline := graphrag.NewPipeline(provider, client, cfg.LLM.Model, slog.Default())
	resp := pipeline.Ask(ctx, question)

	if resp.Err != nil {
		slog.Debug("pipeline degraded to fallback", "error", resp.Err)
	}

	if askOutput == "json" {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(resp.Answer)
	if askShowCypher && resp.Cypher != "" {
		cmd.Println()
		cmd.Println("Generated query:")
		cmd.Println("  " + resp.Cypher)
	}
	return nil
}

func init() {
	askCmd.Flags().BoolVar(&askShowCypher, "show-cypher", false, "Print the generated graph query")
	askCmd.Flags().StringVarP(&askOutput, "output", "o", "text", "Output format: text or json")
}
