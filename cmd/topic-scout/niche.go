// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/topic-scout/internal/llm"
)

var nicheCmd = &cobra.Command{
	Use:   "niche",
	Short: "Propose under-explored topics adjacent to a selected topic",
	Long: `Niche asks the completion model for topics that are related to the selected
one but not yet studied thoroughly. Each proposal can seed a fresh suggest
run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		if topic == "" {
			return fmt.Errorf("topic is empty: provide one with --topic")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := llm.NewOpenAIClient(cfg.LLM)
		if err != nil {
			return err
		}

		text, topics, err := llm.GenerateNicheTopics(cmd.Context(), client, topic, count)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, text)
		if len(topics) > 0 {
			fmt.Fprintf(out, "\nParsed %d proposals:\n%s", len(topics), llm.FormatCandidates(topics))
		}
		return nil
	},
}

func init() {
	nicheCmd.Flags().String("topic", "", "selected research topic")
	nicheCmd.Flags().Int("count", llm.DefaultNicheCount, "number of niche topics to propose")

	rootCmd.AddCommand(nicheCmd)
}
