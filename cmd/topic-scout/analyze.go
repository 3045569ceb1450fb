// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/topic-scout/internal/llm"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a research topic in depth",
	Long: `Analyze asks the completion model for a structured analysis of the topic:
definition, current significance, open problems, prior work, and references.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
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

		analysis, err := llm.AnalyzeTopic(cmd.Context(), client, topic)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), analysis)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("topic", "", "free-text research topic")

	rootCmd.AddCommand(analyzeCmd)
}
