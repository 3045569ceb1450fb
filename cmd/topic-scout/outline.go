// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/topic-scout/internal/draft"
	"github.com/pdiddy/topic-scout/internal/llm"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Generate a paper structure for a selected topic",
	Long: `Outline asks the completion model for a full academic paper structure
(title, abstract, introduction, methods, expected results, conclusion,
references) and saves it as a markdown draft.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		noSave, _ := cmd.Flags().GetBool("no-save")
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

		outline, err := llm.GeneratePaperOutline(cmd.Context(), client, topic)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), outline)

		if !noSave {
			path, err := draft.Save(cfg.Output.DraftsDir, topic, outline)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Draft saved to %s\n", path)
		}
		return nil
	},
}

func init() {
	outlineCmd.Flags().String("topic", "", "selected research topic")
	outlineCmd.Flags().Bool("no-save", false, "print the outline without writing a draft file")

	rootCmd.AddCommand(outlineCmd)
}
