// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the topic-scout CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/topic-scout/internal/secrets"
	"github.com/pdiddy/topic-scout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, the secret value for key
// otherwise, and "" when neither exists.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the topic-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "topic-scout",
	Short: "Research topic discovery assistant",
	Long: `topic-scout helps a researcher pick a topic. It extracts keywords from a
free-text topic, fans the query out to arXiv, Crossref, and an internal
fair-project dataset, asks a completion model for similar candidates, and
fuses everything into one deduplicated, relevance-ranked suggestion list.

Each step of the flow is a subcommand: suggest, analyze, niche, and outline.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./topic-scout.yaml or ~/.config/topic-scout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("topic-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "topic-scout"))
		}
	}

	viper.SetEnvPrefix("TOPIC_SCOUT")
	viper.AutomaticEnv()

	viper.SetDefault("search.timeout", 10*time.Second)
	viper.SetDefault("search.user_agent", "topic-scout/0.1")
	viper.SetDefault("search.max_results", 5)
	viper.SetDefault("search.max_total", 10)
	viper.SetDefault("search.enable_arxiv", true)
	viper.SetDefault("search.enable_crossref", true)
	viper.SetDefault("dataset.path", "data/projects.csv")
	viper.SetDefault("dataset.max_results", 10)
	viper.SetDefault("llm.model", "gpt-4-turbo")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.max_tokens", 4000)
	viper.SetDefault("rank.threshold", 0.5)
	viper.SetDefault("rank.cap", 8)
	viper.SetDefault("rank.blend_floor", 0.5)
	viper.SetDefault("output.drafts_dir", "output/drafts")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig unmarshals the viper state into the pipeline config and
// fills credentials from .secrets/ when the config leaves them empty.
func loadConfig() (types.PipelineConfig, error) {
	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}
	cfg.LLM.APIKey = secretDefault("openai-api-key", cfg.LLM.APIKey)
	cfg.Search.CrossrefEmail = secretDefault("crossref-email", cfg.Search.CrossrefEmail)
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
