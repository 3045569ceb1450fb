// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/topic-scout/internal/dataset"
	"github.com/pdiddy/topic-scout/internal/fusion"
	"github.com/pdiddy/topic-scout/internal/keywords"
	"github.com/pdiddy/topic-scout/internal/llm"
	"github.com/pdiddy/topic-scout/internal/relevance"
	"github.com/pdiddy/topic-scout/internal/search"
	"github.com/pdiddy/topic-scout/internal/session"
	"github.com/pdiddy/topic-scout/pkg/types"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest research topics similar to a free-text topic",
	Long: `Suggest runs the full discovery pipeline for a topic: keyword extraction,
query variation, a parallel fan-out to arXiv, Crossref, and the internal
dataset, LLM candidate generation, fusion, relevance scoring, and ranking.

Provider failures degrade to fewer results; only a completion-service
failure aborts the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		noLLM, _ := cmd.Flags().GetBool("no-llm")
		asJSON, _ := cmd.Flags().GetBool("json")
		savePath, _ := cmd.Flags().GetString("save")
		if topic == "" {
			return fmt.Errorf("topic is empty: provide one with --topic")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runSuggest(cmd.Context(), cfg, suggestOptions{
			topic:    topic,
			count:    count,
			noLLM:    noLLM,
			asJSON:   asJSON,
			savePath: savePath,
		}, os.Stdout, os.Stderr)
	},
}

type suggestOptions struct {
	topic    string
	count    int
	noLLM    bool
	asJSON   bool
	savePath string
}

func runSuggest(ctx context.Context, cfg types.PipelineConfig, opts suggestOptions, stdout, stderr io.Writer) error {
	sess := session.New(opts.topic)
	sess.Keywords = keywords.ExtractDefault(opts.topic)
	sess.Variations = search.Variations(opts.topic)

	httpClient := &http.Client{Timeout: cfg.Search.Timeout}

	// Fixed priority order: this, not response arrival, decides which
	// source keeps a duplicated title.
	var providers []search.Provider
	if cfg.Search.EnableArxiv {
		providers = append(providers, &search.ArxivProvider{
			Client:    httpClient,
			UserAgent: cfg.Search.UserAgent,
			Log:       stderr,
		})
	}
	if cfg.Search.EnableCrossref {
		providers = append(providers, &search.CrossrefProvider{
			Client:    httpClient,
			UserAgent: cfg.Search.UserAgent,
			Email:     cfg.Search.CrossrefEmail,
			Log:       stderr,
		})
	}

	datasetIdx := -1
	if cfg.Dataset.Path != "" {
		store, err := dataset.Open(cfg.Dataset)
		if err != nil {
			fmt.Fprintf(stderr, "warning: internal dataset unavailable: %v\n", err)
		} else {
			defer store.Close()
			datasetIdx = len(providers)
			providers = append(providers, &search.DatasetProvider{Store: store})
		}
	}
	if len(providers) == 0 {
		return fmt.Errorf("no search providers configured")
	}

	sets := search.FetchAll(ctx, providers, opts.topic, cfg.Search.MaxResults, stderr)
	if datasetIdx >= 0 {
		sess.DatasetMatches = sets[datasetIdx]
	}

	merged := fusion.Merge(sets, cfg.Search.MaxTotal)

	var completer llm.Completer
	var llmRecords []types.SearchRecord
	if !opts.noLLM {
		client, err := llm.NewOpenAIClient(cfg.LLM)
		if err != nil {
			return err
		}
		completer = client

		llmRecords, err = llm.GenerateSimilarTopics(ctx, client, opts.topic, opts.count)
		if err != nil {
			// No fallback exists for generated content: a systemic
			// service failure aborts rather than fabricating output.
			if errors.Is(err, llm.ErrService) {
				return err
			}
			fmt.Fprintf(stderr, "warning: candidate generation failed: %v\n", err)
		}
	}

	scorer := &relevance.Scorer{Judge: completer, Log: stderr}
	ranked := scorer.FilterAndRank(ctx, opts.topic, merged, cfg.Rank.Threshold, cfg.Rank.Cap)
	candidates := scorer.FilterAndRank(ctx, opts.topic, llmRecords, cfg.Rank.Threshold, cfg.Rank.Cap)

	sess.Candidates = fusion.Blend(candidates, ranked, cfg.Search.MaxTotal, cfg.Rank.BlendFloor)

	if opts.savePath != "" {
		f, err := os.Create(opts.savePath)
		if err != nil {
			return fmt.Errorf("creating session export: %w", err)
		}
		defer f.Close()
		if err := sess.ExportYAML(f); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Session saved to %s\n", opts.savePath)
	}

	if opts.asJSON {
		return renderJSON(sess.Candidates, stdout)
	}
	renderTable(sess, stdout)
	return nil
}

func init() {
	suggestCmd.Flags().String("topic", "", "free-text research topic")
	suggestCmd.Flags().Int("count", llm.DefaultSimilarCount, "number of LLM-generated candidate topics")
	suggestCmd.Flags().Bool("no-llm", false, "skip LLM candidate generation and judging")
	suggestCmd.Flags().Bool("json", false, "output candidates as JSON")
	suggestCmd.Flags().String("save", "", "write the full session to a YAML file")

	rootCmd.AddCommand(suggestCmd)
}
