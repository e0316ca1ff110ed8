package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/07AMIT10/PresentationGen/internal/budget"
	"github.com/07AMIT10/PresentationGen/internal/config"
	"github.com/07AMIT10/PresentationGen/internal/deck"
	"github.com/07AMIT10/PresentationGen/internal/extract"
	"github.com/07AMIT10/PresentationGen/internal/llm"
	"github.com/07AMIT10/PresentationGen/internal/pipeline"
)

// buildRunner wires the pipeline stages from configuration.
func buildRunner(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pipeline.Runner, error) {
	var counter budget.Counter
	counter, err := budget.NewTiktokenCounter(cfg.Budget.Encoding)
	if err != nil {
		// The BPE tables load over the network on first use; fall back
		// to the offline word estimate when that is unavailable.
		logger.Warn("tokenizer encoding unavailable, using word estimate",
			zap.String("encoding", cfg.Budget.Encoding), zap.Error(err))
		counter = budget.WordCounter{}
	}

	gen, err := llm.New(ctx, llm.Settings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Params:   llm.DefaultParams(),
	})
	if err != nil {
		return nil, err
	}

	return &pipeline.Runner{
		Extractor: pipeline.ExtractorFunc(extract.FromBytes),
		Budgeter:  budget.New(counter, cfg.Budget.MaxTokens, logger),
		Generator: gen,
		Assembler: deck.New(deck.DefaultTheme(), logger),
		Logger:    logger,
	}, nil
}
