// Package pipeline drives one generation request end to end:
// extract -> budget -> prompt -> generate -> parse -> assemble.
//
// Everything is sequential and request-scoped; no state survives the
// request, and a fatal error aborts only the request that raised it.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/07AMIT10/PresentationGen/internal/budget"
	"github.com/07AMIT10/PresentationGen/internal/deck"
	"github.com/07AMIT10/PresentationGen/internal/extract"
	"github.com/07AMIT10/PresentationGen/internal/llm"
	"github.com/07AMIT10/PresentationGen/internal/outline"
)

// Upload is one user-supplied PDF, owned by the request for its
// duration.
type Upload struct {
	Name string
	Data []byte
}

// Request carries everything one generation needs.
type Request struct {
	Documents  []Upload
	Template   []byte // optional; nil selects the bundled default
	Topic      string
	SlideCount int
}

// Result is the assembled deck plus per-file bookkeeping for the
// caller's UI.
type Result struct {
	Deck     []byte
	Accepted []string
	Warnings []string
	// SlideCount is the number of slides actually assembled, which
	// follows the outline, not the requested count.
	SlideCount int
}

// Extractor lets tests substitute the PDF text extraction step.
type Extractor interface {
	FromBytes(data []byte, name string) (extract.ExtractedText, error)
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(data []byte, name string) (extract.ExtractedText, error)

func (f ExtractorFunc) FromBytes(data []byte, name string) (extract.ExtractedText, error) {
	return f(data, name)
}

// Runner wires the pipeline stages together.
type Runner struct {
	Extractor Extractor
	Budgeter  *budget.Budgeter
	Generator llm.Generator
	Assembler *deck.Assembler
	Logger    *zap.Logger
}

// Run executes the pipeline for one request. Per-file extraction
// failures and budget rejections are warnings; an LLM transport error or
// unparseable response is fatal for the request.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var docs []extract.ExtractedText
	var warnings []string
	for _, up := range req.Documents {
		doc, err := r.Extractor.FromBytes(up.Data, up.Name)
		if err != nil {
			logger.Warn("skipping unreadable document", zap.String("file", up.Name), zap.Error(err))
			warnings = append(warnings, fmt.Sprintf("could not read %s: %v", up.Name, err))
			continue
		}
		docs = append(docs, doc)
	}

	fit := r.Budgeter.Fit(docs)
	for _, d := range fit.Skipped {
		warnings = append(warnings, fmt.Sprintf("skipped %s: %d tokens would exceed the budget (used %d)", d.Name, d.Tokens, d.Total))
	}
	logger.Info("budgeted source documents",
		zap.Int("accepted", len(fit.Accepted)),
		zap.Int("skipped", len(fit.Skipped)),
		zap.Int("tokens", fit.Total))

	prompt := outline.BuildPrompt(fit.Combined, req.Topic, req.SlideCount)
	raw, err := r.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("slide outline generation failed: %w", err)
	}

	ol, err := outline.Parse(raw)
	if err != nil {
		return nil, err
	}

	tmpl := req.Template
	if len(tmpl) == 0 {
		tmpl, err = deck.DefaultTemplate()
		if err != nil {
			return nil, fmt.Errorf("build default template: %w", err)
		}
	}
	out, err := r.Assembler.Build(tmpl, ol)
	if err != nil {
		return nil, err
	}

	return &Result{
		Deck:       out,
		Accepted:   fit.AcceptedNames(),
		Warnings:   warnings,
		SlideCount: len(ol.Slides),
	}, nil
}
