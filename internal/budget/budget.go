// Package budget accumulates extracted documents against a fixed token
// ceiling. Greedy and order-sensitive: documents are considered in upload
// order, the first ones that fit are kept, and a document that would
// overflow is skipped whole. No reordering, no partial truncation.
package budget

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/07AMIT10/PresentationGen/internal/extract"
)

// Counter estimates the token count of a piece of text. Each document is
// estimated independently, with no cross-document context.
type Counter interface {
	Count(text string) int
}

// Decision records one per-file accept/reject outcome.
type Decision struct {
	Name   string
	Tokens int
	// Total is the running total at the time of the decision (after
	// acceptance, or unchanged at rejection).
	Total int
}

// Result is the outcome of fitting a batch of documents.
type Result struct {
	// Combined is the concatenated accepted text, each block prefixed
	// with a "Source: <filename>" marker.
	Combined string
	Total    int
	Accepted []Decision
	Skipped  []Decision
}

// AcceptedNames returns the filenames that made it into the buffer, in
// upload order.
func (r Result) AcceptedNames() []string {
	names := make([]string, 0, len(r.Accepted))
	for _, d := range r.Accepted {
		names = append(names, d.Name)
	}
	return names
}

// Budgeter fits documents under a ceiling using a Counter.
type Budgeter struct {
	counter Counter
	ceiling int
	logger  *zap.Logger
}

func New(counter Counter, ceiling int, logger *zap.Logger) *Budgeter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Budgeter{counter: counter, ceiling: ceiling, logger: logger}
}

// Fit walks docs in order. A document whose cost would push the running
// total past the ceiling is skipped with a warning; iteration continues,
// so a later smaller document may still be accepted.
func (b *Budgeter) Fit(docs []extract.ExtractedText) Result {
	var res Result
	var sb strings.Builder
	for _, doc := range docs {
		cost := b.counter.Count(doc.Text)
		if res.Total+cost > b.ceiling {
			b.logger.Warn("skipping document over token ceiling",
				zap.String("file", doc.Name),
				zap.Int("tokens", cost),
				zap.Int("running_total", res.Total),
				zap.Int("ceiling", b.ceiling))
			res.Skipped = append(res.Skipped, Decision{Name: doc.Name, Tokens: cost, Total: res.Total})
			continue
		}
		fmt.Fprintf(&sb, "Source: %s\n%s\n\n", doc.Name, doc.Text)
		res.Total += cost
		res.Accepted = append(res.Accepted, Decision{Name: doc.Name, Tokens: cost, Total: res.Total})
	}
	res.Combined = sb.String()
	return res
}
