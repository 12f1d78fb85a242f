// Package insight turns a financial dashboard into a natural-language
// narrative by asking a remote generative-text model (Gemini) to comment on
// the numbers.
//
// The pipeline is read-only with respect to the dashboard and makes exactly
// one outbound call per invocation: no retries, no caching, no request
// coalescing. Results carry a monotonic sequence number so that a caller
// displaying them can drop a stale response that lands after a newer one.
package insight

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	fintrack "github.com/bsombilon13/FinTrack"
)

// View selects the kind of narrative requested from the model.
type View int

const (
	// Overview asks for a short executive summary of the current numbers.
	Overview View = iota
	// Prediction asks for a 90-day trajectory assuming recurring costs repeat.
	Prediction
)

// ParseView parses a view name ("overview" or "prediction").
func ParseView(s string) (View, error) {
	switch s {
	case "", "overview":
		return Overview, nil
	case "prediction":
		return Prediction, nil
	default:
		return Overview, fmt.Errorf("unknown view: %q", s)
	}
}

func (v View) String() string {
	if v == Prediction {
		return "prediction"
	}
	return "overview"
}

// NoContentText is returned when the model answered but produced no text.
const NoContentText = "The model produced no insight for this data. Try again in a moment."

// generator is the single outbound call of the pipeline. It exists as a seam
// so the pipeline's behavior can be tested without a live model.
type generator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

// Narrative is one generated insight, tagged with its request sequence.
type Narrative struct {
	Seq  uint64
	View View
	Text string
}

// Service generates narratives for dashboards.
//
// A Service issues at most one network call per Generate invocation and
// never mutates the dashboard it is given. Concurrent Generate calls are
// safe; ordering between them is resolved by Accept.
type Service struct {
	gen      generator
	seq      atomic.Uint64
	accepted atomic.Uint64
}

// Generate builds the prompt for the given view, performs the single call to
// the model, and maps the outcome to a display string.
//
// A non-empty model answer is returned verbatim. An empty answer degrades to
// NoContentText. A rejected model identifier surfaces as ErrModelNotFound so
// the caller can prompt for re-authentication; any other failure is
// swallowed into a human-readable "temporarily unavailable" narrative rather
// than propagated, so a failed insight never takes the caller down with it.
func (s *Service) Generate(ctx context.Context, d fintrack.Dashboard, view View) (Narrative, error) {
	n := Narrative{Seq: s.seq.Add(1), View: view}

	text, err := s.gen.generate(ctx, BuildPrompt(d, view))
	if err != nil {
		if typed := classify(err); typed != nil {
			return Narrative{}, typed
		}
		n.Text = fmt.Sprintf("Insight is temporarily unavailable: %v", err)
		return n, nil
	}
	if strings.TrimSpace(text) == "" {
		n.Text = NoContentText
		return n, nil
	}
	n.Text = text
	return n, nil
}

// Accept applies last-write-wins ordering over narratives: it reports
// whether the narrative is newer than every previously accepted one, and
// records it if so. A stale narrative (its request was overtaken by a newer
// completed one) is rejected and should not be displayed.
func (s *Service) Accept(n Narrative) bool {
	for {
		current := s.accepted.Load()
		if n.Seq <= current {
			return false
		}
		if s.accepted.CompareAndSwap(current, n.Seq) {
			return true
		}
	}
}
