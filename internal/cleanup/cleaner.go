// Package cleanup implements the optional post-processing hook that
// runs over structured extraction results. The default is a
// pass-through; the parsing pipeline works identically with the hook
// absent.
package cleanup

import (
	"context"
	"fmt"

	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/parsing"
	"github.com/jonathan/career-advisor/internal/types"
)

// Cleaner post-processes a structured extraction result. Implementations
// receive the structure plus the raw text it came from and return a
// structure of identical shape. A Cleaner must not be a hard dependency:
// callers fall back to the input on error.
type Cleaner interface {
	Clean(ctx context.Context, data *types.ResumeData) (*types.ResumeData, error)
}

// Passthrough returns its input unchanged. It is the default hook.
type Passthrough struct{}

// Clean implements Cleaner.
func (Passthrough) Clean(_ context.Context, data *types.ResumeData) (*types.ResumeData, error) {
	return data, nil
}

// ForMode builds the Cleaner for a configured clean-up mode: "model"
// calls out to an LLM, "heuristic" re-runs rule-based normalization,
// and anything else is a pass-through.
func ForMode(ctx context.Context, mode, apiKey string) (Cleaner, error) {
	switch mode {
	case "model":
		if apiKey == "" {
			return nil, fmt.Errorf("model clean-up requires an API key")
		}
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		return NewModelCleaner(client, llm.TierStandard), nil
	case "heuristic":
		return Heuristic{}, nil
	default:
		return Passthrough{}, nil
	}
}

// Heuristic re-runs rule-based normalization as a clean-up pass. It is
// the fallback when a model-backed cleaner fails.
type Heuristic struct{}

// Clean implements Cleaner.
func (Heuristic) Clean(_ context.Context, data *types.ResumeData) (*types.ResumeData, error) {
	out := parsing.Normalize(data)
	out.CleanupNote = "heuristic"
	return out, nil
}
