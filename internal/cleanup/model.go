package cleanup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/types"
)

// ModelCleaner runs a language-model clean-up pass over the structured
// result. On any model or decode failure it falls back to heuristic
// normalization and annotates the result, so the pipeline always gets
// usable data back.
type ModelCleaner struct {
	client   llm.Client
	tier     llm.ModelTier
	fallback Cleaner
}

// NewModelCleaner wraps an LLM client as a Cleaner.
func NewModelCleaner(client llm.Client, tier llm.ModelTier) *ModelCleaner {
	return &ModelCleaner{client: client, tier: tier, fallback: Heuristic{}}
}

// Clean implements Cleaner.
func (c *ModelCleaner) Clean(ctx context.Context, data *types.ResumeData) (*types.ResumeData, error) {
	cleaned, err := c.clean(ctx, data)
	if err != nil {
		out, _ := c.fallback.Clean(ctx, data)
		out.CleanupNote = fmt.Sprintf("model cleanup failed, heuristic fallback: %v", err)
		return out, nil
	}
	cleaned.CleanupNote = "model"
	return cleaned, nil
}

func (c *ModelCleaner) clean(ctx context.Context, data *types.ResumeData) (*types.ResumeData, error) {
	structured, err := json.Marshal(data)
	if err != nil {
		return nil, &CleanError{Message: "encode extraction result", Cause: err}
	}

	prompt := llm.BuildCleanupPrompt(llm.ResumeCleanupSchema(), string(structured), data.RawText)
	raw, err := c.client.GenerateJSON(ctx, prompt, c.tier)
	if err != nil {
		return nil, &CleanError{Message: "model call", Cause: err}
	}

	// Start from the original so fields the model omits survive.
	cleaned := *data
	if err := json.Unmarshal([]byte(raw), &cleaned); err != nil {
		return nil, &CleanError{Message: "decode model response", Cause: err}
	}
	cleaned.RawText = data.RawText
	cleaned.Status = data.Status
	cleaned.ParsedAt = data.ParsedAt
	cleaned.ConfidenceScore = data.ConfidenceScore
	return &cleaned, nil
}

// CleanError represents a failure inside a clean-up pass.
type CleanError struct {
	Message string
	Cause   error
}

func (e *CleanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cleanup failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cleanup failed: %s", e.Message)
}

func (e *CleanError) Unwrap() error {
	return e.Cause
}
