// Package jobsource collects job postings from external sources. The
// matching core treats postings as read-only input; everything here is
// boundary I/O that feeds it.
package jobsource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-advisor/internal/types"
)

// Source produces job postings for matching.
type Source interface {
	Postings(ctx context.Context) ([]types.JobPosting, error)
}

// FileSource reads postings from a JSON file holding an array of
// JobPosting objects.
type FileSource struct {
	Path string
}

// Postings implements Source. Postings that fail validation are
// skipped, not fatal: one bad record must not sink the batch.
func (s *FileSource) Postings(_ context.Context) ([]types.JobPosting, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read postings file: %w", err)
	}

	var all []types.JobPosting
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("failed to parse postings file %s: %w", s.Path, err)
	}

	valid := make([]types.JobPosting, 0, len(all))
	for i := range all {
		if all[i].Source == "" {
			all[i].Source = "file"
		}
		if err := all[i].Validate(); err != nil {
			continue
		}
		valid = append(valid, all[i])
	}
	return valid, nil
}

// Static wraps a fixed posting list as a Source, mainly for tests and
// request bodies that carry their own postings.
type Static []types.JobPosting

// Postings implements Source.
func (s Static) Postings(context.Context) ([]types.JobPosting, error) {
	return s, nil
}
