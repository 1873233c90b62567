// Package matching scores user profiles against job postings and ranks
// the results.
package matching

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Default weights for scoring components
const (
	skillWeight      = 0.5
	experienceWeight = 0.2
	locationWeight   = 0.2
	salaryWeight     = 0.1
)

// weightSumTolerance bounds floating-point drift when checking that
// weights sum to 1.0.
const weightSumTolerance = 1e-9

// Weights holds the relative importance of each sub-score. The four
// fields must sum to 1.0.
type Weights struct {
	Skills     float64 `json:"skills" validate:"min=0,max=1"`
	Experience float64 `json:"experience" validate:"min=0,max=1"`
	Location   float64 `json:"location" validate:"min=0,max=1"`
	Salary     float64 `json:"salary" validate:"min=0,max=1"`
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Skills:     skillWeight,
		Experience: experienceWeight,
		Location:   locationWeight,
		Salary:     salaryWeight,
	}
}

// Options controls a match run. A zero Limit means unlimited.
type Options struct {
	Limit    int     `json:"limit" validate:"min=0"`
	MinScore float64 `json:"min_score" validate:"min=0,max=1"`
	Weights  Weights `json:"weights"`
}

// DefaultOptions returns options that keep every result and use the
// standard weights.
func DefaultOptions() Options {
	return Options{Weights: DefaultWeights()}
}

// ConfigError represents invalid match configuration supplied by the
// caller. It is distinct from data errors: configuration is rejected
// before scoring begins.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid match configuration: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid match configuration: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Validate checks option bounds and that the weights sum to 1.0.
func (o Options) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return &ConfigError{Message: "option out of range", Cause: err}
	}
	sum := o.Weights.Skills + o.Weights.Experience + o.Weights.Location + o.Weights.Salary
	if math.Abs(sum-1.0) > weightSumTolerance {
		return &ConfigError{Message: fmt.Sprintf("weights sum to %v, want 1.0", sum)}
	}
	return nil
}
