package textform

import (
	"fmt"
	"time"

	"github.com/cognicore/textform/pkg/textform/catalog"
)

// Alternative is a runner-up format suggestion.
type Alternative struct {
	Format     catalog.Format `json:"format"`
	Confidence int            `json:"confidence"`
}

// Detection is the lightweight result of DetectFormat.
type Detection struct {
	SuggestedFormat catalog.Format `json:"suggestedFormat"`
	Confidence      int            `json:"confidence"`
	Alternatives    []Alternative  `json:"alternatives"` // at most 3
}

// DetectFormat runs the full pipeline but returns only the top format
// predictions.
func (e *Engine) DetectFormat(text string) Detection {
	analysis := e.Analyze(text)
	predictions := analysis.Classification.Predictions

	d := Detection{
		SuggestedFormat: predictions[0].Format,
		Confidence:      predictions[0].Confidence,
	}
	for _, p := range predictions[1:] {
		if len(d.Alternatives) == 3 {
			break
		}
		d.Alternatives = append(d.Alternatives, Alternative{
			Format:     p.Format,
			Confidence: p.Confidence,
		})
	}
	return d
}

// stageBudget is the advisory per-stage duration flag. Exceeding it
// is reported by Validate, never enforced.
const stageBudget = 5 * time.Second

// ValidationResult lists advisory issues found in an analysis.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// Validate inspects a finished analysis for advisory quality issues:
// low overall confidence, missing predictions, zero pattern matches,
// or a stage running past the soft duration budget.
func Validate(a *TextAnalysis) ValidationResult {
	var issues []string

	if a.Confidence.Overall < 0.3 {
		issues = append(issues, fmt.Sprintf("overall confidence %.2f below 0.3", a.Confidence.Overall))
	}
	if len(a.Classification.Predictions) == 0 {
		issues = append(issues, "no format predictions produced")
	}
	if len(a.Matches) == 0 {
		issues = append(issues, "no pattern matches found")
	}

	stages := map[string]time.Duration{
		"pattern-matching":   a.Statistics.Timings.PatternMatching,
		"structure-analysis": a.Statistics.Timings.StructureAnalysis,
		"entity-extraction":  a.Statistics.Timings.EntityExtraction,
		"classification":     a.Statistics.Timings.Classification,
	}
	for name, d := range stages {
		if d > stageBudget {
			issues = append(issues, fmt.Sprintf("stage %s took %s, over the %s budget", name, d, stageBudget))
		}
	}

	return ValidationResult{Valid: len(issues) == 0, Issues: issues}
}
