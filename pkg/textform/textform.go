// Package textform is the text analysis and classification engine: it
// turns raw text into pattern matches, a structural decomposition,
// extracted entities, and a ranked prediction of which structured
// output format the text belongs to.
package textform

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/textform/pkg/textform/catalog"
	"github.com/cognicore/textform/pkg/textform/classify"
	"github.com/cognicore/textform/pkg/textform/entity"
	"github.com/cognicore/textform/pkg/textform/match"
	"github.com/cognicore/textform/pkg/textform/structure"
)

// Version is stamped into every analysis record.
const Version = "1.0.0"

// Rollup weights blending the per-dimension confidences into one
// overall score.
const (
	rollupFormatDetection = 0.3
	rollupPatterns        = 0.25
	rollupStructure       = 0.2
	rollupEntities        = 0.15
	rollupClassification  = 0.1
)

// Engine is the analysis orchestrator. It is stateless apart from its
// immutable catalog; concurrent Analyze calls are safe.
type Engine struct {
	catalog    *catalog.Catalog
	classifier *classify.Classifier
	entropy    *ulid.LockedMonotonicReader
}

// Options configures an Engine.
type Options struct {
	// Catalog to match against; nil selects the built-in catalog.
	Catalog *catalog.Catalog
	// Keywords overrides the classifier keyword list per format.
	Keywords map[catalog.Format][]string
}

// New creates an engine. The catalog is an explicit dependency rather
// than ambient state so hosts can extend or replace it.
func New(opts Options) *Engine {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Builtin()
	}
	cl := classify.New(cat)
	for f, kw := range opts.Keywords {
		cl.SetKeywords(f, kw)
	}
	return &Engine{
		catalog:    cat,
		classifier: cl,
		// Monotonic entropy is not safe for concurrent readers on
		// its own; the locked wrapper keeps Analyze goroutine-safe.
		entropy: &ulid.LockedMonotonicReader{
			MonotonicReader: ulid.Monotonic(rand.Reader, 0),
		},
	}
}

// Metadata describes one analysis run.
type Metadata struct {
	ID            string         `json:"id"`
	AnalyzedAt    time.Time      `json:"analyzedAt"`
	Duration      time.Duration  `json:"duration"`
	EngineVersion string         `json:"engineVersion"`
	TargetFormat  catalog.Format `json:"targetFormat,omitempty"` // empty when no hint was given
	Characters    int            `json:"characters"`
	Words         int            `json:"words"`
	Lines         int            `json:"lines"`
}

// ConfidenceScores is the weighted rollup across analysis dimensions,
// every value in [0,1].
type ConfidenceScores struct {
	Overall               float64 `json:"overall"`
	FormatDetection       float64 `json:"formatDetection"`
	PatternRecognition    float64 `json:"patternRecognition"`
	StructureAnalysis     float64 `json:"structureAnalysis"`
	EntityExtraction      float64 `json:"entityExtraction"`
	ContentClassification float64 `json:"contentClassification"`
}

// StageTimings records wall-clock duration per pipeline stage.
type StageTimings struct {
	PatternMatching   time.Duration `json:"patternMatching"`
	StructureAnalysis time.Duration `json:"structureAnalysis"`
	EntityExtraction  time.Duration `json:"entityExtraction"`
	Classification    time.Duration `json:"classification"`
}

// Statistics aggregates per-run reporting data.
type Statistics struct {
	Timings            StageTimings         `json:"timings"`
	Text               structure.Statistics `json:"text"`
	Patterns           match.Summary        `json:"patterns"`
	PatternSuccessRate float64              `json:"patternSuccessRate"` // distinct patterns matched / patterns scanned
	EntityCounts       map[entity.Type]int  `json:"entityCounts"`
}

// TextAnalysis is the complete, self-contained result of one Analyze
// call. The engine keeps no reference to it.
type TextAnalysis struct {
	Metadata       Metadata                   `json:"metadata"`
	Structure      structure.ContentStructure `json:"structure"`
	Matches        []match.Match              `json:"matches"`
	Entities       []entity.Entity            `json:"entities"`
	Classification classify.Classification    `json:"classification"`
	Confidence     ConfidenceScores           `json:"confidence"`
	Statistics     Statistics                 `json:"statistics"`
}

// Option adjusts one Analyze call.
type Option func(*analyzeOptions)

type analyzeOptions struct {
	format catalog.Format
}

// WithFormat restricts pattern matching to the given target format's
// catalog slice. An unknown value is treated as no hint.
func WithFormat(format string) Option {
	return func(o *analyzeOptions) {
		if f, ok := catalog.ParseFormat(format); ok {
			o.format = f
		}
	}
}

// Analyze runs the full pipeline over text. The contract is total:
// any input, including empty text, resolves to a low-confidence
// result rather than an error.
func (e *Engine) Analyze(text string, opts ...Option) *TextAnalysis {
	var o analyzeOptions
	for _, opt := range opts {
		opt(&o)
	}

	started := time.Now()

	patterns := e.catalog.AllPatterns()
	if o.format != "" {
		patterns = e.catalog.Patterns(o.format)
	}

	var timings StageTimings

	stageStart := time.Now()
	matches := match.Scan(text, patterns)
	timings.PatternMatching = time.Since(stageStart)

	stageStart = time.Now()
	st := structure.Analyze(text)
	timings.StructureAnalysis = time.Since(stageStart)

	stageStart = time.Now()
	entities := entity.Extract(text)
	timings.EntityExtraction = time.Since(stageStart)

	stageStart = time.Now()
	classification := e.classifier.Classify(text, st, matches)
	timings.Classification = time.Since(stageStart)

	confidence := rollupConfidence(classification, matches, st, entities)

	patternStats := match.Stats(matches)
	successRate := 0.0
	if len(patterns) > 0 {
		matched := make(map[string]struct{})
		for _, m := range matches {
			matched[m.PatternID] = struct{}{}
		}
		successRate = float64(len(matched)) / float64(len(patterns))
	}

	textStats := structure.TextStatistics(text)

	return &TextAnalysis{
		Metadata: Metadata{
			ID:            ulid.MustNew(ulid.Now(), e.entropy).String(),
			AnalyzedAt:    started,
			Duration:      time.Since(started),
			EngineVersion: Version,
			TargetFormat:  o.format,
			Characters:    textStats.Characters,
			Words:         textStats.Words,
			Lines:         textStats.Lines,
		},
		Structure:      st,
		Matches:        matches,
		Entities:       entities,
		Classification: classification,
		Confidence:     confidence,
		Statistics: Statistics{
			Timings:            timings,
			Text:               textStats,
			Patterns:           patternStats,
			PatternSuccessRate: successRate,
			EntityCounts:       entity.CountByType(entities),
		},
	}
}

// rollupConfidence blends the per-dimension confidences. Dimensions
// with no evidence contribute 0 instead of NaN.
func rollupConfidence(c classify.Classification, matches []match.Match, st structure.ContentStructure, entities []entity.Entity) ConfidenceScores {
	scores := ConfidenceScores{}

	if len(c.Predictions) > 0 {
		scores.FormatDetection = clamp01(float64(c.Predictions[0].Confidence) / 100)
		if len(c.Predictions) > 1 {
			margin := float64(c.Predictions[0].Confidence-c.Predictions[1].Confidence) / 100
			scores.ContentClassification = clamp01(scores.FormatDetection*0.5 + margin*0.5)
		} else {
			scores.ContentClassification = scores.FormatDetection
		}
	}

	if len(matches) > 0 {
		sum := 0.0
		for _, m := range matches {
			sum += m.Confidence
		}
		scores.PatternRecognition = clamp01(sum / float64(len(matches)))
	}

	evidence := len(st.Sections) + len(st.Lists) + len(st.Paragraphs)
	scores.StructureAnalysis = clamp01(float64(evidence) / 10)

	if len(entities) > 0 {
		sum := 0.0
		for _, e := range entities {
			sum += e.Confidence
		}
		scores.EntityExtraction = clamp01(sum / float64(len(entities)))
	}

	scores.Overall = clamp01(scores.FormatDetection*rollupFormatDetection +
		scores.PatternRecognition*rollupPatterns +
		scores.StructureAnalysis*rollupStructure +
		scores.EntityExtraction*rollupEntities +
		scores.ContentClassification*rollupClassification)
	return scores
}

func clamp01(v float64) float64 {
	if v != v {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
