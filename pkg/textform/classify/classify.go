// Package classify ranks candidate output formats for a text, with a
// factor-by-factor confidence breakdown, and derives coarse content
// categories and writing-style descriptors.
package classify

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cognicore/textform/pkg/textform/catalog"
	"github.com/cognicore/textform/pkg/textform/match"
	"github.com/cognicore/textform/pkg/textform/structure"
)

// Component weights for the overall format score. Empirical tuning
// values inherited from the source heuristics; keep unless fresh
// calibration data says otherwise.
const (
	weightPatterns  = 0.4
	weightStructure = 0.25
	weightContent   = 0.2
	weightKeywords  = 0.15
)

// Scores is the per-component breakdown behind one prediction, each
// value in [0,1].
type Scores struct {
	Structure float64 `json:"structure"`
	Content   float64 `json:"content"`
	Patterns  float64 `json:"patterns"`
	Keywords  float64 `json:"keywords"`
	Overall   float64 `json:"overall"`
}

// Factor is one explainable contribution to a prediction. The sum of
// Weight*Score across a prediction's factors equals its overall score.
type Factor struct {
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// Prediction is one candidate output format with its confidence.
type Prediction struct {
	Format     catalog.Format `json:"format"`
	Confidence int            `json:"confidence"` // in [0,100]
	Factors    []Factor       `json:"factors"`
	Scores     Scores         `json:"scores"`
}

// Category is one coarse content category that applies to the text.
type Category struct {
	Name        string  `json:"name"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

// Language is the detected-language record. Detection is a stub kept
// for behavioral parity: it always reports English at 0.95.
type Language struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// Style describes the writing style along four axes.
type Style struct {
	Formality   string `json:"formality"`   // formal | informal | neutral
	Tone        string `json:"tone"`        // positive | negative | neutral
	Complexity  string `json:"complexity"`  // complex | moderate | simple
	Perspective string `json:"perspective"` // first-person | second-person | third-person | mixed
}

// Classification is the full classifier output.
type Classification struct {
	Predictions []Prediction `json:"predictions"` // sorted by descending confidence
	Categories  []Category   `json:"categories"`
	Language    Language     `json:"language"`
	Style       Style        `json:"style"`
}

// Classifier scores texts against the candidate formats. It needs the
// pattern catalog to know each format's pattern population.
type Classifier struct {
	catalog  *catalog.Catalog
	keywords map[catalog.Format][]string
}

// New creates a classifier over the given catalog with the built-in
// per-format keyword lists.
func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{
		catalog:  cat,
		keywords: defaultKeywords(),
	}
}

// SetKeywords replaces the keyword list for one format, for hosts that
// load calibration overrides from configuration.
func (c *Classifier) SetKeywords(f catalog.Format, keywords []string) {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	c.keywords[f] = lowered
}

// Classify produces a prediction for every candidate format plus the
// category, language, and style records. Total over all inputs: empty
// text yields six zero-confidence predictions with the journal-notes
// fallback ranked first.
func (c *Classifier) Classify(text string, st structure.ContentStructure, matches []match.Match) Classification {
	lower := strings.ToLower(text)
	topWords := topFrequentWords(lower, 20, 4)

	predictions := make([]Prediction, 0, len(catalog.AllFormats()))
	for _, f := range catalog.AllFormats() {
		predictions = append(predictions, c.predict(f, text, lower, st, matches, topWords))
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})
	// With no evidence at all, fall back to journal notes as the most
	// forgiving target format.
	if predictions[0].Confidence == 0 {
		for i, p := range predictions {
			if p.Format == catalog.FormatJournalNotes && i > 0 {
				predictions[0], predictions[i] = predictions[i], predictions[0]
				break
			}
		}
	}

	return Classification{
		Predictions: predictions,
		Categories:  c.detectCategories(lower, matches),
		Language:    Language{Language: "english", Confidence: 0.95},
		Style:       detectStyle(text, lower, st),
	}
}

// predict scores one candidate format.
func (c *Classifier) predict(f catalog.Format, text, lower string, st structure.ContentStructure, matches []match.Match, topWords []string) Prediction {
	patterns := c.patternScore(f, matches)
	structural := structureScore(f, text, st)
	content := c.contentScore(f, lower)
	keywords := c.keywordScore(f, topWords)

	overall := clamp01(patterns*weightPatterns +
		structural*weightStructure +
		content*weightContent +
		keywords*weightKeywords)

	factors := []Factor{
		{
			Name:        "pattern-matches",
			Weight:      weightPatterns,
			Score:       patterns,
			Description: fmt.Sprintf("%s pattern coverage and match strength", f),
		},
		{
			Name:        "document-structure",
			Weight:      weightStructure,
			Score:       structural,
			Description: fmt.Sprintf("structural shape expected for %s", f),
		},
		{
			Name:        "content-keywords",
			Weight:      weightContent,
			Score:       content,
			Description: fmt.Sprintf("share of %s vocabulary present in the text", f),
		},
		{
			Name:        "frequent-words",
			Weight:      weightKeywords,
			Score:       keywords,
			Description: fmt.Sprintf("overlap of the most frequent words with %s terms", f),
		},
	}

	return Prediction{
		Format:     f,
		Confidence: int(math.Round(overall * 100)),
		Factors:    factors,
		Scores: Scores{
			Structure: structural,
			Content:   content,
			Patterns:  patterns,
			Keywords:  keywords,
			Overall:   overall,
		},
	}
}

// patternScore rewards the fraction of the format's patterns that
// matched (60%) and their average match confidence (40%).
func (c *Classifier) patternScore(f catalog.Format, matches []match.Match) float64 {
	defs := c.catalog.Patterns(f)
	if len(defs) == 0 {
		return 0
	}

	belongs := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		belongs[d.ID] = struct{}{}
	}

	matchedDefs := make(map[string]struct{})
	confidenceSum := 0.0
	matchCount := 0
	for _, m := range matches {
		if _, ok := belongs[m.PatternID]; !ok {
			continue
		}
		matchedDefs[m.PatternID] = struct{}{}
		confidenceSum += m.Confidence
		matchCount++
	}

	coverage := float64(len(matchedDefs)) / float64(len(defs))
	avgConfidence := 0.0
	if matchCount > 0 {
		avgConfidence = confidenceSum / float64(matchCount)
	}
	return clamp01(coverage*0.6 + avgConfidence*0.4)
}

// contentScore is the fraction of the format's keyword list found as a
// case-insensitive substring of the text.
func (c *Classifier) contentScore(f catalog.Format, lower string) float64 {
	list := c.keywords[f]
	if len(list) == 0 {
		return 0
	}
	found := 0
	for _, kw := range list {
		if strings.Contains(lower, kw) {
			found++
		}
	}
	return float64(found) / float64(len(list))
}

// keywordScore is the share of the text's top frequent words that
// appear in the format's keyword list.
func (c *Classifier) keywordScore(f catalog.Format, topWords []string) float64 {
	if len(topWords) == 0 {
		return 0
	}
	list := c.keywords[f]
	set := make(map[string]struct{}, len(list))
	for _, kw := range list {
		set[kw] = struct{}{}
	}
	overlap := 0
	for _, w := range topWords {
		if _, ok := set[w]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(topWords))
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
