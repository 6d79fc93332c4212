// Package match scans text against pattern definitions and produces
// positioned, confidence-scored matches with typed field extraction.
package match

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cognicore/textform/pkg/textform/catalog"
)

// contextRadius bounds the context window kept around a match, in
// bytes on each side (adjusted to rune boundaries).
const contextRadius = 50

// Position locates a match inside the scanned text. Start and End are
// byte offsets into the original string; Line is 1-based.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Line  int `json:"line"`
}

// Match is one located occurrence of a pattern definition.
type Match struct {
	ID         string            `json:"id"` // "{pattern-id}-{sequence}"
	PatternID  string            `json:"patternId"`
	Name       string            `json:"name"`
	Text       string            `json:"text"`
	Position   Position          `json:"position"`
	Confidence float64           `json:"confidence"`
	Raw        map[string]string `json:"raw,omitempty"` // raw capture values, matched groups only
	Fields     []Field           `json:"fields,omitempty"`
	Context    string            `json:"context"`
}

// Scan finds every non-overlapping occurrence of each pattern in text.
// The result is sorted by descending confidence; ties keep scan order.
func Scan(text string, patterns []catalog.Definition) []Match {
	lines := newLineIndex(text)
	var matches []Match

	for _, def := range patterns {
		seq := 0
		offset := 0
		for offset <= len(text) {
			loc := def.Expr.FindStringSubmatchIndex(text[offset:])
			if loc == nil {
				break
			}
			start := offset + loc[0]
			end := offset + loc[1]
			matched := text[start:end]

			m := Match{
				ID:         fmt.Sprintf("%s-%d", def.ID, seq),
				PatternID:  def.ID,
				Name:       def.Name,
				Text:       matched,
				Position:   Position{Start: start, End: end, Line: lines.lineAt(start)},
				Context:    contextWindow(text, start, end),
				Confidence: def.Weight,
			}

			groups, declared, populated := captureGroups(text, def, loc, offset)
			m.Confidence = confidence(def, matched, declared, populated)
			if def.Extract != nil && populated > 0 {
				m.Raw, m.Fields = extractFields(def, groups)
			}

			matches = append(matches, m)
			seq++

			// Zero-width matches must still advance the cursor.
			if end == start {
				offset = start + 1
			} else {
				offset = end
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// confidence blends the pattern weight with a match-length factor
// (70/30) and, when the pattern declares named capture groups, with
// the fraction of declared groups actually populated (80/20). A match
// populating none of its declared groups still takes the 0.8 factor.
// Clamped to [0,1].
func confidence(def catalog.Definition, matched string, declared, populated int) float64 {
	c := def.Weight

	lengthFactor := float64(len(matched)) / 50.0
	if lengthFactor > 1 {
		lengthFactor = 1
	}
	c = c*0.7 + c*lengthFactor*0.3

	if declared > 0 {
		fraction := float64(populated) / float64(declared)
		c = c*0.8 + c*fraction*0.2
	}

	return clamp01(c)
}

// captureGroups collects the named group values for one match. The
// returned map holds only groups that participated in the match;
// declared counts every named group the expression defines, populated
// counts those that matched.
func captureGroups(text string, def catalog.Definition, loc []int, offset int) (groups map[string]string, declared, populated int) {
	for i, name := range def.Expr.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		declared++
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 {
			continue
		}
		if groups == nil {
			groups = make(map[string]string)
		}
		groups[name] = text[offset+s : offset+e]
		populated++
	}
	return groups, declared, populated
}

// contextWindow returns up to contextRadius bytes of text on each side
// of the match, ellipsis-marked when truncated and snapped to rune
// boundaries.
func contextWindow(text string, start, end int) string {
	left := start - contextRadius
	if left < 0 {
		left = 0
	}
	for left > 0 && !utf8.RuneStart(text[left]) {
		left--
	}
	right := end + contextRadius
	if right > len(text) {
		right = len(text)
	}
	for right < len(text) && !utf8.RuneStart(text[right]) {
		right++
	}

	var b strings.Builder
	if left > 0 {
		b.WriteString("...")
	}
	b.WriteString(text[left:right])
	if right < len(text) {
		b.WriteString("...")
	}
	return b.String()
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex struct {
	starts []int
}

func newLineIndex(text string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (l *lineIndex) lineAt(offset int) int {
	lo, hi := 0, len(l.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}

func clamp01(v float64) float64 {
	if v != v { // NaN guard: scores must never leak NaN
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

// Summary aggregates scan results for reporting.
type Summary struct {
	Total             int            `json:"total"`
	AverageConfidence float64        `json:"averageConfidence"`
	ByPattern         map[string]int `json:"byPattern"`
	HighConfidence    int            `json:"highConfidence"` // confidence >= 0.7
}

// Stats summarizes a set of matches.
func Stats(matches []Match) Summary {
	s := Summary{ByPattern: make(map[string]int)}
	if len(matches) == 0 {
		return s
	}

	sum := 0.0
	for _, m := range matches {
		s.Total++
		sum += m.Confidence
		s.ByPattern[m.Name]++
		if m.Confidence >= 0.7 {
			s.HighConfidence++
		}
	}
	s.AverageConfidence = sum / float64(s.Total)
	return s
}
