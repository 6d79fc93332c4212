package classify

import (
	"fmt"
	"strings"

	"github.com/cognicore/textform/pkg/textform/match"
	"github.com/cognicore/textform/pkg/textform/structure"
)

var (
	formalWords = []string{
		"therefore", "furthermore", "regarding", "consequently",
		"moreover", "pursuant", "hereby", "accordingly", "henceforth",
	}
	informalWords = []string{
		"gonna", "wanna", "lol", "hey", "stuff", "kinda", "yeah",
		"awesome", "cool", "btw",
	}

	firstPersonPronouns  = []string{"i", "me", "my", "mine", "we", "us", "our"}
	secondPersonPronouns = []string{"you", "your", "yours"}
	thirdPersonPronouns  = []string{"he", "she", "they", "him", "her", "them", "his", "their", "it", "its"}
)

// detectCategories applies boolean heuristics over keyword density and
// pattern-id prefixes to tag the text business/personal/academic. Zero
// or several categories may apply.
func (c *Classifier) detectCategories(lower string, matches []match.Match) []Category {
	prefixHits := make(map[string]int)
	for _, m := range matches {
		for name, prefixes := range categoryPrefixes {
			for _, p := range prefixes {
				if strings.HasPrefix(m.PatternID, p) {
					prefixHits[name]++
				}
			}
		}
	}

	var categories []Category
	add := func(name string, keywords []string, description string) {
		hits := keywordHits(lower, keywords)
		if hits == 0 && prefixHits[name] == 0 {
			return
		}
		confidence := clamp01(float64(hits)/float64(len(keywords))*2 +
			float64(prefixHits[name])*0.1)
		categories = append(categories, Category{
			Name:        name,
			Confidence:  confidence,
			Description: fmt.Sprintf("%s (%d keyword hits, %d pattern hits)", description, hits, prefixHits[name]),
		})
	}

	add("business", businessKeywords, "workplace or project content")
	add("personal", personalKeywords, "personal life content")
	add("academic", academicKeywords, "study or research content")
	return categories
}

// detectStyle derives the four style descriptors.
func detectStyle(text, lower string, st structure.ContentStructure) Style {
	stats := structure.TextStatistics(text)

	return Style{
		Formality:   formality(lower),
		Tone:        tone(st),
		Complexity:  complexity(stats.AvgSentenceLength),
		Perspective: perspective(lower),
	}
}

func formality(lower string) string {
	formal := keywordHits(lower, formalWords)
	informal := keywordHits(lower, informalWords)
	switch {
	case formal > informal:
		return "formal"
	case informal > formal:
		return "informal"
	default:
		return "neutral"
	}
}

// tone averages the paragraph sentiment scores already computed by the
// structure analyzer.
func tone(st structure.ContentStructure) string {
	if len(st.Paragraphs) == 0 {
		return "neutral"
	}
	sum := 0.0
	for _, p := range st.Paragraphs {
		sum += p.Sentiment
	}
	avg := sum / float64(len(st.Paragraphs))
	switch {
	case avg > 0.1:
		return "positive"
	case avg < -0.1:
		return "negative"
	default:
		return "neutral"
	}
}

// complexity thresholds on average sentence length in words.
func complexity(avgSentenceLength float64) string {
	switch {
	case avgSentenceLength > 20:
		return "complex"
	case avgSentenceLength > 12:
		return "moderate"
	default:
		return "simple"
	}
}

// perspective compares pronoun frequencies; when the runner-up count
// exceeds half the leader's, the perspective is mixed.
func perspective(lower string) string {
	words := wordRe.FindAllString(lower, -1)
	counts := make(map[string]int)
	for _, w := range words {
		counts[w]++
	}

	tally := func(pronouns []string) int {
		n := 0
		for _, p := range pronouns {
			n += counts[p]
		}
		return n
	}

	first := tally(firstPersonPronouns)
	second := tally(secondPersonPronouns)
	third := tally(thirdPersonPronouns)

	type ranked struct {
		name  string
		count int
	}
	order := []ranked{
		{"first-person", first},
		{"second-person", second},
		{"third-person", third},
	}
	leader, runnerUp := order[0], order[1]
	if runnerUp.count > leader.count {
		leader, runnerUp = runnerUp, leader
	}
	if order[2].count > leader.count {
		runnerUp = leader
		leader = order[2]
	} else if order[2].count > runnerUp.count {
		runnerUp = order[2]
	}

	if leader.count == 0 {
		return "third-person"
	}
	if runnerUp.count*2 > leader.count {
		return "mixed"
	}
	return leader.name
}

func keywordHits(lower string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return hits
}
