package classify

import (
	"regexp"
	"sort"

	"github.com/cognicore/textform/pkg/textform/catalog"
	"github.com/cognicore/textform/pkg/textform/structure"
)

var colonDefinitionRe = regexp.MustCompile(`(?m)^[A-Za-z][A-Za-z0-9 /-]{1,40}:\s+\S`)

// structureScore applies format-specific structural expectations.
func structureScore(f catalog.Format, text string, st structure.ContentStructure) float64 {
	switch f {
	case catalog.FormatMeetingNotes:
		// Distinct sections and at least one list.
		score := 0.0
		if len(st.Sections) >= 3 {
			score += 0.5
		}
		if len(st.Lists) >= 1 {
			score += 0.5
		}
		return score
	case catalog.FormatTaskLists:
		return capRatio(st.ListItemCount(), 10)
	case catalog.FormatJournalNotes:
		return capRatio(len(st.Paragraphs), 3)
	case catalog.FormatShoppingLists:
		return capRatio(st.ListItemCount(), 8)
	case catalog.FormatResearchNotes:
		return capRatio(st.Depth(), 3)
	case catalog.FormatStudyNotes:
		depth := capRatio(st.Depth(), 4)
		definitions := 0.0
		if colonDefinitionRe.MatchString(text) {
			definitions = 1.0
		}
		return depth*0.7 + definitions*0.3
	default:
		return 0
	}
}

// capRatio is min(1, n/cap).
func capRatio(n, cap int) float64 {
	if n >= cap {
		return 1
	}
	if n <= 0 {
		return 0
	}
	return float64(n) / float64(cap)
}

var wordRe = regexp.MustCompile(`[a-z][a-z'-]*`)

// topFrequentWords returns the k most frequent words of at least
// minLen characters, ordered by descending count with alphabetical
// tie-breaks for determinism.
func topFrequentWords(lower string, k, minLen int) []string {
	counts := make(map[string]int)
	for _, w := range wordRe.FindAllString(lower, -1) {
		if len(w) < minLen {
			continue
		}
		counts[w]++
	}
	if len(counts) == 0 {
		return nil
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > k {
		words = words[:k]
	}
	return words
}

// defaultKeywords is the built-in per-format vocabulary used by the
// content and keyword scores.
func defaultKeywords() map[catalog.Format][]string {
	return map[catalog.Format][]string{
		catalog.FormatMeetingNotes: {
			"meeting", "attendees", "agenda", "action", "minutes",
			"discussion", "decision", "follow-up", "schedule", "participants",
		},
		catalog.FormatTaskLists: {
			"task", "todo", "done", "complete", "deadline",
			"priority", "urgent", "finish", "assign", "checklist",
		},
		catalog.FormatJournalNotes: {
			"today", "feeling", "thought", "grateful", "remember",
			"dream", "morning", "evening", "reflection", "mood",
		},
		catalog.FormatShoppingLists: {
			"shopping", "grocery", "store", "milk", "bread",
			"eggs", "cheese", "butter", "fruit", "vegetables",
		},
		catalog.FormatResearchNotes: {
			"research", "study", "hypothesis", "evidence", "source",
			"finding", "analysis", "methodology", "citation", "literature",
		},
		catalog.FormatStudyNotes: {
			"chapter", "definition", "exam", "lecture", "concept",
			"theory", "formula", "review", "summary", "vocabulary",
		},
	}
}

// businessKeywords etc. drive the coarse category heuristics.
var (
	businessKeywords = []string{
		"meeting", "client", "project", "deadline", "budget", "report",
		"stakeholder", "revenue", "quarter", "deliverable",
	}
	personalKeywords = []string{
		"family", "friend", "weekend", "dinner", "feeling", "birthday",
		"vacation", "home", "grocery", "gym",
	}
	academicKeywords = []string{
		"research", "study", "lecture", "exam", "theory", "hypothesis",
		"chapter", "professor", "course", "thesis",
	}
)

// categoryPrefixes maps coarse categories onto pattern-id prefixes:
// matches from those pattern families count as category evidence.
var categoryPrefixes = map[string][]string{
	"business": {"meeting-", "task-"},
	"personal": {"journal-", "shopping-"},
	"academic": {"research-", "study-"},
}
