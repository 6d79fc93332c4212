package structure

import (
	"strings"
	"unicode/utf8"
)

// Statistics summarizes text-level counts used by the orchestrator's
// metadata and reporting.
type Statistics struct {
	Characters        int     `json:"characters"`
	Words             int     `json:"words"`
	Sentences         int     `json:"sentences"`
	Paragraphs        int     `json:"paragraphs"`
	Lines             int     `json:"lines"`
	AvgWordLength     float64 `json:"avgWordLength"`
	AvgSentenceLength float64 `json:"avgSentenceLength"` // in words
}

// TextStatistics computes corpus counts for a single text. Empty
// input returns an all-zero record.
func TextStatistics(text string) Statistics {
	if strings.TrimSpace(text) == "" {
		return Statistics{}
	}

	words := strings.Fields(text)
	sentences := len(sentenceEndRe.FindAllString(text, -1))
	if sentences == 0 {
		sentences = 1
	}

	paragraphs := 0
	for _, block := range blankBlockRe.Split(text, -1) {
		if strings.TrimSpace(block) != "" {
			paragraphs++
		}
	}

	stats := Statistics{
		Characters: utf8.RuneCountInString(text),
		Words:      len(words),
		Sentences:  sentences,
		Paragraphs: paragraphs,
		Lines:      strings.Count(text, "\n") + 1,
	}

	if len(words) > 0 {
		runes := 0
		for _, w := range words {
			runes += utf8.RuneCountInString(strings.Trim(w, ".,;:!?\"'()"))
		}
		stats.AvgWordLength = float64(runes) / float64(len(words))
		stats.AvgSentenceLength = float64(len(words)) / float64(sentences)
	}
	return stats
}
