package structure

import (
	"regexp"
	"strings"
)

var blankBlockRe = regexp.MustCompile(`\n\s*\n`)

var (
	conclusionOpeners = []string{
		"in conclusion", "finally", "in summary", "to sum up",
		"overall", "therefore", "all in all",
	}
	exampleOpeners = []string{
		"for example", "for instance", "e.g.", "such as", "consider",
	}
	introductionOpeners = []string{
		"this document", "this note", "introduction", "today", "we begin",
	}
)

// Naive sentiment lexicons. Deliberately small: the score is a coarse
// signal for tone heuristics, not an opinion model.
var (
	positiveWords = []string{
		"good", "great", "excellent", "happy", "love", "wonderful",
		"success", "successful", "amazing", "enjoy", "enjoyed", "best",
		"grateful", "glad", "positive", "win", "progress", "improved",
	}
	negativeWords = []string{
		"bad", "terrible", "awful", "sad", "hate", "failure", "failed",
		"worst", "angry", "problem", "problems", "difficult", "negative",
		"worried", "worry", "stress", "stressed", "blocked",
	}
)

// analyzeParagraphs splits text on blank-line-delimited blocks and
// classifies each by its opening sentence.
func analyzeParagraphs(text string) []Paragraph {
	blocks := blankBlockRe.Split(text, -1)
	var paras []Paragraph

	for _, block := range blocks {
		content := strings.TrimSpace(block)
		if content == "" {
			continue
		}
		paras = append(paras, Paragraph{
			Content:   content,
			Length:    len(content),
			Sentences: countSentences(content),
			Type:      classifyParagraph(content, len(paras) == 0),
			Sentiment: sentimentScore(content),
		})
	}
	return paras
}

// classifyParagraph types a block by its opening words. The first
// paragraph defaults to introduction when nothing stronger applies.
func classifyParagraph(content string, first bool) ParagraphType {
	lower := strings.ToLower(content)

	for _, o := range conclusionOpeners {
		if strings.HasPrefix(lower, o) {
			return ParagraphConclusion
		}
	}
	for _, o := range exampleOpeners {
		if strings.HasPrefix(lower, o) {
			return ParagraphExample
		}
	}
	if strings.HasPrefix(content, ">") || strings.HasPrefix(content, `"`) || strings.HasPrefix(content, "“") {
		return ParagraphQuote
	}
	for _, o := range introductionOpeners {
		if strings.HasPrefix(lower, o) {
			return ParagraphIntroduction
		}
	}
	if first {
		return ParagraphIntroduction
	}
	return ParagraphBody
}

// sentimentScore is (positive hits - negative hits) / total hits over
// the keyword lexicons, 0 when nothing matches. Always in [-1,1].
func sentimentScore(content string) float64 {
	words := strings.FieldsFunc(strings.ToLower(content), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '\''
	})

	wordSet := make(map[string]int)
	for _, w := range words {
		wordSet[w]++
	}

	pos, neg := 0, 0
	for _, w := range positiveWords {
		pos += wordSet[w]
	}
	for _, w := range negativeWords {
		neg += wordSet[w]
	}

	total := pos + neg
	if total == 0 {
		return 0
	}
	return float64(pos-neg) / float64(total)
}

var sentenceEndRe = regexp.MustCompile(`[.!?]+(?:\s|$)`)

// countSentences counts terminator runs; a block with text but no
// terminator still counts as one sentence.
func countSentences(content string) int {
	n := len(sentenceEndRe.FindAllString(content, -1))
	if n == 0 && strings.TrimSpace(content) != "" {
		return 1
	}
	return n
}
