// Package entity extracts typed entities (dates, times, emails, URLs,
// phone numbers, mentions, hashtags) from raw text via independent
// regular-expression sweeps.
package entity

import (
	"regexp"
	"sort"
	"strings"
)

// Type tags one extracted entity.
type Type string

const (
	TypeDate    Type = "date"
	TypeTime    Type = "time"
	TypeEmail   Type = "email"
	TypeURL     Type = "url"
	TypePhone   Type = "phone"
	TypeMention Type = "mention"
	TypeHashtag Type = "hashtag"
)

// Entity is one extracted occurrence. Start and End are byte offsets
// into the original text; text[Start:End] reproduces Text exactly.
type Entity struct {
	Type       Type    `json:"type"`
	Value      string  `json:"value"` // normalized form
	Text       string  `json:"text"`  // original matched text
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Confidence float64 `json:"confidence"`
}

// Per-type confidence priors. These are fixed heuristic constants,
// not computed scores.
const (
	dateConfidence    = 0.9
	timeConfidence    = 0.85
	emailConfidence   = 0.95
	urlConfidence     = 0.9
	phoneConfidence   = 0.85
	mentionConfidence = 0.9
	hashtagConfidence = 0.9
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	urlRe   = regexp.MustCompile(`https?://[^\s<>"')\]]+|www\.[^\s<>"')\]]+`)
	dateRe  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}|\b\d{1,2}/\d{1,2}/\d{2,4}\b|\b(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s*\d{4})?\b`)
	timeRe  = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?(?:\s*[aApP]\.?[mM]\.?)?|\b\d{1,2}\s*[aApP][mM]\b`)
	phoneRe = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?(?:\(\d{3}\)\s?|\d{3}[-.\s])\d{3}[-.\s]\d{4}`)
	// Sigil entities anchor on a preceding boundary to avoid matching
	// the local part of email addresses; group 1 is the entity.
	mentionRe = regexp.MustCompile(`(?:^|[\s(,;])(@[A-Za-z0-9_]{2,})`)
	hashtagRe = regexp.MustCompile(`(?:^|[\s(,;])(#[A-Za-z][A-Za-z0-9_]*)`)

	phoneDigitsRe = regexp.MustCompile(`[^\d+]`)
)

// Extract runs every entity sweep over text and merges the results,
// sorted by ascending start offset. The scans are independent; an
// email address yields only an email entity, not a mention.
func Extract(text string) []Entity {
	if text == "" {
		return nil
	}

	var entities []Entity
	entities = append(entities, scanPlain(text, emailRe, TypeEmail, emailConfidence, normalizeLower)...)
	entities = append(entities, scanPlain(text, urlRe, TypeURL, urlConfidence, normalizeURL)...)
	entities = append(entities, scanPlain(text, dateRe, TypeDate, dateConfidence, strings.TrimSpace)...)
	entities = append(entities, scanPlain(text, timeRe, TypeTime, timeConfidence, strings.TrimSpace)...)
	entities = append(entities, scanPlain(text, phoneRe, TypePhone, phoneConfidence, normalizePhone)...)
	entities = append(entities, scanGroup(text, mentionRe, TypeMention, mentionConfidence, stripSigil)...)
	entities = append(entities, scanGroup(text, hashtagRe, TypeHashtag, hashtagConfidence, stripSigil)...)

	sort.SliceStable(entities, func(i, j int) bool {
		if entities[i].Start != entities[j].Start {
			return entities[i].Start < entities[j].Start
		}
		return entities[i].Type < entities[j].Type
	})
	return entities
}

// CountByType tallies entities per type tag.
func CountByType(entities []Entity) map[Type]int {
	counts := make(map[Type]int)
	for _, e := range entities {
		counts[e.Type]++
	}
	return counts
}

// scanPlain extracts whole-expression matches.
func scanPlain(text string, re *regexp.Regexp, t Type, confidence float64, normalize func(string) string) []Entity {
	var out []Entity
	for _, loc := range re.FindAllStringIndex(text, -1) {
		matched := text[loc[0]:loc[1]]
		out = append(out, Entity{
			Type:       t,
			Value:      normalize(matched),
			Text:       matched,
			Start:      loc[0],
			End:        loc[1],
			Confidence: confidence,
		})
	}
	return out
}

// scanGroup extracts capture-group 1 of each match, used by the sigil
// sweeps whose expressions include a leading boundary character.
func scanGroup(text string, re *regexp.Regexp, t Type, confidence float64, normalize func(string) string) []Entity {
	var out []Entity
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		if start < 0 {
			continue
		}
		matched := text[start:end]
		out = append(out, Entity{
			Type:       t,
			Value:      normalize(matched),
			Text:       matched,
			Start:      start,
			End:        end,
			Confidence: confidence,
		})
	}
	return out
}

func normalizeLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeURL lowercases and strips trailing sentence punctuation
// that the sweep may have swallowed.
func normalizeURL(s string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(s)), ".,;:")
}

// normalizePhone keeps digits and a leading plus.
func normalizePhone(s string) string {
	return phoneDigitsRe.ReplaceAllString(s, "")
}

// stripSigil drops the @/# prefix from mention and hashtag values.
func stripSigil(s string) string {
	return strings.TrimLeft(s, "@#")
}
