package structure

import (
	"fmt"
	"strings"
)

// sectionConfidence assigns a fixed prior per section type: explicit
// markers score higher than inferred spans.
var sectionConfidence = map[SectionType]float64{
	SectionHeader:  0.9,
	SectionTitle:   0.8,
	SectionQuote:   0.7,
	SectionCode:    0.7,
	SectionList:    0.6,
	SectionContent: 0.5,
}

// detectSections classifies each line and accumulates consecutive
// same-classified lines into the current section. A header or title
// line always opens a new section carrying its text as the title;
// orphan content before any header opens an implicit content section.
func detectSections(lines []line) []Section {
	var sections []Section
	var current *Section
	var body []string
	inFence := false

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimRight(strings.Join(body, "\n"), "\n")
		sections = append(sections, *current)
		current = nil
		body = nil
	}

	open := func(t SectionType, title string, at int) {
		flush()
		current = &Section{
			ID:         fmt.Sprintf("section-%d", len(sections)),
			Type:       t,
			Title:      title,
			StartLine:  at,
			EndLine:    at,
			Confidence: sectionConfidence[t],
		}
	}

	for _, l := range lines {
		closesFence := false
		if fenceRe.MatchString(l.text) {
			if inFence {
				closesFence = true
			} else {
				inFence = true
			}
		}

		t := classifyLine(l, inFence)
		if closesFence {
			inFence = false
		}

		switch t {
		case SectionHeader:
			m := headingRe.FindStringSubmatch(l.text)
			open(SectionHeader, strings.TrimSpace(m[2]), l.number)
		case SectionTitle:
			open(SectionTitle, strings.TrimSuffix(l.text, ":"), l.number)
		default:
			if l.blank() {
				// Blank lines neither open nor retype sections.
				if current != nil {
					body = append(body, l.raw)
				}
				continue
			}
			// Headers and titles keep accumulating everything below
			// them; other section kinds close when the line
			// classification changes.
			if current == nil ||
				(current.Type != t && current.Type != SectionHeader && current.Type != SectionTitle) {
				open(t, "", l.number)
			}
			body = append(body, l.raw)
			current.EndLine = l.number
		}
	}
	flush()

	// Trailing blank lines accumulated into the last section are not
	// content.
	for i := range sections {
		sections[i].Content = strings.TrimRight(sections[i].Content, "\n ")
	}
	return sections
}

// classifyLine maps one line to its section type. Fenced lines are
// treated as code regardless of their content.
func classifyLine(l line, inFence bool) SectionType {
	switch {
	case inFence || fenceRe.MatchString(l.text):
		return SectionCode
	case l.headingDepth() > 0:
		return SectionHeader
	case l.isAllCapsTitle():
		return SectionTitle
	case strings.HasPrefix(l.text, ">"):
		return SectionQuote
	case strings.HasPrefix(l.raw, "    ") && !l.blank() && !l.isListItem():
		return SectionCode
	case l.isListItem() || checkboxRe.MatchString(l.text):
		return SectionList
	default:
		return SectionContent
	}
}
