package structure

import (
	"regexp"
	"strings"
)

// line is one input line with its precomputed classification inputs.
type line struct {
	number int // 1-based
	raw    string
	text   string // raw without leading/trailing whitespace
}

func splitLines(text string) []line {
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	lines := make([]line, len(raw))
	for i, r := range raw {
		lines[i] = line{
			number: i + 1,
			raw:    r,
			text:   strings.TrimSpace(r),
		}
	}
	return lines
}

func (l line) blank() bool {
	return l.text == ""
}

var (
	headingRe  = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	bulletRe   = regexp.MustCompile(`^([-*+•])\s+(.*)$`)
	numberedRe = regexp.MustCompile(`^(\d+)[.)]\s+(.*)$`)
	checkboxRe = regexp.MustCompile(`^[-*+•]\s*\[([ xX])\]\s*(.*)$`)
	fenceRe    = regexp.MustCompile("^```")
	datedRe    = regexp.MustCompile(`\b(?:\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4}|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2})\b`)
)

// headingDepth returns the markdown heading depth of a line, or 0.
func (l line) headingDepth() int {
	m := headingRe.FindStringSubmatch(l.text)
	if m == nil {
		return 0
	}
	return len(m[1])
}

// isListItem reports whether the trimmed line opens with a bullet,
// number, or checkbox marker.
func (l line) isListItem() bool {
	return bulletRe.MatchString(l.text) || numberedRe.MatchString(l.text)
}

// isAllCapsTitle reports whether the line reads as a standalone title:
// all-caps letters, at least 4 characters, optionally colon-terminated.
func (l line) isAllCapsTitle() bool {
	t := strings.TrimSuffix(l.text, ":")
	if len(t) < 4 || len(t) > 80 {
		return false
	}
	hasLetter := false
	for _, r := range t {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		}
	}
	return hasLetter
}

// indentWidth measures the leading whitespace of the raw line: the
// count of leading characters and whether they are tabs.
func (l line) indentWidth() (size int, tabs bool) {
	for _, r := range l.raw {
		switch r {
		case ' ':
			size++
		case '\t':
			size++
			tabs = true
		default:
			return size, tabs
		}
	}
	return size, tabs
}

// indentUnits converts leading whitespace into nesting units: one tab
// or two spaces per unit.
func (l line) indentUnits() int {
	units := 0
	spaces := 0
	for _, r := range l.raw {
		switch r {
		case '\t':
			units++
		case ' ':
			spaces++
			if spaces == 2 {
				units++
				spaces = 0
			}
		default:
			return units
		}
	}
	return units
}
