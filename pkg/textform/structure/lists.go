package structure

import (
	"regexp"
	"unicode/utf8"
)

var priorityRe = regexp.MustCompile(`(?i)\b(?:urgent|asap|critical|important|high\s+priority|p[0-3])\b|!!`)

// detectLists finds runs of consecutive list-item lines. A run is
// closed by a blank line or any non-list line.
func detectLists(lines []line) []List {
	var lists []List
	var run []line

	flush := func() {
		if len(run) > 0 {
			lists = append(lists, buildList(run))
			run = nil
		}
	}

	for _, l := range lines {
		if !l.blank() && (l.isListItem() || checkboxRe.MatchString(l.text)) {
			run = append(run, l)
			continue
		}
		flush()
	}
	flush()

	return lists
}

// buildList assembles one List from a run of item lines, classifying
// each item and scoring marker/level uniformity.
func buildList(run []line) List {
	l := List{
		Items: make([]ListItem, 0, len(run)),
	}

	markerSeen := make(map[string]struct{})
	numbered := 0
	minLevel, maxLevel := run[0].indentUnits(), run[0].indentUnits()

	for _, ln := range run {
		item := classifyItem(ln)
		l.Items = append(l.Items, item)

		if _, ok := markerSeen[item.Marker]; !ok {
			markerSeen[item.Marker] = struct{}{}
			l.Markers = append(l.Markers, item.Marker)
		}
		if item.Marker == markerNumbered {
			numbered++
		}
		if item.Level < minLevel {
			minLevel = item.Level
		}
		if item.Level > maxLevel {
			maxLevel = item.Level
		}
	}

	l.Ordered = numbered*2 > len(l.Items)
	l.Level = minLevel
	l.Consistency = consistencyScore(len(l.Markers), maxLevel-minLevel)
	return l
}

// markerNumbered is the normalized marker recorded for numbered items
// so "1." and "2." count as one marker style.
const markerNumbered = "numbered"

// classifyItem types one list item. Checkbox state wins over keyword
// heuristics; priority keywords win over date mentions.
func classifyItem(ln line) ListItem {
	item := ListItem{Level: ln.indentUnits(), Type: ItemPlain}

	if m := checkboxRe.FindStringSubmatch(ln.text); m != nil {
		// The bullet may be a multi-byte rune.
		r, _ := utf8.DecodeRuneInString(ln.text)
		item.Marker = string(r)
		item.Text = m[2]
		if m[1] == " " {
			item.Type = ItemTask
		} else {
			item.Type = ItemCompleted
		}
		return item
	}

	if m := numberedRe.FindStringSubmatch(ln.text); m != nil {
		item.Marker = markerNumbered
		item.Text = m[2]
	} else if m := bulletRe.FindStringSubmatch(ln.text); m != nil {
		item.Marker = m[1]
		item.Text = m[2]
	} else {
		item.Text = ln.text
	}

	switch {
	case priorityRe.MatchString(item.Text):
		item.Type = ItemPriority
	case datedRe.MatchString(item.Text):
		item.Type = ItemDated
	}
	return item
}

// consistencyScore averages marker uniformity (each extra distinct
// marker costs 0.2, floored at 0) with level uniformity (1.0 when the
// level spread is at most 2, else 0.7).
func consistencyScore(distinctMarkers, levelSpread int) float64 {
	markers := 1 - 0.2*float64(distinctMarkers-1)
	if markers < 0 {
		markers = 0
	}

	levels := 1.0
	if levelSpread > 2 {
		levels = 0.7
	}

	return (markers + levels) / 2
}
