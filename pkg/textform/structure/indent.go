package structure

import "sort"

// detectIndentation groups indented lines by (kind, size) of their
// leading whitespace. Consistency is min(1, share_of_all_lines × 2):
// an indent style covering half the document or more is fully
// consistent.
func detectIndentation(lines []line) []Indentation {
	type key struct {
		kind IndentKind
		size int
	}

	groups := make(map[key][]int)
	total := 0
	for _, l := range lines {
		if l.blank() {
			continue
		}
		total++
		size, tabs := l.indentWidth()
		if size == 0 {
			continue
		}
		kind := IndentSpaces
		if tabs {
			kind = IndentTabs
		}
		k := key{kind: kind, size: size}
		groups[k] = append(groups[k], l.number)
	}

	if total == 0 {
		return nil
	}

	patterns := make([]Indentation, 0, len(groups))
	for k, lineNums := range groups {
		consistency := float64(len(lineNums)) / float64(total) * 2
		if consistency > 1 {
			consistency = 1
		}
		patterns = append(patterns, Indentation{
			Kind:        k.kind,
			Size:        k.size,
			Consistency: consistency,
			Lines:       lineNums,
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Kind != patterns[j].Kind {
			return patterns[i].Kind < patterns[j].Kind
		}
		return patterns[i].Size < patterns[j].Size
	})
	return patterns
}
