package structure

import "fmt"

// Levels assigned to non-heading lines sit below the deepest markdown
// heading so indented content always nests under its heading.
const nonHeadingBase = 7

// buildHierarchy constructs the outline forest with a level-tracked
// stack over an arena: nodes live in one slice and reference each
// other by index. While the stack top has a level >= the new node's
// level it is popped; the node then attaches to the remaining top, or
// becomes a root when the stack empties.
func buildHierarchy(lines []line) (nodes []Node, roots []int) {
	roots = []int{}
	var stack []int // arena indices of open ancestors

	for _, l := range lines {
		if l.blank() {
			continue
		}

		level, nodeType, content := classifyNode(l)

		idx := len(nodes)
		nodes = append(nodes, Node{
			ID:      fmt.Sprintf("node-%d", idx),
			Level:   level,
			Type:    nodeType,
			Content: content,
			Parent:  -1,
		})

		for len(stack) > 0 && nodes[stack[len(stack)-1]].Level >= level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, idx)
		} else {
			parent := stack[len(stack)-1]
			nodes[idx].Parent = parent
			nodes[parent].Children = append(nodes[parent].Children, idx)
		}
		stack = append(stack, idx)
	}

	return nodes, roots
}

// classifyNode derives a node's level, type, and content from a line:
// markdown headings carry their depth; other lines derive a level
// from indentation, below the deepest heading level.
func classifyNode(l line) (int, NodeType, string) {
	if d := l.headingDepth(); d > 0 {
		m := headingRe.FindStringSubmatch(l.text)
		return d, NodeHeading, m[2]
	}

	units := l.indentUnits()
	level := nonHeadingBase + units

	switch {
	case l.isListItem() && units > 0:
		return level, NodeSubitem, l.text
	case l.isListItem():
		return level, NodeItem, l.text
	default:
		return level, NodeSection, l.text
	}
}
