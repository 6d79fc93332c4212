// Package structure decomposes raw text into sections, a hierarchical
// outline, list structures, paragraphs, and indentation statistics.
package structure

// SectionType classifies a contiguous span of lines.
type SectionType string

const (
	SectionHeader  SectionType = "header"
	SectionTitle   SectionType = "title"
	SectionQuote   SectionType = "quote"
	SectionCode    SectionType = "code"
	SectionList    SectionType = "list"
	SectionContent SectionType = "content"
)

// Section is a contiguous classified span of the input.
type Section struct {
	ID         string      `json:"id"`
	Type       SectionType `json:"type"`
	Title      string      `json:"title,omitempty"`
	Content    string      `json:"content"`
	StartLine  int         `json:"startLine"` // 1-based
	EndLine    int         `json:"endLine"`
	Confidence float64     `json:"confidence"`
}

// NodeType classifies one outline node.
type NodeType string

const (
	NodeHeading NodeType = "heading"
	NodeItem    NodeType = "item"
	NodeSubitem NodeType = "subitem"
	NodeSection NodeType = "section"
)

// Node is one entry in the outline forest. All nodes live in a single
// arena slice; Parent and Children reference arena indices, with -1
// marking a root. Index references avoid parent/child ownership cycles.
type Node struct {
	ID       string   `json:"id"`
	Level    int      `json:"level"`
	Type     NodeType `json:"type"`
	Content  string   `json:"content"`
	Parent   int      `json:"parent"` // arena index, -1 for roots
	Children []int    `json:"children,omitempty"`
}

// ItemType classifies a single list item.
type ItemType string

const (
	ItemPlain     ItemType = "plain"
	ItemTask      ItemType = "task"
	ItemCompleted ItemType = "completed-task"
	ItemPriority  ItemType = "priority-item"
	ItemDated     ItemType = "dated-item"
)

// ListItem is one entry of a detected list.
type ListItem struct {
	Text   string   `json:"text"`
	Marker string   `json:"marker"`
	Type   ItemType `json:"type"`
	Level  int      `json:"level"`
}

// List is a run of consecutive list-item lines.
type List struct {
	Ordered     bool       `json:"ordered"`
	Items       []ListItem `json:"items"`
	Markers     []string   `json:"markers"` // distinct markers, in first-seen order
	Level       int        `json:"level"`
	Consistency float64    `json:"consistency"` // in [0,1]
}

// ParagraphType classifies a blank-line-delimited block.
type ParagraphType string

const (
	ParagraphIntroduction ParagraphType = "introduction"
	ParagraphBody         ParagraphType = "body"
	ParagraphConclusion   ParagraphType = "conclusion"
	ParagraphExample      ParagraphType = "example"
	ParagraphQuote        ParagraphType = "quote"
)

// Paragraph is one prose block with derived metrics.
type Paragraph struct {
	Content   string        `json:"content"`
	Length    int           `json:"length"`
	Sentences int           `json:"sentences"`
	Type      ParagraphType `json:"type"`
	Sentiment float64       `json:"sentiment"` // in [-1,1]
}

// IndentKind names the whitespace family used for an indentation run.
type IndentKind string

const (
	IndentSpaces IndentKind = "spaces"
	IndentTabs   IndentKind = "tabs"
)

// Indentation groups lines sharing one (kind, size) indent.
type Indentation struct {
	Kind        IndentKind `json:"kind"`
	Size        int        `json:"size"`
	Consistency float64    `json:"consistency"`
	Lines       []int      `json:"lines"` // 1-based line numbers
}

// ContentStructure aggregates every structural decomposition of one
// analysis pass. Built once, never mutated afterwards.
type ContentStructure struct {
	Sections    []Section     `json:"sections"`
	Nodes       []Node        `json:"nodes"`
	Roots       []int         `json:"roots"`
	Lists       []List        `json:"lists"`
	Paragraphs  []Paragraph   `json:"paragraphs"`
	Indentation []Indentation `json:"indentation"`
}

// Depth returns the maximum nesting depth of the outline forest
// (a lone root counts as depth 1). Empty forests have depth 0.
func (cs ContentStructure) Depth() int {
	depths := make([]int, len(cs.Nodes))
	max := 0
	// Nodes are appended in document order, so a parent always
	// precedes its children in the arena.
	for i, n := range cs.Nodes {
		if n.Parent < 0 {
			depths[i] = 1
		} else {
			depths[i] = depths[n.Parent] + 1
		}
		if depths[i] > max {
			max = depths[i]
		}
	}
	return max
}

// ListItemCount returns the total item count across detected lists.
func (cs ContentStructure) ListItemCount() int {
	n := 0
	for _, l := range cs.Lists {
		n += len(l.Items)
	}
	return n
}

// Analyze decomposes text into its full structural breakdown. Empty
// or whitespace-only input yields empty (not nil-panicking) results.
func Analyze(text string) ContentStructure {
	lines := splitLines(text)

	nodes, roots := buildHierarchy(lines)
	return ContentStructure{
		Sections:    detectSections(lines),
		Nodes:       nodes,
		Roots:       roots,
		Lists:       detectLists(lines),
		Paragraphs:  analyzeParagraphs(text),
		Indentation: detectIndentation(lines),
	}
}
