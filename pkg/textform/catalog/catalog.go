package catalog

import (
	"regexp"
	"sync"
)

// Format identifies one of the structured output formats the engine
// can reformat text into.
type Format string

const (
	FormatMeetingNotes  Format = "meeting-notes"
	FormatTaskLists     Format = "task-lists"
	FormatJournalNotes  Format = "journal-notes"
	FormatShoppingLists Format = "shopping-lists"
	FormatResearchNotes Format = "research-notes"
	FormatStudyNotes    Format = "study-notes"
)

// AllFormats returns the closed set of supported output formats, in
// canonical order.
func AllFormats() []Format {
	return []Format{
		FormatMeetingNotes,
		FormatTaskLists,
		FormatJournalNotes,
		FormatShoppingLists,
		FormatResearchNotes,
		FormatStudyNotes,
	}
}

// ParseFormat maps a string onto a known Format. Unknown values return
// false; callers treat that as "no format hint".
func ParseFormat(s string) (Format, bool) {
	f := Format(s)
	for _, known := range AllFormats() {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// Category groups pattern definitions by what they say about the text.
type Category string

const (
	CategoryMetadata  Category = "metadata"
	CategoryContent   Category = "content"
	CategoryStructure Category = "structure"
)

// FieldType declares how a named capture group's value is parsed.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldNumber  FieldType = "number"
	FieldDate    FieldType = "date"
	FieldBoolean FieldType = "boolean"
	FieldEmail   FieldType = "email"
	FieldURL     FieldType = "url"
)

// Definition is one immutable pattern rule: a weighted regular
// expression tied to one or more output formats, optionally declaring
// typed capture groups for field extraction.
type Definition struct {
	ID          string
	Name        string
	Description string
	Expr        *regexp.Regexp
	Weight      float64 // in [0,1]
	Category    Category
	Formats     []Format
	Extract     map[string]FieldType // nil when the pattern extracts nothing
}

// AppliesTo reports whether the definition targets the given format.
func (d Definition) AppliesTo(f Format) bool {
	for _, df := range d.Formats {
		if df == f {
			return true
		}
	}
	return false
}

// Catalog is a read-only registry of pattern definitions indexed by
// output format. Safe for concurrent use after construction.
type Catalog struct {
	byFormat map[Format][]Definition
	all      []Definition
}

// New builds a catalog from the given definitions. Definitions listing
// several formats are indexed under each of them but appear once in
// AllPatterns.
func New(defs []Definition) *Catalog {
	c := &Catalog{
		byFormat: make(map[Format][]Definition),
		all:      make([]Definition, 0, len(defs)),
	}
	for _, d := range defs {
		c.all = append(c.all, d)
		for _, f := range d.Formats {
			c.byFormat[f] = append(c.byFormat[f], d)
		}
	}
	return c
}

var (
	builtinOnce sync.Once
	builtinCat  *Catalog
)

// Builtin returns the process-wide built-in catalog, compiled on first
// use. A malformed built-in expression panics here rather than
// surfacing as a runtime analysis error.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		builtinCat = New(compileBuiltins())
	})
	return builtinCat
}

// Extend returns a new catalog containing this catalog's definitions
// plus the given extras. The receiver is not modified.
func (c *Catalog) Extend(extra []Definition) *Catalog {
	merged := make([]Definition, 0, len(c.all)+len(extra))
	merged = append(merged, c.all...)
	merged = append(merged, extra...)
	return New(merged)
}

// Patterns returns the definitions targeting the given format. An
// unknown format yields an empty slice, never an error.
func (c *Catalog) Patterns(f Format) []Definition {
	return c.byFormat[f]
}

// AllPatterns returns every definition in the catalog.
func (c *Catalog) AllPatterns() []Definition {
	return c.all
}

// Len returns the number of distinct definitions.
func (c *Catalog) Len() int {
	return len(c.all)
}
