package match

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cognicore/textform/pkg/textform/catalog"
)

// Value is the typed result of parsing one extracted capture group.
// Kind selects which variant field is meaningful; consumers switch on
// it instead of probing loosely-typed values.
type Value struct {
	Kind catalog.FieldType `json:"kind"`
	Str  string            `json:"str,omitempty"`
	Num  float64           `json:"num,omitempty"`
	Time time.Time         `json:"time,omitempty"`
	Bool bool              `json:"bool,omitempty"`
}

// Field pairs a capture-group name with its parsed value. Fields are
// ordered by group name so repeated analyses produce identical output.
type Field struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// dateLayouts are tried in order when parsing a date group.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"Jan 2",
	"January 2",
}

// extractFields parses the matched groups of one occurrence according
// to the pattern's extraction spec. Raw values are kept for every
// matched group; a group whose declared type fails to parse (a bad
// date) is omitted from the typed fields rather than failing the
// match.
func extractFields(def catalog.Definition, groups map[string]string) (map[string]string, []Field) {
	raw := make(map[string]string, len(groups))
	fields := make([]Field, 0, len(groups))

	for name, rawValue := range groups {
		fieldType, declared := def.Extract[name]
		if !declared {
			continue
		}
		raw[name] = rawValue

		v, ok := parseValue(fieldType, rawValue)
		if !ok {
			continue
		}
		fields = append(fields, Field{Name: name, Value: v})
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, fields
}

// parseValue converts a raw capture into its declared type. Numbers
// default to 0 on parse failure; dates report failure so the caller
// can omit the field.
func parseValue(t catalog.FieldType, raw string) (Value, bool) {
	switch t {
	case catalog.FieldNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			n = 0
		}
		return Value{Kind: t, Num: n}, true
	case catalog.FieldDate:
		ts, ok := parseDate(strings.TrimSpace(raw))
		if !ok {
			return Value{}, false
		}
		return Value{Kind: t, Time: ts}, true
	case catalog.FieldBoolean:
		s := strings.ToLower(strings.TrimSpace(raw))
		return Value{Kind: t, Bool: s == "true" || s == "1"}, true
	case catalog.FieldEmail:
		return Value{Kind: t, Str: strings.ToLower(strings.TrimSpace(raw))}, true
	case catalog.FieldURL:
		return Value{Kind: t, Str: strings.TrimSpace(raw)}, true
	default:
		return Value{Kind: catalog.FieldString, Str: strings.TrimSpace(raw)}, true
	}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
