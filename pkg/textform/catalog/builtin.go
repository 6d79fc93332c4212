package catalog

import "regexp"

// rawDefinition is the uncompiled form of a built-in pattern. Kept as
// a plain table so the full rule set is reviewable in one place.
type rawDefinition struct {
	id          string
	name        string
	description string
	expr        string
	weight      float64
	category    Category
	formats     []Format
	extract     map[string]FieldType
}

// builtinDefinitions is the static rule set shipped with the engine.
// Weights are hand-tuned priors in [0,1]; they are part of the
// documented heuristic contract and should not be retuned without
// fresh calibration data.
var builtinDefinitions = []rawDefinition{
	// --- meeting notes ---
	{
		id:          "meeting-attendees",
		name:        "Attendee List",
		description: "A line naming the people present at a meeting",
		expr:        `(?im)^\s*(?:attendees?|participants?|present)\s*:\s*(?P<attendees>.+)$`,
		weight:      0.9,
		category:    CategoryMetadata,
		formats:     []Format{FormatMeetingNotes},
		extract:     map[string]FieldType{"attendees": FieldString},
	},
	{
		id:          "meeting-action-item",
		name:        "Action Item",
		description: "An action or follow-up assigned during a meeting",
		expr:        `(?im)^\s*(?:action(?:\s+item)?s?|follow[- ]?ups?|todo)\s*:\s*(?P<action>.+)$`,
		weight:      0.85,
		category:    CategoryContent,
		formats:     []Format{FormatMeetingNotes},
		extract:     map[string]FieldType{"action": FieldString},
	},
	{
		id:          "meeting-agenda",
		name:        "Agenda Marker",
		description: "An agenda heading or agenda item introduction",
		expr:        `(?im)^\s*agenda\s*:?\s*(?P<topic>.*)$`,
		weight:      0.8,
		category:    CategoryStructure,
		formats:     []Format{FormatMeetingNotes},
		extract:     map[string]FieldType{"topic": FieldString},
	},
	{
		id:          "meeting-date",
		name:        "Meeting Date",
		description: "An explicit meeting date line",
		expr:        `(?im)^\s*(?:meeting\s+)?date\s*:\s*(?P<date>.+)$`,
		weight:      0.75,
		category:    CategoryMetadata,
		formats:     []Format{FormatMeetingNotes},
		extract:     map[string]FieldType{"date": FieldDate},
	},
	{
		id:          "meeting-decision",
		name:        "Decision Record",
		description: "A recorded decision or resolution",
		expr:        `(?im)^\s*(?:decisions?|resolved|agreed)\s*:\s*(?P<decision>.+)$`,
		weight:      0.8,
		category:    CategoryContent,
		formats:     []Format{FormatMeetingNotes},
		extract:     map[string]FieldType{"decision": FieldString},
	},
	{
		id:          "meeting-minutes",
		name:        "Minutes Header",
		description: "Mentions of meeting minutes or a standup/sync",
		expr:        `(?i)\b(?:meeting\s+minutes|minutes\s+of|weekly\s+sync|standup|kick-?off)\b`,
		weight:      0.7,
		category:    CategoryMetadata,
		formats:     []Format{FormatMeetingNotes},
	},

	// --- task lists ---
	{
		id:          "task-checkbox",
		name:        "Checkbox Item",
		description: "A markdown-style task checkbox",
		expr:        `(?m)^\s*[-*]\s*\[(?P<state>[ xX])\]\s*(?P<task>.+)$`,
		weight:      0.95,
		category:    CategoryStructure,
		formats:     []Format{FormatTaskLists},
		extract:     map[string]FieldType{"state": FieldString, "task": FieldString},
	},
	{
		id:          "task-deadline",
		name:        "Deadline",
		description: "A due date attached to a task",
		expr:        `(?i)\bdue(?:\s+(?:by|on|date))?\s*:?\s*(?P<due>[^\n,;.]+)`,
		weight:      0.8,
		category:    CategoryContent,
		formats:     []Format{FormatTaskLists},
		extract:     map[string]FieldType{"due": FieldDate},
	},
	{
		id:          "task-priority",
		name:        "Priority Marker",
		description: "Urgency or priority wording on a task",
		expr:        `(?i)\b(?:urgent|asap|critical|high\s+priority|p[0-3]\b|important)\b`,
		weight:      0.7,
		category:    CategoryContent,
		formats:     []Format{FormatTaskLists},
	},
	{
		id:          "task-verb-bullet",
		name:        "Imperative Bullet",
		description: "A bullet opening with a common task verb",
		expr:        `(?im)^\s*[-*•]\s+(?:call|buy|send|finish|fix|review|update|write|schedule|email|book|clean|pay)\b.*$`,
		weight:      0.65,
		category:    CategoryContent,
		formats:     []Format{FormatTaskLists},
	},
	{
		id:          "task-assignment",
		name:        "Assignment",
		description: "A task assigned to a named person",
		expr:        `(?i)\b(?P<assignee>[A-Z][a-z]+)\s+to\s+(?:send|review|prepare|finish|update|write|present|follow)\b`,
		weight:      0.6,
		category:    CategoryContent,
		formats:     []Format{FormatTaskLists, FormatMeetingNotes},
		extract:     map[string]FieldType{"assignee": FieldString},
	},

	// --- journal notes ---
	{
		id:          "journal-opener",
		name:        "Journal Opener",
		description: "A diary-style opening phrase",
		expr:        `(?im)^\s*(?:dear\s+diary|today|yesterday|this\s+(?:morning|afternoon|evening)|tonight|last\s+night)\b.*$`,
		weight:      0.75,
		category:    CategoryContent,
		formats:     []Format{FormatJournalNotes},
	},
	{
		id:          "journal-first-person",
		name:        "First-Person Reflection",
		description: "First-person feeling or thought statements",
		expr:        `(?i)\bi\s+(?:feel|felt|think|thought|realized|hope|wish|am|was|went|learned|noticed)\b`,
		weight:      0.7,
		category:    CategoryContent,
		formats:     []Format{FormatJournalNotes},
	},
	{
		id:          "journal-gratitude",
		name:        "Gratitude Note",
		description: "Gratitude or reflection wording",
		expr:        `(?i)\b(?:grateful|thankful|blessed|looking\s+back|lesson\s+learned|reflecting)\b`,
		weight:      0.65,
		category:    CategoryContent,
		formats:     []Format{FormatJournalNotes},
	},
	{
		id:          "journal-mood",
		name:        "Mood Statement",
		description: "An explicit mood or feeling line",
		expr:        `(?im)^\s*(?:mood|feeling)\s*:\s*(?P<mood>.+)$`,
		weight:      0.8,
		category:    CategoryMetadata,
		formats:     []Format{FormatJournalNotes},
		extract:     map[string]FieldType{"mood": FieldString},
	},

	// --- shopping lists ---
	{
		id:          "shopping-header",
		name:        "Shopping Header",
		description: "A shopping or grocery list title",
		expr:        `(?i)\b(?:shopping|grocery|groceries)\s*(?:list)?\b`,
		weight:      0.85,
		category:    CategoryMetadata,
		formats:     []Format{FormatShoppingLists},
	},
	{
		id:          "shopping-quantity",
		name:        "Quantity Item",
		description: "A list item with an explicit quantity and unit",
		expr:        `(?im)^\s*[-*•]?\s*(?P<quantity>\d+(?:\.\d+)?)\s*(?P<unit>kg|g|lbs?|oz|l|ml|dozen|packs?|cans?|bottles?|boxe?s?)?\s+(?P<item>[a-zA-Z][a-zA-Z ]{1,40})$`,
		weight:      0.75,
		category:    CategoryContent,
		formats:     []Format{FormatShoppingLists},
		extract:     map[string]FieldType{"quantity": FieldNumber, "unit": FieldString, "item": FieldString},
	},
	{
		id:          "shopping-aisle",
		name:        "Store Section",
		description: "A store-section heading inside a list",
		expr:        `(?im)^\s*(?:produce|dairy|bakery|frozen|meat|pantry|household|deli)\s*:\s*$`,
		weight:      0.8,
		category:    CategoryStructure,
		formats:     []Format{FormatShoppingLists},
	},
	{
		id:          "shopping-staple",
		name:        "Staple Item",
		description: "A bullet naming a common grocery staple",
		expr:        `(?im)^\s*[-*•]\s*(?:milk|bread|eggs|butter|cheese|rice|pasta|coffee|sugar|flour|apples?|bananas?)\b.*$`,
		weight:      0.7,
		category:    CategoryContent,
		formats:     []Format{FormatShoppingLists},
	},

	// --- research notes ---
	{
		id:          "research-citation",
		name:        "Citation",
		description: "An author-year citation in parentheses",
		expr:        `\((?P<author>[A-Z][A-Za-z-]+(?:\s+(?:&|and)\s+[A-Z][A-Za-z-]+)*)(?:\s+et\s+al\.?)?,?\s+(?P<year>(?:19|20)\d{2})\)`,
		weight:      0.9,
		category:    CategoryContent,
		formats:     []Format{FormatResearchNotes},
		extract:     map[string]FieldType{"author": FieldString, "year": FieldNumber},
	},
	{
		id:          "research-hypothesis",
		name:        "Hypothesis",
		description: "A hypothesis or research-question marker",
		expr:        `(?i)\b(?:hypothes[ie]s(?:ize)?|research\s+question|rq\s*\d*)\b`,
		weight:      0.8,
		category:    CategoryContent,
		formats:     []Format{FormatResearchNotes},
	},
	{
		id:          "research-source",
		name:        "Source Reference",
		description: "Source, reference, or DOI wording",
		expr:        `(?i)\b(?:sources?|references?|bibliography|doi\s*:|et\s+al\.)\b`,
		weight:      0.7,
		category:    CategoryMetadata,
		formats:     []Format{FormatResearchNotes},
	},
	{
		id:          "research-finding",
		name:        "Finding Statement",
		description: "A results- or evidence-oriented statement",
		expr:        `(?i)\b(?:findings?|results?\s+(?:show|indicate|suggest)|evidence\s+(?:of|for|that)|data\s+(?:shows?|suggests?))\b`,
		weight:      0.65,
		category:    CategoryContent,
		formats:     []Format{FormatResearchNotes},
	},
	{
		id:          "research-methodology",
		name:        "Methodology",
		description: "Methodology or study-design wording",
		expr:        `(?i)\b(?:methodology|methods?\s+section|sample\s+size|control\s+group|qualitative|quantitative)\b`,
		weight:      0.7,
		category:    CategoryContent,
		formats:     []Format{FormatResearchNotes},
	},

	// --- study notes ---
	{
		id:          "study-definition",
		name:        "Term Definition",
		description: "A colon-style term definition line",
		expr:        `(?m)^(?P<term>[A-Z][A-Za-z0-9 /-]{2,40})\s*:\s+(?P<definition>\S.{9,})$`,
		weight:      0.75,
		category:    CategoryStructure,
		formats:     []Format{FormatStudyNotes},
		extract:     map[string]FieldType{"term": FieldString, "definition": FieldString},
	},
	{
		id:          "study-chapter",
		name:        "Chapter Reference",
		description: "A chapter, lecture, or unit reference",
		expr:        `(?i)\b(?:chapter|lecture|unit|module|section)\s+(?P<number>\d+)\b`,
		weight:      0.8,
		category:    CategoryMetadata,
		formats:     []Format{FormatStudyNotes},
		extract:     map[string]FieldType{"number": FieldNumber},
	},
	{
		id:          "study-exam",
		name:        "Exam Marker",
		description: "Exam, quiz, or test wording",
		expr:        `(?i)\b(?:exam|quiz|midterm|final\s+(?:exam|test)|test\s+on)\b`,
		weight:      0.6,
		category:    CategoryContent,
		formats:     []Format{FormatStudyNotes},
	},
	{
		id:          "study-keypoint",
		name:        "Key Point",
		description: "A highlighted key concept or reminder",
		expr:        `(?i)\b(?:key\s+(?:point|concept|term|takeaway)|remember\s*:|important\s*:|note\s+that)\b`,
		weight:      0.7,
		category:    CategoryContent,
		formats:     []Format{FormatStudyNotes},
	},

	// --- cross-format ---
	{
		id:          "generic-heading",
		name:        "Markdown Heading",
		description: "A markdown heading of any depth",
		expr:        `(?m)^#{1,6}\s+(?P<heading>.+)$`,
		weight:      0.5,
		category:    CategoryStructure,
		formats:     []Format{FormatMeetingNotes, FormatResearchNotes, FormatStudyNotes},
		extract:     map[string]FieldType{"heading": FieldString},
	},
	{
		id:          "generic-contact",
		name:        "Contact Email",
		description: "An email address in the body",
		expr:        `(?P<email>[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`,
		weight:      0.55,
		category:    CategoryMetadata,
		formats:     []Format{FormatMeetingNotes, FormatTaskLists},
		extract:     map[string]FieldType{"email": FieldEmail},
	},
	{
		id:          "generic-link",
		name:        "Web Link",
		description: "An http(s) URL in the body",
		expr:        `(?P<url>https?://[^\s<>"')\]]+)`,
		weight:      0.55,
		category:    CategoryMetadata,
		formats:     []Format{FormatResearchNotes, FormatStudyNotes},
		extract:     map[string]FieldType{"url": FieldURL},
	},
}

// compileBuiltins turns the raw table into compiled definitions.
// MustCompile is deliberate: a bad expression is a startup defect.
func compileBuiltins() []Definition {
	defs := make([]Definition, 0, len(builtinDefinitions))
	for _, r := range builtinDefinitions {
		defs = append(defs, Definition{
			ID:          r.id,
			Name:        r.name,
			Description: r.description,
			Expr:        regexp.MustCompile(r.expr),
			Weight:      r.weight,
			Category:    r.category,
			Formats:     r.formats,
			Extract:     r.extract,
		})
	}
	return defs
}
