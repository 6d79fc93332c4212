package entity

import (
	"sort"
	"testing"
)

func TestSingleEmail(t *testing.T) {
	entities := Extract("john@example.com")

	if len(entities) != 1 {
		t.Fatalf("Expected exactly 1 entity, got %d: %+v", len(entities), entities)
	}
	e := entities[0]
	if e.Type != TypeEmail {
		t.Errorf("Expected email type, got %s", e.Type)
	}
	if e.Value != "john@example.com" {
		t.Errorf("Expected value john@example.com, got %q", e.Value)
	}
	if e.Confidence != 0.95 {
		t.Errorf("Email confidence should be 0.95, got %f", e.Confidence)
	}
}

func TestEmailCaseNormalization(t *testing.T) {
	entities := Extract("write to Jane.Doe@Example.COM please")

	if len(entities) != 1 {
		t.Fatalf("Expected 1 entity, got %d", len(entities))
	}
	if entities[0].Value != "jane.doe@example.com" {
		t.Errorf("Email value should be lowercased, got %q", entities[0].Value)
	}
	if entities[0].Text != "Jane.Doe@Example.COM" {
		t.Errorf("Original text should be preserved, got %q", entities[0].Text)
	}
}

func TestEmailDoesNotTriggerMention(t *testing.T) {
	entities := Extract("john@example.com")

	for _, e := range entities {
		if e.Type == TypeMention {
			t.Errorf("Email local part should not become a mention: %+v", e)
		}
	}
}

func TestSpanReproducesOriginalText(t *testing.T) {
	text := "Meet @alice at 14:30 on 2024-05-01, see https://example.com/x #launch or call 555-123-4567"
	entities := Extract(text)

	if len(entities) == 0 {
		t.Fatal("Expected entities")
	}
	for _, e := range entities {
		if text[e.Start:e.End] != e.Text {
			t.Errorf("Span [%d,%d) = %q, want %q", e.Start, e.End, text[e.Start:e.End], e.Text)
		}
	}
}

func TestSortedByStartOffset(t *testing.T) {
	text := "#first then bob@mail.org then 2024-01-02 then @carol"
	entities := Extract(text)

	if !sort.SliceIsSorted(entities, func(i, j int) bool {
		return entities[i].Start < entities[j].Start
	}) {
		t.Errorf("Entities not sorted by start offset: %+v", entities)
	}
}

func TestAllTypesDetected(t *testing.T) {
	text := "On 2024-03-15 at 9:30 am, email kim@corp.io or visit https://corp.io. " +
		"Call (555) 123-4567, ping @kim, tag #quarterly"
	entities := Extract(text)

	got := CountByType(entities)
	for _, want := range []Type{TypeDate, TypeTime, TypeEmail, TypeURL, TypePhone, TypeMention, TypeHashtag} {
		if got[want] == 0 {
			t.Errorf("Expected at least one %s entity, got none. All: %+v", want, entities)
		}
	}
}

func TestConfidencePriors(t *testing.T) {
	text := "2024-03-15 9:30 am a@b.io https://b.io (555) 123-4567 @kim #tag"
	want := map[Type]float64{
		TypeDate:    0.9,
		TypeTime:    0.85,
		TypeEmail:   0.95,
		TypeURL:     0.9,
		TypePhone:   0.85,
		TypeMention: 0.9,
		TypeHashtag: 0.9,
	}

	for _, e := range Extract(text) {
		if e.Confidence != want[e.Type] {
			t.Errorf("%s confidence = %f, want %f", e.Type, e.Confidence, want[e.Type])
		}
		if e.Confidence < 0 || e.Confidence > 1 {
			t.Errorf("Confidence %f out of [0,1]", e.Confidence)
		}
	}
}

func TestMentionAndHashtagValuesStripSigil(t *testing.T) {
	entities := Extract("thanks @dev_team for #release_day")

	byType := map[Type]Entity{}
	for _, e := range entities {
		byType[e.Type] = e
	}
	if byType[TypeMention].Value != "dev_team" {
		t.Errorf("Mention value should drop @, got %q", byType[TypeMention].Value)
	}
	if byType[TypeHashtag].Value != "release_day" {
		t.Errorf("Hashtag value should drop #, got %q", byType[TypeHashtag].Value)
	}
}

func TestPhoneNormalization(t *testing.T) {
	entities := Extract("call +1 (555) 123-4567 today")

	var phone *Entity
	for i := range entities {
		if entities[i].Type == TypePhone {
			phone = &entities[i]
		}
	}
	if phone == nil {
		t.Fatal("Expected a phone entity")
	}
	if phone.Value != "+15551234567" {
		t.Errorf("Phone value should keep digits and plus, got %q", phone.Value)
	}
}

func TestDateFormats(t *testing.T) {
	for _, text := range []string{
		"due 2024-12-01 ok",
		"due 12/01/2024 ok",
		"due March 15, 2024 ok",
		"due Mar 15 ok",
	} {
		entities := Extract(text)
		found := false
		for _, e := range entities {
			if e.Type == TypeDate {
				found = true
			}
		}
		if !found {
			t.Errorf("No date entity found in %q", text)
		}
	}
}

func TestURLTrailingPunctuation(t *testing.T) {
	entities := Extract("see https://example.com/docs.")

	var url *Entity
	for i := range entities {
		if entities[i].Type == TypeURL {
			url = &entities[i]
		}
	}
	if url == nil {
		t.Fatal("Expected a url entity")
	}
	if url.Value != "https://example.com/docs" {
		t.Errorf("URL value should drop trailing punctuation, got %q", url.Value)
	}
}

func TestEmptyInput(t *testing.T) {
	if entities := Extract(""); len(entities) != 0 {
		t.Errorf("Empty input should yield no entities, got %+v", entities)
	}
}
