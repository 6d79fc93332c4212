package structure

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEmptyInput(t *testing.T) {
	cs := Analyze("")

	if len(cs.Sections) != 0 || len(cs.Nodes) != 0 || len(cs.Lists) != 0 ||
		len(cs.Paragraphs) != 0 || len(cs.Indentation) != 0 {
		t.Errorf("Empty input should yield empty structure: %+v", cs)
	}
	if cs.Depth() != 0 {
		t.Errorf("Empty forest depth should be 0, got %d", cs.Depth())
	}
}

func TestWhitespaceOnlyInput(t *testing.T) {
	cs := Analyze("   \n\t\n  ")

	if len(cs.Nodes) != 0 || len(cs.Lists) != 0 || len(cs.Paragraphs) != 0 {
		t.Errorf("Whitespace input should yield empty structure: %+v", cs)
	}
}

func TestSectionsFromHeaders(t *testing.T) {
	text := "# Overview\nsome intro\n## Details\nmore text\nand more"
	cs := Analyze(text)

	if len(cs.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(cs.Sections))
	}
	if cs.Sections[0].Type != SectionHeader || cs.Sections[0].Title != "Overview" {
		t.Errorf("First section wrong: %+v", cs.Sections[0])
	}
	if cs.Sections[1].Title != "Details" {
		t.Errorf("Second section title wrong: %q", cs.Sections[1].Title)
	}
	if !strings.Contains(cs.Sections[1].Content, "more text") {
		t.Errorf("Section content should accumulate lines: %q", cs.Sections[1].Content)
	}
}

func TestAllCapsTitleStartsSection(t *testing.T) {
	cs := Analyze("MEETING NOTES:\nsome content below")

	if len(cs.Sections) == 0 {
		t.Fatal("Expected at least one section")
	}
	if cs.Sections[0].Type != SectionTitle {
		t.Errorf("All-caps line should open a title section, got %s", cs.Sections[0].Type)
	}
	if cs.Sections[0].Title != "MEETING NOTES" {
		t.Errorf("Title should drop the trailing colon, got %q", cs.Sections[0].Title)
	}
}

func TestOrphanContentSection(t *testing.T) {
	cs := Analyze("just plain text\nno headers anywhere")

	if len(cs.Sections) != 1 {
		t.Fatalf("Expected 1 implicit section, got %d", len(cs.Sections))
	}
	if cs.Sections[0].Type != SectionContent {
		t.Errorf("Orphan content should be a content section, got %s", cs.Sections[0].Type)
	}
}

func TestQuoteAndCodeSections(t *testing.T) {
	cs := Analyze("> quoted wisdom\n\n```\ncode here\n```")

	var sawQuote, sawCode bool
	for _, s := range cs.Sections {
		switch s.Type {
		case SectionQuote:
			sawQuote = true
		case SectionCode:
			sawCode = true
		}
	}
	if !sawQuote {
		t.Error("Expected a quote section")
	}
	if !sawCode {
		t.Error("Expected a code section")
	}
}

func TestHierarchyNesting(t *testing.T) {
	text := "# Top\n## Middle\ncontent line\n# Second Top"
	cs := Analyze(text)

	if len(cs.Nodes) != 4 {
		t.Fatalf("Expected 4 nodes, got %d", len(cs.Nodes))
	}
	if len(cs.Roots) != 2 {
		t.Fatalf("Expected 2 roots, got %d: %v", len(cs.Roots), cs.Roots)
	}

	top := cs.Nodes[cs.Roots[0]]
	if top.Type != NodeHeading || top.Content != "Top" {
		t.Errorf("First root wrong: %+v", top)
	}
	if len(top.Children) != 1 {
		t.Fatalf("Top should have one child, got %d", len(top.Children))
	}

	middle := cs.Nodes[top.Children[0]]
	if middle.Content != "Middle" || middle.Parent != cs.Roots[0] {
		t.Errorf("Middle node wrong: %+v", middle)
	}
	if len(middle.Children) != 1 {
		t.Fatalf("Middle should own the content line")
	}
	if cs.Nodes[middle.Children[0]].Type != NodeSection {
		t.Errorf("Plain line should be a section node, got %s", cs.Nodes[middle.Children[0]].Type)
	}

	if cs.Depth() != 3 {
		t.Errorf("Expected depth 3, got %d", cs.Depth())
	}
}

func TestHierarchyIndentedSubitems(t *testing.T) {
	text := "- parent\n  - child\n    - grandchild"
	cs := Analyze(text)

	if len(cs.Nodes) != 3 {
		t.Fatalf("Expected 3 nodes, got %d", len(cs.Nodes))
	}
	if cs.Nodes[0].Type != NodeItem {
		t.Errorf("Unindented bullet should be an item, got %s", cs.Nodes[0].Type)
	}
	if cs.Nodes[1].Type != NodeSubitem || cs.Nodes[2].Type != NodeSubitem {
		t.Error("Indented bullets should be subitems")
	}
	if cs.Depth() != 3 {
		t.Errorf("Expected depth 3, got %d", cs.Depth())
	}
}

func TestUniformListConsistency(t *testing.T) {
	cs := Analyze("- a\n- b\n- c")

	if len(cs.Lists) != 1 {
		t.Fatalf("Expected 1 list, got %d", len(cs.Lists))
	}
	l := cs.Lists[0]
	if len(l.Items) != 3 {
		t.Errorf("Expected 3 items, got %d", len(l.Items))
	}
	if l.Consistency != 1.0 {
		t.Errorf("Uniform list consistency should be 1.0, got %f", l.Consistency)
	}
	if l.Ordered {
		t.Error("Bullet list should not be ordered")
	}
}

func TestMixedMarkersLowerConsistency(t *testing.T) {
	cs := Analyze("- a\n* b\n+ c")

	if len(cs.Lists) != 1 {
		t.Fatalf("Expected 1 list, got %d", len(cs.Lists))
	}
	l := cs.Lists[0]
	if len(l.Markers) != 3 {
		t.Errorf("Expected 3 distinct markers, got %v", l.Markers)
	}
	// markers: 1 - 0.2*2 = 0.6; levels: 1.0; averaged
	if l.Consistency < 0.79 || l.Consistency > 0.81 {
		t.Errorf("Expected consistency near 0.8, got %f", l.Consistency)
	}
}

func TestCheckboxItems(t *testing.T) {
	cs := Analyze("- [ ] buy milk\n- [x] call mom\n- [ ] finish report")

	if len(cs.Lists) != 1 {
		t.Fatalf("Expected 1 list, got %d", len(cs.Lists))
	}
	l := cs.Lists[0]
	if len(l.Items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(l.Items))
	}

	counts := map[ItemType]int{}
	for _, it := range l.Items {
		counts[it.Type]++
	}
	if counts[ItemTask] != 2 {
		t.Errorf("Expected 2 open tasks, got %d", counts[ItemTask])
	}
	if counts[ItemCompleted] != 1 {
		t.Errorf("Expected 1 completed task, got %d", counts[ItemCompleted])
	}
	if l.Items[0].Text != "buy milk" {
		t.Errorf("Item text should drop the marker, got %q", l.Items[0].Text)
	}
}

func TestPriorityAndDatedItems(t *testing.T) {
	cs := Analyze("- urgent: fix the build\n- dentist on 2024-06-01\n- water plants")

	if len(cs.Lists) != 1 {
		t.Fatalf("Expected 1 list, got %d", len(cs.Lists))
	}
	items := cs.Lists[0].Items
	if items[0].Type != ItemPriority {
		t.Errorf("Expected priority item, got %s", items[0].Type)
	}
	if items[1].Type != ItemDated {
		t.Errorf("Expected dated item, got %s", items[1].Type)
	}
	if items[2].Type != ItemPlain {
		t.Errorf("Expected plain item, got %s", items[2].Type)
	}
}

func TestBlankLineClosesList(t *testing.T) {
	cs := Analyze("- a\n- b\n\n- c\n- d")

	if len(cs.Lists) != 2 {
		t.Fatalf("Blank line should split lists, got %d", len(cs.Lists))
	}
}

func TestNumberedListIsOrdered(t *testing.T) {
	cs := Analyze("1. first\n2. second\n3. third")

	if len(cs.Lists) != 1 {
		t.Fatalf("Expected 1 list, got %d", len(cs.Lists))
	}
	if !cs.Lists[0].Ordered {
		t.Error("Numbered list should be ordered")
	}
	if cs.Lists[0].Consistency != 1.0 {
		t.Errorf("Numbered markers normalize to one style, consistency should be 1.0, got %f",
			cs.Lists[0].Consistency)
	}
}

func TestParagraphClassification(t *testing.T) {
	text := "This document covers the plan.\n\nFor example, we could ship weekly.\n\nIn conclusion, we ship."
	cs := Analyze(text)

	if len(cs.Paragraphs) != 3 {
		t.Fatalf("Expected 3 paragraphs, got %d", len(cs.Paragraphs))
	}
	if cs.Paragraphs[0].Type != ParagraphIntroduction {
		t.Errorf("First paragraph should be introduction, got %s", cs.Paragraphs[0].Type)
	}
	if cs.Paragraphs[1].Type != ParagraphExample {
		t.Errorf("Second paragraph should be example, got %s", cs.Paragraphs[1].Type)
	}
	if cs.Paragraphs[2].Type != ParagraphConclusion {
		t.Errorf("Third paragraph should be conclusion, got %s", cs.Paragraphs[2].Type)
	}
}

func TestParagraphSentiment(t *testing.T) {
	happy := analyzeParagraphs("What a great and wonderful success. I love this progress.")
	sad := analyzeParagraphs("A terrible failure. The worst problem, everything is bad.")
	neutral := analyzeParagraphs("The sky contains clouds.")

	if happy[0].Sentiment <= 0 {
		t.Errorf("Positive text should score > 0, got %f", happy[0].Sentiment)
	}
	if sad[0].Sentiment >= 0 {
		t.Errorf("Negative text should score < 0, got %f", sad[0].Sentiment)
	}
	if neutral[0].Sentiment != 0 {
		t.Errorf("No keyword hits should score 0, got %f", neutral[0].Sentiment)
	}
	for _, p := range append(happy, sad...) {
		if p.Sentiment < -1 || p.Sentiment > 1 {
			t.Errorf("Sentiment %f out of [-1,1]", p.Sentiment)
		}
	}
}

func TestIndentationPatterns(t *testing.T) {
	text := "top\n  indented\n  indented too\n\tby tab"
	cs := Analyze(text)

	if len(cs.Indentation) != 2 {
		t.Fatalf("Expected 2 indent patterns, got %d: %+v", len(cs.Indentation), cs.Indentation)
	}

	var spaces, tabs *Indentation
	for i := range cs.Indentation {
		switch cs.Indentation[i].Kind {
		case IndentSpaces:
			spaces = &cs.Indentation[i]
		case IndentTabs:
			tabs = &cs.Indentation[i]
		}
	}
	if spaces == nil || spaces.Size != 2 || len(spaces.Lines) != 2 {
		t.Errorf("Space indent pattern wrong: %+v", spaces)
	}
	if tabs == nil || len(tabs.Lines) != 1 {
		t.Errorf("Tab indent pattern wrong: %+v", tabs)
	}
	if spaces.Consistency != 1.0 {
		// 2 of 4 lines, doubled and capped
		t.Errorf("Space consistency should be 1.0, got %f", spaces.Consistency)
	}
}

func TestTextStatistics(t *testing.T) {
	stats := TextStatistics("One two three. Four five!\n\nSix seven.")

	if stats.Words != 7 {
		t.Errorf("Expected 7 words, got %d", stats.Words)
	}
	if stats.Sentences != 3 {
		t.Errorf("Expected 3 sentences, got %d", stats.Sentences)
	}
	if stats.Paragraphs != 2 {
		t.Errorf("Expected 2 paragraphs, got %d", stats.Paragraphs)
	}
	if stats.Lines != 3 {
		t.Errorf("Expected 3 lines, got %d", stats.Lines)
	}
	if stats.AvgSentenceLength <= 0 || stats.AvgWordLength <= 0 {
		t.Errorf("Averages should be positive: %+v", stats)
	}
}

func TestTextStatisticsEmpty(t *testing.T) {
	stats := TextStatistics("  \n ")
	if stats != (Statistics{}) {
		t.Errorf("Whitespace input should be all zero, got %+v", stats)
	}
}

func TestUnicodeBulletCheckboxMarker(t *testing.T) {
	cs := Analyze("• [ ] water plants\n• [x] take out trash")

	if len(cs.Lists) != 1 {
		t.Fatalf("Expected 1 list, got %d", len(cs.Lists))
	}
	l := cs.Lists[0]
	if len(l.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(l.Items))
	}
	for _, it := range l.Items {
		if it.Marker != "•" {
			t.Errorf("Marker should be the full bullet rune, got %q", it.Marker)
		}
		if !utf8.ValidString(it.Marker) {
			t.Errorf("Marker is not valid UTF-8: %q", it.Marker)
		}
	}
	if l.Items[0].Type != ItemTask || l.Items[1].Type != ItemCompleted {
		t.Errorf("Checkbox states wrong: %v, %v", l.Items[0].Type, l.Items[1].Type)
	}
}
